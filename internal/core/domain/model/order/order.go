package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/pkg/errs"
)

// UnassignedDriver is the sentinel some clients send instead of an empty driver.
const UnassignedDriver = "unassigned"

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// IsDriverAssigned reports whether name identifies a driver. Empty strings,
// whitespace and the "unassigned" sentinel (any case) do not.
func IsDriverAssigned(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && !strings.EqualFold(name, UnassignedDriver)
}

// Details are the descriptive, non-monetary fields of an order.
type Details struct {
	Recipient string
	Phone     string
	Address   string
	City      string
	Region    string
	Merchant  string
	Notes     string
	Date      string
}

// Snapshot is the full persisted state of an order. Repositories build
// aggregates from it with RestoreOrder and read it back with Order.Snapshot.
type Snapshot struct {
	ID             kernel.UUID
	Number         int64
	Details        Details
	Amounts        Amounts
	Status         status.Code
	PreviousStatus status.Code
	Driver         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - the status is always a known code;
//   - after any status change previousStatus holds the old status, which
//     differs from the new one;
//   - money fields are never negative.
type Order struct {
	id             kernel.UUID
	number         int64
	details        Details
	amounts        Amounts
	status         status.Code
	previousStatus status.Code
	driver         string
	createdAt      time.Time
	updatedAt      time.Time

	events        []any
	isConstructed bool
}

// NewOrder creates a pending order and records a Created event.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), 1042, order.Details{Recipient: "Ali", Phone: "0790000000"}, amounts, now)
func NewOrder(id kernel.UUID, number int64, details Details, amounts Amounts, now time.Time) (*Order, error) {
	o := &Order{
		status:        status.Pending,
		amounts:       amounts,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.record(Created{OrderID: o.id, OrderNumber: o.number, OccurredAt: now})
	return o, nil
}

// RestoreOrder rebuilds an aggregate from persisted state. No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		amounts:       s.Amounts,
		driver:        s.Driver,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if s.PreviousStatus != "" {
		if err := s.PreviousStatus.Validate(); err != nil {
			return nil, err
		}
	}

	o.details = s.Details
	o.status = s.Status
	o.previousStatus = s.PreviousStatus
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing sequential order number.
func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Amounts() Amounts {
	return o.amounts
}

func (o *Order) Status() status.Code {
	return o.status
}

// PreviousStatus returns the status held before the last change, or "" if
// the order never changed status.
func (o *Order) PreviousStatus() status.Code {
	return o.previousStatus
}

// Driver returns the assigned driver's name, "" when unassigned.
func (o *Order) Driver() string {
	return o.driver
}

func (o *Order) Merchant() string {
	return o.details.Merchant
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Snapshot returns a copy of the order's state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		Number:         o.number,
		Details:        o.details,
		Amounts:        o.amounts,
		Status:         o.status,
		PreviousStatus: o.previousStatus,
		Driver:         o.driver,
		CreatedAt:      o.createdAt,
		UpdatedAt:      o.updatedAt,
	}
}

// ChangeStatus moves the order to target. A non-empty driver replaces the
// current one; the "unassigned" sentinel clears it; an empty driver keeps it.
//
// Callers are expected to run services.TransitionValidator first. ChangeStatus
// only rejects what would corrupt the aggregate: unknown codes and no-ops.
func (o *Order) ChangeStatus(target status.Code, driver string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == o.status {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("order is already %s", target))
	}

	switch {
	case IsDriverAssigned(driver):
		o.driver = strings.TrimSpace(driver)
	case strings.TrimSpace(driver) != "":
		o.driver = ""
	}

	o.transition(target, now)
	return nil
}

// ReceiveAtBranch records the physical hand-over of a returned order from its
// driver to the branch. The driver is cleared even though the order leaves a
// driver-bound workflow.
func (o *Order) ReceiveAtBranch(now time.Time) error {
	if o.status != status.ReturnedByDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order in %s cannot be received at branch", o.status))
	}
	o.driver = ""
	o.transition(status.ReturnedToBranch, now)
	return nil
}

// ReturnToMerchant records that a branch-held return was batched for its merchant.
func (o *Order) ReturnToMerchant(now time.Time) error {
	if o.status != status.ReturnedToBranch {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order in %s cannot be returned to merchant", o.status))
	}
	o.transition(status.ReturnedToMerchant, now)
	return nil
}

// UpdateField edits one attribute without touching status or previous status.
// Text values must already be sanitised by the caller.
func (o *Order) UpdateField(field Field, value string, now time.Time) error {
	switch {
	case field.IsMoney():
		amount, err := kernel.ParseAmount(string(field), value)
		if err != nil {
			return err
		}
		*o.amountRef(field) = amount
	case field == FieldDate:
		date, err := ParseDate(value)
		if err != nil {
			return err
		}
		o.details.Date = date
	default:
		ref := o.textRef(field)
		if ref == nil {
			return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not an editable field", field))
		}
		value = strings.TrimSpace(value)
		if field == FieldRecipient && value == "" {
			return errs.NewValueIsRequiredError(string(FieldRecipient))
		}
		*ref = value
	}

	o.updatedAt = now
	return nil
}

// PullEvents returns and clears the recorded domain events.
func (o *Order) PullEvents() []any {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) transition(target status.Code, now time.Time) {
	o.previousStatus = o.status
	o.status = target
	o.updatedAt = now
	o.record(StatusChanged{
		OrderID:        o.id,
		Status:         o.status,
		PreviousStatus: o.previousStatus,
		DriverName:     o.driver,
		OccurredAt:     now,
	})
}

func (o *Order) record(event any) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsOutOfRangeError("orderNumber", number, 1, "unbounded")
	}
	o.number = number
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.Recipient = strings.TrimSpace(d.Recipient)
	if d.Recipient == "" {
		return errs.NewValueIsRequiredError(string(FieldRecipient))
	}
	date, err := ParseDate(d.Date)
	if err != nil {
		return err
	}
	d.Date = date
	o.details = d
	return nil
}
