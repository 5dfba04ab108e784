package slip

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

const (
	driverSlipIDPrefix   = "dsl_"
	merchantSlipIDPrefix = "msl_"
)

var (
	// ErrDriverSlipIsNotConstructed is returned when a DriverSlip bypassed its constructors.
	ErrDriverSlipIsNotConstructed = errors.New("DriverSlip must be created via NewDriverSlip or RestoreDriverSlip")
	// ErrMerchantSlipIsNotConstructed is returned when a MerchantSlip bypassed its constructors.
	ErrMerchantSlipIsNotConstructed = errors.New("MerchantSlip must be created via NewMerchantSlip or RestoreMerchantSlip")
)

// document is the part shared by both slip kinds.
type document struct {
	id        string
	party     string
	date      time.Time
	entries   []Entry
	createdAt time.Time
}

func newDocument(id, partyParam, party string, entries []Entry, now time.Time) (document, error) {
	party = strings.TrimSpace(party)
	if party == "" {
		return document{}, errs.NewValueIsRequiredError(partyParam)
	}
	if err := ValidateOrderIDs(orderIDsOf(entries)); err != nil {
		return document{}, err
	}
	return document{
		id:        id,
		party:     party,
		date:      now,
		entries:   slices.Clone(entries),
		createdAt: now,
	}, nil
}

// ValidateOrderIDs enforces the batch shape shared by every slip request:
// at least one id and no repeats.
func ValidateOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("order %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

func orderIDsOf(entries []Entry) []kernel.UUID {
	ids := make([]kernel.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.OrderID
	}
	return ids
}

// ID returns the prefixed ULID of the slip.
func (d *document) ID() string {
	return d.id
}

// Date is the business date printed on the slip.
func (d *document) Date() time.Time {
	return d.date
}

func (d *document) CreatedAt() time.Time {
	return d.createdAt
}

// ItemCount equals the number of listed orders.
func (d *document) ItemCount() int {
	return len(d.entries)
}

// OrderIDs returns the listed orders in slip order.
func (d *document) OrderIDs() []kernel.UUID {
	return orderIDsOf(d.entries)
}

// Entries returns a copy of the snapshots in slip order.
func (d *document) Entries() []Entry {
	return slices.Clone(d.entries)
}

// DriverSlip documents returned orders handed by a driver to the branch.
type DriverSlip struct {
	document
	isConstructed bool
}

// NewDriverSlip creates a slip for driverName listing entries in the given order.
func NewDriverSlip(driverName string, entries []Entry, now time.Time) (*DriverSlip, error) {
	doc, err := newDocument(driverSlipIDPrefix+ulid.Make().String(), "driverName", driverName, entries, now)
	if err != nil {
		return nil, err
	}
	return &DriverSlip{document: doc, isConstructed: true}, nil
}

// RestoreDriverSlip rebuilds a persisted slip.
func RestoreDriverSlip(id, driverName string, date time.Time, entries []Entry, createdAt time.Time) (*DriverSlip, error) {
	if !strings.HasPrefix(id, driverSlipIDPrefix) {
		return nil, errs.NewValueIsInvalidErrorWithCause("slipId", fmt.Errorf("%q is not a driver slip id", id))
	}
	doc, err := newDocument(id, "driverName", driverName, entries, createdAt)
	if err != nil {
		return nil, err
	}
	doc.date = date
	return &DriverSlip{document: doc, isConstructed: true}, nil
}

// Validate ensures the slip was created through a constructor.
func (s *DriverSlip) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrDriverSlipIsNotConstructed
	}
	return nil
}

// DriverName returns the driver who handed the orders in.
func (s *DriverSlip) DriverName() string {
	return s.party
}

// MerchantSlip documents branch-held returns batched for a merchant.
type MerchantSlip struct {
	document
	status        MerchantSlipStatus
	isConstructed bool
}

// NewMerchantSlip creates a slip for merchantName in ReadyForPickup status.
func NewMerchantSlip(merchantName string, entries []Entry, now time.Time) (*MerchantSlip, error) {
	doc, err := newDocument(merchantSlipIDPrefix+ulid.Make().String(), "merchantName", merchantName, entries, now)
	if err != nil {
		return nil, err
	}
	return &MerchantSlip{document: doc, status: ReadyForPickup, isConstructed: true}, nil
}

// RestoreMerchantSlip rebuilds a persisted slip.
func RestoreMerchantSlip(
	id, merchantName string,
	date time.Time,
	st MerchantSlipStatus,
	entries []Entry,
	createdAt time.Time,
) (*MerchantSlip, error) {
	if !strings.HasPrefix(id, merchantSlipIDPrefix) {
		return nil, errs.NewValueIsInvalidErrorWithCause("slipId", fmt.Errorf("%q is not a merchant slip id", id))
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	doc, err := newDocument(id, "merchantName", merchantName, entries, createdAt)
	if err != nil {
		return nil, err
	}
	doc.date = date
	return &MerchantSlip{document: doc, status: st, isConstructed: true}, nil
}

// Validate ensures the slip was created through a constructor.
func (s *MerchantSlip) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrMerchantSlipIsNotConstructed
	}
	return nil
}

// MerchantName returns the merchant the returns belong to.
func (s *MerchantSlip) MerchantName() string {
	return s.party
}

// Status returns the delivery status of the slip.
func (s *MerchantSlip) Status() MerchantSlipStatus {
	return s.status
}

// MarkDelivered records that the merchant received the returns. It reports
// whether anything changed, so a repeated call is a harmless no-op.
func (s *MerchantSlip) MarkDelivered() bool {
	if s.status == DeliveredToMerchant {
		return false
	}
	s.status = DeliveredToMerchant
	return true
}

// IsDriverSlipID reports whether id has the driver slip prefix.
func IsDriverSlipID(id string) bool {
	return strings.HasPrefix(id, driverSlipIDPrefix)
}

// IsMerchantSlipID reports whether id has the merchant slip prefix.
func IsMerchantSlipID(id string) bool {
	return strings.HasPrefix(id, merchantSlipIDPrefix)
}
