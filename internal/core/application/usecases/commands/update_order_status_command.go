package commands

import (
	"errors"
	"strings"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a status change. Status may be a code or a
// localized display name. Driver is optional; role, when set, is checked
// against the target's setter roles.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  string
	driver  string
	role    status.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the shape of the request. Whether the
// transition is allowed is decided by the handler.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, newStatus, driver string, role status.Role) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		driver: strings.TrimSpace(driver),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(newStatus),
		cmd.setRole(role),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status as the client sent it.
func (c UpdateOrderStatusCommand) Status() string {
	return c.status
}

func (c UpdateOrderStatusCommand) Driver() string {
	return c.driver
}

// Role returns "" when the caller did not identify itself.
func (c UpdateOrderStatusCommand) Role() status.Role {
	return c.role
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	c.status = s
	return nil
}

func (c *UpdateOrderStatusCommand) setRole(role status.Role) error {
	if role == "" {
		return nil
	}
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
