package commands

import (
	"errors"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/pkg/guard"
)

var ErrUpdateOrderFieldCommandIsNotConstructed = errors.New(
	"UpdateOrderFieldCommand must be created via NewUpdateOrderFieldCommand constructor",
)

// UpdateOrderFieldCommand edits one order attribute outside the status
// workflow. Text values are stripped of markup here; money and date values
// are parsed by the aggregate.
type UpdateOrderFieldCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	field   order.Field
	value   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderFieldCommand rejects unknown or protected field names.
func NewUpdateOrderFieldCommand(orderID kernel.UUID, field, value string) (UpdateOrderFieldCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderFieldCommand{}, err
	}

	f, err := order.ParseField(field)
	if err != nil {
		return UpdateOrderFieldCommand{}, err
	}

	if f.IsText() {
		value = sanitizeText(value)
	}

	return UpdateOrderFieldCommand{
		orderID: orderID,
		field:   f,
		value:   value,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderFieldCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderFieldCommandIsNotConstructed)
}

func (c UpdateOrderFieldCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderFieldCommand) Field() order.Field {
	return c.field
}

func (c UpdateOrderFieldCommand) Value() string {
	return c.value
}
