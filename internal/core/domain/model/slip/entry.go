package slip

import (
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
)

// Stage identifies which hand-off a slip or claim belongs to.
type Stage string

const (
	StageDriver   Stage = "driver"
	StageMerchant Stage = "merchant"
)

// Entry is the frozen, printable view of an order at the moment it was put on a slip.
type Entry struct {
	OrderID        kernel.UUID
	OrderNumber    int64
	Recipient      string
	Phone          string
	City           string
	Address        string
	PreviousStatus status.Code
	Money          order.Amounts
}

// EntryFromOrder snapshots o. Call it before the order transitions so the
// entry carries the status history that explains the return.
func EntryFromOrder(o *order.Order) Entry {
	d := o.Details()
	return Entry{
		OrderID:        o.ID(),
		OrderNumber:    o.Number(),
		Recipient:      d.Recipient,
		Phone:          d.Phone,
		City:           d.City,
		Address:        d.Address,
		PreviousStatus: o.PreviousStatus(),
		Money:          o.Amounts(),
	}
}

// Amounts lets entries be totalled like orders.
func (e Entry) Amounts() order.Amounts {
	return e.Money
}
