package status

import (
	"fmt"

	"deliveryops/internal/pkg/errs"
)

// Code is the stable identifier of an order status.
type Code string

const (
	Pending            Code = "pending"
	AwaitingDriver     Code = "awaiting_driver"
	OutForDelivery     Code = "out_for_delivery"
	Delivered          Code = "delivered"
	PartiallyDelivered Code = "partially_delivered"
	Postponed          Code = "postponed"
	ReturnedByDriver   Code = "returned_by_driver"
	ReturnedToBranch   Code = "returned_to_branch"
	ReturnedToMerchant Code = "returned_to_merchant"
	Cancelled          Code = "cancelled"
)

// Codes lists every known code in catalog order.
func Codes() []Code {
	return []Code{
		Pending,
		AwaitingDriver,
		OutForDelivery,
		Delivered,
		PartiallyDelivered,
		Postponed,
		ReturnedByDriver,
		ReturnedToBranch,
		ReturnedToMerchant,
		Cancelled,
	}
}

// IsKnown reports whether c belongs to the closed set.
func (c Code) IsKnown() bool {
	for _, known := range Codes() {
		if c == known {
			return true
		}
	}
	return false
}

// Validate rejects codes outside the closed set.
func (c Code) Validate() error {
	if !c.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status code", string(c)))
	}
	return nil
}

func (c Code) String() string {
	return string(c)
}

// Role is the kind of actor changing an order's status.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleDriver     Role = "driver"
)

// Validate rejects unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDispatcher, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}
