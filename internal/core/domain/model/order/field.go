package order

import (
	"fmt"
	"strings"
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/pkg/errs"
)

// DateLayout is the wire and storage format of an order's date.
const DateLayout = "2006-01-02"

// Field names an order attribute that may be edited directly, outside the
// status workflow.
type Field string

const (
	FieldRecipient            Field = "recipient"
	FieldPhone                Field = "phone"
	FieldAddress              Field = "address"
	FieldCity                 Field = "city"
	FieldRegion               Field = "region"
	FieldNotes                Field = "notes"
	FieldMerchant             Field = "merchant"
	FieldDate                 Field = "date"
	FieldCOD                  Field = "cod"
	FieldItemPrice            Field = "itemPrice"
	FieldDeliveryFee          Field = "deliveryFee"
	FieldAdditionalCost       Field = "additionalCost"
	FieldDriverFee            Field = "driverFee"
	FieldDriverAdditionalFare Field = "driverAdditionalFare"
)

// EditableFields lists every field accepted by UpdateField.
func EditableFields() []Field {
	return []Field{
		FieldRecipient, FieldPhone, FieldAddress, FieldCity, FieldRegion, FieldNotes, FieldMerchant, FieldDate,
		FieldCOD, FieldItemPrice, FieldDeliveryFee, FieldAdditionalCost, FieldDriverFee, FieldDriverAdditionalFare,
	}
}

// ParseField maps a client-supplied field name to a Field. Status, previous
// status and driver are deliberately absent: they change only through
// status transitions.
func ParseField(name string) (Field, error) {
	for _, f := range EditableFields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not an editable field", name))
}

// IsMoney reports whether the field holds an amount.
func (f Field) IsMoney() bool {
	switch f {
	case FieldCOD, FieldItemPrice, FieldDeliveryFee, FieldAdditionalCost, FieldDriverFee, FieldDriverAdditionalFare:
		return true
	default:
		return false
	}
}

// IsText reports whether the field holds free text.
func (f Field) IsText() bool {
	return !f.IsMoney() && f != FieldDate
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(string(FieldDate), fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return s, nil
}

func (o *Order) amountRef(f Field) *kernel.Amount {
	switch f {
	case FieldCOD:
		return &o.amounts.COD
	case FieldItemPrice:
		return &o.amounts.ItemPrice
	case FieldDeliveryFee:
		return &o.amounts.DeliveryFee
	case FieldAdditionalCost:
		return &o.amounts.AdditionalCost
	case FieldDriverFee:
		return &o.amounts.DriverFee
	case FieldDriverAdditionalFare:
		return &o.amounts.DriverAdditionalFare
	default:
		return nil
	}
}

func (o *Order) textRef(f Field) *string {
	switch f {
	case FieldRecipient:
		return &o.details.Recipient
	case FieldPhone:
		return &o.details.Phone
	case FieldAddress:
		return &o.details.Address
	case FieldCity:
		return &o.details.City
	case FieldRegion:
		return &o.details.Region
	case FieldNotes:
		return &o.details.Notes
	case FieldMerchant:
		return &o.details.Merchant
	case FieldDate:
		return &o.details.Date
	default:
		return nil
	}
}
