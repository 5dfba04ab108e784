package http

import (
	"errors"
	"strings"

	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"
	"deliveryops/internal/generated/servers"
)

func fromNewOrder(body servers.NewOrder) order.Details {
	return order.Details{
		Recipient: value(body.Recipient),
		Phone:     value(body.Phone),
		Address:   value(body.Address),
		City:      value(body.City),
		Region:    value(body.Region),
		Merchant:  value(body.Merchant),
		Notes:     value(body.Notes),
		Date:      value(body.Date),
	}
}

// fromAmounts parses the money fields of a request. Missing or blank values
// are zero.
func fromAmounts(a *servers.Amounts) (order.Amounts, error) {
	var out order.Amounts
	if a == nil {
		return out, nil
	}

	parse := func(param string, raw *string, dst *kernel.Amount) error {
		if strings.TrimSpace(value(raw)) == "" {
			return nil
		}
		amount, err := kernel.ParseAmount(param, *raw)
		if err != nil {
			return err
		}
		*dst = amount
		return nil
	}

	err := errors.Join(
		parse("cod", a.Cod, &out.COD),
		parse("itemPrice", a.ItemPrice, &out.ItemPrice),
		parse("deliveryFee", a.DeliveryFee, &out.DeliveryFee),
		parse("additionalCost", a.AdditionalCost, &out.AdditionalCost),
		parse("driverFee", a.DriverFee, &out.DriverFee),
		parse("driverAdditionalFare", a.DriverAdditionalFare, &out.DriverAdditionalFare),
	)
	return out, err
}

func toAmounts(a order.Amounts) servers.Amounts {
	return servers.Amounts{
		Cod:                  ptr(a.COD.String()),
		ItemPrice:            ptr(a.ItemPrice.String()),
		DeliveryFee:          ptr(a.DeliveryFee.String()),
		AdditionalCost:       ptr(a.AdditionalCost.String()),
		DriverFee:            ptr(a.DriverFee.String()),
		DriverAdditionalFare: ptr(a.DriverAdditionalFare.String()),
	}
}

func toTotals(t services.Totals) servers.Totals {
	d := t.Display()
	return servers.Totals{
		ItemPrice:      d.ItemPrice,
		DeliveryFee:    d.DeliveryFee,
		Cod:            d.COD,
		DriverFee:      d.DriverFee,
		AdditionalCost: d.AdditionalCost,
		CompanyDue:     d.CompanyDue,
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:                 o.ID.Google(),
		Number:             o.Number,
		Recipient:          o.Details.Recipient,
		Phone:              optional(o.Details.Phone),
		Address:            optional(o.Details.Address),
		City:               optional(o.Details.City),
		Region:             optional(o.Details.Region),
		Merchant:           optional(o.Details.Merchant),
		Notes:              optional(o.Details.Notes),
		Date:               optional(o.Details.Date),
		Status:             string(o.Status),
		StatusName:         o.StatusName,
		PreviousStatus:     optional(string(o.PreviousStatus)),
		PreviousStatusName: optional(o.PreviousStatusName),
		Driver:             optional(o.Driver),
		Amounts:            toAmounts(o.Amounts),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toOrders(orders []queries.OrderResponse) []servers.Order {
	out := make([]servers.Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toSlipEntries(entries []slip.Entry) []servers.SlipEntry {
	out := make([]servers.SlipEntry, len(entries))
	for i, e := range entries {
		out[i] = servers.SlipEntry{
			OrderId:        e.OrderID.Google(),
			OrderNumber:    e.OrderNumber,
			Recipient:      e.Recipient,
			Phone:          optional(e.Phone),
			City:           optional(e.City),
			Address:        optional(e.Address),
			PreviousStatus: optional(string(e.PreviousStatus)),
			Amounts:        toAmounts(e.Money),
		}
	}
	return out
}

func toDriverSlip(s queries.DriverSlipResponse) servers.DriverSlip {
	return servers.DriverSlip{
		Id:         s.ID,
		DriverName: s.DriverName,
		Date:       s.Date,
		ItemCount:  s.ItemCount,
		Entries:    toSlipEntries(s.Entries),
		Totals:     toTotals(s.Totals),
		CreatedAt:  s.CreatedAt,
	}
}

func toMerchantSlip(s queries.MerchantSlipResponse) servers.MerchantSlip {
	return servers.MerchantSlip{
		Id:           s.ID,
		MerchantName: s.MerchantName,
		Date:         s.Date,
		Status:       servers.MerchantSlipStatus(s.Status.String()),
		ItemCount:    s.ItemCount,
		Entries:      toSlipEntries(s.Entries),
		Totals:       toTotals(s.Totals),
		CreatedAt:    s.CreatedAt,
	}
}

func toStatusDefinition(d status.Definition) servers.StatusDefinition {
	roles := make([]servers.Role, len(d.AllowedSetterRoles))
	for i, r := range d.AllowedSetterRoles {
		roles[i] = servers.Role(r)
	}
	return servers.StatusDefinition{
		Code:                  string(d.Code),
		DisplayName:           d.DisplayName,
		Icon:                  optional(d.Icon),
		Color:                 optional(d.Color),
		Active:                d.IsActive,
		RequiresDriverOnEntry: d.RequiresDriverOnEntry,
		SetterRoles:           roles,
	}
}

func ptr(s string) *string {
	return &s
}

// optional drops empty strings from responses.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func values(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}
