package services

import (
	"deliveryops/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Billable is anything carrying order money fields: orders and slip entries.
type Billable interface {
	Amounts() order.Amounts
}

// Totals are the reconciled sums over a set of billable items. Values are
// exact; CompanyDue may be negative.
type Totals struct {
	ItemPrice      decimal.Decimal
	DeliveryFee    decimal.Decimal
	COD            decimal.Decimal
	DriverFee      decimal.Decimal
	AdditionalCost decimal.Decimal
	CompanyDue     decimal.Decimal
}

// ComputeTotals sums items:
//
//	ItemPrice      = Σ itemPrice
//	DeliveryFee    = Σ (deliveryFee + additionalCost)
//	DriverFee      = Σ (driverFee + driverAdditionalFare)
//	COD            = Σ cod
//	AdditionalCost = Σ additionalCost
//	CompanyDue     = COD - ItemPrice - DriverFee
//
// An empty input yields all zeros.
func ComputeTotals[T Billable](items []T) Totals {
	var t Totals
	for _, item := range items {
		a := item.Amounts()
		t.ItemPrice = t.ItemPrice.Add(a.ItemPrice.Decimal())
		t.DeliveryFee = t.DeliveryFee.Add(a.DeliveryFee.Decimal()).Add(a.AdditionalCost.Decimal())
		t.DriverFee = t.DriverFee.Add(a.DriverFee.Decimal()).Add(a.DriverAdditionalFare.Decimal())
		t.COD = t.COD.Add(a.COD.Decimal())
		t.AdditionalCost = t.AdditionalCost.Add(a.AdditionalCost.Decimal())
	}
	t.CompanyDue = t.COD.Sub(t.ItemPrice).Sub(t.DriverFee)
	return t
}

// Add combines totals of two disjoint sets.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		ItemPrice:      t.ItemPrice.Add(other.ItemPrice),
		DeliveryFee:    t.DeliveryFee.Add(other.DeliveryFee),
		COD:            t.COD.Add(other.COD),
		DriverFee:      t.DriverFee.Add(other.DriverFee),
		AdditionalCost: t.AdditionalCost.Add(other.AdditionalCost),
		CompanyDue:     t.CompanyDue.Add(other.CompanyDue),
	}
}

// Equal compares numerically.
func (t Totals) Equal(other Totals) bool {
	return t.ItemPrice.Equal(other.ItemPrice) &&
		t.DeliveryFee.Equal(other.DeliveryFee) &&
		t.COD.Equal(other.COD) &&
		t.DriverFee.Equal(other.DriverFee) &&
		t.AdditionalCost.Equal(other.AdditionalCost) &&
		t.CompanyDue.Equal(other.CompanyDue)
}

// DisplayTotals is Totals rounded to two decimals for presentation.
type DisplayTotals struct {
	ItemPrice      string `json:"itemPrice"`
	DeliveryFee    string `json:"deliveryFee"`
	COD            string `json:"cod"`
	DriverFee      string `json:"driverFee"`
	AdditionalCost string `json:"additionalCost"`
	CompanyDue     string `json:"companyDue"`
}

// Display rounds every figure to two decimal places.
func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		ItemPrice:      t.ItemPrice.StringFixed(2),
		DeliveryFee:    t.DeliveryFee.StringFixed(2),
		COD:            t.COD.StringFixed(2),
		DriverFee:      t.DriverFee.StringFixed(2),
		AdditionalCost: t.AdditionalCost.StringFixed(2),
		CompanyDue:     t.CompanyDue.StringFixed(2),
	}
}
