package queries

import (
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"
)

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID                 kernel.UUID
	Number             int64
	Details            order.Details
	Amounts            order.Amounts
	Status             status.Code
	StatusName         string
	PreviousStatus     status.Code
	PreviousStatusName string
	Driver             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newOrderResponse(o *order.Order, names StatusCatalog) OrderResponse {
	r := OrderResponse{
		ID:             o.ID(),
		Number:         o.Number(),
		Details:        o.Details(),
		Amounts:        o.Amounts(),
		Status:         o.Status(),
		StatusName:     names.DisplayName(o.Status()),
		PreviousStatus: o.PreviousStatus(),
		Driver:         o.Driver(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
	if r.PreviousStatus != "" {
		r.PreviousStatusName = names.DisplayName(r.PreviousStatus)
	}
	return r
}

func newOrderResponses(orders []*order.Order, names StatusCatalog) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o, names))
	}
	return out
}

// DriverSlipResponse is a driver slip with its totals.
type DriverSlipResponse struct {
	ID         string
	DriverName string
	Date       time.Time
	ItemCount  int
	Entries    []slip.Entry
	Totals     services.Totals
	CreatedAt  time.Time
}

func newDriverSlipResponse(s *slip.DriverSlip) DriverSlipResponse {
	entries := s.Entries()
	return DriverSlipResponse{
		ID:         s.ID(),
		DriverName: s.DriverName(),
		Date:       s.Date(),
		ItemCount:  s.ItemCount(),
		Entries:    entries,
		Totals:     services.ComputeTotals(entries),
		CreatedAt:  s.CreatedAt(),
	}
}

// MerchantSlipResponse is a merchant slip with its totals.
type MerchantSlipResponse struct {
	ID           string
	MerchantName string
	Date         time.Time
	Status       slip.MerchantSlipStatus
	ItemCount    int
	Entries      []slip.Entry
	Totals       services.Totals
	CreatedAt    time.Time
}

func newMerchantSlipResponse(s *slip.MerchantSlip) MerchantSlipResponse {
	entries := s.Entries()
	return MerchantSlipResponse{
		ID:           s.ID(),
		MerchantName: s.MerchantName(),
		Date:         s.Date(),
		Status:       s.Status(),
		ItemCount:    s.ItemCount(),
		Entries:      entries,
		Totals:       services.ComputeTotals(entries),
		CreatedAt:    s.CreatedAt(),
	}
}
