package queries

import (
	"context"

	"deliveryops/internal/core/domain/services"
)

// GetOrderTotalsQuery reuses the GetOrdersQuery filters.
type GetOrderTotalsQuery = GetOrdersQuery

// NewGetOrderTotalsQuery builds the filter for a totals computation.
func NewGetOrderTotalsQuery(driver, merchant string, statuses []string) GetOrderTotalsQuery {
	return NewGetOrdersQuery(driver, merchant, statuses)
}

// OrderTotalsResponse summarises the money of a filtered order set.
type OrderTotalsResponse struct {
	Count  int
	Totals services.Totals
}

// GetOrderTotalsQueryHandler computes totals over the same order set
// GetOrdersQueryHandler would list.
type GetOrderTotalsQueryHandler struct {
	readers  ReaderFactory
	statuses StatusCatalog
}

// NewGetOrderTotalsQueryHandler creates the handler.
func NewGetOrderTotalsQueryHandler(readers ReaderFactory, statuses StatusCatalog) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{readers: readers, statuses: statuses}
}

func (h GetOrderTotalsQueryHandler) Handle(ctx context.Context, query GetOrderTotalsQuery) (OrderTotalsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderTotalsResponse{}, err
	}

	orders, err := listOrders(ctx, h.readers, h.statuses, query)
	if err != nil {
		return OrderTotalsResponse{}, err
	}

	return OrderTotalsResponse{
		Count:  len(orders),
		Totals: services.ComputeTotals(orders),
	}, nil
}
