package queries

import (
	"context"

	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/ports"
)

// GetOrdersQueryHandler lists orders by ascending order number.
type GetOrdersQueryHandler struct {
	readers  ReaderFactory
	statuses StatusCatalog
}

// NewGetOrdersQueryHandler creates the handler.
func NewGetOrdersQueryHandler(readers ReaderFactory, statuses StatusCatalog) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{readers: readers, statuses: statuses}
}

// Handle returns errs.ValueIsInvalidError for an unknown status filter.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := listOrders(ctx, h.readers, h.statuses, query)
	if err != nil {
		return nil, err
	}

	return newOrderResponses(orders, h.statuses), nil
}

func listOrders(ctx context.Context, readers ReaderFactory, catalog StatusCatalog, query GetOrdersQuery) ([]*order.Order, error) {
	filter := ports.OrderFilter{Driver: query.Driver(), Merchant: query.Merchant()}
	for _, s := range query.Statuses() {
		def, err := catalog.Resolve(s)
		if err != nil {
			return nil, err
		}
		filter.Statuses = append(filter.Statuses, def.Code)
	}

	return readers.Create().OrderRepository().List(ctx, filter)
}

