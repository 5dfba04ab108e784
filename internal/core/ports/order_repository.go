// Package ports declares the contracts between the order lifecycle core and
// its adapters: persistence (repositories and unit of work), event
// publication and document rendering.
package ports

import (
	"context"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
)

// OrderFilter narrows order listings. Zero fields do not filter.
type OrderFilter struct {
	Driver   string
	Merchant string
	Statuses []status.Code
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Inside a transaction the row stays locked
	// until commit or rollback. Unknown ids yield errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves and locks every listed order, returned in the order of
	// ids. The first unknown id (in request order) yields errs.ObjectNotFoundError.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// ListByDriver returns the driver's orders, optionally restricted to statuses.
	// An empty driver matches every order.
	ListByDriver(ctx context.Context, driver string, statuses ...status.Code) ([]*order.Order, error)

	// ListByMerchant returns the merchant's orders, optionally restricted to statuses.
	// An empty merchant matches every order.
	ListByMerchant(ctx context.Context, merchant string, statuses ...status.Code) ([]*order.Order, error)

	// List returns orders matching filter, by ascending order number.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// NextOrderNumber reserves the next value of the order number sequence.
	NextOrderNumber(ctx context.Context) (int64, error)
}
