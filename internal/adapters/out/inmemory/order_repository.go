package inmemory

import (
	"context"
	"slices"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stores a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.with(func(s *state) error {
		if _, exists := s.orders[aggregate.ID()]; exists {
			return errs.NewConflictError("order", aggregate.ID().String(), "already exists")
		}
		s.orders[aggregate.ID()] = aggregate.Snapshot()
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(aggregate)
	return nil
}

// Update replaces a stored order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.with(func(s *state) error {
		if _, exists := s.orders[aggregate.ID()]; !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		s.orders[aggregate.ID()] = aggregate.Snapshot()
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(aggregate)
	return nil
}

// Get returns a fresh aggregate for id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var snap order.Snapshot
	err := r.uow.with(func(s *state) error {
		var ok bool
		if snap, ok = s.orders[id]; !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(snap)
}

// GetMany returns the orders in the order of ids.
func (r *OrderRepository) GetMany(_ context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	snaps := make([]order.Snapshot, 0, len(ids))
	err := r.uow.with(func(s *state) error {
		for _, id := range ids {
			snap, ok := s.orders[id]
			if !ok {
				return errs.NewObjectNotFoundError("order", id.String())
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restoreAll(snaps)
}

// ListByDriver returns the driver's orders.
func (r *OrderRepository) ListByDriver(ctx context.Context, driver string, statuses ...status.Code) ([]*order.Order, error) {
	return r.List(ctx, ports.OrderFilter{Driver: driver, Statuses: statuses})
}

// ListByMerchant returns the merchant's orders.
func (r *OrderRepository) ListByMerchant(ctx context.Context, merchant string, statuses ...status.Code) ([]*order.Order, error) {
	return r.List(ctx, ports.OrderFilter{Merchant: merchant, Statuses: statuses})
}

// List returns the orders matching filter by ascending number.
func (r *OrderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	var snaps []order.Snapshot
	_ = r.uow.with(func(s *state) error {
		for _, snap := range s.orders {
			if matches(snap, filter) {
				snaps = append(snaps, snap)
			}
		}
		return nil
	})
	slices.SortFunc(snaps, func(a, b order.Snapshot) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	})
	return restoreAll(snaps)
}

// NextOrderNumber increments the order sequence.
func (r *OrderRepository) NextOrderNumber(_ context.Context) (int64, error) {
	var next int64
	_ = r.uow.with(func(s *state) error {
		s.orderSeq++
		next = s.orderSeq
		return nil
	})
	return next, nil
}

func matches(snap order.Snapshot, f ports.OrderFilter) bool {
	if f.Driver != "" && snap.Driver != f.Driver {
		return false
	}
	if f.Merchant != "" && snap.Details.Merchant != f.Merchant {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, snap.Status) {
		return false
	}
	return true
}

func restoreAll(snaps []order.Snapshot) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
