package inmemory

import (
	"context"
	"errors"

	"deliveryops/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a serialised transaction over the Store.
type UnitOfWork struct {
	store   *Store
	working *state
	tracked []ports.EventSource
}

// Begin locks the store and starts working on a copy of its state. Calling
// Begin twice is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.store.mu.Lock()
	uow.working = uow.store.state.clone()
	return nil
}

// Commit publishes the working copy.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}
	uow.store.state = uow.working
	uow.working = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards the working copy and every tracked aggregate.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}
	uow.working = nil
	uow.tracked = nil
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns an order repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

// SlipRepository returns a slip repository bound to this unit of work.
func (uow *UnitOfWork) SlipRepository() ports.SlipRepository {
	return &SlipRepository{uow: uow}
}

// PullEvents drains events from every tracked aggregate.
func (uow *UnitOfWork) PullEvents() []any {
	var events []any
	for _, src := range uow.tracked {
		events = append(events, src.PullEvents()...)
	}
	uow.tracked = nil
	return events
}

func (uow *UnitOfWork) track(src ports.EventSource) {
	for _, known := range uow.tracked {
		if known == src {
			return
		}
	}
	uow.tracked = append(uow.tracked, src)
}

// with runs fn on the transaction state, or directly on the store state under
// its lock when no transaction is active.
func (uow *UnitOfWork) with(fn func(s *state) error) error {
	if uow.working != nil {
		return fn(uow.working)
	}
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return fn(uow.store.state)
}
