// Package postgres provides the GORM implementation of the Unit of Work
// pattern over the orders and slips tables.
//
// Every command handler follows the same shape:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	orders, err := uow.OrderRepository().GetMany(ctx, ids) // rows locked FOR UPDATE
//	...
//	if err := uow.SlipRepository().AddDriverSlip(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after Commit returns gorm.ErrInvalidTransaction, which the deferred
// call ignores. Queries may use the repositories without Begin; they then run
// on the base connection without row locks being held past the statement.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns at most one transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Order rows are locked by Get and GetMany, and open slip claims are
//     guarded by a partial unique index, so two slips can never claim the
//     same order at the same stage
package postgres

import (
	"context"

	"deliveryops/internal/adapters/out/postgres/orderrepo"
	"deliveryops/internal/adapters/out/postgres/sliprepo"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate ports.EventSource
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
//
// Example:
//
//	db, err := postgres.Open(cfg.DatabaseURL)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the order
// aggregates written through it so their events can be published after commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Tracked aggregates stay available to
// PullEvents.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
	}
	return err
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository provides order persistence within the unit of work.
// Repository operations run inside the current transaction if one is active,
// otherwise on the main database connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// SlipRepository provides slip persistence within the unit of work.
func (uow *GormUnitOfWork) SlipRepository() ports.SlipRepository {
	return sliprepo.NewGormSlipRepository(uow.conn())
}

// TrackAggregate registers an aggregate added or updated within this unit of
// work. Repeated registrations of the same id are ignored.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate ports.EventSource) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.ID.IsEqual(id) {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// PullEvents drains the events of every tracked aggregate.
func (uow *GormUnitOfWork) PullEvents() []any {
	var events []any
	for _, tracked := range uow.trackedAggregates {
		events = append(events, tracked.Aggregate.PullEvents()...)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
