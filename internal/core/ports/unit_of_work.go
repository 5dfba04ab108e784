package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary spanning orders and slips.
// Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// SlipRepository returns a SlipRepository bound to the current transaction.
	SlipRepository() SlipRepository

	// PullEvents drains the domain events recorded by every aggregate added or
	// updated through this unit of work. Call it after a successful Commit.
	PullEvents() []any
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	PullEvents() []any
}
