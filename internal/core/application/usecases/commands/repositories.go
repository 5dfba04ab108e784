// Package commands contains the operations that change order and slip state.
// Every command is built by its constructor, validated, and executed by a
// handler inside one unit of work. Domain events recorded during the command
// are published only after the unit of work commits.
package commands

import (
	"context"

	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SlipRepoFactory provides the slip repository within a transaction.
	SlipRepoFactory interface {
		SlipRepository() ports.SlipRepository
	}

	// EventCollector drains domain events after commit.
	EventCollector interface {
		PullEvents() []any
	}

	// OrderUoW manages transactions for order-only commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventCollector
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SlipUoW manages transactions that batch orders onto slips.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders, err := uow.OrderRepository().GetMany(ctx, ids)
	//   // ... validate, snapshot, transition
	//   err = uow.SlipRepository().AddDriverSlip(ctx, s)
	//
	//   err = uow.Commit(ctx)
	SlipUoW interface {
		TxManager
		OrderRepoFactory
		SlipRepoFactory
		EventCollector
	}

	// SlipUoWFactory creates slip unit of work instances.
	SlipUoWFactory interface {
		Create() SlipUoW
	}
)

// KeyLocker serialises writers per order or slip id within the process.
type KeyLocker interface {
	LockAll(ctx context.Context, keys []string) (unlock func(), err error)
}

// StatusResolver maps client input to catalog entries.
type StatusResolver interface {
	Resolve(codeOrName string) (status.Definition, error)
	Lookup(code status.Code) (status.Definition, bool)
}
