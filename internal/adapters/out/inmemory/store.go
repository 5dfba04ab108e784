// Package inmemory implements the persistence ports on process memory. It
// backs tests and single-instance development runs.
//
// A unit of work takes the store lock at Begin and works on a private copy of
// the state; Commit swaps the copy in, Rollback drops it. Transactions are
// therefore fully serialised, which also stands in for row locks.
package inmemory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
)

type slipRow struct {
	id        string
	party     string
	date      time.Time
	status    slip.MerchantSlipStatus
	entries   []slip.Entry
	createdAt time.Time
}

type claimRow struct {
	orderID    kernel.UUID
	stage      slip.Stage
	slipID     string
	releasedAt *time.Time
}

type state struct {
	orders        map[kernel.UUID]order.Snapshot
	driverSlips   map[string]slipRow
	merchantSlips map[string]slipRow
	claims        []claimRow
	orderSeq      int64
}

func newState() *state {
	return &state{
		orders:        make(map[kernel.UUID]order.Snapshot),
		driverSlips:   make(map[string]slipRow),
		merchantSlips: make(map[string]slipRow),
	}
}

// clone copies the containers. Rows are values and slices inside them are
// never mutated in place, so they can be shared.
func (s *state) clone() *state {
	return &state{
		orders:        maps.Clone(s.orders),
		driverSlips:   maps.Clone(s.driverSlips),
		merchantSlips: maps.Clone(s.merchantSlips),
		claims:        slices.Clone(s.claims),
		orderSeq:      s.orderSeq,
	}
}

// Store is the shared in-memory database.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: newState(), now: time.Now}
}
