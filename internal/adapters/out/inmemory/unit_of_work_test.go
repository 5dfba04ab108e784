package inmemory_test

import (
	"testing"
	"time"

	"deliveryops/internal/adapters/out/inmemory"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, number int64, merchant string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Details{
		Recipient: "R",
		Merchant:  merchant,
	}, order.Amounts{ItemPrice: kerneltest.Amount("10")}, now)
	require.NoError(t, err)
	return o
}

func returned(t *testing.T, o *order.Order, driver string) *order.Order {
	t.Helper()
	require.NoError(t, o.ChangeStatus(status.OutForDelivery, driver, now))
	require.NoError(t, o.ChangeStatus(status.ReturnedByDriver, "", now))
	return o
}

func seed(t *testing.T, factory ports.UnitOfWorkFactory, orders ...*order.Order) {
	t.Helper()
	ctx := t.Context()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_Commit(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	o := newOrder(t, 1, "M1")

	// Given: an order added inside a transaction
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	// When
	require.NoError(t, uow.Commit(ctx))

	// Then
	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.Snapshot(), got.Snapshot())

	events := uow.PullEvents()
	require.Len(t, events, 1)
	assert.IsType(t, order.Created{}, events[0])
	assert.Empty(t, uow.PullEvents())
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	n, err := uow.OrderRepository().NextOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	o := newOrder(t, n, "M1")
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().OrderRepository().Get(ctx, o.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, uow.PullEvents())

	n, err = factory.Create().OrderRepository().NextOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUnitOfWork_WithoutBegin(t *testing.T) {
	ctx := t.Context()
	uow := inmemory.NewUnitOfWorkFactory(inmemory.NewStore()).Create()

	assert.ErrorIs(t, uow.Commit(ctx), inmemory.ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), inmemory.ErrNoTransaction)
}

func TestUnitOfWork_RollbackAfterCommitIsHarmless(t *testing.T) {
	ctx := t.Context()
	uow := inmemory.NewUnitOfWorkFactory(inmemory.NewStore()).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))

	assert.ErrorIs(t, uow.Rollback(ctx), inmemory.ErrNoTransaction)

	// the store lock is free again
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit(ctx))
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	o1 := newOrder(t, 1, "M1")
	o2 := returned(t, newOrder(t, 2, "M2"), "B")
	o3 := returned(t, newOrder(t, 3, "M1"), "B")
	seed(t, factory, o3, o1, o2)
	repo := factory.Create().OrderRepository()

	t.Run("should reject duplicate add", func(t *testing.T) {
		err := repo.Add(ctx, o1)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail update of unknown order", func(t *testing.T) {
		err := repo.Update(ctx, newOrder(t, 9, "M1"))
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep request order in GetMany", func(t *testing.T) {
		got, err := repo.GetMany(ctx, []kernel.UUID{o3.ID(), o1.ID()})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].ID().IsEqual(o3.ID()))
		assert.True(t, got[1].ID().IsEqual(o1.ID()))
	})

	t.Run("should fail GetMany on an unknown id", func(t *testing.T) {
		_, err := repo.GetMany(ctx, []kernel.UUID{o1.ID(), kernel.NewUUID()})
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list by driver and status", func(t *testing.T) {
		got, err := repo.ListByDriver(ctx, "B", status.ReturnedByDriver)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].Number())
		assert.Equal(t, int64(3), got[1].Number())
	})

	t.Run("should list by merchant", func(t *testing.T) {
		got, err := repo.ListByMerchant(ctx, "M1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].Number())
	})

	t.Run("should list everything with an empty filter", func(t *testing.T) {
		got, err := repo.List(ctx, ports.OrderFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("should return a detached aggregate", func(t *testing.T) {
		got, err := repo.Get(ctx, o1.ID())
		require.NoError(t, err)
		require.NoError(t, got.ChangeStatus(status.Postponed, "", now))

		again, err := repo.Get(ctx, o1.ID())
		require.NoError(t, err)
		assert.Equal(t, status.Pending, again.Status())
	})
}

func TestSlipRepository_Claims(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	o1 := returned(t, newOrder(t, 1, "M1"), "B")
	o2 := returned(t, newOrder(t, 2, "M1"), "B")
	seed(t, factory, o1, o2)
	repo := factory.Create().SlipRepository()

	first, err := slip.NewDriverSlip("B", []slip.Entry{slip.EntryFromOrder(o1)}, now)
	require.NoError(t, err)
	require.NoError(t, repo.AddDriverSlip(ctx, first))

	t.Run("should report the open claim", func(t *testing.T) {
		claims, err := repo.ActiveClaims(ctx, slip.StageDriver, []kernel.UUID{o1.ID(), o2.ID()})
		require.NoError(t, err)
		assert.Equal(t, map[kernel.UUID]string{o1.ID(): first.ID()}, claims)

		merchantClaims, err := repo.ActiveClaims(ctx, slip.StageMerchant, nil)
		require.NoError(t, err)
		assert.Empty(t, merchantClaims)
	})

	t.Run("should refuse a second claim at the same stage", func(t *testing.T) {
		second, err := slip.NewDriverSlip("B", []slip.Entry{slip.EntryFromOrder(o2), slip.EntryFromOrder(o1)}, now)
		require.NoError(t, err)

		err = repo.AddDriverSlip(ctx, second)

		assert.ErrorIs(t, err, errs.ErrConflict)
		_, err = repo.GetDriverSlip(ctx, second.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		claims, _ := repo.ActiveClaims(ctx, slip.StageDriver, []kernel.UUID{o2.ID()})
		assert.Empty(t, claims)
	})

	t.Run("should allow a new claim after release", func(t *testing.T) {
		require.NoError(t, repo.ReleaseClaims(ctx, slip.StageDriver, []kernel.UUID{o1.ID()}))

		again, err := slip.NewDriverSlip("B", []slip.Entry{slip.EntryFromOrder(o1)}, now)
		require.NoError(t, err)
		assert.NoError(t, repo.AddDriverSlip(ctx, again))
	})
}

func TestSlipRepository_MerchantSlips(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	o1 := returned(t, newOrder(t, 1, "M1"), "B")
	o2 := returned(t, newOrder(t, 2, "M2"), "B")
	seed(t, factory, o1, o2)
	repo := factory.Create().SlipRepository()

	older, err := slip.NewMerchantSlip("M1", []slip.Entry{slip.EntryFromOrder(o1)}, now)
	require.NoError(t, err)
	newer, err := slip.NewMerchantSlip("M2", []slip.Entry{slip.EntryFromOrder(o2)}, now.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.AddMerchantSlip(ctx, older))
	require.NoError(t, repo.AddMerchantSlip(ctx, newer))

	t.Run("should list newest first", func(t *testing.T) {
		all, err := repo.ListMerchantSlips(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, newer.ID(), all[0].ID())
		assert.Equal(t, older.ID(), all[1].ID())
	})

	t.Run("should filter by merchant", func(t *testing.T) {
		m1, err := repo.ListMerchantSlips(ctx, "M1")
		require.NoError(t, err)
		require.Len(t, m1, 1)
		assert.Equal(t, "M1", m1[0].MerchantName())
	})

	t.Run("should persist delivery", func(t *testing.T) {
		s, err := repo.GetMerchantSlip(ctx, older.ID())
		require.NoError(t, err)
		require.True(t, s.MarkDelivered())
		require.NoError(t, repo.UpdateMerchantSlip(ctx, s))

		got, err := repo.GetMerchantSlip(ctx, older.ID())
		require.NoError(t, err)
		assert.Equal(t, slip.DeliveredToMerchant, got.Status())
		assert.Equal(t, 1, got.ItemCount())
	})

	t.Run("should report unknown slip", func(t *testing.T) {
		_, err := repo.GetMerchantSlip(ctx, "msl_missing")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
