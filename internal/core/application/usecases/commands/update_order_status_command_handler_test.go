package commands_test

import (
	"errors"
	"testing"

	"deliveryops/internal/adapters/out/inmemory"
	"deliveryops/internal/core/application/usecases/commands"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func newStatusHandler(factory commands.OrderUoWFactory, publisher ports.EventPublisher, log *zap.Logger) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(factory, status.DefaultRegistry(), noopLocker{}, publisher, log)
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t, 1, "M1")
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), string(status.AwaitingDriver), "B", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	changed := order.StatusChanged{OrderID: o.ID(), Status: status.AwaitingDriver, PreviousStatus: status.Pending, DriverName: "B"}
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return([]any{changed}).Once(),
		publisher.On("Publish", ctx, ports.OrderStatusChanged, ports.OrderStatusChangedPayload{
			OrderID:        o.ID().String(),
			Status:         "awaiting_driver",
			PreviousStatus: "pending",
			DriverName:     "B",
		}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newStatusHandler(factory, publisher, zap.NewNop()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.AwaitingDriver, o.Status())
	assert.Equal(t, status.Pending, o.PreviousStatus())
	assert.Equal(t, "B", o.Driver())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, "delivered", "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newStatusHandler(factory, nil, zap.NewNop()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
		driver string
		role   status.Role
		reason string
	}{
		{name: "no-op", target: "pending", reason: services.ReasonStatusUnchanged},
		{name: "unknown status", target: "lost", reason: services.ReasonUnknownStatus},
		{name: "driver missing", target: "out_for_delivery", reason: services.ReasonDriverRequired},
		{name: "driver unassigned", target: "awaiting_driver", driver: order.UnassignedDriver, reason: services.ReasonDriverRequired},
		{name: "role not allowed", target: "cancelled", role: status.RoleDriver, reason: services.ReasonRoleNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newPendingOrder(t, 1, "M1")
			cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), tt.target, tt.driver, tt.role)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			err = newStatusHandler(factory, nil, zap.NewNop()).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			require.ErrorIs(t, err, services.ErrTransitionRejected)
			var rejected *services.TransitionRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tt.reason, rejected.Reason)
			assert.Equal(t, status.Pending, o.Status())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_DisplayName(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewStore()
	factory := memoryOrderUoWFactory{factory: inmemory.NewUnitOfWorkFactory(store)}
	o := newPendingOrder(t, 1, "M1")
	seedOrders(t, factory, o)

	// Given: the localized name of awaiting_driver and a driver
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "بانتظار السائق", "B", status.RoleDispatcher)
	require.NoError(t, err)

	// When
	err = newStatusHandler(factory, nil, zap.NewNop()).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, status.AwaitingDriver, got.Status())
	assert.Equal(t, status.Pending, got.PreviousStatus())
	assert.Equal(t, "B", got.Driver())
}

func TestUpdateOrderStatusCommandHandler_Handle_KeepsDriverWhenOmitted(t *testing.T) {
	ctx := t.Context()
	factory := memoryOrderUoWFactory{factory: inmemory.NewUnitOfWorkFactory(inmemory.NewStore())}
	o := newPendingOrder(t, 1, "M1")
	require.NoError(t, o.ChangeStatus(status.OutForDelivery, "B", testNow))
	seedOrders(t, factory, o)
	h := newStatusHandler(factory, nil, zap.NewNop())

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "delivered", "", status.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, status.Delivered, got.Status())
	assert.Equal(t, status.OutForDelivery, got.PreviousStatus())
	assert.Equal(t, "B", got.Driver())
}

func TestUpdateOrderStatusCommandHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	factory := memoryOrderUoWFactory{factory: inmemory.NewUnitOfWorkFactory(inmemory.NewStore())}
	o := newPendingOrder(t, 1, "M1")
	seedOrders(t, factory, o)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.OrderStatusChanged, mock.Anything).
		Return(errors.New("bus down")).Once()
	core, logs := observer.New(zapcore.WarnLevel)

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "postponed", "", "")
	require.NoError(t, err)

	err = newStatusHandler(factory, publisher, zap.New(core)).Handle(ctx, cmd)

	require.NoError(t, err)
	got, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, status.Postponed, got.Status())
	publisher.AssertExpectations(t)
	entries := logs.FilterMessage("event publish failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "order_status_changed", entries[0].ContextMap()["event"])
}

func TestUpdateOrderStatusCommandHandler_Handle_SerialisesWriters(t *testing.T) {
	ctx := t.Context()
	factory := memoryOrderUoWFactory{factory: inmemory.NewUnitOfWorkFactory(inmemory.NewStore())}
	o := newPendingOrder(t, 1, "M1")
	seedOrders(t, factory, o)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, status.DefaultRegistry(), keylock.New(), nil, zap.NewNop())

	// Two clients race to the same target: exactly one wins, the other is a no-op rejection.
	results := make(chan error, 2)
	for range 2 {
		go func() {
			cmd, _ := commands.NewUpdateOrderStatusCommand(o.ID(), "postponed", "", "")
			results <- h.Handle(ctx, cmd)
		}()
	}

	var failures int
	for range 2 {
		if err := <-results; err != nil {
			failures++
			assert.ErrorIs(t, err, services.ErrTransitionRejected)
		}
	}
	assert.Equal(t, 1, failures)
}

func seedOrders(t *testing.T, factory commands.OrderUoWFactory, orders ...*order.Order) {
	t.Helper()
	ctx := t.Context()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.Commit(ctx))
	uow.PullEvents()
}
