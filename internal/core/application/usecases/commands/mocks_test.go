package commands_test

import (
	"context"
	"testing"
	"time"

	"deliveryops/internal/adapters/out/inmemory"
	"deliveryops/internal/core/application/usecases/commands"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByDriver(ctx context.Context, driver string, statuses ...status.Code) ([]*order.Order, error) {
	args := m.Called(ctx, driver, statuses)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByMerchant(ctx context.Context, merchant string, statuses ...status.Code) ([]*order.Order, error) {
	args := m.Called(ctx, merchant, statuses)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) PullEvents() []any {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]any)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, name ports.EventName, payload any) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}

type noopLocker struct{}

func (noopLocker) LockAll(context.Context, []string) (func(), error) {
	return func() {}, nil
}

// memoryUoWFactory adapts the in-memory store to the handler factories.
type memoryUoWFactory struct {
	factory *inmemory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.SlipUoW {
	return f.factory.Create()
}

type memoryOrderUoWFactory struct {
	factory *inmemory.UnitOfWorkFactory
}

func (f memoryOrderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newPendingOrder(t *testing.T, number int64, merchant string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Details{
		Recipient: "R" + merchant,
		Phone:     "0790000000",
		City:      "Amman",
		Merchant:  merchant,
	}, order.Amounts{
		COD:       kerneltest.Amount("40"),
		ItemPrice: kerneltest.Amount("30"),
	}, testNow)
	require.NoError(t, err)
	o.PullEvents()
	return o
}

func newReturnedOrder(t *testing.T, number int64, merchant, driver string) *order.Order {
	t.Helper()
	o := newPendingOrder(t, number, merchant)
	require.NoError(t, o.ChangeStatus(status.OutForDelivery, driver, testNow))
	require.NoError(t, o.ChangeStatus(status.ReturnedByDriver, "", testNow))
	o.PullEvents()
	return o
}

type MockSlipUoW struct{ MockOrderUoW }

func (m *MockSlipUoW) SlipRepository() ports.SlipRepository {
	args := m.Called()
	return args.Get(0).(ports.SlipRepository)
}

type MockSlipUoWFactory struct{ mock.Mock }

func (m *MockSlipUoWFactory) Create() commands.SlipUoW {
	args := m.Called()
	return args.Get(0).(commands.SlipUoW)
}
