package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deliveryops/internal/adapters/out/inmemory"
	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/jobs"
	"deliveryops/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type readerFactory struct{ uows *inmemory.UnitOfWorkFactory }

func (f readerFactory) Create() queries.Reader { return f.uows.Create() }

// MockUnclaimedReturnsLister is a mock implementation of UnclaimedReturnsLister.
type MockUnclaimedReturnsLister struct {
	mock.Mock
}

func (m *MockUnclaimedReturnsLister) Handle(ctx context.Context, query queries.GetUnclaimedReturnsQuery) (queries.UnclaimedReturnsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.UnclaimedReturnsResponse), args.Error(1)
}

func seedReturned(t *testing.T, uows *inmemory.UnitOfWorkFactory, number int64, path ...status.Code) {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Details{Recipient: "R", Merchant: "M1"},
		order.Amounts{COD: kerneltest.Amount("12.5")}, time.Now())
	require.NoError(t, err)
	for _, s := range path {
		require.NoError(t, o.ChangeStatus(s, "B", time.Now()))
	}
	require.NoError(t, uows.Create().OrderRepository().Add(t.Context(), o))
}

func TestReturnsBacklogJob_Run(t *testing.T) {
	uows := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	seedReturned(t, uows, 1, status.OutForDelivery, status.ReturnedByDriver)
	seedReturned(t, uows, 2, status.OutForDelivery, status.ReturnedByDriver)
	seedReturned(t, uows, 3, status.OutForDelivery)

	core, logs := observer.New(zap.InfoLevel)
	handler := queries.NewGetUnclaimedReturnsQueryHandler(readerFactory{uows: uows}, status.DefaultRegistry())
	job := jobs.NewReturnsBacklogJob(handler, "", zap.New(core))

	job.Run(t.Context())

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.UnclaimedReturns.WithLabelValues("driver")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.UnclaimedReturns.WithLabelValues("merchant")), 0)

	entries := logs.FilterMessage("Unclaimed returns").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "driver", fields["stage"])
	assert.Equal(t, int64(2), fields["orders"])
	assert.Equal(t, "25.00", fields["cod"])
	assert.Equal(t, "returns_backlog_job", fields["component"])
}

func TestReturnsBacklogJob_Run_FailureKeepsGauge(t *testing.T) {
	metrics.UnclaimedReturns.WithLabelValues("merchant").Set(7)

	lister := new(MockUnclaimedReturnsLister)
	lister.On("Handle", mock.Anything, mock.Anything).
		Return(queries.UnclaimedReturnsResponse{}, errors.New("database is down"))

	core, logs := observer.New(zap.InfoLevel)
	job := jobs.NewReturnsBacklogJob(lister, "", zap.New(core))

	job.Run(t.Context())

	assert.InDelta(t, 7, testutil.ToFloat64(metrics.UnclaimedReturns.WithLabelValues("merchant")), 0)
	assert.Equal(t, 2, logs.FilterMessage("Returns backlog job failed").Len())
	lister.AssertNumberOfCalls(t, "Handle", 2)
}

func TestReturnsBacklogJob_Start(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewReturnsBacklogJob(new(MockUnclaimedReturnsLister), "every minute", zap.NewNop())

		assert.Error(t, job.Start())
	})

	t.Run("start and stop", func(t *testing.T) {
		manager := jobs.NewJobManager(new(MockUnclaimedReturnsLister), "0 0 3 * * *", zap.NewNop())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
