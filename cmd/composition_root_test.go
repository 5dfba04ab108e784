package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"deliveryops/internal/core/application/usecases/commands"
	"deliveryops/internal/core/application/usecases/queries"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func inMemoryConfig() Config {
	return Config{
		Environment:            "development",
		LogLevel:               "debug",
		HTTPPort:               "8080",
		KafkaOrderChangedTopic: "order.status.changed",
		BacklogReportSchedule:  "0 */5 * * * *",
	}
}

func TestCompositionRoot_InMemory(t *testing.T) {
	root, err := NewCompositionRoot(inMemoryConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, root.Close()) })

	assert.Nil(t, root.DB())
	assert.Nil(t, root.RedisBus())
	assert.Empty(t, root.HealthChecks())

	handlers := root.CreateHTTPHandlers()
	ctx := context.Background()

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, order.Details{Recipient: "Salma"}, order.Amounts{
		COD: kerneltest.Amount("40"),
	})
	require.NoError(t, err)
	require.NoError(t, handlers.CreateOrder.Handle(ctx, cmd))

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	got, err := handlers.GetOrder.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, status.Pending, got.Status)
	assert.Equal(t, "Salma", got.Details.Recipient)

	assert.NotEmpty(t, handlers.GetStatuses.Handle())
	assert.NotNil(t, root.CreateHTTPServer())
}

func TestCompositionRoot_RedisAndKafka(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := inMemoryConfig()
	cfg.RedisURL = "redis://" + mr.Addr()
	cfg.KafkaHost = "localhost:9092"

	root, err := NewCompositionRoot(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.NotNil(t, root.RedisBus())
	require.Len(t, root.HealthChecks(), 1)
	assert.NoError(t, root.HealthChecks()[0].Ping(t.Context()))
	assert.NoError(t, root.Close())
}

func TestCompositionRoot_MissingStatusCatalog(t *testing.T) {
	cfg := inMemoryConfig()
	cfg.StatusCatalogPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := NewCompositionRoot(cfg, zaptest.NewLogger(t))

	assert.Error(t, err)
}

func TestCompositionRoot_JobManager(t *testing.T) {
	root, err := NewCompositionRoot(inMemoryConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	jobs := root.CreateJobManager()
	require.NoError(t, jobs.StartAll())
	jobs.StopAll()
}
