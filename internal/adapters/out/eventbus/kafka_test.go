package eventbus_test

import (
	"context"
	"errors"
	"testing"

	"deliveryops/internal/adapters/out/eventbus"
	"deliveryops/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("mirrors status changes keyed by order id", func(t *testing.T) {
		writer := new(MockMessageWriter)
		var written []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()
		publisher := eventbus.NewKafkaPublisher(writer)

		err := publisher.Publish(t.Context(), ports.OrderStatusChanged, ports.OrderStatusChangedPayload{
			OrderID:        "o1",
			Status:         "returned_by_driver",
			PreviousStatus: "out_for_delivery",
		})

		require.NoError(t, err)
		require.Len(t, written, 1)
		assert.Equal(t, []byte("o1"), written[0].Key)
		assert.JSONEq(t, `{"orderId":"o1","status":"returned_by_driver","previousStatus":"out_for_delivery"}`, string(written[0].Value))
		assert.Equal(t, []kafka.Header{{Key: "event", Value: []byte("order_status_changed")}}, written[0].Headers)
		writer.AssertExpectations(t)
	})

	t.Run("ignores other events", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher := eventbus.NewKafkaPublisher(writer)

		err := publisher.Publish(t.Context(), ports.NewOrderCreated, ports.NewOrderCreatedPayload{OrderID: "o1"})

		require.NoError(t, err)
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("rejects foreign payloads", func(t *testing.T) {
		publisher := eventbus.NewKafkaPublisher(new(MockMessageWriter))

		err := publisher.Publish(t.Context(), ports.OrderStatusChanged, map[string]string{"orderId": "o1"})

		assert.ErrorContains(t, err, "unexpected order_status_changed payload")
	})

	t.Run("wraps write errors", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))
		publisher := eventbus.NewKafkaPublisher(writer)

		err := publisher.Publish(t.Context(), ports.OrderStatusChanged, ports.OrderStatusChangedPayload{OrderID: "o1"})

		assert.ErrorContains(t, err, "broker down")
	})

	t.Run("close closes the writer", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("Close").Return(nil).Once()

		require.NoError(t, eventbus.NewKafkaPublisher(writer).Close())
		writer.AssertExpectations(t)
	})
}

func TestNewKafkaWriter(t *testing.T) {
	w := eventbus.NewKafkaWriter([]string{"localhost:9092"}, "order_changed")

	assert.Equal(t, "order_changed", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
