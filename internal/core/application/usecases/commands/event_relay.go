package commands

import (
	"context"

	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/metrics"

	"go.uber.org/zap"
)

// eventRelay forwards committed domain events to the realtime bus. Delivery is
// best effort: failures are logged and counted, never returned.
type eventRelay struct {
	publisher ports.EventPublisher
	logger    *zap.Logger
}

func (r eventRelay) relay(ctx context.Context, events []any) {
	for _, event := range events {
		switch e := event.(type) {
		case order.Created:
			metrics.OrdersCreatedTotal.Inc()
			r.publish(ctx, ports.NewOrderCreated, ports.NewOrderCreatedPayload{OrderID: e.OrderID.String()})
		case order.StatusChanged:
			metrics.StatusTransitionsTotal.WithLabelValues(string(e.Status)).Inc()
			r.publish(ctx, ports.OrderStatusChanged, ports.OrderStatusChangedPayload{
				OrderID:        e.OrderID.String(),
				Status:         string(e.Status),
				PreviousStatus: string(e.PreviousStatus),
				DriverName:     e.DriverName,
			})
		}
	}
}

func (r eventRelay) publish(ctx context.Context, name ports.EventName, payload any) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, name, payload); err != nil {
		metrics.EventPublishErrorsTotal.WithLabelValues(string(name)).Inc()
		r.logger.Warn("event publish failed", zap.String("event", string(name)), zap.Error(err))
	}
}
