package ports

import "context"

// EventName identifies a realtime notification.
type EventName string

const (
	OrderStatusChanged EventName = "order_status_changed"
	NewOrderCreated    EventName = "new_order_created"
	DriverStatusUpdate EventName = "driver_status_update"
)

// EventNames lists every published event.
func EventNames() []EventName {
	return []EventName{OrderStatusChanged, NewOrderCreated, DriverStatusUpdate}
}

// OrderStatusChangedPayload is published after a committed status change.
type OrderStatusChangedPayload struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus"`
	DriverName     string `json:"driverName,omitempty"`
}

// NewOrderCreatedPayload is published after an order is created.
type NewOrderCreatedPayload struct {
	OrderID string `json:"orderId"`
}

// DriverStatusUpdatePayload relays a driver's online presence.
type DriverStatusUpdatePayload struct {
	DriverID string `json:"driverId"`
	IsOnline bool   `json:"isOnline"`
}

// EventPublisher delivers notifications at most once, best effort. Consumers
// treat them as hints to refresh.
type EventPublisher interface {
	Publish(ctx context.Context, name EventName, payload any) error
}

// EventHandler receives the JSON-encoded payload of an event.
type EventHandler func(ctx context.Context, payload []byte)

// EventSubscriber registers handlers. The returned function unsubscribes.
type EventSubscriber interface {
	Subscribe(name EventName, handler EventHandler) (unsubscribe func())
}

// EventBus publishes and subscribes.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
