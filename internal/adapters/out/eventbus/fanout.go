package eventbus

import (
	"context"
	"errors"

	"deliveryops/internal/core/ports"
)

// Fanout publishes every event to all publishers. One failing publisher does
// not stop the others; their errors are joined.
type Fanout []ports.EventPublisher

// Publish implements ports.EventPublisher.
func (f Fanout) Publish(ctx context.Context, name ports.EventName, payload any) error {
	var errList []error
	for _, p := range f {
		if err := p.Publish(ctx, name, payload); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
