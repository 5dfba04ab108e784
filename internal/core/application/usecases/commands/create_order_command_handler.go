package commands

import (
	"context"
	"time"

	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/logger"

	"go.uber.org/zap"
)

// CreateOrderCommandHandler persists a new pending order under the next order
// number and announces it with new_order_created.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventRelay
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	log *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     eventRelay{publisher: publisher, logger: logger.Component(log, "create_order")},
		now:        time.Now,
	}
}

// Handle creates the order. Field validation errors from the aggregate are
// returned unchanged.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, cmd.Details(), cmd.Amounts(), h.now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.relay(ctx, uow.PullEvents())
	return nil
}
