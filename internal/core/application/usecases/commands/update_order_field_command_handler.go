package commands

import (
	"context"
	"time"
)

// UpdateOrderFieldCommandHandler applies direct field edits. It bypasses the
// transition validator and never changes status or previous status.
type UpdateOrderFieldCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     KeyLocker
	now        func() time.Time
}

// NewUpdateOrderFieldCommandHandler creates the handler.
func NewUpdateOrderFieldCommandHandler(uowFactory OrderUoWFactory, locker KeyLocker) UpdateOrderFieldCommandHandler {
	return UpdateOrderFieldCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		now:        time.Now,
	}
}

// Handle edits the field under the order's lock.
func (h UpdateOrderFieldCommandHandler) Handle(ctx context.Context, cmd UpdateOrderFieldCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.LockAll(ctx, []string{cmd.OrderID().String()})
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateField(cmd.Field(), cmd.Value(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
