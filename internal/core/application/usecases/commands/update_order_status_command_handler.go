package commands

import (
	"context"
	"time"

	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/logger"
	"deliveryops/internal/pkg/metrics"

	"go.uber.org/zap"
)

// UpdateOrderStatusCommandHandler applies a validated status transition.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(id, "بانتظار السائق", "B", "")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, services.ErrTransitionRejected):
//	    // see the *services.TransitionRejectedError for the reason
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	statuses   StatusResolver
	validator  services.TransitionValidator
	locker     KeyLocker
	events     eventRelay
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates the handler.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	statuses StatusResolver,
	locker KeyLocker,
	publisher ports.EventPublisher,
	log *zap.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		statuses:   statuses,
		validator:  services.NewTransitionValidator(statuses),
		locker:     locker,
		events:     eventRelay{publisher: publisher, logger: logger.Component(log, "update_order_status")},
		now:        time.Now,
	}
}

// Handle loads the order under lock, validates the transition against the
// driver supplied in the request, and persists the change. A rejected
// transition is returned as errs.ValueIsInvalidError wrapping
// *services.TransitionRejectedError.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target := status.Code(cmd.Status())
	if def, err := h.statuses.Resolve(cmd.Status()); err == nil {
		target = def.Code
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

	verdict := h.validator.Validate(o.Status(), target, cmd.Driver())
	if verdict.Valid && cmd.Role() != "" {
		verdict = h.validator.ValidateRole(o.Status(), target, cmd.Role())
	}
	if !verdict.Valid {
		metrics.RejectedTransitionsTotal.WithLabelValues(verdict.Reason).Inc()
		return errs.NewValueIsInvalidErrorWithCause("status", verdict.Err())
	}

	if err = o.ChangeStatus(target, cmd.Driver(), h.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.relay(ctx, uow.PullEvents())
	return nil
}
