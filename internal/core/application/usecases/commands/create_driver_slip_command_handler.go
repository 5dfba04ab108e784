package commands

import (
	"context"
	"time"

	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/logger"
	"deliveryops/internal/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CreateDriverSlipCommandHandler receives a driver's returned orders at the
// branch. Either every listed order moves to returned_to_branch and the slip
// exists, or nothing changes.
type CreateDriverSlipCommandHandler struct {
	uowFactory SlipUoWFactory
	locker     KeyLocker
	events     eventRelay
	logger     *zap.Logger
	now        func() time.Time
}

// NewCreateDriverSlipCommandHandler creates the handler.
func NewCreateDriverSlipCommandHandler(
	uowFactory SlipUoWFactory,
	locker KeyLocker,
	publisher ports.EventPublisher,
	log *zap.Logger,
) CreateDriverSlipCommandHandler {
	l := logger.Component(log, "driver_slips")
	return CreateDriverSlipCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		events:     eventRelay{publisher: publisher, logger: l},
		logger:     l,
		now:        time.Now,
	}
}

// Handle validates the whole batch before any write and returns the new slip id.
// Unknown ids yield errs.ObjectNotFoundError; claimed, foreign or not-returned
// orders yield errs.ConflictError naming the first offending order.
func (h CreateDriverSlipCommandHandler) Handle(ctx context.Context, cmd CreateDriverSlipCommand) (slipID string, err error) {
	if err = cmd.Validate(); err != nil {
		return "", err
	}

	ctx, span := startSlipSpan(ctx, "CreateDriverSlip", slip.StageDriver, cmd.DriverName(), len(cmd.batch.orderIDs))
	defer func() { finishSlipSpan(span, slip.StageDriver, err) }()

	unlock, err := h.locker.LockAll(ctx, cmd.batch.keys())
	if err != nil {
		return "", err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	slipRepo := uow.SlipRepository()

	orders, err := driverSlipRules.loadEligible(ctx, orderRepo, slipRepo, cmd.batch)
	if err != nil {
		return "", err
	}

	now := h.now()
	entries := make([]slip.Entry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, slip.EntryFromOrder(o))
	}

	s, err := slip.NewDriverSlip(cmd.DriverName(), entries, now)
	if err != nil {
		return "", err
	}

	for _, o := range orders {
		if err = o.ReceiveAtBranch(now); err != nil {
			return "", err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return "", err
		}
	}

	if err = slipRepo.AddDriverSlip(ctx, s); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("slip.id", s.ID()))
	metrics.SlipsCreatedTotal.WithLabelValues(string(slip.StageDriver)).Inc()
	h.logger.Info("driver slip created",
		zap.String("slipId", s.ID()),
		zap.String("driver", s.DriverName()),
		zap.Int("items", s.ItemCount()),
	)
	h.events.relay(ctx, uow.PullEvents())

	return s.ID(), nil
}
