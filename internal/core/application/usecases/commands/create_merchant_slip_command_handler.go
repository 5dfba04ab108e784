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

// CreateMerchantSlipCommandHandler batches branch-held returns for their
// merchant. The orders move to returned_to_merchant and their driver-stage
// claims are released in the same transaction.
type CreateMerchantSlipCommandHandler struct {
	uowFactory SlipUoWFactory
	locker     KeyLocker
	events     eventRelay
	logger     *zap.Logger
	now        func() time.Time
}

// NewCreateMerchantSlipCommandHandler creates the handler.
func NewCreateMerchantSlipCommandHandler(
	uowFactory SlipUoWFactory,
	locker KeyLocker,
	publisher ports.EventPublisher,
	log *zap.Logger,
) CreateMerchantSlipCommandHandler {
	l := logger.Component(log, "merchant_slips")
	return CreateMerchantSlipCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		events:     eventRelay{publisher: publisher, logger: l},
		logger:     l,
		now:        time.Now,
	}
}

// Handle follows the driver slip protocol with merchant ownership and the
// returned_to_branch precondition. It returns the new slip id.
func (h CreateMerchantSlipCommandHandler) Handle(ctx context.Context, cmd CreateMerchantSlipCommand) (slipID string, err error) {
	if err = cmd.Validate(); err != nil {
		return "", err
	}

	ctx, span := startSlipSpan(ctx, "CreateMerchantSlip", slip.StageMerchant, cmd.MerchantName(), len(cmd.batch.orderIDs))
	defer func() { finishSlipSpan(span, slip.StageMerchant, err) }()

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

	orders, err := merchantSlipRules.loadEligible(ctx, orderRepo, slipRepo, cmd.batch)
	if err != nil {
		return "", err
	}

	now := h.now()
	entries := make([]slip.Entry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, slip.EntryFromOrder(o))
	}

	s, err := slip.NewMerchantSlip(cmd.MerchantName(), entries, now)
	if err != nil {
		return "", err
	}

	for _, o := range orders {
		if err = o.ReturnToMerchant(now); err != nil {
			return "", err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return "", err
		}
	}

	if err = slipRepo.AddMerchantSlip(ctx, s); err != nil {
		return "", err
	}

	if err = slipRepo.ReleaseClaims(ctx, slip.StageDriver, cmd.batch.orderIDs); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("slip.id", s.ID()))
	metrics.SlipsCreatedTotal.WithLabelValues(string(slip.StageMerchant)).Inc()
	h.logger.Info("merchant slip created",
		zap.String("slipId", s.ID()),
		zap.String("merchant", s.MerchantName()),
		zap.Int("items", s.ItemCount()),
	)
	h.events.relay(ctx, uow.PullEvents())

	return s.ID(), nil
}
