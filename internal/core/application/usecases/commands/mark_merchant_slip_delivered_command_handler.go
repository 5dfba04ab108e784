package commands

import (
	"context"
)

// MarkMerchantSlipDeliveredCommandHandler flips a merchant slip to
// delivered_to_merchant. The listed orders are not touched. Marking an
// already delivered slip succeeds without writing.
type MarkMerchantSlipDeliveredCommandHandler struct {
	uowFactory SlipUoWFactory
	locker     KeyLocker
}

// NewMarkMerchantSlipDeliveredCommandHandler creates the handler.
func NewMarkMerchantSlipDeliveredCommandHandler(uowFactory SlipUoWFactory, locker KeyLocker) MarkMerchantSlipDeliveredCommandHandler {
	return MarkMerchantSlipDeliveredCommandHandler{uowFactory: uowFactory, locker: locker}
}

// Handle returns errs.ObjectNotFoundError for unknown slips.
func (h MarkMerchantSlipDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkMerchantSlipDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock, err := h.locker.LockAll(ctx, []string{cmd.SlipID()})
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

	slipRepo := uow.SlipRepository()

	s, err := slipRepo.GetMerchantSlip(ctx, cmd.SlipID())
	if err != nil {
		return err
	}

	if !s.MarkDelivered() {
		return nil
	}

	if err = slipRepo.UpdateMerchantSlip(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
