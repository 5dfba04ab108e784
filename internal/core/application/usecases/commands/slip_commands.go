package commands

import (
	"errors"
	"strings"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/guard"
)

var (
	ErrCreateDriverSlipCommandIsNotConstructed = errors.New(
		"CreateDriverSlipCommand must be created via NewCreateDriverSlipCommand constructor",
	)
	ErrCreateMerchantSlipCommandIsNotConstructed = errors.New(
		"CreateMerchantSlipCommand must be created via NewCreateMerchantSlipCommand constructor",
	)
	ErrMarkMerchantSlipDeliveredCommandIsNotConstructed = errors.New(
		"MarkMerchantSlipDeliveredCommand must be created via NewMarkMerchantSlipDeliveredCommand constructor",
	)
)

// slipBatch is the request shape shared by both slip kinds.
type slipBatch struct {
	party    string
	orderIDs []kernel.UUID
}

func newSlipBatch(partyParam, party string, orderIDs []kernel.UUID) (slipBatch, error) {
	party = strings.TrimSpace(party)
	if party == "" {
		return slipBatch{}, errs.NewValueIsRequiredError(partyParam)
	}
	if err := slip.ValidateOrderIDs(orderIDs); err != nil {
		return slipBatch{}, err
	}
	return slipBatch{party: party, orderIDs: append([]kernel.UUID(nil), orderIDs...)}, nil
}

func (b slipBatch) keys() []string {
	keys := make([]string, len(b.orderIDs))
	for i, id := range b.orderIDs {
		keys[i] = id.String()
	}
	return keys
}

// CreateDriverSlipCommand hands a driver's returned orders to the branch.
//
// Example:
//
//	cmd, err := NewCreateDriverSlipCommand("B", []kernel.UUID{o1, o2})
//	slipID, err := handler.Handle(ctx, cmd)
type CreateDriverSlipCommand struct {
	batch slipBatch
	guard guard.ConstructorGuard
}

// NewCreateDriverSlipCommand rejects an empty driver, an empty list and duplicate ids.
func NewCreateDriverSlipCommand(driverName string, orderIDs []kernel.UUID) (CreateDriverSlipCommand, error) {
	batch, err := newSlipBatch("driverName", driverName, orderIDs)
	if err != nil {
		return CreateDriverSlipCommand{}, err
	}
	return CreateDriverSlipCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverSlipCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverSlipCommandIsNotConstructed)
}

func (c CreateDriverSlipCommand) DriverName() string {
	return c.batch.party
}

// OrderIDs returns the requested orders in request order.
func (c CreateDriverSlipCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.batch.orderIDs...)
}

// CreateMerchantSlipCommand batches branch-held returns for their merchant.
type CreateMerchantSlipCommand struct {
	batch slipBatch
	guard guard.ConstructorGuard
}

// NewCreateMerchantSlipCommand rejects an empty merchant, an empty list and duplicate ids.
func NewCreateMerchantSlipCommand(merchantName string, orderIDs []kernel.UUID) (CreateMerchantSlipCommand, error) {
	batch, err := newSlipBatch("merchantName", merchantName, orderIDs)
	if err != nil {
		return CreateMerchantSlipCommand{}, err
	}
	return CreateMerchantSlipCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMerchantSlipCommand) Validate() error {
	return c.guard.Validate(ErrCreateMerchantSlipCommandIsNotConstructed)
}

func (c CreateMerchantSlipCommand) MerchantName() string {
	return c.batch.party
}

// OrderIDs returns the requested orders in request order.
func (c CreateMerchantSlipCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.batch.orderIDs...)
}

// MarkMerchantSlipDeliveredCommand records that a merchant collected a slip.
type MarkMerchantSlipDeliveredCommand struct {
	slipID string
	guard  guard.ConstructorGuard
}

// NewMarkMerchantSlipDeliveredCommand requires a merchant slip id.
func NewMarkMerchantSlipDeliveredCommand(slipID string) (MarkMerchantSlipDeliveredCommand, error) {
	slipID = strings.TrimSpace(slipID)
	if slipID == "" {
		return MarkMerchantSlipDeliveredCommand{}, errs.NewValueIsRequiredError("slipId")
	}
	return MarkMerchantSlipDeliveredCommand{slipID: slipID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkMerchantSlipDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkMerchantSlipDeliveredCommandIsNotConstructed)
}

func (c MarkMerchantSlipDeliveredCommand) SlipID() string {
	return c.slipID
}
