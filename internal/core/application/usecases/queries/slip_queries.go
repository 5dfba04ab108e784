package queries

import (
	"context"
	"errors"
	"strings"

	"deliveryops/internal/pkg/errs"
	"deliveryops/internal/pkg/guard"
)

var (
	ErrGetSlipQueryIsNotConstructed = errors.New(
		"GetSlipQuery must be created via NewGetSlipQuery constructor",
	)
	ErrListSlipsQueryIsNotConstructed = errors.New(
		"ListSlipsQuery must be created via NewListSlipsQuery constructor",
	)
)

// GetSlipQuery loads one slip by id. The id prefix tells the slip kind.
type GetSlipQuery struct {
	slipID string
	guard  guard.ConstructorGuard
}

// NewGetSlipQuery requires a non-empty id.
func NewGetSlipQuery(slipID string) (GetSlipQuery, error) {
	slipID = strings.TrimSpace(slipID)
	if slipID == "" {
		return GetSlipQuery{}, errs.NewValueIsRequiredError("slipId")
	}
	return GetSlipQuery{slipID: slipID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSlipQuery) Validate() error {
	return q.guard.Validate(ErrGetSlipQueryIsNotConstructed)
}

func (q GetSlipQuery) SlipID() string {
	return q.slipID
}

// ListSlipsQuery lists slips of one party, newest first. Empty party lists all.
type ListSlipsQuery struct {
	party string
	guard guard.ConstructorGuard
}

// NewListSlipsQuery creates the query.
func NewListSlipsQuery(party string) ListSlipsQuery {
	return ListSlipsQuery{party: strings.TrimSpace(party), guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListSlipsQuery) Validate() error {
	return q.guard.Validate(ErrListSlipsQueryIsNotConstructed)
}

func (q ListSlipsQuery) Party() string {
	return q.party
}

// DriverSlipQueryHandler serves driver slip reads.
type DriverSlipQueryHandler struct {
	readers ReaderFactory
}

// NewDriverSlipQueryHandler creates the handler.
func NewDriverSlipQueryHandler(readers ReaderFactory) DriverSlipQueryHandler {
	return DriverSlipQueryHandler{readers: readers}
}

// Get returns errs.ObjectNotFoundError for unknown ids.
func (h DriverSlipQueryHandler) Get(ctx context.Context, query GetSlipQuery) (DriverSlipResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverSlipResponse{}, err
	}

	s, err := h.readers.Create().SlipRepository().GetDriverSlip(ctx, query.SlipID())
	if err != nil {
		return DriverSlipResponse{}, err
	}

	return newDriverSlipResponse(s), nil
}

func (h DriverSlipQueryHandler) List(ctx context.Context, query ListSlipsQuery) ([]DriverSlipResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	slips, err := h.readers.Create().SlipRepository().ListDriverSlips(ctx, query.Party())
	if err != nil {
		return nil, err
	}

	out := make([]DriverSlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, newDriverSlipResponse(s))
	}
	return out, nil
}

// MerchantSlipQueryHandler serves merchant slip reads.
type MerchantSlipQueryHandler struct {
	readers ReaderFactory
}

// NewMerchantSlipQueryHandler creates the handler.
func NewMerchantSlipQueryHandler(readers ReaderFactory) MerchantSlipQueryHandler {
	return MerchantSlipQueryHandler{readers: readers}
}

// Get returns errs.ObjectNotFoundError for unknown ids.
func (h MerchantSlipQueryHandler) Get(ctx context.Context, query GetSlipQuery) (MerchantSlipResponse, error) {
	if err := query.Validate(); err != nil {
		return MerchantSlipResponse{}, err
	}

	s, err := h.readers.Create().SlipRepository().GetMerchantSlip(ctx, query.SlipID())
	if err != nil {
		return MerchantSlipResponse{}, err
	}

	return newMerchantSlipResponse(s), nil
}

func (h MerchantSlipQueryHandler) List(ctx context.Context, query ListSlipsQuery) ([]MerchantSlipResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	slips, err := h.readers.Create().SlipRepository().ListMerchantSlips(ctx, query.Party())
	if err != nil {
		return nil, err
	}

	out := make([]MerchantSlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, newMerchantSlipResponse(s))
	}
	return out, nil
}
