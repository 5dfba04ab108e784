package ports

import (
	"context"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
)

// SlipRepository persists slips and the claims that keep an order on at most
// one open slip per stage.
type SlipRepository interface {
	// AddDriverSlip stores the slip with its entries and opens a driver-stage
	// claim for every listed order. An existing open claim yields errs.ConflictError.
	AddDriverSlip(ctx context.Context, s *slip.DriverSlip) error
	GetDriverSlip(ctx context.Context, id string) (*slip.DriverSlip, error)
	// ListDriverSlips returns slips newest first; an empty driverName lists all.
	ListDriverSlips(ctx context.Context, driverName string) ([]*slip.DriverSlip, error)

	// AddMerchantSlip stores the slip and opens merchant-stage claims.
	AddMerchantSlip(ctx context.Context, s *slip.MerchantSlip) error
	// UpdateMerchantSlip persists the delivery status. Entries are immutable.
	UpdateMerchantSlip(ctx context.Context, s *slip.MerchantSlip) error
	GetMerchantSlip(ctx context.Context, id string) (*slip.MerchantSlip, error)
	ListMerchantSlips(ctx context.Context, merchantName string) ([]*slip.MerchantSlip, error)

	// ActiveClaims maps each listed order holding an open claim at stage to the
	// claiming slip id. A nil orderIDs returns every open claim of the stage.
	ActiveClaims(ctx context.Context, stage slip.Stage, orderIDs []kernel.UUID) (map[kernel.UUID]string, error)

	// ReleaseClaims closes the open claims of orderIDs at stage.
	ReleaseClaims(ctx context.Context, stage slip.Stage, orderIDs []kernel.UUID) error
}
