package sliprepo

import (
	"context"
	"errors"
	"fmt"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormSlipRepository implements ports.SlipRepository using GORM.
type GormSlipRepository struct {
	db *gorm.DB
}

// NewGormSlipRepository creates a new GORM slip repository.
func NewGormSlipRepository(db *gorm.DB) *GormSlipRepository {
	return &GormSlipRepository{db: db}
}

// AddDriverSlip saves the slip with its entries and opens driver-stage claims.
func (r *GormSlipRepository) AddDriverSlip(ctx context.Context, s *slip.DriverSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.add(ctx, slip.StageDriver, driverSlipFromDomain(s), s.OrderIDs())
}

// GetDriverSlip retrieves a driver slip by id.
func (r *GormSlipRepository) GetDriverSlip(ctx context.Context, id string) (*slip.DriverSlip, error) {
	dto, err := r.get(ctx, kindDriver, "driverSlip", id)
	if err != nil {
		return nil, err
	}
	return driverSlipToDomain(dto)
}

// ListDriverSlips retrieves driver slips newest first.
func (r *GormSlipRepository) ListDriverSlips(ctx context.Context, driverName string) ([]*slip.DriverSlip, error) {
	dtos, err := r.list(ctx, kindDriver, driverName)
	if err != nil {
		return nil, err
	}

	slips := make([]*slip.DriverSlip, 0, len(dtos))
	for _, dto := range dtos {
		s, err := driverSlipToDomain(dto)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, nil
}

// AddMerchantSlip saves the slip with its entries and opens merchant-stage claims.
func (r *GormSlipRepository) AddMerchantSlip(ctx context.Context, s *slip.MerchantSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.add(ctx, slip.StageMerchant, merchantSlipFromDomain(s), s.OrderIDs())
}

// UpdateMerchantSlip saves the delivery status.
func (r *GormSlipRepository) UpdateMerchantSlip(ctx context.Context, s *slip.MerchantSlip) error {
	if err := s.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SlipDTO{}).
		Where("id = ? AND kind = ?", s.ID(), kindMerchant).
		Update("status", s.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("merchantSlip", s.ID())
	}
	return nil
}

// GetMerchantSlip retrieves a merchant slip by id.
func (r *GormSlipRepository) GetMerchantSlip(ctx context.Context, id string) (*slip.MerchantSlip, error) {
	dto, err := r.get(ctx, kindMerchant, "merchantSlip", id)
	if err != nil {
		return nil, err
	}
	return merchantSlipToDomain(dto)
}

// ListMerchantSlips retrieves merchant slips newest first.
func (r *GormSlipRepository) ListMerchantSlips(ctx context.Context, merchantName string) ([]*slip.MerchantSlip, error) {
	dtos, err := r.list(ctx, kindMerchant, merchantName)
	if err != nil {
		return nil, err
	}

	slips := make([]*slip.MerchantSlip, 0, len(dtos))
	for _, dto := range dtos {
		s, err := merchantSlipToDomain(dto)
		if err != nil {
			return nil, err
		}
		slips = append(slips, s)
	}
	return slips, nil
}

// ActiveClaims maps each claimed order to its slip. A nil orderIDs scans the
// whole stage.
func (r *GormSlipRepository) ActiveClaims(ctx context.Context, stage slip.Stage, orderIDs []kernel.UUID) (map[kernel.UUID]string, error) {
	claims := make(map[kernel.UUID]string)
	if orderIDs != nil && len(orderIDs) == 0 {
		return claims, nil
	}

	query := r.db.WithContext(ctx).Where("stage = ? AND released_at IS NULL", string(stage))
	if orderIDs != nil {
		query = query.Where("order_id = ANY(?::uuid[])", pq.Array(uuidStrings(orderIDs)))
	}

	var dtos []ClaimDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.OrderID)
		if err != nil {
			return nil, err
		}
		claims[id] = dto.SlipID
	}
	return claims, nil
}

// ReleaseClaims closes the open claims of orderIDs at stage.
func (r *GormSlipRepository) ReleaseClaims(ctx context.Context, stage slip.Stage, orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&ClaimDTO{}).
		Where("stage = ? AND released_at IS NULL AND order_id = ANY(?::uuid[])", string(stage), pq.Array(uuidStrings(orderIDs))).
		Update("released_at", gorm.Expr("now()")).Error
}

func (r *GormSlipRepository) add(ctx context.Context, stage slip.Stage, dto SlipDTO, orderIDs []kernel.UUID) error {
	db := r.db.WithContext(ctx)

	claimed, err := r.ActiveClaims(ctx, stage, orderIDs)
	if err != nil {
		return err
	}
	for _, id := range orderIDs {
		if slipID, ok := claimed[id]; ok {
			return errs.NewConflictError("order", id.String(), fmt.Sprintf("already on %s slip %s", stage, slipID))
		}
	}

	if err := db.Create(&dto).Error; err != nil {
		return fmt.Errorf("save %s slip %s: %w", stage, dto.ID, err)
	}

	for _, id := range orderIDs {
		claim := ClaimDTO{OrderID: id.Google(), Stage: string(stage), SlipID: dto.ID}
		if err := db.Create(&claim).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.NewConflictErrorWithCause("order", id.String(), fmt.Sprintf("already on %s slip", stage), err)
			}
			return err
		}
	}
	return nil
}

func (r *GormSlipRepository) get(ctx context.Context, kind, param, id string) (SlipDTO, error) {
	var dto SlipDTO
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ? AND kind = ?", id, kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SlipDTO{}, errs.NewObjectNotFoundError(param, id)
		}
		return SlipDTO{}, err
	}
	return dto, nil
}

func (r *GormSlipRepository) list(ctx context.Context, kind, party string) ([]SlipDTO, error) {
	query := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("kind = ?", kind)
	if party != "" {
		query = query.Where("party = ?", party)
	}

	var dtos []SlipDTO
	if err := query.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return dtos, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
