package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/ports"
	"deliveryops/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate ports.EventSource)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", aggregate.ID().String(), "already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Every column is written so
// a cleared driver or previous status is persisted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID and locks its row for the enclosing transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads and locks ids in one statement. Rows are locked in id order so
// two batches over the same orders cannot deadlock.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, id.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ANY(?::uuid[])", pq.Array(keys)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]OrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID.String()] = dto
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ListByDriver retrieves the driver's orders.
func (r *GormOrderRepository) ListByDriver(ctx context.Context, driver string, statuses ...status.Code) ([]*order.Order, error) {
	return r.List(ctx, ports.OrderFilter{Driver: driver, Statuses: statuses})
}

// ListByMerchant retrieves the merchant's orders.
func (r *GormOrderRepository) ListByMerchant(ctx context.Context, merchant string, statuses ...status.Code) ([]*order.Order, error) {
	return r.List(ctx, ports.OrderFilter{Merchant: merchant, Statuses: statuses})
}

// List retrieves orders matching filter by ascending number.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.Driver != "" {
		query = query.Where("driver = ?", filter.Driver)
	}
	if filter.Merchant != "" {
		query = query.Where("merchant = ?", filter.Merchant)
	}
	if len(filter.Statuses) > 0 {
		codes := make([]string, 0, len(filter.Statuses))
		for _, c := range filter.Statuses {
			codes = append(codes, string(c))
		}
		query = query.Where("status IN ?", codes)
	}

	var dtos []OrderDTO
	if err := query.Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextOrderNumber draws from the order number sequence. Values are not
// returned on rollback, so numbers may have gaps.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", OrderNumberSequence).Scan(&n).Error; err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}
