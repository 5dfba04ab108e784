// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderNumberSequence backs NextOrderNumber.
const OrderNumberSequence = "order_number_seq"

// OrderDTO is the orders table row.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number         int64     `gorm:"uniqueIndex;not null"`
	Recipient      string    `gorm:"not null"`
	Phone          string
	Address        string
	City           string
	Region         string
	Merchant       string `gorm:"index"`
	Notes          string
	Date           string `gorm:"type:varchar(10)"`
	Status         string `gorm:"type:varchar(32);not null;index"`
	PreviousStatus string `gorm:"type:varchar(32)"`
	Driver         string `gorm:"index"`
	Money          MoneyDTO `gorm:"embedded"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

// TableName overrides GORM's default.
func (OrderDTO) TableName() string {
	return "orders"
}

// MoneyDTO holds the monetary columns. Slip entries embed it too.
type MoneyDTO struct {
	COD                  decimal.Decimal `gorm:"column:cod;type:numeric(12,2);not null;default:0"`
	ItemPrice            decimal.Decimal `gorm:"column:item_price;type:numeric(12,2);not null;default:0"`
	DeliveryFee          decimal.Decimal `gorm:"column:delivery_fee;type:numeric(12,2);not null;default:0"`
	AdditionalCost       decimal.Decimal `gorm:"column:additional_cost;type:numeric(12,2);not null;default:0"`
	DriverFee            decimal.Decimal `gorm:"column:driver_fee;type:numeric(12,2);not null;default:0"`
	DriverAdditionalFare decimal.Decimal `gorm:"column:driver_additional_fare;type:numeric(12,2);not null;default:0"`
}

// MoneyFromDomain maps amounts to columns.
func MoneyFromDomain(a order.Amounts) MoneyDTO {
	return MoneyDTO{
		COD:                  a.COD.Decimal(),
		ItemPrice:            a.ItemPrice.Decimal(),
		DeliveryFee:          a.DeliveryFee.Decimal(),
		AdditionalCost:       a.AdditionalCost.Decimal(),
		DriverFee:            a.DriverFee.Decimal(),
		DriverAdditionalFare: a.DriverAdditionalFare.Decimal(),
	}
}

// ToDomain maps columns back to amounts, rejecting negative values.
func (m MoneyDTO) ToDomain() (order.Amounts, error) {
	var a order.Amounts
	var err error
	fields := []struct {
		param string
		value decimal.Decimal
		dst   *kernel.Amount
	}{
		{"cod", m.COD, &a.COD},
		{"itemPrice", m.ItemPrice, &a.ItemPrice},
		{"deliveryFee", m.DeliveryFee, &a.DeliveryFee},
		{"additionalCost", m.AdditionalCost, &a.AdditionalCost},
		{"driverFee", m.DriverFee, &a.DriverFee},
		{"driverAdditionalFare", m.DriverAdditionalFare, &a.DriverAdditionalFare},
	}
	for _, f := range fields {
		if *f.dst, err = kernel.NewAmount(f.param, f.value); err != nil {
			return order.Amounts{}, err
		}
	}
	return a, nil
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	return OrderDTO{
		ID:             s.ID.Google(),
		Number:         s.Number,
		Recipient:      s.Details.Recipient,
		Phone:          s.Details.Phone,
		Address:        s.Details.Address,
		City:           s.Details.City,
		Region:         s.Details.Region,
		Merchant:       s.Details.Merchant,
		Notes:          s.Details.Notes,
		Date:           s.Details.Date,
		Status:         string(s.Status),
		PreviousStatus: string(s.PreviousStatus),
		Driver:         s.Driver,
		Money:          MoneyFromDomain(s.Amounts),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	amounts, err := dto.Money.ToDomain()
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:     id,
		Number: dto.Number,
		Details: order.Details{
			Recipient: dto.Recipient,
			Phone:     dto.Phone,
			Address:   dto.Address,
			City:      dto.City,
			Region:    dto.Region,
			Merchant:  dto.Merchant,
			Notes:     dto.Notes,
			Date:      dto.Date,
		},
		Amounts:        amounts,
		Status:         status.Code(dto.Status),
		PreviousStatus: status.Code(dto.PreviousStatus),
		Driver:         dto.Driver,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
	})
}
