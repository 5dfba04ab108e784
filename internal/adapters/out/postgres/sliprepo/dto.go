// Package sliprepo persists driver and merchant slips together with the
// claims that keep an order on at most one open slip per stage.
package sliprepo

import (
	"time"

	"deliveryops/internal/adapters/out/postgres/orderrepo"
	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"

	"github.com/google/uuid"
)

const (
	kindDriver   = "driver"
	kindMerchant = "merchant"
)

// OpenClaimIndex is the partial unique index over open claims. AutoMigrate
// cannot express the predicate, so postgres.Migrate creates it.
const OpenClaimIndex = "ux_slip_claims_open"

// SlipDTO is the slips table row. Driver slips leave Status empty.
type SlipDTO struct {
	ID        string         `gorm:"type:varchar(40);primaryKey"`
	Kind      string         `gorm:"type:varchar(16);not null;index:idx_slips_kind_party"`
	Party     string         `gorm:"not null;index:idx_slips_kind_party"`
	Date      time.Time      `gorm:"not null"`
	Status    string         `gorm:"type:varchar(32)"`
	ItemCount int            `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false;index"`
	Entries   []SlipEntryDTO `gorm:"foreignKey:SlipID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default.
func (SlipDTO) TableName() string {
	return "slips"
}

// SlipEntryDTO is a frozen order snapshot printed on a slip.
type SlipEntryDTO struct {
	SlipID         string    `gorm:"type:varchar(40);primaryKey"`
	Position       int       `gorm:"primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber    int64     `gorm:"not null"`
	Recipient      string
	Phone          string
	City           string
	Address        string
	PreviousStatus string             `gorm:"type:varchar(32)"`
	Money          orderrepo.MoneyDTO `gorm:"embedded"`
}

// TableName overrides GORM's default.
func (SlipEntryDTO) TableName() string {
	return "slip_entries"
}

// ClaimDTO records that an order sits on a slip at a stage. ReleasedAt is
// set when the order moves on to the next stage.
type ClaimDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null"`
	Stage      string    `gorm:"type:varchar(16);not null"`
	SlipID     string    `gorm:"type:varchar(40);not null;index"`
	ReleasedAt *time.Time
}

// TableName overrides GORM's default.
func (ClaimDTO) TableName() string {
	return "slip_claims"
}

func entriesFromDomain(slipID string, entries []slip.Entry) []SlipEntryDTO {
	dtos := make([]SlipEntryDTO, 0, len(entries))
	for i, e := range entries {
		dtos = append(dtos, SlipEntryDTO{
			SlipID:         slipID,
			Position:       i,
			OrderID:        e.OrderID.Google(),
			OrderNumber:    e.OrderNumber,
			Recipient:      e.Recipient,
			Phone:          e.Phone,
			City:           e.City,
			Address:        e.Address,
			PreviousStatus: string(e.PreviousStatus),
			Money:          orderrepo.MoneyFromDomain(e.Money),
		})
	}
	return dtos
}

func entriesToDomain(dtos []SlipEntryDTO) ([]slip.Entry, error) {
	entries := make([]slip.Entry, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.OrderID)
		if err != nil {
			return nil, err
		}
		money, err := dto.Money.ToDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, slip.Entry{
			OrderID:        id,
			OrderNumber:    dto.OrderNumber,
			Recipient:      dto.Recipient,
			Phone:          dto.Phone,
			City:           dto.City,
			Address:        dto.Address,
			PreviousStatus: status.Code(dto.PreviousStatus),
			Money:          money,
		})
	}
	return entries, nil
}

func driverSlipFromDomain(s *slip.DriverSlip) SlipDTO {
	return SlipDTO{
		ID:        s.ID(),
		Kind:      kindDriver,
		Party:     s.DriverName(),
		Date:      s.Date(),
		ItemCount: s.ItemCount(),
		CreatedAt: s.CreatedAt(),
		Entries:   entriesFromDomain(s.ID(), s.Entries()),
	}
}

func merchantSlipFromDomain(s *slip.MerchantSlip) SlipDTO {
	return SlipDTO{
		ID:        s.ID(),
		Kind:      kindMerchant,
		Party:     s.MerchantName(),
		Date:      s.Date(),
		Status:    s.Status().String(),
		ItemCount: s.ItemCount(),
		CreatedAt: s.CreatedAt(),
		Entries:   entriesFromDomain(s.ID(), s.Entries()),
	}
}

func driverSlipToDomain(dto SlipDTO) (*slip.DriverSlip, error) {
	entries, err := entriesToDomain(dto.Entries)
	if err != nil {
		return nil, err
	}
	return slip.RestoreDriverSlip(dto.ID, dto.Party, dto.Date.UTC(), entries, dto.CreatedAt.UTC())
}

func merchantSlipToDomain(dto SlipDTO) (*slip.MerchantSlip, error) {
	entries, err := entriesToDomain(dto.Entries)
	if err != nil {
		return nil, err
	}
	st, err := slip.ParseMerchantSlipStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return slip.RestoreMerchantSlip(dto.ID, dto.Party, dto.Date.UTC(), st, entries, dto.CreatedAt.UTC())
}
