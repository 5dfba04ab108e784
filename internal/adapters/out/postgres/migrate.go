package postgres

import (
	"context"
	"fmt"

	"deliveryops/internal/adapters/out/postgres/orderrepo"
	"deliveryops/internal/adapters/out/postgres/sliprepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to dsn. Unique violations surface as gorm.ErrDuplicatedKey so
// repositories can report them as conflicts.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema: tables, the order number sequence
// and the partial unique index over open slip claims.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&sliprepo.SlipDTO{},
		&sliprepo.SlipEntryDTO{},
		&sliprepo.ClaimDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	statements := []string{
		fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", orderrepo.OrderNumberSequence),
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON slip_claims (order_id, stage) WHERE released_at IS NULL",
			sliprepo.OpenClaimIndex,
		),
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
