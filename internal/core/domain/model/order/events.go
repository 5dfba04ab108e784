package order

import (
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/status"
)

// Created is recorded when a new order enters the system.
type Created struct {
	OrderID     kernel.UUID
	OrderNumber int64
	OccurredAt  time.Time
}

// StatusChanged is recorded on every status change, including the automatic
// transitions performed when an order is placed on a slip.
type StatusChanged struct {
	OrderID        kernel.UUID
	Status         status.Code
	PreviousStatus status.Code
	DriverName     string
	OccurredAt     time.Time
}
