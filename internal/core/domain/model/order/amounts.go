package order

import "deliveryops/internal/core/domain/model/kernel"

// Amounts groups the money fields of an order. All values are non-negative by
// construction of kernel.Amount.
type Amounts struct {
	COD                  kernel.Amount
	ItemPrice            kernel.Amount
	DeliveryFee          kernel.Amount
	AdditionalCost       kernel.Amount
	DriverFee            kernel.Amount
	DriverAdditionalFare kernel.Amount
}
