// Package kerneltest provides kernel value literals for tests.
package kerneltest

import "deliveryops/internal/core/domain/model/kernel"

// Amount parses s and panics when it is not a valid amount.
func Amount(s string) kernel.Amount {
	a, err := kernel.ParseAmount("amount", s)
	if err != nil {
		panic(err)
	}
	return a
}
