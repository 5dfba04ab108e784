package slip

import (
	"fmt"

	"deliveryops/internal/pkg/errs"
)

// MerchantSlipStatus tracks whether the merchant has collected a slip's returns.
//
//	ReadyForPickup ──> DeliveredToMerchant
type MerchantSlipStatus int

const (
	// UnknownMerchantSlipStatus catches uninitialised values.
	UnknownMerchantSlipStatus MerchantSlipStatus = iota
	ReadyForPickup
	DeliveredToMerchant
)

func merchantSlipStatusStrings() map[MerchantSlipStatus]string {
	return map[MerchantSlipStatus]string{
		ReadyForPickup:      "ready_for_pickup",
		DeliveredToMerchant: "delivered_to_merchant",
	}
}

// ParseMerchantSlipStatus maps the stored or wire form back to a status.
func ParseMerchantSlipStatus(s string) (MerchantSlipStatus, error) {
	for st, str := range merchantSlipStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return UnknownMerchantSlipStatus, errs.NewValueIsInvalidErrorWithCause("merchantSlipStatus",
		fmt.Errorf("%q is not a merchant slip status", s))
}

// Validate rejects UnknownMerchantSlipStatus and out-of-range values.
func (s MerchantSlipStatus) Validate() error {
	if _, ok := merchantSlipStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("merchantSlipStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s MerchantSlipStatus) String() string {
	if str, ok := merchantSlipStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
