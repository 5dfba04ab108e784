package commands

import (
	"html"
	"strings"

	"deliveryops/internal/core/domain/model/order"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from free text. Entities escaped by the policy
// are decoded again because templates escape on output.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func sanitizeDetails(d order.Details) order.Details {
	return order.Details{
		Recipient: sanitizeText(d.Recipient),
		Phone:     sanitizeText(d.Phone),
		Address:   sanitizeText(d.Address),
		City:      sanitizeText(d.City),
		Region:    sanitizeText(d.Region),
		Merchant:  sanitizeText(d.Merchant),
		Notes:     sanitizeText(d.Notes),
		Date:      strings.TrimSpace(d.Date),
	}
}
