package queries

import (
	"errors"
	"strings"

	"deliveryops/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders filtered by driver, merchant and status. Every
// filter is optional; statuses may be codes or display names.
//
// Example:
//
//	query := NewGetOrdersQuery("A", "", []string{"returned_by_driver"})
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	driver   string
	merchant string
	statuses []string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery trims the filters and drops blank statuses.
func NewGetOrdersQuery(driver, merchant string, statuses []string) GetOrdersQuery {
	kept := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return GetOrdersQuery{
		driver:   strings.TrimSpace(driver),
		merchant: strings.TrimSpace(merchant),
		statuses: kept,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Driver() string {
	return q.driver
}

func (q GetOrdersQuery) Merchant() string {
	return q.merchant
}

func (q GetOrdersQuery) Statuses() []string {
	return append([]string(nil), q.statuses...)
}
