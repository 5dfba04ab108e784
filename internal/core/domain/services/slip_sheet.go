package services

import (
	"strconv"
	"strings"
	"time"

	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
)

// DisplayNamer resolves a status code to its localized name.
type DisplayNamer interface {
	DisplayName(code status.Code) string
}

// SlipSheetRow is one printed line of a slip.
type SlipSheetRow struct {
	Index        int
	OrderNumber  string
	OrderID      string
	Recipient    string
	Address      string
	ReturnReason string
	ItemPrice    string
}

// SlipSheet is the deterministic table printed for a slip: one row per entry
// in slip order, then a total row.
type SlipSheet struct {
	SlipID         string
	Stage          slip.Stage
	Party          string
	Date           string
	ItemCount      int
	Rows           []SlipSheetRow
	TotalItemPrice string
}

// BuildSlipSheet lays out entries for printing. The return reason is the
// display name of the status each order held before it was returned.
func BuildSlipSheet(
	slipID string,
	stage slip.Stage,
	party string,
	date time.Time,
	entries []slip.Entry,
	names DisplayNamer,
) SlipSheet {
	rows := make([]SlipSheetRow, 0, len(entries))
	for i, e := range entries {
		reason := ""
		if e.PreviousStatus != "" {
			reason = names.DisplayName(e.PreviousStatus)
		}
		rows = append(rows, SlipSheetRow{
			Index:        i + 1,
			OrderNumber:  strconv.FormatInt(e.OrderNumber, 10),
			OrderID:      e.OrderID.String(),
			Recipient:    joinNonEmpty(e.Recipient, e.Phone),
			Address:      joinNonEmpty(e.City, e.Address),
			ReturnReason: reason,
			ItemPrice:    e.Money.ItemPrice.String(),
		})
	}

	return SlipSheet{
		SlipID:         slipID,
		Stage:          stage,
		Party:          party,
		Date:           date.Format("2006-01-02"),
		ItemCount:      len(entries),
		Rows:           rows,
		TotalItemPrice: ComputeTotals(entries).ItemPrice.StringFixed(2),
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " - ")
}
