// Package printing lays out slip sheets as standalone HTML documents for the
// document renderer.
package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/services"
)

//go:embed templates/slip.html.tmpl
var templatesFS embed.FS

var slipTemplate = template.Must(template.ParseFS(templatesFS, "templates/slip.html.tmpl"))

var titles = map[slip.Stage]struct{ title, party string }{
	slip.StageDriver:   {title: "كشف استلام مرتجعات من السائق", party: "السائق"},
	slip.StageMerchant: {title: "كشف تسليم مرتجعات للتاجر", party: "التاجر"},
}

type slipPage struct {
	services.SlipSheet
	Title      string
	PartyLabel string
}

// RenderSlipHTML renders sheet. The output depends only on sheet, so the same
// slip always prints the same document.
func RenderSlipHTML(sheet services.SlipSheet) (string, error) {
	labels, ok := titles[sheet.Stage]
	if !ok {
		return "", fmt.Errorf("unknown slip stage %q", sheet.Stage)
	}

	var buf bytes.Buffer
	if err := slipTemplate.Execute(&buf, slipPage{
		SlipSheet:  sheet,
		Title:      labels.title,
		PartyLabel: labels.party,
	}); err != nil {
		return "", fmt.Errorf("render slip %s: %w", sheet.SlipID, err)
	}
	return buf.String(), nil
}
