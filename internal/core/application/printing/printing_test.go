package printing_test

import (
	"strings"
	"testing"

	"deliveryops/internal/core/application/printing"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/services"

	"github.com/PuerkitoBio/goquery"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driverSheet() services.SlipSheet {
	return services.SlipSheet{
		SlipID:    "dsl_01JPA3KX6M8ZB7N2Q4R5S6T7V8",
		Stage:     slip.StageDriver,
		Party:     "A",
		Date:      "2025-03-14",
		ItemCount: 2,
		Rows: []services.SlipSheetRow{
			{
				Index:        1,
				OrderNumber:  "101",
				OrderID:      "5b8f7a52-6c1e-4f1a-9d3e-0a1b2c3d4e5f",
				Recipient:    "Ali - 0790000000",
				Address:      "Amman - Street 1",
				ReturnReason: "جاري التوصيل",
				ItemPrice:    "10.00",
			},
			{
				Index:        2,
				OrderNumber:  "102",
				OrderID:      "7c9e8b63-1d2f-4a5b-8c6d-1e2f3a4b5c6d",
				Recipient:    "Sara <VIP> - 0791111111",
				Address:      "Irbid",
				ReturnReason: "مؤجل",
				ItemPrice:    "20.50",
			},
		},
		TotalItemPrice: "30.50",
	}
}

func TestRenderSlipHTML_Golden(t *testing.T) {
	html, err := printing.RenderSlipHTML(driverSheet())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "driver_slip", []byte(html))
}

func TestRenderSlipHTML_Structure(t *testing.T) {
	html, err := printing.RenderSlipHTML(driverSheet())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	rows := doc.Find("table.entries tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "7c9e8b63-1d2f-4a5b-8c6d-1e2f3a4b5c6d", rows.Eq(1).AttrOr("data-order-id", ""))
	assert.Equal(t, "Sara <VIP> - 0791111111", rows.Eq(1).Find("td").Eq(2).Text())
	assert.Equal(t, "مؤجل", rows.Eq(1).Find("td").Eq(4).Text())
	assert.Equal(t, "30.50", doc.Find("tfoot .total").Text())
	assert.Equal(t, "2", doc.Find("dd.item-count").Text())
	assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
}

func TestRenderSlipHTML_MerchantLabels(t *testing.T) {
	sheet := driverSheet()
	sheet.Stage = slip.StageMerchant
	sheet.Party = "M1"

	html, err := printing.RenderSlipHTML(sheet)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "كشف تسليم مرتجعات للتاجر", doc.Find("h1").Text())
	assert.Equal(t, "M1", doc.Find("dd.party").Text())
}

func TestRenderSlipHTML_UnknownStage(t *testing.T) {
	sheet := driverSheet()
	sheet.Stage = "courier"

	_, err := printing.RenderSlipHTML(sheet)

	require.Error(t, err)
}
