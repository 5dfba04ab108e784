package services_test

import (
	"testing"
	"time"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/core/domain/model/kernel/kerneltest"
	"deliveryops/internal/core/domain/model/order"
	"deliveryops/internal/core/domain/model/slip"
	"deliveryops/internal/core/domain/model/status"
	"deliveryops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlipSheet(t *testing.T) {
	id1, err := kernel.UUIDFromString("00000000-0000-0000-0000-00000000000a")
	require.NoError(t, err)
	id2, err := kernel.UUIDFromString("00000000-0000-0000-0000-00000000000b")
	require.NoError(t, err)

	entries := []slip.Entry{
		{
			OrderID: id1, OrderNumber: 101, Recipient: "Ali", Phone: "0790000001",
			City: "Amman", Address: "Street 1", PreviousStatus: status.Postponed,
			Money: order.Amounts{ItemPrice: kerneltest.Amount("12.5")},
		},
		{
			OrderID: id2, OrderNumber: 102, Recipient: "Sara",
			Address: "Street 2", PreviousStatus: status.OutForDelivery,
			Money: order.Amounts{ItemPrice: kerneltest.Amount("7")},
		},
	}
	date := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)

	sheet := services.BuildSlipSheet("dsl_X", slip.StageDriver, "B", date, entries, status.DefaultRegistry())

	assert.Equal(t, "2025-03-14", sheet.Date)
	assert.Equal(t, 2, sheet.ItemCount)
	assert.Equal(t, "19.50", sheet.TotalItemPrice)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, services.SlipSheetRow{
		Index:        1,
		OrderNumber:  "101",
		OrderID:      id1.String(),
		Recipient:    "Ali - 0790000001",
		Address:      "Amman - Street 1",
		ReturnReason: "مؤجل",
		ItemPrice:    "12.50",
	}, sheet.Rows[0])
	assert.Equal(t, 2, sheet.Rows[1].Index)
	assert.Equal(t, "Sara", sheet.Rows[1].Recipient)
	assert.Equal(t, "Street 2", sheet.Rows[1].Address)
	assert.Equal(t, "جاري التوصيل", sheet.Rows[1].ReturnReason)
}
