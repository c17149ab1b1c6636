package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReservationsWorkbook(t *testing.T) {
	rows := []ReservationExportRow{
		{
			Code:        "RSV-AB12CD",
			Status:      "confirmed",
			PickupAt:    time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
			DropoffAt:   time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC),
			Currency:    "BAM",
			TotalAmount: 189.54,
		},
	}

	data, err := ReservationsWorkbook(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "code", got)

	got, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "RSV-AB12CD", got)

	got, err = f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01 10:00", got)
}
