package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReservationsWorkbook собирает xlsx-выгрузку броней для операторов.
func ReservationsWorkbook(rows []ReservationExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"code",
		"status",
		"pickup_at",
		"dropoff_at",
		"currency",
		"total_amount",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rowIdx := 2
	for _, r := range rows {
		excelRow := []interface{}{
			r.Code,
			r.Status,
			r.PickupAt.Format("2006-01-02 15:04"),
			r.DropoffAt.Format("2006-01-02 15:04"),
			r.Currency,
			r.TotalAmount,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write row %d: %w", rowIdx, err)
		}
		rowIdx++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
