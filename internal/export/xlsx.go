package export

import (
	"fmt"
	"time"

	"github.com/Dan9191/rent-portal/internal/models"
	"github.com/xuri/excelize/v2"
)

const rentRollSheet = "Rent Roll"

var rentRollHeader = []any{
	"Lease ID", "Property", "Address", "Tenant", "Rent", "Currency",
	"Total Paid", "Total Due", "Last Payment", "Last Payment Amount",
	"Next Due", "Next Due Amount", "Days Until Due", "Status",
}

// RentRollXLSX renders rows as a single-sheet workbook.
func RentRollXLSX(rows []models.RentRollItem, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rentRollSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Rent Roll",
		Creator: "rent-portal",
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SetSheetRow(rentRollSheet, "A1", &rentRollHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(rentRollHeader), 1)
	if err := f.SetCellStyle(rentRollSheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		fin := r.Financials
		values := []any{
			r.LeaseID,
			r.PropertyTitle,
			r.PropertyAddress,
			r.TenantName,
			r.RentAmount.InexactFloat64(),
			r.Currency,
			fin.TotalPaid.InexactFloat64(),
			fin.TotalDue.InexactFloat64(),
			timestampString(fin.LastPaymentDate),
			fin.LastPaymentAmount.InexactFloat64(),
			dateString(fin.NextDueDate),
			fin.NextDueAmount.InexactFloat64(),
			fin.DaysUntilDue,
			string(r.Status),
		}
		if err := f.SetSheetRow(rentRollSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write lease %d: %w", r.LeaseID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
