package ledger

import (
	"fmt"
	"strings"
	"time"

	"car-rental-backend/ledger/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet the ledger lives on.
const SheetName = "Reservations"

const (
	displayTimeFormat = "02/01/2006 15:04"
	currencySuffix    = " KMF"
)

const (
	colSubmissionDate   = "Submission Date"
	colFirstName        = "First Name"
	colLastName         = "Last Name"
	colBirthday         = "Birthday"
	colPhone            = "Phone"
	colAddress          = "Address"
	colNeighbourhood    = "Neighbourhood"
	colBudget           = "Budget"
	colPickupDate       = "Pickup Date"
	colReturnDate       = "Return Date"
	colPickupLocation   = "Pickup Location"
	colSpecificLocation = "Specific Location"
	colPassportFile     = "Passport File"
	colLicenseFile      = "License File"
	colReservationID    = "Reservation ID"
)

var ledgerHeaders = []string{
	colSubmissionDate,
	colFirstName,
	colLastName,
	colBirthday,
	colPhone,
	colAddress,
	colNeighbourhood,
	colBudget,
	colPickupDate,
	colReturnDate,
	colPickupLocation,
	colSpecificLocation,
	colPassportFile,
	colLicenseFile,
	colReservationID,
}

var ledgerColumnWidths = []float64{20, 15, 15, 18, 15, 30, 20, 12, 18, 18, 15, 30, 30, 30, 38}

// encodeWorkbook builds a fresh workbook holding the full record
// sequence on the Reservations sheet. The sheet is always rebuilt
// whole so formatting stays consistent.
func encodeWorkbook(records []models.Reservation) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name ledger sheet: %w", err)
	}

	for i, header := range ledgerHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetName, col, col, ledgerColumnWidths[i]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
		if err := f.SetCellValue(SheetName, fmt.Sprintf("%s1", col), header); err != nil {
			return nil, fmt.Errorf("failed to set header %s: %w", header, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(ledgerHeaders))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve last column: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, rec := range records {
		values := []string{
			rec.SubmissionDate.Format(displayTimeFormat),
			rec.FirstName,
			rec.LastName,
			rec.Birthday.Format(displayTimeFormat),
			rec.Phone,
			rec.Address,
			rec.Neighbourhood,
			rec.Budget.String() + currencySuffix,
			rec.PickupDate.Format(displayTimeFormat),
			rec.ReturnDate.Format(displayTimeFormat),
			rec.PickupLocation,
			rec.SpecificLocation,
			rec.PassportFile,
			rec.LicenseFile,
			rec.ID,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell for row %d: %w", i+2, err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	// Status is not a ledger column of its own in the original
	// layout; it rides after the fixed headers only when set.
	statusCol, err := excelize.ColumnNumberToName(len(ledgerHeaders) + 1)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status column: %w", err)
	}
	hasStatus := false
	for i, rec := range records {
		if rec.Status == "" {
			continue
		}
		hasStatus = true
		cell := fmt.Sprintf("%s%d", statusCol, i+2)
		if err := f.SetCellValue(SheetName, cell, rec.Status); err != nil {
			return nil, fmt.Errorf("failed to write status for row %d: %w", i+2, err)
		}
	}
	if hasStatus {
		if err := f.SetCellValue(SheetName, fmt.Sprintf("%s1", statusCol), "Status"); err != nil {
			return nil, fmt.Errorf("failed to set status header: %w", err)
		}
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("%s1", statusCol), fmt.Sprintf("%s1", statusCol), headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style status header: %w", err)
		}
	}

	return f, nil
}

// decodeWorkbook maps the Reservations sheet back to records, keyed
// by header name so column order does not matter on read. A missing
// sheet decodes to an empty sequence. Cell values are accepted in
// either the raw RFC 3339 form or the display rendering the encoder
// produces; unreadable cells degrade to zero values rather than
// failing the whole ledger.
func decodeWorkbook(f *excelize.File) ([]models.Reservation, error) {
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil || idx == -1 {
		return nil, nil
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headerIndex := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		headerIndex[strings.TrimSpace(header)] = i
	}

	records := make([]models.Reservation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := headerIndex[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		records = append(records, models.Reservation{
			ID:               cell(colReservationID),
			SubmissionDate:   parseLedgerTime(cell(colSubmissionDate)),
			FirstName:        cell(colFirstName),
			LastName:         cell(colLastName),
			Birthday:         parseLedgerTime(cell(colBirthday)),
			Phone:            cell(colPhone),
			Address:          cell(colAddress),
			Neighbourhood:    cell(colNeighbourhood),
			Budget:           parseLedgerBudget(cell(colBudget)),
			PickupDate:       parseLedgerTime(cell(colPickupDate)),
			ReturnDate:       parseLedgerTime(cell(colReturnDate)),
			PickupLocation:   cell(colPickupLocation),
			SpecificLocation: cell(colSpecificLocation),
			PassportFile:     cell(colPassportFile),
			LicenseFile:      cell(colLicenseFile),
			Status:           cell("Status"),
		})
	}
	return records, nil
}

var ledgerTimeFormats = []string{
	time.RFC3339,
	displayTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

func parseLedgerTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, format := range ledgerTimeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseLedgerBudget(value string) decimal.Decimal {
	value = strings.TrimSpace(strings.TrimSuffix(value, currencySuffix))
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
