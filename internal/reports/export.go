package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Exporter renders report output as an Excel workbook.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new report exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Write renders the columns and rows onto a single sheet and writes the
// workbook to w. Nil cell values stay empty, matching the blank
// continuation cells of the flattened report.
func (e *Exporter) Write(w io.Writer, sheet string, columns []Column, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, column := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, column.Label); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Exported report workbook",
		zap.String("sheet", sheet),
		zap.Int("rows", len(rows)))
	return nil
}

// VehiclePLValues flattens vehicle P/L rows in column order for export.
func VehiclePLValues(rows []*VehiclePLRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Vehicle, r.EmployeeName, r.TotalCredit, r.TotalDebit, r.ProfitLoss,
		})
	}
	return out
}

// VehicleJobPLValues flattens job-assignment P/L rows in column order
// for export, keeping blank aggregate cells blank.
func VehicleJobPLValues(rows []*VehicleJobPLRow) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Vehicle, r.JobRecord, r.DriverName,
			cellValue(r.TotalCredit), cellValue(r.VehicleTotalCredit),
			r.JournalEntry, r.Account,
			cellValue(r.JEDebit), cellValue(r.TotalDebit), cellValue(r.ProfitLoss),
		})
	}
	return out
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
