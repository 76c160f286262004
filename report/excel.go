package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// SheetName is the title of the single report worksheet.
const SheetName = "Overdue"

var header = []any{"Furniture type", "Overdue unit count"}

// Row is one rendered report line.
type Row struct {
	Type  string
	Count int
}

// SortedRows orders the aggregation result by count descending; ties go
// by type name ascending so output is deterministic.
func SortedRows(result map[string]int) []Row {
	rows := make([]Row, 0, len(result))
	for t, n := range result {
		rows = append(rows, Row{Type: t, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}

// WriteOverdueReport renders the aggregation as a two-column xlsx file
// and returns the output path.
func WriteOverdueReport(result map[string]int, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("overdue report: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("overdue report: %w", err)
	}
	for i, row := range SortedRows(result) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("overdue report: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{row.Type, row.Count}); err != nil {
			return "", fmt.Errorf("overdue report: %w", err)
		}
	}
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("overdue report: %w", err)
	}
	return outputPath, nil
}
