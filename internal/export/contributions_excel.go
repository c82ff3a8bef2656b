package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nthenya/chamabot/internal/models"
)

// ContributionsWorkbook dumps one month's ledger to a spreadsheet, one row
// per member in the same order the report uses.
func ContributionsWorkbook(periodName string, entries []models.PeriodEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Contributions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Member", "Category", "Amount (KES)", "Paid", "Recorded"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	var total int64
	for _, category := range models.CategoryOrder {
		for _, e := range entries {
			if e.Category != category {
				continue
			}
			_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.MemberName)
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(e.Category))
			_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Amount)
			_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Paid)
			_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.Recorded)
			if e.Paid {
				total += e.Amount
			}
			row++
		}
	}

	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), fmt.Sprintf("%s total", periodName))
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row+1), total)
	return f, nil
}
