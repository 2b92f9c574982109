// Package excel exports sales figures to XLSX workbooks.
package excel

import (
	"bytes"
	"fmt"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// ExportSalesRange writes a workbook with one sheet of daily report rows
// and a summary row, plus a sheet ranking the most sold articles.
func ExportSalesRange(reports []entity.DailyReport, totals *report.SalesRangeReport, mostSold []report.ArticleSales) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const daily = "Daily Reports"
	f.SetSheetName("Sheet1", daily)

	headers := []string{"Date", "Shift Start", "Shift End", "Income", "Discount", "Orders", "Guests"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(daily, cell, h)
	}

	row := 2
	for i := range reports {
		r := &reports[i]
		end := ""
		if r.ShiftEndTime != nil {
			end = r.ShiftEndTime.Format("15:04")
		}
		f.SetCellValue(daily, fmt.Sprintf("A%d", row), r.ReportDate.Format("2006-01-02"))
		f.SetCellValue(daily, fmt.Sprintf("B%d", row), r.ShiftStartTime.Format("15:04"))
		f.SetCellValue(daily, fmt.Sprintf("C%d", row), end)
		f.SetCellValue(daily, fmt.Sprintf("D%d", row), r.TotalIncome.InexactFloat64())
		f.SetCellValue(daily, fmt.Sprintf("E%d", row), r.TotalDiscount.InexactFloat64())
		f.SetCellValue(daily, fmt.Sprintf("F%d", row), r.TotalOrders)
		f.SetCellValue(daily, fmt.Sprintf("G%d", row), r.TotalPax)
		row++
	}

	if totals != nil {
		row++
		f.SetCellValue(daily, fmt.Sprintf("A%d", row), "TOTAL")
		f.SetCellValue(daily, fmt.Sprintf("D%d", row), totals.TotalIncome.InexactFloat64())
		f.SetCellValue(daily, fmt.Sprintf("E%d", row), totals.TotalDiscount.InexactFloat64())
		f.SetCellValue(daily, fmt.Sprintf("F%d", row), totals.TotalOrders)
		f.SetCellValue(daily, fmt.Sprintf("G%d", row), totals.TotalPax)
	}

	const ranking = "Most Sold"
	if _, err := f.NewSheet(ranking); err != nil {
		return nil, err
	}
	f.SetCellValue(ranking, "A1", "Article")
	f.SetCellValue(ranking, "B1", "Quantity Sold")
	f.SetCellValue(ranking, "C1", "Income")
	for i, a := range mostSold {
		f.SetCellValue(ranking, fmt.Sprintf("A%d", i+2), a.ArticleName)
		f.SetCellValue(ranking, fmt.Sprintf("B%d", i+2), a.QuantitySold)
		f.SetCellValue(ranking, fmt.Sprintf("C%d", i+2), a.TotalIncome.InexactFloat64())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write sales workbook: %w", err)
	}
	return buf.Bytes(), nil
}
