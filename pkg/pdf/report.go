// Package pdf renders shift reports to PDF for archiving and email
// attachments.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

// RenderShiftReport renders an enriched shift report to a single-page PDF.
func RenderShiftReport(rpt *report.EnhancedShiftReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shift Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Shift Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, rpt.ReportDate.Format("Monday, 2 January 2006"))
	pdf.Ln(6)

	window := fmt.Sprintf("Shift: %s -", rpt.ShiftStartTime.Format("15:04"))
	if rpt.ShiftEndTime != nil {
		window = fmt.Sprintf("Shift: %s - %s", rpt.ShiftStartTime.Format("15:04"), rpt.ShiftEndTime.Format("15:04"))
	}
	pdf.Cell(0, 8, window)
	pdf.Ln(10)

	// Totals block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Total income", rpt.TotalIncome.StringFixed(2))
	writeRow(pdf, "Total discount", rpt.TotalDiscount.StringFixed(2))
	writeRow(pdf, "Orders served", fmt.Sprintf("%d", rpt.TotalOrders))
	writeRow(pdf, "Guests", fmt.Sprintf("%d", rpt.TotalPax))
	pdf.Ln(6)

	if len(rpt.PaymentBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Payments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, b := range rpt.PaymentBreakdown {
			writeRow(pdf, fmt.Sprintf("%s (%d transactions)", b.Method, b.TransactionCount), b.TotalRevenue.StringFixed(2))
		}
		pdf.Ln(6)
	}

	if len(rpt.CategoryBreakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Sales by category")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, b := range rpt.CategoryBreakdown {
			writeRow(pdf, fmt.Sprintf("%s (%d items)", b.Category, b.LineItemCount), b.TotalIncome.StringFixed(2))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render shift report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(40, 7, value, "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
