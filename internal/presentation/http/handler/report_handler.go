package handler

import (
	"fmt"
	"net/http"

	"github.com/gastrosys/pos-api/internal/application/service"
	"github.com/gastrosys/pos-api/internal/presentation/http/dto/response"
	"github.com/gastrosys/pos-api/pkg/excel"
	"github.com/gastrosys/pos-api/pkg/pdf"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles shift report and sales analytics HTTP requests
type ReportHandler struct {
	shiftService   *service.ShiftService
	reportService  *service.ReportService
	printerService *service.PrinterService
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	shiftService *service.ShiftService,
	reportService *service.ReportService,
	printerService *service.PrinterService,
) *ReportHandler {
	return &ReportHandler{
		shiftService:   shiftService,
		reportService:  reportService,
		printerService: printerService,
	}
}

// Get handles retrieving one persisted shift report, enriched
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid report id")
		return
	}

	rpt, err := h.shiftService.ReportByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report retrieved successfully", rpt)
}

// ByDate handles retrieving a date's latest shift report
func (h *ReportHandler) ByDate(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rpt, err := h.shiftService.ReportByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report retrieved successfully", rpt)
}

// PaymentMethods handles the per-date payment method breakdown
func (h *ReportHandler) PaymentMethods(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rpt, err := h.reportService.PaymentMethodsByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment method report retrieved successfully", rpt)
}

// PaymentMethodsRange handles the payment method breakdown over a range
func (h *ReportHandler) PaymentMethodsRange(c *gin.Context) {
	start, end, ok := parseRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid range, expected start and end as YYYY-MM-DD")
		return
	}

	buckets, err := h.reportService.PaymentMethodsByRange(c.Request.Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment method report retrieved successfully", buckets)
}

// Categories handles the per-date sales-by-category breakdown
func (h *ReportHandler) Categories(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	buckets, err := h.reportService.CategoryBreakdownByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category breakdown retrieved successfully", buckets)
}

// Sales handles the aggregated sales totals over a date range
func (h *ReportHandler) Sales(c *gin.Context) {
	start, end, ok := parseRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid range, expected start and end as YYYY-MM-DD")
		return
	}

	totals, err := h.reportService.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales report retrieved successfully", totals)
}

// MostSold handles the most-sold article ranking over a date range
func (h *ReportHandler) MostSold(c *gin.Context) {
	start, end, ok := parseRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid range, expected start and end as YYYY-MM-DD")
		return
	}

	articles, err := h.reportService.MostSoldArticles(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Most sold articles retrieved successfully", articles)
}

// CustomerTypes handles the per-date customer type breakdown
func (h *ReportHandler) CustomerTypes(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rpt, err := h.reportService.CustomerTypesByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer type report retrieved successfully", rpt)
}

// CustomerTypesRange handles the customer type breakdown over a range
func (h *ReportHandler) CustomerTypesRange(c *gin.Context) {
	start, end, ok := parseRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid range, expected start and end as YYYY-MM-DD")
		return
	}

	rpt, err := h.reportService.CustomerTypesByRange(c.Request.Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer type report retrieved successfully", rpt)
}

// PDF handles rendering a shift report as a PDF document
func (h *ReportHandler) PDF(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid report id")
		return
	}

	rpt, err := h.shiftService.ReportByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := pdf.RenderShiftReport(rpt)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("shift-report-%s.pdf", rpt.ReportDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Excel handles exporting a sales range as a spreadsheet
func (h *ReportHandler) Excel(c *gin.Context) {
	start, end, ok := parseRangeQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid range, expected start and end as YYYY-MM-DD")
		return
	}

	reports, totals, mostSold, err := h.reportService.SalesExportData(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := excel.ExportSalesRange(reports, totals, mostSold)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-%s-%s.xlsx", start.Format("2006-01-02"), end.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Print handles sending a shift report to the receipt printer
func (h *ReportHandler) Print(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid report id")
		return
	}

	rpt, err := h.shiftService.ReportByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.printerService.PrintShiftReport(rpt); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report printed", rpt)
}

// PrinterStatus handles the receipt printer health probe
func (h *ReportHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}
