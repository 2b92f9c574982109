package service

import (
	"context"
	"fmt"
	"log"

	"github.com/gastrosys/pos-api/internal/domain/entity"
	"github.com/gastrosys/pos-api/internal/domain/report"
	"github.com/gastrosys/pos-api/internal/domain/repository"
	"github.com/gastrosys/pos-api/pkg/apperror"
	"github.com/gastrosys/pos-api/pkg/printer"
	"github.com/gastrosys/pos-api/pkg/utils"
	"github.com/google/uuid"
)

// PrinterService formats bill receipts and shift reports and sends them to
// the thermal printer.
type PrinterService struct {
	printer   printer.Printer
	billRepo  repository.BillRepository
	orderRepo repository.OrderRepository
	width     int
	enabled   bool
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	width int,
	enabled bool,
) *PrinterService {
	if width <= 0 {
		width = 42
	}
	return &PrinterService{
		printer:   p,
		billRepo:  billRepo,
		orderRepo: orderRepo,
		width:     width,
		enabled:   enabled,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool `json:"configured"`
	Connected  bool `json:"connected"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.enabled,
		Connected:  s.printer.IsConnected(),
	}
}

// PrintBillReceipt fetches a bill with its order and prints the receipt.
// The assembled receipt is returned either way so the handler can show it
// when no printer is attached.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	order, err := s.orderRepo.GetWithItems(ctx, bill.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			VenueName: "GastroSys",
		},
		ReceiptNo:     utils.GenerateReceiptNo(),
		Date:          bill.IssueDate.Format("2006-01-02 15:04"),
		PaymentMethod: bill.PaymentMethod.String(),
		Subtotal:      bill.Subtotal,
		Discount:      bill.Discount,
		Total:         bill.Total,
	}
	if order.Table != nil {
		receipt.TableNumber = order.Table.Number
	}
	if order.Employee != nil {
		receipt.Waiter = order.Employee.Name
	}
	if bill.Customer != nil {
		receipt.Customer = bill.Customer.Name
	}

	for i := range order.Items {
		item := &order.Items[i]
		name := "Article"
		if item.Article != nil {
			name = item.Article.Name
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.LineTotal(),
		})
	}

	data := s.formatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", billID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// PrintShiftReport prints an end-of-shift report.
func (s *PrinterService) PrintShiftReport(rpt *report.EnhancedShiftReport) error {
	if err := s.printer.Print(s.formatShiftReport(rpt)); err != nil {
		return fmt.Errorf("failed to print shift report: %w", err)
	}
	return nil
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.VenueName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)
	if r.TableNumber > 0 {
		doc.KeyValue("Table:", fmt.Sprintf("%d", r.TableNumber))
	}
	if r.Waiter != "" {
		doc.KeyValue("Waiter:", r.Waiter)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total.StringFixed(2))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice.StringFixed(2))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", r.Subtotal.StringFixed(2))
	if r.Discount.IsPositive() {
		doc.KeyValue("Discount:", r.Discount.StringFixed(2))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.StringFixed(2)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your visit!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// formatShiftReport converts an enriched shift report into ESC/POS bytes.
func (s *PrinterService) formatShiftReport(rpt *report.EnhancedShiftReport) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("SHIFT REPORT").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(rpt.ReportDate.Format("2006-01-02")).
		SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Shift start:", rpt.ShiftStartTime.Format("15:04"))
	if rpt.ShiftEndTime != nil {
		doc.KeyValue("Shift end:", rpt.ShiftEndTime.Format("15:04"))
	}

	doc.Separator('-')
	doc.KeyValue("Income:", rpt.TotalIncome.StringFixed(2)).
		KeyValue("Discount:", rpt.TotalDiscount.StringFixed(2)).
		KeyValue("Orders:", fmt.Sprintf("%d", rpt.TotalOrders)).
		KeyValue("Guests:", fmt.Sprintf("%d", rpt.TotalPax))

	if len(rpt.PaymentBreakdown) > 0 {
		doc.Separator('-').
			SetBold(true).Text("Payments").SetBold(false)
		for _, b := range rpt.PaymentBreakdown {
			doc.KeyValue(fmt.Sprintf("%s (%d):", b.Method, b.TransactionCount), b.TotalRevenue.StringFixed(2))
		}
	}

	if len(rpt.CategoryBreakdown) > 0 {
		doc.Separator('-').
			SetBold(true).Text("Categories").SetBold(false)
		for _, b := range rpt.CategoryBreakdown {
			doc.KeyValue(fmt.Sprintf("%s (%d):", b.Category, b.LineItemCount), b.TotalIncome.StringFixed(2))
		}
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
