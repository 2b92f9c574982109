package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/gastrosys/pos-api/internal/domain/report"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendShiftReportEmail mails the end-of-shift report to management
func (s *EmailService) SendShiftReportEmail(toEmail string, rpt *report.EnhancedShiftReport) error {
	htmlContent, err := s.renderShiftReportEmail(rpt)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Shift Report - %s", rpt.ReportDate.Format("2006-01-02"))
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderShiftReportEmail renders the shift report email template
func (s *EmailService) renderShiftReportEmail(rpt *report.EnhancedShiftReport) (string, error) {
	tmpl, err := template.New("shift_report").Parse(shiftReportTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Report  *report.EnhancedShiftReport
		Date    string
		AppName string
	}{
		Report:  rpt,
		Date:    rpt.ReportDate.Format("Monday, 2 January 2006"),
		AppName: "GastroSys",
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// shiftReportTemplate is the HTML template for end-of-shift report emails
const shiftReportTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Shift Report</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
                            <p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Shift Report &mdash; {{.Date}}</p>
                        </td>
                    </tr>

                    <!-- Totals -->
                    <tr>
                        <td style="padding: 40px 30px;">
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="color: #4a5568; font-size: 16px; padding: 8px 0;">Total income</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Report.TotalIncome}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #4a5568; font-size: 16px; padding: 8px 0;">Total discount</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Report.TotalDiscount}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #4a5568; font-size: 16px; padding: 8px 0;">Orders served</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Report.TotalOrders}}</td>
                                </tr>
                                <tr>
                                    <td style="color: #4a5568; font-size: 16px; padding: 8px 0;">Guests</td>
                                    <td style="color: #1a1a2e; font-size: 16px; font-weight: 600; text-align: right;">{{.Report.TotalPax}}</td>
                                </tr>
                            </table>

                            {{if .Report.PaymentBreakdown}}
                            <h2 style="color: #1a1a2e; margin: 30px 0 10px 0; font-size: 18px; font-weight: 600;">Payments</h2>
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                {{range .Report.PaymentBreakdown}}
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 6px 0; border-bottom: 1px solid #e2e8f0;">{{.Method}} ({{.TransactionCount}})</td>
                                    <td style="color: #1a1a2e; font-size: 14px; text-align: right; border-bottom: 1px solid #e2e8f0;">{{.TotalRevenue}}</td>
                                </tr>
                                {{end}}
                            </table>
                            {{end}}

                            {{if .Report.CategoryBreakdown}}
                            <h2 style="color: #1a1a2e; margin: 30px 0 10px 0; font-size: 18px; font-weight: 600;">Sales by category</h2>
                            <table role="presentation" style="width: 100%; border-collapse: collapse;">
                                {{range .Report.CategoryBreakdown}}
                                <tr>
                                    <td style="color: #4a5568; font-size: 14px; padding: 6px 0; border-bottom: 1px solid #e2e8f0;">{{.Category}} ({{.LineItemCount}})</td>
                                    <td style="color: #1a1a2e; font-size: 14px; text-align: right; border-bottom: 1px solid #e2e8f0;">{{.TotalIncome}}</td>
                                </tr>
                                {{end}}
                            </table>
                            {{end}}
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0;">
                                This report was generated automatically by {{.AppName}}
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
