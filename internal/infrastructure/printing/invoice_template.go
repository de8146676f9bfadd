package printing

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
)

// HotelInfo holds the letterhead details shown on rendered invoices
type HotelInfo struct {
	Name    string
	Address string
	Phone   string
}

// invoiceView is the template data for a rendered invoice
type invoiceView struct {
	Hotel              HotelInfo
	InvoiceNumber      string
	ServiceType        string
	ServiceDescription string
	Status             string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerAddress    string
	InvoiceDate        string
	DueDate            string
	Subtotal           string
	TaxAmount          string
	DiscountAmount     string
	TotalAmount        string
	PaidAmount         string
	RemainingAmount    string
	Notes              string
	Payments           []paymentView
}

type paymentView struct {
	Date          string
	Method        string
	TransactionID string
	Status        string
	Amount        string
}

const invoiceDateLayout = "Jan 02, 2006"

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; font-size: 13px; }
  .header { border-bottom: 2px solid #2c3e50; padding-bottom: 12px; margin-bottom: 20px; }
  .header h1 { margin: 0; color: #2c3e50; font-size: 24px; }
  .header p { margin: 2px 0; color: #666; }
  .meta { width: 100%; margin-bottom: 20px; }
  .meta td { vertical-align: top; padding: 2px 0; }
  .meta .label { color: #888; width: 120px; }
  .status { text-transform: uppercase; font-weight: bold; }
  h2 { font-size: 15px; color: #2c3e50; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  table.lines { width: 100%; border-collapse: collapse; margin-bottom: 18px; }
  table.lines th { background: #2c3e50; color: #fff; text-align: left; padding: 6px 8px; }
  table.lines td { border-bottom: 1px solid #eee; padding: 6px 8px; }
  table.lines td.amount, table.lines th.amount { text-align: right; }
  .totals { width: 280px; margin-left: auto; border-collapse: collapse; }
  .totals td { padding: 4px 8px; }
  .totals td.amount { text-align: right; }
  .totals tr.grand td { border-top: 2px solid #2c3e50; font-weight: bold; }
  .placeholder { color: #999; font-style: italic; text-align: center; }
  .notes { margin-top: 24px; color: #555; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.Hotel.Name}}</h1>
    {{if .Hotel.Address}}<p>{{.Hotel.Address}}</p>{{end}}
    {{if .Hotel.Phone}}<p>{{.Hotel.Phone}}</p>{{end}}
  </div>

  <table class="meta">
    <tr>
      <td>
        <table>
          <tr><td class="label">Invoice #</td><td>{{.InvoiceNumber}}</td></tr>
          <tr><td class="label">Invoice date</td><td>{{.InvoiceDate}}</td></tr>
          <tr><td class="label">Due date</td><td>{{.DueDate}}</td></tr>
          <tr><td class="label">Status</td><td class="status">{{.Status}}</td></tr>
        </table>
      </td>
      <td>
        <table>
          <tr><td class="label">Billed to</td><td>{{.CustomerName}}</td></tr>
          {{if .CustomerEmail}}<tr><td class="label">Email</td><td>{{.CustomerEmail}}</td></tr>{{end}}
          {{if .CustomerPhone}}<tr><td class="label">Phone</td><td>{{.CustomerPhone}}</td></tr>{{end}}
          {{if .CustomerAddress}}<tr><td class="label">Address</td><td>{{.CustomerAddress}}</td></tr>{{end}}
        </table>
      </td>
    </tr>
  </table>

  <h2>Services</h2>
  <table class="lines">
    <tr><th>Description</th><th class="amount">Amount</th></tr>
    <tr><td>{{.ServiceDescription}}</td><td class="amount">{{.Subtotal}}</td></tr>
  </table>

  <h2>Payment history</h2>
  <table class="lines">
    <tr><th>Date</th><th>Method</th><th>Reference</th><th>Status</th><th class="amount">Amount</th></tr>
    {{if .Payments}}{{range .Payments}}
    <tr>
      <td>{{.Date}}</td>
      <td>{{.Method}}</td>
      <td>{{.TransactionID}}</td>
      <td>{{.Status}}</td>
      <td class="amount">{{.Amount}}</td>
    </tr>
    {{end}}{{else}}
    <tr><td colspan="5" class="placeholder">No payments recorded</td></tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="amount">{{.Subtotal}}</td></tr>
    <tr><td>Tax</td><td class="amount">{{.TaxAmount}}</td></tr>
    <tr><td>Discount</td><td class="amount">-{{.DiscountAmount}}</td></tr>
    <tr class="grand"><td>Total</td><td class="amount">{{.TotalAmount}}</td></tr>
    <tr><td>Paid</td><td class="amount">{{.PaidAmount}}</td></tr>
    <tr class="grand"><td>Balance due</td><td class="amount">{{.RemainingAmount}}</td></tr>
  </table>

  {{if .Notes}}<div class="notes"><strong>Notes:</strong> {{.Notes}}</div>{{end}}
</body>
</html>`))

// BuildInvoiceHTML renders the invoice document to HTML
func BuildInvoiceHTML(inv *billing.Invoice, hotel HotelInfo) (string, error) {
	view := invoiceView{
		Hotel:              hotel,
		InvoiceNumber:      inv.InvoiceNumber,
		ServiceType:        inv.InvoiceType.DisplayName(),
		ServiceDescription: inv.ServiceDescription(),
		Status:             string(inv.Status),
		CustomerName:       inv.CustomerName,
		CustomerEmail:      inv.CustomerEmail,
		CustomerPhone:      inv.CustomerPhone,
		CustomerAddress:    inv.CustomerAddress,
		InvoiceDate:        inv.InvoiceDate.Format(invoiceDateLayout),
		DueDate:            inv.DueDate.Format(invoiceDateLayout),
		Subtotal:           formatAmount(inv.Subtotal.StringFixed(2)),
		TaxAmount:          formatAmount(inv.TaxAmount.StringFixed(2)),
		DiscountAmount:     formatAmount(inv.DiscountAmount.StringFixed(2)),
		TotalAmount:        formatAmount(inv.TotalAmount.StringFixed(2)),
		PaidAmount:         formatAmount(inv.PaidAmount.StringFixed(2)),
		RemainingAmount:    formatAmount(inv.RemainingAmount().StringFixed(2)),
		Notes:              inv.Notes,
	}

	for _, p := range inv.Payments {
		view.Payments = append(view.Payments, paymentView{
			Date:          p.PaymentDate.Format(invoiceDateLayout),
			Method:        methodLabel(string(p.PaymentMethod)),
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
			Amount:        formatAmount(p.Amount.StringFixed(2)),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatAmount(s string) string {
	return "$" + s
}

func methodLabel(method string) string {
	words := strings.Split(strings.ReplaceAll(method, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// InvoiceFileName returns the attachment name for an invoice PDF
func InvoiceFileName(invoiceNumber string) string {
	return "Invoice_" + invoiceNumber + ".pdf"
}
