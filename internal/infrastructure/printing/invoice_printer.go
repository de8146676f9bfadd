package printing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/config"
)

// InvoicePrinter renders invoices to downloadable PDF documents
type InvoicePrinter struct {
	renderer Renderer
	hotel    HotelInfo
	logger   *zap.Logger
}

// NewInvoicePrinter creates an InvoicePrinter backed by the given renderer
func NewInvoicePrinter(renderer Renderer, cfg config.PrintingConfig, logger *zap.Logger) *InvoicePrinter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoicePrinter{
		renderer: renderer,
		hotel: HotelInfo{
			Name:    cfg.HotelName,
			Address: cfg.HotelAddress,
			Phone:   cfg.HotelPhone,
		},
		logger: logger,
	}
}

// PrintInvoice renders the invoice with its payment history to PDF bytes.
// Returns the document and the attachment filename.
func (p *InvoicePrinter) PrintInvoice(ctx context.Context, inv *billing.Invoice) ([]byte, string, error) {
	html, err := BuildInvoiceHTML(inv, p.hotel)
	if err != nil {
		return nil, "", fmt.Errorf("building invoice html: %w", err)
	}

	pdf, err := p.renderer.Render(ctx, html)
	if err != nil {
		p.logger.Error("invoice pdf rendering failed",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Error(err))
		return nil, "", err
	}

	return pdf, InvoiceFileName(inv.InvoiceNumber), nil
}
