package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared/valueobject"
)

// InvoiceService provides invoice creation and management.
type InvoiceService struct {
	invoiceRepo        billing.InvoiceRepository
	paymentRepo        billing.PaymentRepository
	bookingRepo        booking.BookingRepository
	bookingPaymentRepo booking.BookingPaymentRepository
	conferenceRepo     conference.ConferenceBookingRepository
	guestRepo          guest.GuestRepository
	logger             *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	paymentRepo billing.PaymentRepository,
	bookingRepo booking.BookingRepository,
	bookingPaymentRepo booking.BookingPaymentRepository,
	conferenceRepo conference.ConferenceBookingRepository,
	guestRepo guest.GuestRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:        invoiceRepo,
		paymentRepo:        paymentRepo,
		bookingRepo:        bookingRepo,
		bookingPaymentRepo: bookingPaymentRepo,
		conferenceRepo:     conferenceRepo,
		guestRepo:          guestRepo,
		logger:             logger,
	}
}

// CreateInvoiceRequest carries the inputs for invoice creation. For
// booking and conference invoices most fields are derived from the source
// document; for the free-standing categories the caller supplies them.
type CreateInvoiceRequest struct {
	InvoiceType         billing.InvoiceType
	BookingID           *uuid.UUID
	OrderID             *uuid.UUID
	ConferenceBookingID *uuid.UUID
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	CustomerAddress     string
	TotalAmount         decimal.Decimal
	DueDate             *time.Time
	Status              billing.InvoiceStatus
	Notes               string
	ActorID             uuid.UUID
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                  uuid.UUID         `json:"id"`
	InvoiceNumber       string            `json:"invoice_number"`
	InvoiceType         string            `json:"invoice_type"`
	BookingID           *uuid.UUID        `json:"booking_id,omitempty"`
	OrderID             *uuid.UUID        `json:"order_id,omitempty"`
	ConferenceBookingID *uuid.UUID        `json:"conference_booking_id,omitempty"`
	CustomerName        string            `json:"customer_name"`
	CustomerEmail       string            `json:"customer_email,omitempty"`
	CustomerPhone       string            `json:"customer_phone,omitempty"`
	CustomerAddress     string            `json:"customer_address,omitempty"`
	InvoiceDate         time.Time         `json:"invoice_date"`
	DueDate             time.Time         `json:"due_date"`
	Subtotal            decimal.Decimal   `json:"subtotal"`
	TaxAmount           decimal.Decimal   `json:"tax_amount"`
	DiscountAmount      decimal.Decimal   `json:"discount_amount"`
	TotalAmount         decimal.Decimal   `json:"total_amount"`
	PaidAmount          decimal.Decimal   `json:"paid_amount"`
	RemainingAmount     decimal.Decimal   `json:"remaining_amount"`
	Status              string            `json:"status"`
	Notes               string            `json:"notes,omitempty"`
	Payments            []PaymentResponse `json:"payments,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	Version             int               `json:"version"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		ID:                  inv.ID,
		InvoiceNumber:       inv.InvoiceNumber,
		InvoiceType:         inv.InvoiceType.String(),
		BookingID:           inv.BookingID,
		OrderID:             inv.OrderID,
		ConferenceBookingID: inv.ConferenceBookingID,
		CustomerName:        inv.CustomerName,
		CustomerEmail:       inv.CustomerEmail,
		CustomerPhone:       inv.CustomerPhone,
		CustomerAddress:     inv.CustomerAddress,
		InvoiceDate:         inv.InvoiceDate,
		DueDate:             inv.DueDate,
		Subtotal:            inv.Subtotal,
		TaxAmount:           inv.TaxAmount,
		DiscountAmount:      inv.DiscountAmount,
		TotalAmount:         inv.TotalAmount,
		PaidAmount:          inv.PaidAmount,
		RemainingAmount:     inv.RemainingAmount(),
		Status:              inv.Status.String(),
		Notes:               inv.Notes,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
		Version:             inv.GetVersion(),
	}
	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod.String(),
			PaymentDate:   p.PaymentDate,
			Status:        p.Status.String(),
			TransactionID: p.TransactionID,
			Notes:         p.Notes,
		})
	}
	return resp
}

// CreateInvoice creates an invoice. Booking- and conference-derived
// invoices bill the remaining due of their source and reject fully-paid
// sources; the free-standing categories take the caller's customer and
// amount as-is.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	switch req.InvoiceType {
	case billing.InvoiceTypeBooking:
		return s.createFromBooking(ctx, req)
	case billing.InvoiceTypeConference:
		return s.createFromConference(ctx, req)
	default:
		return s.createFreeStanding(ctx, req)
	}
}

func (s *InvoiceService) createFromBooking(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if req.BookingID == nil {
		return nil, shared.NewDomainError("INVALID_BOOKING_ID", "Booking is required for booking invoices")
	}

	b, err := s.bookingRepo.FindByID(ctx, *req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	paid, err := s.bookingPaymentRepo.SumCompletedByBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	remaining := b.TotalAmount.Sub(paid)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrAlreadyPaid
	}

	// Amount and customer snapshot are derived from the booking and its
	// guest; caller-supplied values are ignored for derived invoices.
	g, err := s.guestRepo.FindByID(ctx, b.GuestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, shared.ErrNotFound
	}
	var email string
	if g.Email != nil {
		email = *g.Email
	}

	dueDate := b.CheckOutDate
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	inv, err := billing.NewInvoice(
		billing.GenerateInvoiceNumber(), billing.InvoiceTypeBooking,
		g.FullName(), email, valueobject.NewMoneyUSD(remaining), dueDate,
		billing.InvoiceStatusSent, req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	inv.CustomerPhone = g.Phone
	inv.Notes = req.Notes
	inv.AttachBooking(b.ID)

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("invoice_type", inv.InvoiceType.String()),
		zap.String("booking_number", b.BookingNumber),
	)

	return ToInvoiceResponse(inv), nil
}

func (s *InvoiceService) createFromConference(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if req.ConferenceBookingID == nil {
		return nil, shared.NewDomainError("INVALID_CONFERENCE_ID", "Conference booking is required for conference invoices")
	}

	cb, err := s.conferenceRepo.FindByID(ctx, *req.ConferenceBookingID)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}

	remaining := cb.RemainingAmount()
	if remaining.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrAlreadyPaid
	}

	// Amount and customer snapshot are derived from the conference
	// booking; caller-supplied values are ignored.
	dueDate := cb.EndDatetime
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	inv, err := billing.NewInvoice(
		billing.GenerateInvoiceNumber(), billing.InvoiceTypeConference,
		cb.ClientName, cb.ClientEmail, valueobject.NewMoneyUSD(remaining), dueDate,
		billing.InvoiceStatusSent, req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	inv.CustomerPhone = cb.ClientPhone
	inv.Notes = req.Notes
	inv.AttachConferenceBooking(cb.ID)

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("invoice_type", inv.InvoiceType.String()),
		zap.String("conference_booking", cb.BookingNumber),
	)

	return ToInvoiceResponse(inv), nil
}

func (s *InvoiceService) createFreeStanding(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	status := req.Status
	if !status.IsValid() {
		status = billing.InvoiceStatusDraft
	}

	dueDate := time.Now().AddDate(0, 0, 30)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	inv, err := billing.NewInvoice(
		billing.GenerateInvoiceNumber(), req.InvoiceType,
		req.CustomerName, req.CustomerEmail,
		valueobject.NewMoneyUSD(req.TotalAmount), dueDate, status, req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	inv.CustomerPhone = req.CustomerPhone
	inv.CustomerAddress = req.CustomerAddress
	inv.Notes = req.Notes
	if req.OrderID != nil {
		inv.AttachOrder(*req.OrderID)
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("invoice_type", inv.InvoiceType.String()),
	)

	return ToInvoiceResponse(inv), nil
}

// GetInvoice returns an invoice with its payment history
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByIDWithPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, shared.ErrNotFound
	}
	return ToInvoiceResponse(inv), nil
}

// ListInvoicesFilter defines filtering options for invoice listing
type ListInvoicesFilter struct {
	InvoiceType string
	Status      string
	Search      string
	FromDate    *time.Time
	ToDate      *time.Time
	Page        int
	PageSize    int
}

// ListInvoices returns a page of invoices, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context, filter ListInvoicesFilter) (*shared.Paginated[InvoiceResponse], error) {
	f := billing.InvoiceFilter{Filter: shared.DefaultFilter()}
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.InvoiceType != "" {
		t := billing.InvoiceType(filter.InvoiceType)
		f.InvoiceType = &t
	}
	if filter.Status != "" {
		st := billing.InvoiceStatus(filter.Status)
		f.Status = &st
	}
	f.FromDate = filter.FromDate
	f.ToDate = filter.ToDate

	invoices, err := s.invoiceRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *ToInvoiceResponse(&invoices[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// UpdateInvoiceRequest carries the editable invoice fields
type UpdateInvoiceRequest struct {
	CustomerName  string
	CustomerEmail string
	InvoiceType   billing.InvoiceType
	TotalAmount   decimal.Decimal
	DueDate       time.Time
	Status        billing.InvoiceStatus
	Notes         string
}

// UpdateInvoice replaces the editable fields of an invoice
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, shared.ErrNotFound
	}

	if err := inv.UpdateDetails(
		req.CustomerName, req.CustomerEmail, req.InvoiceType,
		valueobject.NewMoneyUSD(req.TotalAmount), req.DueDate, req.Status, req.Notes,
	); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// DeleteInvoice removes an invoice and its payments. Deletion is allowed
// in any status, including paid.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return shared.ErrNotFound
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("invoice deleted",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("status", inv.Status.String()),
	)
	return nil
}

// GetInvoiceDocument returns the invoice aggregate with its payment
// history loaded, for rendering a printable document.
func (s *InvoiceService) GetInvoiceDocument(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	inv, err := s.invoiceRepo.FindByIDWithPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

// ListPayments returns the payment history of an invoice, newest first
func (s *InvoiceService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]PaymentResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, shared.ErrNotFound
	}

	payments, err := s.paymentRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod.String(),
			PaymentDate:   p.PaymentDate,
			Status:        p.Status.String(),
			TransactionID: p.TransactionID,
			Notes:         p.Notes,
		})
	}
	return out, nil
}
