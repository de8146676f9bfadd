package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/restaurant"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared/valueobject"
)

// SettlementService records payments against invoices and runs the
// follow-on bookkeeping: the booking payment mirror and the
// category-specific cleanup cascades. Only the payment write itself is
// load-bearing; every later step is best-effort and never fails the
// settlement.
type SettlementService struct {
	invoiceRepo        billing.InvoiceRepository
	bookingRepo        booking.BookingRepository
	bookingPaymentRepo booking.BookingPaymentRepository
	guestRepo          guest.GuestRepository
	orderRepo          restaurant.OrderRepository
	logger             *zap.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(
	invoiceRepo billing.InvoiceRepository,
	bookingRepo booking.BookingRepository,
	bookingPaymentRepo booking.BookingPaymentRepository,
	guestRepo guest.GuestRepository,
	orderRepo restaurant.OrderRepository,
	logger *zap.Logger,
) *SettlementService {
	return &SettlementService{
		invoiceRepo:        invoiceRepo,
		bookingRepo:        bookingRepo,
		bookingPaymentRepo: bookingPaymentRepo,
		guestRepo:          guestRepo,
		orderRepo:          orderRepo,
		logger:             logger,
	}
}

// RecordPaymentRequest carries the inputs for a settlement
type RecordPaymentRequest struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Method    billing.PaymentMethod
	ActorID   uuid.UUID
}

// SettlementResult reports the outcome of a settlement
type SettlementResult struct {
	Invoice      *billing.Invoice `json:"invoice"`
	Payment      *billing.Payment `json:"payment"`
	FullySettled bool             `json:"fully_settled"`
	CascadeNotes []string         `json:"cascade_notes,omitempty"`
}

// RecordPayment applies a payment to an invoice. The payment row and the
// invoice update are written atomically with an optimistic version check;
// when the invoice reaches fully paid, the category cascades run, each
// behind its own error boundary.
func (s *SettlementService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*SettlementResult, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, shared.ErrNotFound
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !req.Method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method selected")
	}

	amount := valueobject.NewMoneyUSD(req.Amount)

	payment, err := billing.NewPayment(inv.ID, amount, req.Method, req.ActorID)
	if err != nil {
		return nil, err
	}

	fullySettled, err := inv.ApplyPayment(amount)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithPayment(ctx, inv, payment); err != nil {
		return nil, err
	}

	result := &SettlementResult{
		Invoice:      inv,
		Payment:      payment,
		FullySettled: fullySettled,
	}

	s.mirrorToBooking(ctx, inv, payment, result)

	if fullySettled {
		s.runCascades(ctx, inv, result)
	}

	s.logger.Info("payment recorded",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("method", req.Method.String()),
		zap.Bool("fully_settled", fullySettled),
	)

	return result, nil
}

// mirrorToBooking keeps the booking payment ledger in step with invoice
// payments. Failures here are logged and swallowed.
func (s *SettlementService) mirrorToBooking(ctx context.Context, inv *billing.Invoice, payment *billing.Payment, result *SettlementResult) {
	if inv.BookingID == nil {
		return
	}

	b, err := s.bookingRepo.FindByID(ctx, *inv.BookingID)
	if err != nil || b == nil {
		s.warnCascade(result, "booking payment mirror skipped", *inv.BookingID, err)
		return
	}

	mirror, err := booking.NewBookingPayment(b.ID, payment.Amount, payment.PaymentMethod.String(), mirrorActor(payment))
	if err != nil {
		s.warnCascade(result, "booking payment mirror failed", b.ID, err)
		return
	}
	mirror.Notes = fmt.Sprintf("Mirrored from invoice %s", inv.InvoiceNumber)

	if err := s.bookingPaymentRepo.Save(ctx, mirror); err != nil {
		s.warnCascade(result, "booking payment mirror failed", b.ID, err)
		return
	}

	totalPaid, err := s.bookingPaymentRepo.SumCompletedByBooking(ctx, b.ID)
	if err != nil {
		s.warnCascade(result, "booking payment status recompute failed", b.ID, err)
		return
	}
	b.RecomputePaymentStatus(totalPaid)
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		s.warnCascade(result, "booking payment status save failed", b.ID, err)
	}
}

// runCascades performs the category-specific cleanup after full settlement.
// The rules are asymmetric on purpose:
//   - booking_guest invoices (historical data only, no creation path) delete
//     the booking, the guest's restaurant orders, and the guest when no
//     bookings remain;
//   - booking/gym/swimming_pool invoices attached to an order delete the
//     order, and delete the guest only when the guest has neither bookings
//     nor orders left.
func (s *SettlementService) runCascades(ctx context.Context, inv *billing.Invoice, result *SettlementResult) {
	switch {
	case inv.InvoiceType == billing.InvoiceTypeBookingGuest:
		s.cascadeBookingGuest(ctx, inv, result)
	case inv.OrderID != nil &&
		(inv.InvoiceType == billing.InvoiceTypeBooking ||
			inv.InvoiceType == billing.InvoiceTypeGym ||
			inv.InvoiceType == billing.InvoiceTypeSwimmingPool):
		s.cascadeOrder(ctx, inv, result)
	}
}

func (s *SettlementService) cascadeBookingGuest(ctx context.Context, inv *billing.Invoice, result *SettlementResult) {
	if inv.BookingID == nil {
		return
	}

	b, err := s.bookingRepo.FindByID(ctx, *inv.BookingID)
	if err != nil || b == nil {
		s.warnCascade(result, "booking cascade lookup failed", *inv.BookingID, err)
		return
	}
	guestID := b.GuestID

	if err := s.bookingRepo.Delete(ctx, b.ID); err != nil {
		s.warnCascade(result, "booking cascade delete failed", b.ID, err)
		return
	}
	result.CascadeNotes = append(result.CascadeNotes, "booking deleted")

	if err := s.orderRepo.DeleteByGuest(ctx, guestID); err != nil {
		s.warnCascade(result, "guest order cascade delete failed", guestID, err)
	} else {
		result.CascadeNotes = append(result.CascadeNotes, "guest orders deleted")
	}

	remaining, err := s.bookingRepo.CountByGuest(ctx, guestID)
	if err != nil {
		s.warnCascade(result, "guest booking count failed", guestID, err)
		return
	}
	if remaining == 0 {
		if err := s.guestRepo.Delete(ctx, guestID); err != nil {
			s.warnCascade(result, "guest cascade delete failed", guestID, err)
			return
		}
		result.CascadeNotes = append(result.CascadeNotes, "guest deleted")
	}
}

func (s *SettlementService) cascadeOrder(ctx context.Context, inv *billing.Invoice, result *SettlementResult) {
	o, err := s.orderRepo.FindByID(ctx, *inv.OrderID)
	if err != nil || o == nil {
		s.warnCascade(result, "order cascade lookup failed", *inv.OrderID, err)
		return
	}

	if err := s.orderRepo.Delete(ctx, o.ID); err != nil {
		s.warnCascade(result, "order cascade delete failed", o.ID, err)
		return
	}
	result.CascadeNotes = append(result.CascadeNotes, "order deleted")

	if o.GuestID == nil {
		return
	}
	guestID := *o.GuestID

	bookings, err := s.bookingRepo.CountByGuest(ctx, guestID)
	if err != nil {
		s.warnCascade(result, "guest booking count failed", guestID, err)
		return
	}
	orders, err := s.orderRepo.CountByGuest(ctx, guestID)
	if err != nil {
		s.warnCascade(result, "guest order count failed", guestID, err)
		return
	}
	if bookings == 0 && orders == 0 {
		if err := s.guestRepo.Delete(ctx, guestID); err != nil {
			s.warnCascade(result, "guest cascade delete failed", guestID, err)
			return
		}
		result.CascadeNotes = append(result.CascadeNotes, "guest deleted")
	}
}

func (s *SettlementService) warnCascade(result *SettlementResult, msg string, id uuid.UUID, err error) {
	s.logger.Warn(msg, zap.String("id", id.String()), zap.Error(err))
	result.CascadeNotes = append(result.CascadeNotes, msg)
}

func mirrorActor(p *billing.Payment) uuid.UUID {
	if p.ProcessedBy != nil {
		return *p.ProcessedBy
	}
	return uuid.Nil
}
