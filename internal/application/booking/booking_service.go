package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// BookingService handles the room booking lifecycle: creation with
// availability checking, confirmation, check-in/check-out with room status
// side effects, and the booking payment ledger.
type BookingService struct {
	bookingRepo        booking.BookingRepository
	bookingPaymentRepo booking.BookingPaymentRepository
	guestRepo          guest.GuestRepository
	roomRepo           room.RoomRepository
	logger             *zap.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo booking.BookingRepository,
	bookingPaymentRepo booking.BookingPaymentRepository,
	guestRepo guest.GuestRepository,
	roomRepo room.RoomRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:        bookingRepo,
		bookingPaymentRepo: bookingPaymentRepo,
		guestRepo:          guestRepo,
		roomRepo:           roomRepo,
		logger:             logger,
	}
}

// CreateBookingRequest carries the inputs for booking creation
type CreateBookingRequest struct {
	GuestID         uuid.UUID
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	GuestNames      string
	RoomRate        *decimal.Decimal
	DepositAmount   decimal.Decimal
	SpecialRequests string
	Source          booking.BookingSource
	ActorID         uuid.UUID
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	BookingNumber   string          `json:"booking_number"`
	GuestID         uuid.UUID       `json:"guest_id"`
	RoomID          uuid.UUID       `json:"room_id"`
	CheckInDate     time.Time       `json:"check_in_date"`
	CheckOutDate    time.Time       `json:"check_out_date"`
	DurationNights  int             `json:"duration_nights"`
	NumberOfGuests  int             `json:"number_of_guests"`
	GuestNames      string          `json:"guest_names,omitempty"`
	RoomRate        decimal.Decimal `json:"room_rate"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	Source          string          `json:"source"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToBookingResponse converts a domain booking to a response DTO
func ToBookingResponse(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		BookingNumber:   b.BookingNumber,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		DurationNights:  b.DurationNights(),
		NumberOfGuests:  b.NumberOfGuests,
		GuestNames:      b.GuestNames,
		RoomRate:        b.RoomRate,
		TotalAmount:     b.TotalAmount,
		DepositAmount:   b.DepositAmount,
		BalanceAmount:   b.BalanceAmount,
		Status:          b.Status.String(),
		PaymentStatus:   b.PaymentStatus.String(),
		SpecialRequests: b.SpecialRequests,
		Source:          b.Source.String(),
		ConfirmedAt:     b.ConfirmedAt,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateBooking creates a pending booking after checking the guest, the
// room and the date window. The room rate defaults to the room's effective
// price when the caller does not supply one.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	g, err := s.guestRepo.FindByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, shared.ErrNotFound
	}

	r, err := s.roomRepo.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, shared.ErrNotFound
	}
	if !r.IsActive {
		return nil, shared.ErrRoomUnavailable
	}

	today := time.Now().Truncate(24 * time.Hour)
	if req.CheckInDate.Before(today) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "Check-in date cannot be in the past")
	}
	if r.RoomType != nil && req.NumberOfGuests > r.RoomType.Capacity {
		return nil, shared.NewDomainError("CAPACITY_EXCEEDED", "Number of guests exceeds room capacity")
	}

	conflicts, err := s.bookingRepo.CountConflicting(ctx, r.ID, req.CheckInDate, req.CheckOutDate, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, shared.ErrRoomUnavailable
	}

	rate := r.EffectivePrice()
	if req.RoomRate != nil && req.RoomRate.GreaterThan(decimal.Zero) {
		rate = *req.RoomRate
	}

	b, err := booking.NewBooking(g.ID, r.ID, req.CheckInDate, req.CheckOutDate, rate, req.NumberOfGuests)
	if err != nil {
		return nil, err
	}
	b.GuestNames = req.GuestNames
	b.SpecialRequests = req.SpecialRequests
	if req.Source.IsValid() {
		b.Source = req.Source
	}
	if req.DepositAmount.GreaterThan(decimal.Zero) {
		b.DepositAmount = req.DepositAmount
		b.RecalculateAmounts()
	}
	b.CreatedBy = &req.ActorID

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_number", b.BookingNumber),
		zap.String("room_id", r.ID.String()),
		zap.Int("nights", b.DurationNights()),
	)
	return ToBookingResponse(b), nil
}

// CheckAvailability reports whether a room is free for the date window
func (s *BookingService) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, shared.NewDomainError("INVALID_DATE_RANGE", "Check-out date must be after check-in date")
	}
	r, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if r == nil {
		return false, shared.ErrNotFound
	}
	if !r.IsActive {
		return false, nil
	}

	conflicts, err := s.bookingRepo.CountConflicting(ctx, roomID, checkIn, checkOut, uuid.Nil)
	if err != nil {
		return false, err
	}
	return conflicts == 0, nil
}

// GetBooking returns a booking by ID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}
	return ToBookingResponse(b), nil
}

// ListBookingsFilter defines filtering options for booking listing
type ListBookingsFilter struct {
	GuestID  *uuid.UUID
	RoomID   *uuid.UUID
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
	Page     int
	PageSize int
}

// ListBookings returns a page of bookings, newest first
func (s *BookingService) ListBookings(ctx context.Context, filter ListBookingsFilter) (*shared.Paginated[BookingResponse], error) {
	f := booking.BookingFilter{Filter: shared.DefaultFilter()}
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.GuestID = filter.GuestID
	f.RoomID = filter.RoomID
	f.FromDate = filter.FromDate
	f.ToDate = filter.ToDate
	if filter.Status != "" {
		st := booking.BookingStatus(filter.Status)
		f.Status = &st
	}

	bookings, err := s.bookingRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.bookingRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *ToBookingResponse(&bookings[i]))
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// ConfirmBooking moves a pending booking to confirmed
func (s *BookingService) ConfirmBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	if err := b.Confirm(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed", zap.String("booking_number", b.BookingNumber))
	return ToBookingResponse(b), nil
}

// CheckIn activates a booking and marks its room occupied
func (s *BookingService) CheckIn(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	if err := b.CheckIn(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	if r, rerr := s.roomRepo.FindByID(ctx, b.RoomID); rerr == nil && r != nil {
		r.MarkOccupied()
		if serr := s.roomRepo.Save(ctx, r); serr != nil {
			s.logger.Warn("room status update failed on check-in",
				zap.String("room_id", r.ID.String()), zap.Error(serr))
		}
	}

	s.logger.Info("guest checked in", zap.String("booking_number", b.BookingNumber))
	return ToBookingResponse(b), nil
}

// CheckOut completes a booking and sends its room to housekeeping
func (s *BookingService) CheckOut(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	if err := b.CheckOut(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	if r, rerr := s.roomRepo.FindByID(ctx, b.RoomID); rerr == nil && r != nil {
		r.MarkCleaning()
		if serr := s.roomRepo.Save(ctx, r); serr != nil {
			s.logger.Warn("room status update failed on check-out",
				zap.String("room_id", r.ID.String()), zap.Error(serr))
		}
	}

	s.logger.Info("guest checked out", zap.String("booking_number", b.BookingNumber))
	return ToBookingResponse(b), nil
}

// CancelBooking cancels a booking that has not started
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	if err := b.Cancel(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled", zap.String("booking_number", b.BookingNumber))
	return ToBookingResponse(b), nil
}

// RecordBookingPaymentRequest carries the inputs for a booking payment
type RecordBookingPaymentRequest struct {
	BookingID       uuid.UUID
	Amount          decimal.Decimal
	PaymentMethod   string
	ReferenceNumber string
	Notes           string
	ActorID         uuid.UUID
}

// RecordPayment writes a booking payment ledger row and recomputes the
// booking's payment status from the completed ledger total.
func (s *BookingService) RecordPayment(ctx context.Context, req RecordBookingPaymentRequest) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, shared.ErrNotFound
	}

	p, err := booking.NewBookingPayment(b.ID, req.Amount, req.PaymentMethod, req.ActorID)
	if err != nil {
		return nil, err
	}
	p.ReferenceNumber = req.ReferenceNumber
	p.Notes = req.Notes

	if err := s.bookingPaymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	totalPaid, err := s.bookingPaymentRepo.SumCompletedByBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.RecomputePaymentStatus(totalPaid)
	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking payment recorded",
		zap.String("booking_number", b.BookingNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("payment_status", b.PaymentStatus.String()),
	)
	return ToBookingResponse(b), nil
}

// DeleteBooking removes a booking and its payments. Active bookings cannot
// be deleted.
func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return shared.ErrNotFound
	}
	if b.Status == booking.BookingStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Active bookings cannot be deleted")
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.String("booking_number", b.BookingNumber))
	return nil
}
