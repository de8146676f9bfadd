package conference

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// ConferenceService handles event-space rooms and their bookings
type ConferenceService struct {
	roomRepo    conference.ConferenceRoomRepository
	bookingRepo conference.ConferenceBookingRepository
	logger      *zap.Logger
}

// NewConferenceService creates a new ConferenceService
func NewConferenceService(
	roomRepo conference.ConferenceRoomRepository,
	bookingRepo conference.ConferenceBookingRepository,
	logger *zap.Logger,
) *ConferenceService {
	return &ConferenceService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ConferenceRoomResponse represents a conference room in API responses
type ConferenceRoomResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Capacity    int             `json:"capacity"`
	Floor       int             `json:"floor"`
	Status      string          `json:"status"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	Description string          `json:"description,omitempty"`
	Amenities   string          `json:"amenities,omitempty"`
	IsActive    bool            `json:"is_active"`
}

// ConferenceBookingResponse represents a conference booking in API responses
type ConferenceBookingResponse struct {
	ID                  uuid.UUID       `json:"id"`
	BookingNumber       string          `json:"booking_number"`
	RoomID              uuid.UUID       `json:"room_id"`
	ClientName          string          `json:"client_name"`
	ClientEmail         string          `json:"client_email,omitempty"`
	ClientPhone         string          `json:"client_phone,omitempty"`
	EventTitle          string          `json:"event_title"`
	EventDescription    string          `json:"event_description,omitempty"`
	StartDatetime       time.Time       `json:"start_datetime"`
	EndDatetime         time.Time       `json:"end_datetime"`
	DurationHours       float64         `json:"duration_hours"`
	AttendeesCount      int             `json:"attendees_count"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	RemainingAmount     decimal.Decimal `json:"remaining_amount"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"payment_status"`
	SpecialRequirements string          `json:"special_requirements,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ToConferenceRoomResponse converts a domain room to a response DTO
func ToConferenceRoomResponse(r *conference.ConferenceRoom) *ConferenceRoomResponse {
	return &ConferenceRoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Floor:       r.Floor,
		Status:      string(r.Status),
		HourlyRate:  r.HourlyRate,
		DailyRate:   r.DailyRate,
		Description: r.Description,
		Amenities:   r.Amenities,
		IsActive:    r.IsActive,
	}
}

// ToConferenceBookingResponse converts a domain booking to a response DTO
func ToConferenceBookingResponse(cb *conference.ConferenceBooking) *ConferenceBookingResponse {
	return &ConferenceBookingResponse{
		ID:                  cb.ID,
		BookingNumber:       cb.BookingNumber,
		RoomID:              cb.RoomID,
		ClientName:          cb.ClientName,
		ClientEmail:         cb.ClientEmail,
		ClientPhone:         cb.ClientPhone,
		EventTitle:          cb.EventTitle,
		EventDescription:    cb.EventDescription,
		StartDatetime:       cb.StartDatetime,
		EndDatetime:         cb.EndDatetime,
		DurationHours:       cb.DurationHours(),
		AttendeesCount:      cb.AttendeesCount,
		TotalAmount:         cb.TotalAmount,
		PaidAmount:          cb.PaidAmount,
		RemainingAmount:     cb.RemainingAmount(),
		Status:              string(cb.Status),
		PaymentStatus:       string(cb.PaymentStatus),
		SpecialRequirements: cb.SpecialRequirements,
		CreatedAt:           cb.CreatedAt,
		UpdatedAt:           cb.UpdatedAt,
	}
}

// CreateConferenceRoomRequest carries the inputs for room creation
type CreateConferenceRoomRequest struct {
	Name        string
	Capacity    int
	Floor       int
	HourlyRate  decimal.Decimal
	DailyRate   decimal.Decimal
	Description string
	Amenities   string
}

// CreateRoom creates a new conference room
func (s *ConferenceService) CreateRoom(ctx context.Context, req CreateConferenceRoomRequest) (*ConferenceRoomResponse, error) {
	r, err := conference.NewConferenceRoom(req.Name, req.Capacity, req.Floor, req.HourlyRate, req.DailyRate)
	if err != nil {
		return nil, err
	}
	r.Description = req.Description
	r.Amenities = req.Amenities

	if err := s.roomRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info("conference room created", zap.String("name", r.Name))
	return ToConferenceRoomResponse(r), nil
}

// ListRooms returns all conference rooms
func (s *ConferenceService) ListRooms(ctx context.Context) ([]ConferenceRoomResponse, error) {
	rooms, err := s.roomRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	out := make([]ConferenceRoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, *ToConferenceRoomResponse(&rooms[i]))
	}
	return out, nil
}

// DeleteRoom removes a conference room
func (s *ConferenceService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	r, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return shared.ErrNotFound
	}
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("conference room deleted", zap.String("name", r.Name))
	return nil
}

// CreateConferenceBookingRequest carries the inputs for booking creation
type CreateConferenceBookingRequest struct {
	RoomID              uuid.UUID
	ClientName          string
	ClientEmail         string
	ClientPhone         string
	EventTitle          string
	EventDescription    string
	StartDatetime       time.Time
	EndDatetime         time.Time
	AttendeesCount      int
	TotalAmount         decimal.Decimal
	SpecialRequirements string
	ActorID             uuid.UUID
}

// CreateBooking reserves a conference room for an event window after
// checking capacity and overlap against confirmed bookings.
func (s *ConferenceService) CreateBooking(ctx context.Context, req CreateConferenceBookingRequest) (*ConferenceBookingResponse, error) {
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
	if req.AttendeesCount > r.Capacity {
		return nil, shared.NewDomainError("CAPACITY_EXCEEDED", "Attendees count exceeds room capacity")
	}

	conflicts, err := s.bookingRepo.CountConflicting(ctx, r.ID, req.StartDatetime, req.EndDatetime, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, shared.ErrRoomUnavailable
	}

	cb, err := conference.NewConferenceBooking(
		r.ID,
		req.ClientName, req.ClientEmail, req.EventTitle,
		req.StartDatetime, req.EndDatetime,
		req.AttendeesCount,
		req.TotalAmount,
		req.ActorID,
	)
	if err != nil {
		return nil, err
	}
	cb.ClientPhone = req.ClientPhone
	cb.EventDescription = req.EventDescription
	cb.SpecialRequirements = req.SpecialRequirements

	if err := s.bookingRepo.Save(ctx, cb); err != nil {
		return nil, err
	}

	s.logger.Info("conference booking created",
		zap.String("booking_number", cb.BookingNumber),
		zap.String("event_title", cb.EventTitle),
	)
	return ToConferenceBookingResponse(cb), nil
}

// GetBooking returns a conference booking by ID
func (s *ConferenceService) GetBooking(ctx context.Context, id uuid.UUID) (*ConferenceBookingResponse, error) {
	cb, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}
	return ToConferenceBookingResponse(cb), nil
}

// ListBookingsFilter defines filtering options for booking listing
type ListBookingsFilter struct {
	RoomID        *uuid.UUID
	Status        string
	PaymentStatus string
	FromDate      *time.Time
	ToDate        *time.Time
	Search        string
	Page          int
	PageSize      int
}

// ListBookings returns a page of conference bookings, newest first
func (s *ConferenceService) ListBookings(ctx context.Context, filter ListBookingsFilter) (*shared.Paginated[ConferenceBookingResponse], error) {
	f := conference.BookingFilter{Filter: shared.DefaultFilter()}
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.RoomID = filter.RoomID
	f.FromDate = filter.FromDate
	f.ToDate = filter.ToDate
	if filter.Status != "" {
		st := conference.BookingStatus(filter.Status)
		f.Status = &st
	}
	if filter.PaymentStatus != "" {
		ps := conference.PaymentStatus(filter.PaymentStatus)
		f.PaymentStatus = &ps
	}

	bookings, err := s.bookingRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.bookingRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ConferenceBookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *ToConferenceBookingResponse(&bookings[i]))
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// ConfirmBooking moves a pending conference booking to confirmed
func (s *ConferenceService) ConfirmBooking(ctx context.Context, id uuid.UUID) (*ConferenceBookingResponse, error) {
	cb, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}

	if err := cb.Confirm(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, cb); err != nil {
		return nil, err
	}

	s.logger.Info("conference booking confirmed", zap.String("booking_number", cb.BookingNumber))
	return ToConferenceBookingResponse(cb), nil
}

// CompleteBooking marks a confirmed event as held
func (s *ConferenceService) CompleteBooking(ctx context.Context, id uuid.UUID) (*ConferenceBookingResponse, error) {
	cb, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}

	if err := cb.Complete(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, cb); err != nil {
		return nil, err
	}
	return ToConferenceBookingResponse(cb), nil
}

// CancelBooking cancels a booking that has not been completed
func (s *ConferenceService) CancelBooking(ctx context.Context, id uuid.UUID) (*ConferenceBookingResponse, error) {
	cb, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}

	if err := cb.Cancel(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, cb); err != nil {
		return nil, err
	}

	s.logger.Info("conference booking cancelled", zap.String("booking_number", cb.BookingNumber))
	return ToConferenceBookingResponse(cb), nil
}

// RecordPayment adds a direct payment against a conference booking
func (s *ConferenceService) RecordPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*ConferenceBookingResponse, error) {
	cb, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, shared.ErrNotFound
	}

	if err := cb.RecordPayment(amount); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Save(ctx, cb); err != nil {
		return nil, err
	}

	s.logger.Info("conference payment recorded",
		zap.String("booking_number", cb.BookingNumber),
		zap.String("amount", amount.String()),
		zap.String("payment_status", string(cb.PaymentStatus)),
	)
	return ToConferenceBookingResponse(cb), nil
}
