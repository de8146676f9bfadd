package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bookingapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// BookingHandler handles room booking endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the request body for booking creation
type CreateBookingRequest struct {
	GuestID         uuid.UUID        `json:"guest_id" binding:"required"`
	RoomID          uuid.UUID        `json:"room_id" binding:"required"`
	CheckInDate     time.Time        `json:"check_in_date" binding:"required"`
	CheckOutDate    time.Time        `json:"check_out_date" binding:"required"`
	NumberOfGuests  int              `json:"number_of_guests" binding:"required,min=1"`
	GuestNames      string           `json:"guest_names" binding:"max=1000"`
	RoomRate        *decimal.Decimal `json:"room_rate"`
	DepositAmount   decimal.Decimal  `json:"deposit_amount"`
	SpecialRequests string           `json:"special_requests" binding:"max=1000"`
	Source          string           `json:"source" binding:"omitempty,oneof=direct website phone travel_agent online_booking walk_in"`
}

// RecordBookingPaymentRequest is the request body for a booking payment
type RecordBookingPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=cash credit_card debit_card bank_transfer online check other"`
	ReferenceNumber string          `json:"reference_number" binding:"max=100"`
	Notes           string          `json:"notes" binding:"max=1000"`
}

// Create places a new room booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	b, err := h.bookingService.CreateBooking(c.Request.Context(), bookingapp.CreateBookingRequest{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfGuests:  req.NumberOfGuests,
		GuestNames:      req.GuestNames,
		RoomRate:        req.RoomRate,
		DepositAmount:   req.DepositAmount,
		SpecialRequests: req.SpecialRequests,
		Source:          booking.BookingSource(req.Source),
		ActorID:         actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, b)
}

// CheckAvailability reports whether a room is free for a date range
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	roomID, err := parseUUIDQuery(c, "room_id")
	if err != nil || roomID == nil {
		h.BadRequest(c, "room_id is required")
		return
	}
	checkIn, err := parseDateQuery(c, "check_in")
	if err != nil || checkIn == nil {
		h.BadRequest(c, "check_in is required")
		return
	}
	checkOut, err := parseDateQuery(c, "check_out")
	if err != nil || checkOut == nil {
		h.BadRequest(c, "check_out is required")
		return
	}

	available, err := h.bookingService.CheckAvailability(c.Request.Context(), *roomID, *checkIn, *checkOut)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
		"available": available,
	})
}

// Get returns a booking by ID
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	b, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// List returns a page of bookings
func (h *BookingHandler) List(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	guestID, err := parseUUIDQuery(c, "guest_id")
	if err != nil {
		h.BadRequest(c, "Invalid guest_id value")
		return
	}
	roomID, err := parseUUIDQuery(c, "room_id")
	if err != nil {
		h.BadRequest(c, "Invalid room_id value")
		return
	}
	fromDate, err := parseDateQuery(c, "from_date")
	if err != nil {
		h.BadRequest(c, "Invalid from_date value")
		return
	}
	toDate, err := parseDateQuery(c, "to_date")
	if err != nil {
		h.BadRequest(c, "Invalid to_date value")
		return
	}

	page, err := h.bookingService.ListBookings(c.Request.Context(), bookingapp.ListBookingsFilter{
		GuestID:  guestID,
		RoomID:   roomID,
		Status:   c.Query("status"),
		FromDate: fromDate,
		ToDate:   toDate,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Confirm moves a pending booking to confirmed
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.bookingService.ConfirmBooking)
}

// CheckIn activates a confirmed booking and occupies the room
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.bookingService.CheckIn)
}

// CheckOut completes an active booking and releases the room
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.bookingService.CheckOut)
}

// Cancel cancels a booking that has not been completed
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingService.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*bookingapp.BookingResponse, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// RecordPayment records a payment against a booking
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req RecordBookingPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	b, err := h.bookingService.RecordPayment(c.Request.Context(), bookingapp.RecordBookingPaymentRequest{
		BookingID:       id,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		ActorID:         actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// Delete removes a booking and its payment history
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings", middleware.RequireBookingAccess())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/availability", h.CheckAvailability)
		bookings.GET("/:id", h.Get)
		bookings.POST("/:id/confirm", h.Confirm)
		bookings.POST("/:id/check-in", h.CheckIn)
		bookings.POST("/:id/check-out", h.CheckOut)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/payments", h.RecordPayment)
		bookings.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
	}
}
