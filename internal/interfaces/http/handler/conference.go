package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	conferenceapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// ConferenceHandler handles conference room and event booking endpoints
type ConferenceHandler struct {
	BaseHandler
	conferenceService *conferenceapp.ConferenceService
}

// NewConferenceHandler creates a new ConferenceHandler
func NewConferenceHandler(conferenceService *conferenceapp.ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{conferenceService: conferenceService}
}

// CreateConferenceRoomRequest is the request body for conference room creation
type CreateConferenceRoomRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	Floor       int             `json:"floor" binding:"min=0"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" binding:"required"`
	DailyRate   decimal.Decimal `json:"daily_rate" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
	Amenities   string          `json:"amenities" binding:"max=1000"`
}

// CreateConferenceBookingRequest is the request body for event booking creation
type CreateConferenceBookingRequest struct {
	RoomID              uuid.UUID       `json:"room_id" binding:"required"`
	ClientName          string          `json:"client_name" binding:"required,min=1,max=200"`
	ClientEmail         string          `json:"client_email" binding:"omitempty,email,max=200"`
	ClientPhone         string          `json:"client_phone" binding:"max=50"`
	EventTitle          string          `json:"event_title" binding:"required,min=1,max=200"`
	EventDescription    string          `json:"event_description" binding:"max=2000"`
	StartDatetime       time.Time       `json:"start_datetime" binding:"required"`
	EndDatetime         time.Time       `json:"end_datetime" binding:"required"`
	AttendeesCount      int             `json:"attendees_count" binding:"required,min=1"`
	TotalAmount         decimal.Decimal `json:"total_amount" binding:"required"`
	SpecialRequirements string          `json:"special_requirements" binding:"max=1000"`
}

// RecordConferencePaymentRequest is the request body for a conference payment
type RecordConferencePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateRoom creates a new conference room
func (h *ConferenceHandler) CreateRoom(c *gin.Context) {
	var req CreateConferenceRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.conferenceService.CreateRoom(c.Request.Context(), conferenceapp.CreateConferenceRoomRequest{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Floor:       req.Floor,
		HourlyRate:  req.HourlyRate,
		DailyRate:   req.DailyRate,
		Description: req.Description,
		Amenities:   req.Amenities,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// ListRooms returns all conference rooms
func (h *ConferenceHandler) ListRooms(c *gin.Context) {
	rooms, err := h.conferenceService.ListRooms(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rooms)
}

// DeleteRoom removes a conference room without future bookings
func (h *ConferenceHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid conference room ID")
		return
	}

	if err := h.conferenceService.DeleteRoom(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateBooking reserves a conference room for an event
func (h *ConferenceHandler) CreateBooking(c *gin.Context) {
	var req CreateConferenceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	b, err := h.conferenceService.CreateBooking(c.Request.Context(), conferenceapp.CreateConferenceBookingRequest{
		RoomID:              req.RoomID,
		ClientName:          req.ClientName,
		ClientEmail:         req.ClientEmail,
		ClientPhone:         req.ClientPhone,
		EventTitle:          req.EventTitle,
		EventDescription:    req.EventDescription,
		StartDatetime:       req.StartDatetime,
		EndDatetime:         req.EndDatetime,
		AttendeesCount:      req.AttendeesCount,
		TotalAmount:         req.TotalAmount,
		SpecialRequirements: req.SpecialRequirements,
		ActorID:             actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, b)
}

// GetBooking returns a conference booking by ID
func (h *ConferenceHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid conference booking ID")
		return
	}

	b, err := h.conferenceService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// ListBookings returns a page of conference bookings
func (h *ConferenceHandler) ListBookings(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

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

	page, err := h.conferenceService.ListBookings(c.Request.Context(), conferenceapp.ListBookingsFilter{
		RoomID:        roomID,
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		FromDate:      fromDate,
		ToDate:        toDate,
		Search:        q.Search,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ConfirmBooking moves a pending conference booking to confirmed
func (h *ConferenceHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.conferenceService.ConfirmBooking)
}

// CompleteBooking marks a confirmed conference booking as completed
func (h *ConferenceHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.conferenceService.CompleteBooking)
}

// CancelBooking cancels an uncompleted conference booking
func (h *ConferenceHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.conferenceService.CancelBooking)
}

func (h *ConferenceHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*conferenceapp.ConferenceBookingResponse, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid conference booking ID")
		return
	}

	b, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// RecordPayment records a payment against a conference booking
func (h *ConferenceHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid conference booking ID")
		return
	}

	var req RecordConferencePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	b, err := h.conferenceService.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// RegisterRoutes registers conference routes
func (h *ConferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	conference := rg.Group("/conference", middleware.RequireBookingAccess())
	{
		conference.GET("/rooms", h.ListRooms)
		conference.POST("/rooms", middleware.RequireAdmin(), h.CreateRoom)
		conference.DELETE("/rooms/:id", middleware.RequireAdmin(), h.DeleteRoom)

		conference.POST("/bookings", h.CreateBooking)
		conference.GET("/bookings", h.ListBookings)
		conference.GET("/bookings/:id", h.GetBooking)
		conference.POST("/bookings/:id/confirm", h.ConfirmBooking)
		conference.POST("/bookings/:id/complete", h.CompleteBooking)
		conference.POST("/bookings/:id/cancel", h.CancelBooking)
		conference.POST("/bookings/:id/payments", h.RecordPayment)
	}
}
