package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	guestapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// GuestHandler handles guest profile endpoints
type GuestHandler struct {
	BaseHandler
	guestService *guestapp.GuestService
}

// NewGuestHandler creates a new GuestHandler
func NewGuestHandler(guestService *guestapp.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// CreateGuestRequest is the request body for guest creation
type CreateGuestRequest struct {
	FirstName       string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName        string     `json:"last_name" binding:"required,min=1,max=100"`
	Email           string     `json:"email" binding:"omitempty,email,max=200"`
	Phone           string     `json:"phone" binding:"max=50"`
	GuestType       string     `json:"guest_type" binding:"omitempty,oneof=booking gym swimming"`
	GuestSource     string     `json:"guest_source" binding:"max=100"`
	Age             *int       `json:"age" binding:"omitempty,min=0,max=150"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Gender          string     `json:"gender" binding:"max=20"`
	Nationality     string     `json:"nationality" binding:"max=100"`
	IDType          string     `json:"id_type" binding:"omitempty,oneof=passport national_id driving_license other"`
	IDNumber        string     `json:"id_number" binding:"max=100"`
	Address         string     `json:"address" binding:"max=500"`
	City            string     `json:"city" binding:"max=100"`
	Country         string     `json:"country" binding:"max=100"`
	PostalCode      string     `json:"postal_code" binding:"max=20"`
	SpecialRequests string     `json:"special_requests" binding:"max=1000"`
}

// UpdateGuestRequest is the request body for guest updates
type UpdateGuestRequest struct {
	FirstName       string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName        string     `json:"last_name" binding:"required,min=1,max=100"`
	Email           string     `json:"email" binding:"omitempty,email,max=200"`
	Phone           string     `json:"phone" binding:"max=50"`
	GuestType       string     `json:"guest_type" binding:"omitempty,oneof=booking gym swimming"`
	Age             *int       `json:"age" binding:"omitempty,min=0,max=150"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	Gender          string     `json:"gender" binding:"max=20"`
	Nationality     string     `json:"nationality" binding:"max=100"`
	IDType          string     `json:"id_type" binding:"omitempty,oneof=passport national_id driving_license other"`
	IDNumber        string     `json:"id_number" binding:"max=100"`
	Address         string     `json:"address" binding:"max=500"`
	City            string     `json:"city" binding:"max=100"`
	Country         string     `json:"country" binding:"max=100"`
	PostalCode      string     `json:"postal_code" binding:"max=20"`
	VIPStatus       string     `json:"vip_status" binding:"omitempty,oneof=regular silver gold platinum"`
	SpecialRequests string     `json:"special_requests" binding:"max=1000"`
}

// Create registers a new guest profile
func (h *GuestHandler) Create(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	g, err := h.guestService.CreateGuest(c.Request.Context(), guestapp.CreateGuestRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		GuestType:       guest.GuestType(req.GuestType),
		GuestSource:     req.GuestSource,
		Age:             req.Age,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Nationality:     req.Nationality,
		IDType:          guest.IDType(req.IDType),
		IDNumber:        req.IDNumber,
		Address:         req.Address,
		City:            req.City,
		Country:         req.Country,
		PostalCode:      req.PostalCode,
		SpecialRequests: req.SpecialRequests,
		ActorID:         actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, g)
}

// Get returns a guest profile with stay statistics
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid guest ID")
		return
	}

	g, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// List returns a page of guests
func (h *GuestHandler) List(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, "Invalid is_active value")
		return
	}

	page, err := h.guestService.ListGuests(c.Request.Context(), guestapp.ListGuestsFilter{
		GuestType: c.Query("guest_type"),
		VIPStatus: c.Query("vip_status"),
		IsActive:  isActive,
		Search:    q.Search,
		Page:      q.Page,
		PageSize:  q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update replaces the editable fields of a guest profile
func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid guest ID")
		return
	}

	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	g, err := h.guestService.UpdateGuest(c.Request.Context(), id, guestapp.UpdateGuestRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		GuestType:       guest.GuestType(req.GuestType),
		Age:             req.Age,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Nationality:     req.Nationality,
		IDType:          guest.IDType(req.IDType),
		IDNumber:        req.IDNumber,
		Address:         req.Address,
		City:            req.City,
		Country:         req.Country,
		PostalCode:      req.PostalCode,
		VIPStatus:       guest.VIPStatus(req.VIPStatus),
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// Delete removes a guest without active bookings
func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid guest ID")
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers guest routes
func (h *GuestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	guests := rg.Group("/guests", middleware.RequireBookingAccess())
	{
		guests.POST("", h.Create)
		guests.GET("", h.List)
		guests.GET("/:id", h.Get)
		guests.PUT("/:id", h.Update)
		guests.DELETE("/:id", h.Delete)
	}
}
