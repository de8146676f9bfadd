package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	roomapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// RoomHandler handles room and room type endpoints
type RoomHandler struct {
	BaseHandler
	roomService *roomapp.RoomService
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomService *roomapp.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomTypeRequest is the request body for room type creation
type CreateRoomTypeRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=1000"`
	BasePrice   decimal.Decimal `json:"base_price" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	Amenities   string          `json:"amenities" binding:"max=1000"`
}

// CreateRoomRequest is the request body for room creation
type CreateRoomRequest struct {
	RoomNumber   string           `json:"room_number" binding:"required,min=1,max=20"`
	RoomTypeID   uuid.UUID        `json:"room_type_id" binding:"required"`
	Floor        int              `json:"floor" binding:"min=0"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	Notes        string           `json:"notes" binding:"max=1000"`
}

// UpdateRoomRequest is the request body for room updates
type UpdateRoomRequest struct {
	RoomTypeID   uuid.UUID        `json:"room_type_id" binding:"required"`
	Floor        int              `json:"floor" binding:"min=0"`
	Status       string           `json:"status" binding:"required,oneof=available occupied maintenance cleaning reserved out_of_order"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	Notes        string           `json:"notes" binding:"max=1000"`
	IsActive     *bool            `json:"is_active"`
}

// UpdateRoomStatusRequest is the request body for a room status change
type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied maintenance cleaning reserved out_of_order"`
}

// CreateRoomType creates a new room type
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rt, err := h.roomService.CreateRoomType(c.Request.Context(), roomapp.CreateRoomTypeRequest{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Capacity:    req.Capacity,
		Amenities:   req.Amenities,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rt)
}

// ListRoomTypes returns all room types
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.roomService.ListRoomTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}

// CreateRoom creates a new room
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.roomService.CreateRoom(c.Request.Context(), roomapp.CreateRoomRequest{
		RoomNumber:   req.RoomNumber,
		RoomTypeID:   req.RoomTypeID,
		Floor:        req.Floor,
		CurrentPrice: req.CurrentPrice,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// GetRoom returns a room by ID
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	r, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// ListRooms returns a page of rooms ordered by room number
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	roomTypeID, err := parseUUIDQuery(c, "room_type_id")
	if err != nil {
		h.BadRequest(c, "Invalid room_type_id value")
		return
	}
	floor, err := parseIntQuery(c, "floor")
	if err != nil {
		h.BadRequest(c, "Invalid floor value")
		return
	}
	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, "Invalid is_active value")
		return
	}

	page, err := h.roomService.ListRooms(c.Request.Context(), roomapp.ListRoomsFilter{
		RoomTypeID: roomTypeID,
		Status:     c.Query("status"),
		Floor:      floor,
		IsActive:   isActive,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateRoom replaces the editable fields of a room
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.roomService.UpdateRoom(c.Request.Context(), id, roomapp.UpdateRoomRequest{
		RoomTypeID:   req.RoomTypeID,
		Floor:        req.Floor,
		Status:       room.RoomStatus(req.Status),
		CurrentPrice: req.CurrentPrice,
		Notes:        req.Notes,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// UpdateRoomStatus changes a room's operational status
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	var req UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.roomService.UpdateRoomStatus(c.Request.Context(), id, room.RoomStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// DeleteRoom removes an unoccupied room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers room and room type routes
func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup) {
	roomTypes := rg.Group("/room-types", middleware.RequireBookingAccess())
	{
		roomTypes.GET("", h.ListRoomTypes)
		roomTypes.POST("", middleware.RequireAdmin(), h.CreateRoomType)
	}

	rooms := rg.Group("/rooms", middleware.RequireBookingAccess())
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id/status", h.UpdateRoomStatus)
		rooms.POST("", middleware.RequireAdmin(), h.CreateRoom)
		rooms.PUT("/:id", middleware.RequireAdmin(), h.UpdateRoom)
		rooms.DELETE("/:id", middleware.RequireAdmin(), h.DeleteRoom)
	}
}
