package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	restaurantapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/restaurant"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// RestaurantHandler handles menu and order endpoints
type RestaurantHandler struct {
	BaseHandler
	restaurantService *restaurantapp.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService *restaurantapp.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// CreateMenuCategoryRequest is the request body for menu category creation
type CreateMenuCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=1000"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// CreateMenuItemRequest is the request body for menu item creation
type CreateMenuItemRequest struct {
	Name            string          `json:"name" binding:"required,min=1,max=200"`
	CategoryID      uuid.UUID       `json:"category_id" binding:"required"`
	Description     string          `json:"description" binding:"max=1000"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CuisineType     string          `json:"cuisine_type" binding:"max=100"`
	PreparationMins int             `json:"preparation_mins" binding:"min=0"`
	IsVegetarian    bool            `json:"is_vegetarian"`
}

// SetAvailabilityRequest is the request body for item availability changes
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// OrderItemRequest is a single line in an order request
type OrderItemRequest struct {
	MenuItemID          uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity            int       `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string    `json:"special_instructions" binding:"max=500"`
}

// CreateOrderRequest is the request body for order creation
type CreateOrderRequest struct {
	GuestName           string             `json:"guest_name" binding:"required,min=1,max=200"`
	GuestPhone          string             `json:"guest_phone" binding:"max=50"`
	GuestID             *uuid.UUID         `json:"guest_id"`
	RoomID              *uuid.UUID         `json:"room_id"`
	SpecialInstructions string             `json:"special_instructions" binding:"max=1000"`
	Items               []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateMenuCategory creates a new menu category
func (h *RestaurantHandler) CreateMenuCategory(c *gin.Context) {
	var req CreateMenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.restaurantService.CreateMenuCategory(c.Request.Context(), restaurantapp.CreateMenuCategoryRequest{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// ListMenuCategories returns all menu categories in display order
func (h *RestaurantHandler) ListMenuCategories(c *gin.Context) {
	categories, err := h.restaurantService.ListMenuCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// CreateMenuItem creates a new menu item
func (h *RestaurantHandler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.restaurantService.CreateMenuItem(c.Request.Context(), restaurantapp.CreateMenuItemRequest{
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		Price:           req.Price,
		CuisineType:     req.CuisineType,
		PreparationMins: req.PreparationMins,
		IsVegetarian:    req.IsVegetarian,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// ListMenuItems returns menu items, optionally filtered by category
func (h *RestaurantHandler) ListMenuItems(c *gin.Context) {
	categoryID, err := parseUUIDQuery(c, "category_id")
	if err != nil {
		h.BadRequest(c, "Invalid category_id value")
		return
	}

	items, err := h.restaurantService.ListMenuItems(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// SetMenuItemAvailability toggles whether an item can be ordered
func (h *RestaurantHandler) SetMenuItemAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.restaurantService.SetMenuItemAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// CreateOrder places a new restaurant order
func (h *RestaurantHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	items := make([]restaurantapp.OrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, restaurantapp.OrderItemRequest{
			MenuItemID:          it.MenuItemID,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	order, err := h.restaurantService.CreateOrder(c.Request.Context(), restaurantapp.CreateOrderRequest{
		GuestName:           req.GuestName,
		GuestPhone:          req.GuestPhone,
		GuestID:             req.GuestID,
		RoomID:              req.RoomID,
		SpecialInstructions: req.SpecialInstructions,
		Items:               items,
		ActorID:             actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetOrder returns an order with its line items
func (h *RestaurantHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.restaurantService.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders returns a page of orders
func (h *RestaurantHandler) ListOrders(c *gin.Context) {
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

	page, err := h.restaurantService.ListOrders(c.Request.Context(), restaurantapp.ListOrdersFilter{
		GuestID:       guestID,
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

// AddOrderItem appends a line item to a pending order
func (h *RestaurantHandler) AddOrderItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.restaurantService.AddOrderItem(c.Request.Context(), id, restaurantapp.OrderItemRequest{
		MenuItemID:          req.MenuItemID,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// AdvanceOrder moves an order to its next workflow state
func (h *RestaurantHandler) AdvanceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.restaurantService.AdvanceOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// CancelOrder cancels an unserved order
func (h *RestaurantHandler) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.restaurantService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// DeleteOrder removes an order and its line items
func (h *RestaurantHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.restaurantService.DeleteOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers restaurant routes
func (h *RestaurantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	restaurant := rg.Group("/restaurant", middleware.RequireRestaurantAccess())
	{
		restaurant.POST("/categories", h.CreateMenuCategory)
		restaurant.GET("/categories", h.ListMenuCategories)
		restaurant.POST("/items", h.CreateMenuItem)
		restaurant.GET("/items", h.ListMenuItems)
		restaurant.PUT("/items/:id/availability", h.SetMenuItemAvailability)

		restaurant.POST("/orders", h.CreateOrder)
		restaurant.GET("/orders", h.ListOrders)
		restaurant.GET("/orders/:id", h.GetOrder)
		restaurant.POST("/orders/:id/items", h.AddOrderItem)
		restaurant.POST("/orders/:id/advance", h.AdvanceOrder)
		restaurant.POST("/orders/:id/cancel", h.CancelOrder)
		restaurant.DELETE("/orders/:id", middleware.RequireAdmin(), h.DeleteOrder)
	}
}
