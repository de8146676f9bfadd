package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	staffapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/staff"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// StaffHandler handles department and employment record endpoints
type StaffHandler struct {
	BaseHandler
	staffService *staffapp.StaffService
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *staffapp.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// AssignManagerRequest is the request body for a department manager assignment
type AssignManagerRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// CreateDepartment creates a new department
func (h *StaffHandler) CreateDepartment(c *gin.Context) {
	var req staffapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.staffService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, department)
}

// ListDepartments returns all departments
func (h *StaffHandler) ListDepartments(c *gin.Context) {
	departments, err := h.staffService.ListDepartments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, departments)
}

// AssignManager assigns a user as department manager
func (h *StaffHandler) AssignManager(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.staffService.AssignDepartmentManager(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// DeleteDepartment removes a department without staff
func (h *StaffHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	if err := h.staffService.DeleteDepartment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateStaffMember creates an employment record
func (h *StaffHandler) CreateStaffMember(c *gin.Context) {
	var req staffapp.CreateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	member, err := h.staffService.CreateStaffMember(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, member)
}

// GetStaffMember returns an employment record by ID
func (h *StaffHandler) GetStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid staff member ID")
		return
	}

	member, err := h.staffService.GetStaffMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// ListStaff returns a page of employment records
func (h *StaffHandler) ListStaff(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	departmentID, err := parseUUIDQuery(c, "department_id")
	if err != nil {
		h.BadRequest(c, "Invalid department_id value")
		return
	}
	isActive, err := parseBoolQuery(c, "is_active")
	if err != nil {
		h.BadRequest(c, "Invalid is_active value")
		return
	}

	page, err := h.staffService.ListStaff(c.Request.Context(), staffapp.ListStaffFilter{
		DepartmentID: departmentID,
		IsActive:     isActive,
		Search:       q.Search,
		Page:         q.Page,
		PageSize:     q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateStaffMember updates an employment record
func (h *StaffHandler) UpdateStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid staff member ID")
		return
	}

	var req staffapp.UpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	member, err := h.staffService.UpdateStaffMember(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// DeactivateStaffMember ends an employment record
func (h *StaffHandler) DeactivateStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid staff member ID")
		return
	}

	member, err := h.staffService.DeactivateStaffMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, member)
}

// DeleteStaffMember removes an employment record
func (h *StaffHandler) DeleteStaffMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid staff member ID")
		return
	}

	if err := h.staffService.DeleteStaffMember(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers staff administration routes
func (h *StaffHandler) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments", middleware.RequireAdmin())
	{
		departments.POST("", h.CreateDepartment)
		departments.GET("", h.ListDepartments)
		departments.PUT("/:id/manager", h.AssignManager)
		departments.DELETE("/:id", h.DeleteDepartment)
	}

	staff := rg.Group("/staff", middleware.RequireAdmin())
	{
		staff.POST("", h.CreateStaffMember)
		staff.GET("", h.ListStaff)
		staff.GET("/:id", h.GetStaffMember)
		staff.PUT("/:id", h.UpdateStaffMember)
		staff.POST("/:id/deactivate", h.DeactivateStaffMember)
		staff.DELETE("/:id", h.DeleteStaffMember)
	}
}
