package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/identity"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/staff"
)

// StaffService handles department and staff record management
type StaffService struct {
	departmentRepo staff.DepartmentRepository
	staffRepo      staff.StaffRepository
	userRepo       identity.UserRepository
	logger         *zap.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(
	departmentRepo staff.DepartmentRepository,
	staffRepo staff.StaffRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *StaffService {
	return &StaffService{
		departmentRepo: departmentRepo,
		staffRepo:      staffRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// DepartmentResponse is the read model for a department
type DepartmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToDepartmentResponse converts a department to its response form
func ToDepartmentResponse(d *staff.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ManagerID:   d.ManagerID,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// StaffMemberResponse is the read model for a staff record
type StaffMemberResponse struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	EmployeeID       string           `json:"employee_id"`
	DepartmentID     *uuid.UUID       `json:"department_id,omitempty"`
	Position         string           `json:"position"`
	HireDate         time.Time        `json:"hire_date"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	EmergencyContact string           `json:"emergency_contact"`
	EmergencyPhone   string           `json:"emergency_phone"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ToStaffMemberResponse converts a staff record to its response form
func ToStaffMemberResponse(m *staff.StaffMember) StaffMemberResponse {
	return StaffMemberResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		EmployeeID:       m.EmployeeID,
		DepartmentID:     m.DepartmentID,
		Position:         m.Position,
		HireDate:         m.HireDate,
		Salary:           m.Salary,
		EmergencyContact: m.EmergencyContact,
		EmergencyPhone:   m.EmergencyPhone,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CreateDepartmentRequest contains the input for creating a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateDepartment creates a new department with a unique name
func (s *StaffService) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	if existing, err := s.departmentRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
	}

	department, err := staff.NewDepartment(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info("Department created",
		zap.String("department_id", department.ID.String()),
		zap.String("name", department.Name))

	resp := ToDepartmentResponse(department)
	return &resp, nil
}

// ListDepartments returns all departments
func (s *StaffService) ListDepartments(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, ToDepartmentResponse(&departments[i]))
	}
	return responses, nil
}

// AssignDepartmentManager sets the manager of a department
func (s *StaffService) AssignDepartmentManager(ctx context.Context, departmentID, userID uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	department.AssignManager(userID)

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	resp := ToDepartmentResponse(department)
	return &resp, nil
}

// DeleteDepartment removes a department with no assigned staff
func (s *StaffService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.staffRepo.Count(ctx, staff.StaffFilter{
		Filter:       shared.DefaultFilter(),
		DepartmentID: &id,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("DEPARTMENT_IN_USE", "Department with assigned staff cannot be deleted")
	}

	if err := s.departmentRepo.Delete(ctx, department.ID); err != nil {
		return err
	}

	s.logger.Info("Department deleted",
		zap.String("department_id", department.ID.String()),
		zap.String("name", department.Name))

	return nil
}

// CreateStaffMemberRequest contains the input for creating a staff record
type CreateStaffMemberRequest struct {
	UserID           uuid.UUID        `json:"user_id" binding:"required"`
	EmployeeID       string           `json:"employee_id" binding:"required"`
	Position         string           `json:"position" binding:"required"`
	DepartmentID     *uuid.UUID       `json:"department_id"`
	HireDate         time.Time        `json:"hire_date"`
	Salary           *decimal.Decimal `json:"salary"`
	EmergencyContact string           `json:"emergency_contact"`
	EmergencyPhone   string           `json:"emergency_phone"`
}

// CreateStaffMember creates an employment record for an existing user
func (s *StaffService) CreateStaffMember(ctx context.Context, req CreateStaffMemberRequest) (*StaffMemberResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	if existing, err := s.staffRepo.FindByUserID(ctx, req.UserID); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Staff record for this user already exists")
	}

	if existing, err := s.staffRepo.FindByEmployeeID(ctx, req.EmployeeID); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee ID is already in use")
	}

	member, err := staff.NewStaffMember(req.UserID, req.EmployeeID, req.Position, req.HireDate)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *req.DepartmentID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Department not found")
		}
		member.AssignDepartment(*req.DepartmentID)
	}

	if req.Salary != nil {
		if err := member.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}
	member.EmergencyContact = req.EmergencyContact
	member.EmergencyPhone = req.EmergencyPhone

	if err := s.staffRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("Staff member created",
		zap.String("staff_id", member.ID.String()),
		zap.String("employee_id", member.EmployeeID))

	resp := ToStaffMemberResponse(member)
	return &resp, nil
}

// GetStaffMember retrieves a staff record by ID
func (s *StaffService) GetStaffMember(ctx context.Context, id uuid.UUID) (*StaffMemberResponse, error) {
	member, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToStaffMemberResponse(member)
	return &resp, nil
}

// ListStaffFilter defines filtering for staff listings
type ListStaffFilter struct {
	DepartmentID *uuid.UUID
	IsActive     *bool
	Search       string
	Page         int
	PageSize     int
}

// ListStaff returns a paginated staff listing
func (s *StaffService) ListStaff(ctx context.Context, filter ListStaffFilter) (*shared.Paginated[StaffMemberResponse], error) {
	domainFilter := staff.StaffFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.DepartmentID = filter.DepartmentID
	domainFilter.IsActive = filter.IsActive

	members, err := s.staffRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.staffRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]StaffMemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, ToStaffMemberResponse(&members[i]))
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateStaffMemberRequest contains the mutable staff record fields
type UpdateStaffMemberRequest struct {
	Position         *string          `json:"position"`
	DepartmentID     *uuid.UUID       `json:"department_id"`
	Salary           *decimal.Decimal `json:"salary"`
	EmergencyContact *string          `json:"emergency_contact"`
	EmergencyPhone   *string          `json:"emergency_phone"`
}

// UpdateStaffMember updates an employment record
func (s *StaffService) UpdateStaffMember(ctx context.Context, id uuid.UUID, req UpdateStaffMemberRequest) (*StaffMemberResponse, error) {
	member, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		if *req.Position == "" {
			return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
		}
		member.Position = *req.Position
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *req.DepartmentID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Department not found")
		}
		member.AssignDepartment(*req.DepartmentID)
	}
	if req.Salary != nil {
		if err := member.SetSalary(*req.Salary); err != nil {
			return nil, err
		}
	}
	if req.EmergencyContact != nil {
		member.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		member.EmergencyPhone = *req.EmergencyPhone
	}

	if err := s.staffRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToStaffMemberResponse(member)
	return &resp, nil
}

// DeactivateStaffMember ends an employment record
func (s *StaffService) DeactivateStaffMember(ctx context.Context, id uuid.UUID) (*StaffMemberResponse, error) {
	member, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Deactivate()

	if err := s.staffRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("Staff member deactivated",
		zap.String("staff_id", member.ID.String()),
		zap.String("employee_id", member.EmployeeID))

	resp := ToStaffMemberResponse(member)
	return &resp, nil
}

// DeleteStaffMember removes an employment record permanently
func (s *StaffService) DeleteStaffMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.staffRepo.Delete(ctx, member.ID); err != nil {
		return err
	}

	s.logger.Info("Staff member deleted",
		zap.String("staff_id", member.ID.String()),
		zap.String("employee_id", member.EmployeeID))

	return nil
}
