package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// Department groups staff members under a manager
type Department struct {
	shared.BaseEntity
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// NewDepartment creates an active department
func NewDepartment(name, description string) (*Department, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name cannot be empty")
	}

	return &Department{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		IsActive:    true,
	}, nil
}

// AssignManager sets the department manager
func (d *Department) AssignManager(userID uuid.UUID) {
	d.ManagerID = &userID
	d.UpdatedAt = time.Now()
}

// StaffMember is the employment record behind a user account
type StaffMember struct {
	shared.BaseAggregateRoot
	UserID           uuid.UUID        `json:"user_id"`
	EmployeeID       string           `json:"employee_id"`
	DepartmentID     *uuid.UUID       `json:"department_id,omitempty"`
	Position         string           `json:"position"`
	HireDate         time.Time        `json:"hire_date"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	EmergencyContact string           `json:"emergency_contact"`
	EmergencyPhone   string           `json:"emergency_phone"`
	IsActive         bool             `json:"is_active"`
}

// NewStaffMember creates an active staff record
func NewStaffMember(userID uuid.UUID, employeeID, position string, hireDate time.Time) (*StaffMember, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if employeeID == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID cannot be empty")
	}
	if position == "" {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	if hireDate.IsZero() {
		hireDate = time.Now()
	}

	return &StaffMember{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		EmployeeID:        employeeID,
		Position:          position,
		HireDate:          hireDate,
		IsActive:          true,
	}, nil
}

// AssignDepartment moves the staff member to a department
func (s *StaffMember) AssignDepartment(departmentID uuid.UUID) {
	s.DepartmentID = &departmentID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetSalary records the staff member's salary
func (s *StaffMember) SetSalary(salary decimal.Decimal) error {
	if salary.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_SALARY", "Salary must be positive")
	}
	s.Salary = &salary
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Deactivate ends the employment record
func (s *StaffMember) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
