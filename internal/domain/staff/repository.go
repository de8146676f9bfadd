package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// StaffFilter defines filtering options for staff queries
type StaffFilter struct {
	shared.Filter
	DepartmentID *uuid.UUID // Filter by department
	IsActive     *bool      // Filter by active flag
}

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	FindAll(ctx context.Context) ([]Department, error)
	Save(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StaffRepository defines the interface for staff member persistence
type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaffMember, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*StaffMember, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*StaffMember, error)
	FindAll(ctx context.Context, filter StaffFilter) ([]StaffMember, error)
	Count(ctx context.Context, filter StaffFilter) (int64, error)
	Save(ctx context.Context, s *StaffMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}
