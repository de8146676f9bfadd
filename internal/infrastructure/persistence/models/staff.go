package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/staff"
)

// DepartmentModel is the persistence model for the Department entity.
type DepartmentModel struct {
	BaseModel
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	ManagerID   *uuid.UUID `gorm:"type:uuid"`
	IsActive    bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department
func (m *DepartmentModel) ToDomain() *staff.Department {
	return &staff.Department{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		ManagerID:   m.ManagerID,
		IsActive:    m.IsActive,
	}
}

// DepartmentModelFromDomain builds a persistence model from a domain Department
func DepartmentModelFromDomain(d *staff.Department) *DepartmentModel {
	m := &DepartmentModel{
		Name:        d.Name,
		Description: d.Description,
		ManagerID:   d.ManagerID,
		IsActive:    d.IsActive,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// StaffMemberModel is the persistence model for the StaffMember aggregate.
type StaffMemberModel struct {
	AggregateModel
	UserID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	EmployeeID       string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	DepartmentID     *uuid.UUID       `gorm:"type:uuid;index"`
	Position         string           `gorm:"type:varchar(100);not null"`
	HireDate         time.Time        `gorm:"not null"`
	Salary           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	EmergencyContact string           `gorm:"type:varchar(200)"`
	EmergencyPhone   string           `gorm:"type:varchar(50)"`
	IsActive         bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (StaffMemberModel) TableName() string {
	return "staff_members"
}

// ToDomain converts the persistence model to a domain StaffMember
func (m *StaffMemberModel) ToDomain() *staff.StaffMember {
	return &staff.StaffMember{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		EmployeeID:        m.EmployeeID,
		DepartmentID:      m.DepartmentID,
		Position:          m.Position,
		HireDate:          m.HireDate,
		Salary:            m.Salary,
		EmergencyContact:  m.EmergencyContact,
		EmergencyPhone:    m.EmergencyPhone,
		IsActive:          m.IsActive,
	}
}

// StaffMemberModelFromDomain builds a persistence model from a domain StaffMember
func StaffMemberModelFromDomain(s *staff.StaffMember) *StaffMemberModel {
	m := &StaffMemberModel{
		UserID:           s.UserID,
		EmployeeID:       s.EmployeeID,
		DepartmentID:     s.DepartmentID,
		Position:         s.Position,
		HireDate:         s.HireDate,
		Salary:           s.Salary,
		EmergencyContact: s.EmergencyContact,
		EmergencyPhone:   s.EmergencyPhone,
		IsActive:         s.IsActive,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}
