package models

import (
	"time"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	AggregateModel
	Username       string              `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email          string              `gorm:"type:varchar(200);index"`
	PasswordHash   string              `gorm:"type:varchar(100);not null"`
	FirstName      string              `gorm:"type:varchar(100)"`
	LastName       string              `gorm:"type:varchar(100)"`
	Role           identity.Role       `gorm:"type:varchar(20);not null;index"`
	Phone          string              `gorm:"type:varchar(50)"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
	HireDate       time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Role:              m.Role,
		Phone:             m.Phone,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		HireDate:          m.HireDate,
	}
}

// UserModelFromDomain builds a persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		Phone:          u.Phone,
		Status:         u.Status,
		LastLoginAt:    u.LastLoginAt,
		FailedAttempts: u.FailedAttempts,
		LockedUntil:    u.LockedUntil,
		HireDate:       u.HireDate,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
