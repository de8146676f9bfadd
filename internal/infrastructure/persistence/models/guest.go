package models

import (
	"time"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
)

// GuestModel is the persistence model for the Guest aggregate.
type GuestModel struct {
	AggregateModel
	FirstName       string          `gorm:"type:varchar(100);not null"`
	LastName        string          `gorm:"type:varchar(100);not null"`
	Email           *string         `gorm:"type:varchar(200);uniqueIndex"`
	Phone           string          `gorm:"type:varchar(50);not null;index"`
	GuestType       guest.GuestType `gorm:"type:varchar(20);not null;index"`
	GuestSource     string          `gorm:"type:varchar(50)"`
	Age             *int
	DateOfBirth     *time.Time
	Gender          string          `gorm:"type:varchar(20)"`
	Nationality     string          `gorm:"type:varchar(100)"`
	IDType          guest.IDType    `gorm:"type:varchar(20)"`
	IDNumber        string          `gorm:"type:varchar(100)"`
	Address         string          `gorm:"type:text"`
	City            string          `gorm:"type:varchar(100)"`
	Country         string          `gorm:"type:varchar(100)"`
	PostalCode      string          `gorm:"type:varchar(20)"`
	VIPStatus       guest.VIPStatus `gorm:"type:varchar(20);not null;default:'regular';index"`
	SpecialRequests string          `gorm:"type:text"`
	IsActive        bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (GuestModel) TableName() string {
	return "guests"
}

// ToDomain converts the persistence model to a domain Guest
func (m *GuestModel) ToDomain() *guest.Guest {
	return &guest.Guest{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		Phone:             m.Phone,
		GuestType:         m.GuestType,
		GuestSource:       m.GuestSource,
		Age:               m.Age,
		DateOfBirth:       m.DateOfBirth,
		Gender:            m.Gender,
		Nationality:       m.Nationality,
		IDType:            m.IDType,
		IDNumber:          m.IDNumber,
		Address:           m.Address,
		City:              m.City,
		Country:           m.Country,
		PostalCode:        m.PostalCode,
		VIPStatus:         m.VIPStatus,
		SpecialRequests:   m.SpecialRequests,
		IsActive:          m.IsActive,
	}
}

// GuestModelFromDomain builds a persistence model from a domain Guest
func GuestModelFromDomain(g *guest.Guest) *GuestModel {
	m := &GuestModel{
		FirstName:       g.FirstName,
		LastName:        g.LastName,
		Email:           g.Email,
		Phone:           g.Phone,
		GuestType:       g.GuestType,
		GuestSource:     g.GuestSource,
		Age:             g.Age,
		DateOfBirth:     g.DateOfBirth,
		Gender:          g.Gender,
		Nationality:     g.Nationality,
		IDType:          g.IDType,
		IDNumber:        g.IDNumber,
		Address:         g.Address,
		City:            g.City,
		Country:         g.Country,
		PostalCode:      g.PostalCode,
		VIPStatus:       g.VIPStatus,
		SpecialRequests: g.SpecialRequests,
		IsActive:        g.IsActive,
	}
	m.FromDomainAggregateRoot(g.BaseAggregateRoot)
	return m
}
