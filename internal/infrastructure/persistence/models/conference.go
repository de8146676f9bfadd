package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
)

// ConferenceRoomModel is the persistence model for the ConferenceRoom entity.
type ConferenceRoomModel struct {
	BaseModel
	Name        string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	Capacity    int                   `gorm:"not null"`
	Floor       int                   `gorm:"not null;default:1"`
	Status      conference.RoomStatus `gorm:"type:varchar(20);not null;default:'available'"`
	HourlyRate  decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	DailyRate   decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	Description string                `gorm:"type:text"`
	Amenities   string                `gorm:"type:text"`
	IsActive    bool                  `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ConferenceRoomModel) TableName() string {
	return "conference_rooms"
}

// ToDomain converts the persistence model to a domain ConferenceRoom
func (m *ConferenceRoomModel) ToDomain() *conference.ConferenceRoom {
	return &conference.ConferenceRoom{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Capacity:    m.Capacity,
		Floor:       m.Floor,
		Status:      m.Status,
		HourlyRate:  m.HourlyRate,
		DailyRate:   m.DailyRate,
		Description: m.Description,
		Amenities:   m.Amenities,
		IsActive:    m.IsActive,
	}
}

// ConferenceRoomModelFromDomain builds a persistence model from a domain ConferenceRoom
func ConferenceRoomModelFromDomain(cr *conference.ConferenceRoom) *ConferenceRoomModel {
	m := &ConferenceRoomModel{
		Name:        cr.Name,
		Capacity:    cr.Capacity,
		Floor:       cr.Floor,
		Status:      cr.Status,
		HourlyRate:  cr.HourlyRate,
		DailyRate:   cr.DailyRate,
		Description: cr.Description,
		Amenities:   cr.Amenities,
		IsActive:    cr.IsActive,
	}
	m.FromDomainBaseEntity(cr.BaseEntity)
	return m
}

// ConferenceBookingModel is the persistence model for the ConferenceBooking aggregate.
type ConferenceBookingModel struct {
	AggregateModel
	BookingNumber       string                   `gorm:"type:varchar(20);not null;uniqueIndex"`
	RoomID              uuid.UUID                `gorm:"type:uuid;not null;index"`
	ClientName          string                   `gorm:"type:varchar(200);not null"`
	ClientEmail         string                   `gorm:"type:varchar(200)"`
	ClientPhone         string                   `gorm:"type:varchar(50)"`
	EventTitle          string                   `gorm:"type:varchar(200);not null"`
	EventDescription    string                   `gorm:"type:text"`
	StartDatetime       time.Time                `gorm:"not null;index"`
	EndDatetime         time.Time                `gorm:"not null;index"`
	AttendeesCount      int                      `gorm:"not null;default:1"`
	TotalAmount         decimal.Decimal          `gorm:"type:decimal(12,2);not null;default:0"`
	PaidAmount          decimal.Decimal          `gorm:"type:decimal(12,2);not null;default:0"`
	Status              conference.BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus       conference.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SpecialRequirements string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ConferenceBookingModel) TableName() string {
	return "conference_bookings"
}

// ToDomain converts the persistence model to a domain ConferenceBooking
func (m *ConferenceBookingModel) ToDomain() *conference.ConferenceBooking {
	return &conference.ConferenceBooking{
		BaseAggregateRoot:   m.ToDomainAggregateRoot(),
		BookingNumber:       m.BookingNumber,
		RoomID:              m.RoomID,
		ClientName:          m.ClientName,
		ClientEmail:         m.ClientEmail,
		ClientPhone:         m.ClientPhone,
		EventTitle:          m.EventTitle,
		EventDescription:    m.EventDescription,
		StartDatetime:       m.StartDatetime,
		EndDatetime:         m.EndDatetime,
		AttendeesCount:      m.AttendeesCount,
		TotalAmount:         m.TotalAmount,
		PaidAmount:          m.PaidAmount,
		Status:              m.Status,
		PaymentStatus:       m.PaymentStatus,
		SpecialRequirements: m.SpecialRequirements,
	}
}

// ConferenceBookingModelFromDomain builds a persistence model from a domain ConferenceBooking
func ConferenceBookingModelFromDomain(cb *conference.ConferenceBooking) *ConferenceBookingModel {
	m := &ConferenceBookingModel{
		BookingNumber:       cb.BookingNumber,
		RoomID:              cb.RoomID,
		ClientName:          cb.ClientName,
		ClientEmail:         cb.ClientEmail,
		ClientPhone:         cb.ClientPhone,
		EventTitle:          cb.EventTitle,
		EventDescription:    cb.EventDescription,
		StartDatetime:       cb.StartDatetime,
		EndDatetime:         cb.EndDatetime,
		AttendeesCount:      cb.AttendeesCount,
		TotalAmount:         cb.TotalAmount,
		PaidAmount:          cb.PaidAmount,
		Status:              cb.Status,
		PaymentStatus:       cb.PaymentStatus,
		SpecialRequirements: cb.SpecialRequirements,
	}
	m.FromDomainAggregateRoot(cb.BaseAggregateRoot)
	return m
}
