package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
)

// BookingModel is the persistence model for the Booking aggregate.
type BookingModel struct {
	AggregateModel
	BookingNumber   string                `gorm:"type:varchar(20);not null;uniqueIndex"`
	GuestID         uuid.UUID             `gorm:"type:uuid;not null;index"`
	RoomID          uuid.UUID             `gorm:"type:uuid;not null;index"`
	CheckInDate     time.Time             `gorm:"not null;index"`
	CheckOutDate    time.Time             `gorm:"not null;index"`
	NumberOfGuests  int                   `gorm:"not null;default:1"`
	GuestNames      string                `gorm:"type:text"`
	RoomRate        decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	DepositAmount   decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	BalanceAmount   decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	Status          booking.BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus   booking.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SpecialRequests string                `gorm:"type:text"`
	Source          booking.BookingSource `gorm:"type:varchar(20);not null;default:'walk_in'"`
	ConfirmedAt     *time.Time
	CancelledAt     *time.Time
	Payments        []BookingPaymentModel `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts the persistence model to a domain Booking
func (m *BookingModel) ToDomain() *booking.Booking {
	b := &booking.Booking{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BookingNumber:     m.BookingNumber,
		GuestID:           m.GuestID,
		RoomID:            m.RoomID,
		CheckInDate:       m.CheckInDate,
		CheckOutDate:      m.CheckOutDate,
		NumberOfGuests:    m.NumberOfGuests,
		GuestNames:        m.GuestNames,
		RoomRate:          m.RoomRate,
		TotalAmount:       m.TotalAmount,
		DepositAmount:     m.DepositAmount,
		BalanceAmount:     m.BalanceAmount,
		Status:            m.Status,
		PaymentStatus:     m.PaymentStatus,
		SpecialRequests:   m.SpecialRequests,
		Source:            m.Source,
		ConfirmedAt:       m.ConfirmedAt,
		CancelledAt:       m.CancelledAt,
	}
	if len(m.Payments) > 0 {
		b.Payments = make([]booking.BookingPayment, len(m.Payments))
		for i, p := range m.Payments {
			b.Payments[i] = *p.ToDomain()
		}
	}
	return b
}

// BookingModelFromDomain builds a persistence model from a domain Booking.
// Payments are persisted through their own repository.
func BookingModelFromDomain(b *booking.Booking) *BookingModel {
	m := &BookingModel{
		BookingNumber:   b.BookingNumber,
		GuestID:         b.GuestID,
		RoomID:          b.RoomID,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		NumberOfGuests:  b.NumberOfGuests,
		GuestNames:      b.GuestNames,
		RoomRate:        b.RoomRate,
		TotalAmount:     b.TotalAmount,
		DepositAmount:   b.DepositAmount,
		BalanceAmount:   b.BalanceAmount,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		SpecialRequests: b.SpecialRequests,
		Source:          b.Source,
		ConfirmedAt:     b.ConfirmedAt,
		CancelledAt:     b.CancelledAt,
	}
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	return m
}

// BookingPaymentModel is the persistence model for the BookingPayment entity.
type BookingPaymentModel struct {
	BaseModel
	BookingID       uuid.UUID                    `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal              `gorm:"type:decimal(12,2);not null"`
	PaymentMethod   string                       `gorm:"type:varchar(20);not null"`
	PaymentDate     time.Time                    `gorm:"not null;index"`
	ReferenceNumber string                       `gorm:"type:varchar(100)"`
	Status          booking.BookingPaymentStatus `gorm:"type:varchar(20);not null;default:'completed';index"`
	ProcessedBy     *uuid.UUID                   `gorm:"type:uuid"`
	Notes           string                       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BookingPaymentModel) TableName() string {
	return "booking_payments"
}

// ToDomain converts the persistence model to a domain BookingPayment
func (m *BookingPaymentModel) ToDomain() *booking.BookingPayment {
	return &booking.BookingPayment{
		BaseEntity:      m.BaseModel.ToDomain(),
		BookingID:       m.BookingID,
		Amount:          m.Amount,
		PaymentMethod:   m.PaymentMethod,
		PaymentDate:     m.PaymentDate,
		ReferenceNumber: m.ReferenceNumber,
		Status:          m.Status,
		ProcessedBy:     m.ProcessedBy,
		Notes:           m.Notes,
	}
}

// BookingPaymentModelFromDomain builds a persistence model from a domain BookingPayment
func BookingPaymentModelFromDomain(p *booking.BookingPayment) *BookingPaymentModel {
	m := &BookingPaymentModel{
		BookingID:       p.BookingID,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		PaymentDate:     p.PaymentDate,
		ReferenceNumber: p.ReferenceNumber,
		Status:          p.Status,
		ProcessedBy:     p.ProcessedBy,
		Notes:           p.Notes,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
