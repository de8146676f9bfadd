package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AggregateModel
	InvoiceNumber       string                `gorm:"type:varchar(20);not null;uniqueIndex"`
	InvoiceType         billing.InvoiceType   `gorm:"type:varchar(20);not null;index"`
	BookingID           *uuid.UUID            `gorm:"type:uuid;index"`
	OrderID             *uuid.UUID            `gorm:"type:uuid;index"`
	ConferenceBookingID *uuid.UUID            `gorm:"type:uuid;index"`
	CustomerName        string                `gorm:"type:varchar(200);not null"`
	CustomerEmail       string                `gorm:"type:varchar(200)"`
	CustomerPhone       string                `gorm:"type:varchar(50)"`
	CustomerAddress     string                `gorm:"type:text"`
	InvoiceDate         time.Time             `gorm:"not null;index"`
	DueDate             time.Time             `gorm:"not null;index"`
	Subtotal            decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount           decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	DiscountAmount      decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount         decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	PaidAmount          decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0"`
	Status              billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Notes               string                `gorm:"type:text"`
	Payments            []PaymentModel        `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseAggregateRoot:   m.ToDomainAggregateRoot(),
		InvoiceNumber:       m.InvoiceNumber,
		InvoiceType:         m.InvoiceType,
		BookingID:           m.BookingID,
		OrderID:             m.OrderID,
		ConferenceBookingID: m.ConferenceBookingID,
		CustomerName:        m.CustomerName,
		CustomerEmail:       m.CustomerEmail,
		CustomerPhone:       m.CustomerPhone,
		CustomerAddress:     m.CustomerAddress,
		InvoiceDate:         m.InvoiceDate,
		DueDate:             m.DueDate,
		Subtotal:            m.Subtotal,
		TaxAmount:           m.TaxAmount,
		DiscountAmount:      m.DiscountAmount,
		TotalAmount:         m.TotalAmount,
		PaidAmount:          m.PaidAmount,
		Status:              m.Status,
		Notes:               m.Notes,
	}
	if len(m.Payments) > 0 {
		inv.Payments = make([]billing.Payment, len(m.Payments))
		for i, p := range m.Payments {
			inv.Payments[i] = *p.ToDomain()
		}
	}
	return inv
}

// InvoiceModelFromDomain builds a persistence model from a domain Invoice.
// Payments are persisted separately and never written through the invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		InvoiceNumber:       inv.InvoiceNumber,
		InvoiceType:         inv.InvoiceType,
		BookingID:           inv.BookingID,
		OrderID:             inv.OrderID,
		ConferenceBookingID: inv.ConferenceBookingID,
		CustomerName:        inv.CustomerName,
		CustomerEmail:       inv.CustomerEmail,
		CustomerPhone:       inv.CustomerPhone,
		CustomerAddress:     inv.CustomerAddress,
		InvoiceDate:         inv.InvoiceDate,
		DueDate:             inv.DueDate,
		Subtotal:            inv.Subtotal,
		TaxAmount:           inv.TaxAmount,
		DiscountAmount:      inv.DiscountAmount,
		TotalAmount:         inv.TotalAmount,
		PaidAmount:          inv.PaidAmount,
		Status:              inv.Status,
		Notes:               inv.Notes,
	}
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	return m
}

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	BaseModel
	InvoiceID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	PaymentMethod billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaymentDate   time.Time             `gorm:"not null;index"`
	Status        billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'completed';index"`
	TransactionID string                `gorm:"type:varchar(100)"`
	Notes         string                `gorm:"type:text"`
	ProcessedBy   *uuid.UUID            `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity:    m.BaseModel.ToDomain(),
		InvoiceID:     m.InvoiceID,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		PaymentDate:   m.PaymentDate,
		Status:        m.Status,
		TransactionID: m.TransactionID,
		Notes:         m.Notes,
		ProcessedBy:   m.ProcessedBy,
	}
}

// PaymentModelFromDomain builds a persistence model from a domain Payment
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		Notes:         p.Notes,
		ProcessedBy:   p.ProcessedBy,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// TaxRateModel is the persistence model for the TaxRate entity.
type TaxRateModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Description string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// ToDomain converts the persistence model to a domain TaxRate
func (m *TaxRateModel) ToDomain() *billing.TaxRate {
	return &billing.TaxRate{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Rate:        m.Rate,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// TaxRateModelFromDomain builds a persistence model from a domain TaxRate
func TaxRateModelFromDomain(t *billing.TaxRate) *TaxRateModel {
	m := &TaxRateModel{
		Name:        t.Name,
		Rate:        t.Rate,
		Description: t.Description,
		IsActive:    t.IsActive,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// DiscountModel is the persistence model for the Discount entity.
type DiscountModel struct {
	BaseModel
	Name         string               `gorm:"type:varchar(100);not null"`
	DiscountType billing.DiscountType `gorm:"type:varchar(20);not null"`
	Value        decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	Description  string               `gorm:"type:text"`
	ValidFrom    time.Time            `gorm:"not null"`
	ValidTo      *time.Time
	IsActive     bool `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (DiscountModel) TableName() string {
	return "discounts"
}

// ToDomain converts the persistence model to a domain Discount
func (m *DiscountModel) ToDomain() *billing.Discount {
	return &billing.Discount{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		DiscountType: m.DiscountType,
		Value:        m.Value,
		Description:  m.Description,
		ValidFrom:    m.ValidFrom,
		ValidTo:      m.ValidTo,
		IsActive:     m.IsActive,
	}
}

// DiscountModelFromDomain builds a persistence model from a domain Discount
func DiscountModelFromDomain(d *billing.Discount) *DiscountModel {
	m := &DiscountModel{
		Name:         d.Name,
		DiscountType: d.DiscountType,
		Value:        d.Value,
		Description:  d.Description,
		ValidFrom:    d.ValidFrom,
		ValidTo:      d.ValidTo,
		IsActive:     d.IsActive,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}
