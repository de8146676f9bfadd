package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// TaxRate is a named percentage that can be applied to invoices
type TaxRate struct {
	shared.BaseEntity
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
}

// NewTaxRate creates an active tax rate. Rate is a percentage, 0-100.
func NewTaxRate(name string, rate decimal.Decimal, description string) (*TaxRate, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TAX_NAME", "Tax rate name cannot be empty")
	}
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	return &TaxRate{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Rate:        rate,
		Description: description,
		IsActive:    true,
	}, nil
}

// Apply returns the tax amount for the given base amount
func (t *TaxRate) Apply(base decimal.Decimal) decimal.Decimal {
	return base.Mul(t.Rate).Div(decimal.NewFromInt(100)).Round(2)
}

// Deactivate retires the tax rate without deleting it
func (t *TaxRate) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// DiscountType distinguishes percentage from fixed-amount discounts
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid checks if the type is a valid DiscountType
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// String returns the string representation of DiscountType
func (t DiscountType) String() string {
	return string(t)
}

// Discount is a named reduction applicable to invoices within a validity window
type Discount struct {
	shared.BaseEntity
	Name         string          `json:"name"`
	DiscountType DiscountType    `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	Description  string          `json:"description"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidTo      *time.Time      `json:"valid_to,omitempty"`
	IsActive     bool            `json:"is_active"`
}

// NewDiscount creates an active discount valid from now. A nil validTo means
// the discount never expires.
func NewDiscount(name string, discountType DiscountType, value decimal.Decimal, validTo *time.Time) (*Discount, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_NAME", "Discount name cannot be empty")
	}
	if !discountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Invalid discount type selected")
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_VALUE", "Discount value must be positive")
	}
	if discountType == DiscountTypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_VALUE", "Percentage discount cannot exceed 100")
	}

	return &Discount{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		DiscountType: discountType,
		Value:        value,
		ValidFrom:    time.Now(),
		ValidTo:      validTo,
		IsActive:     true,
	}, nil
}

// IsValidAt reports whether the discount can be applied at the given time
func (d *Discount) IsValidAt(at time.Time) bool {
	if !d.IsActive {
		return false
	}
	if at.Before(d.ValidFrom) {
		return false
	}
	if d.ValidTo != nil && at.After(*d.ValidTo) {
		return false
	}
	return true
}

// Apply returns the discount amount for the given base amount, capped at base
func (d *Discount) Apply(base decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	if d.DiscountType == DiscountTypePercentage {
		amount = base.Mul(d.Value).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		amount = d.Value
	}
	if amount.GreaterThan(base) {
		return base
	}
	return amount
}

// Deactivate retires the discount without deleting it
func (d *Discount) Deactivate() {
	d.IsActive = false
	d.UpdatedAt = time.Now()
}
