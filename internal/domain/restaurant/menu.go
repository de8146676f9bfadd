package restaurant

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// MenuCategory groups menu items for display
type MenuCategory struct {
	shared.BaseEntity
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// NewMenuCategory creates an active menu category
func NewMenuCategory(name string, displayOrder int) (*MenuCategory, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}

	return &MenuCategory{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}, nil
}

// CuisineType classifies a menu item's cuisine
type CuisineType string

const (
	CuisineLocal         CuisineType = "local"
	CuisineInternational CuisineType = "international"
	CuisineContinental   CuisineType = "continental"
	CuisineAsian         CuisineType = "asian"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineOther         CuisineType = "other"
)

// IsValid checks if the type is a valid CuisineType
func (c CuisineType) IsValid() bool {
	switch c {
	case CuisineLocal, CuisineInternational, CuisineContinental,
		CuisineAsian, CuisineMediterranean, CuisineOther:
		return true
	}
	return false
}

// MenuItem is a sellable dish on the restaurant menu
type MenuItem struct {
	shared.BaseEntity
	Name            string          `json:"name"`
	CategoryID      uuid.UUID       `json:"category_id"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CuisineType     CuisineType     `json:"cuisine_type"`
	PreparationMins int             `json:"preparation_mins"`
	IsVegetarian    bool            `json:"is_vegetarian"`
	IsAvailable     bool            `json:"is_available"`
}

// NewMenuItem creates an available menu item
func NewMenuItem(name string, categoryID uuid.UUID, price decimal.Decimal, cuisine CuisineType) (*MenuItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Menu item name cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Menu category cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Menu item price must be positive")
	}
	if !cuisine.IsValid() {
		cuisine = CuisineLocal
	}

	return &MenuItem{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		CategoryID:  categoryID,
		Price:       price,
		CuisineType: cuisine,
		IsAvailable: true,
	}, nil
}

// MarkUnavailable takes the item off the menu without deleting it
func (m *MenuItem) MarkUnavailable() {
	m.IsAvailable = false
	m.UpdatedAt = time.Now()
}
