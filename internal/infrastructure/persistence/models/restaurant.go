package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/restaurant"
)

// MenuCategoryModel is the persistence model for the MenuCategory entity.
type MenuCategoryModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (MenuCategoryModel) TableName() string {
	return "menu_categories"
}

// ToDomain converts the persistence model to a domain MenuCategory
func (m *MenuCategoryModel) ToDomain() *restaurant.MenuCategory {
	return &restaurant.MenuCategory{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
	}
}

// MenuCategoryModelFromDomain builds a persistence model from a domain MenuCategory
func MenuCategoryModelFromDomain(c *restaurant.MenuCategory) *MenuCategoryModel {
	m := &MenuCategoryModel{
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// MenuItemModel is the persistence model for the MenuItem entity.
type MenuItemModel struct {
	BaseModel
	Name            string                 `gorm:"type:varchar(200);not null"`
	CategoryID      uuid.UUID              `gorm:"type:uuid;not null;index"`
	Description     string                 `gorm:"type:text"`
	Price           decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	CuisineType     restaurant.CuisineType `gorm:"type:varchar(20);not null;default:'local'"`
	PreparationMins int                    `gorm:"not null;default:0"`
	IsVegetarian    bool                   `gorm:"not null;default:false"`
	IsAvailable     bool                   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToDomain converts the persistence model to a domain MenuItem
func (m *MenuItemModel) ToDomain() *restaurant.MenuItem {
	return &restaurant.MenuItem{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		Price:           m.Price,
		CuisineType:     m.CuisineType,
		PreparationMins: m.PreparationMins,
		IsVegetarian:    m.IsVegetarian,
		IsAvailable:     m.IsAvailable,
	}
}

// MenuItemModelFromDomain builds a persistence model from a domain MenuItem
func MenuItemModelFromDomain(item *restaurant.MenuItem) *MenuItemModel {
	m := &MenuItemModel{
		Name:            item.Name,
		CategoryID:      item.CategoryID,
		Description:     item.Description,
		Price:           item.Price,
		CuisineType:     item.CuisineType,
		PreparationMins: item.PreparationMins,
		IsVegetarian:    item.IsVegetarian,
		IsAvailable:     item.IsAvailable,
	}
	m.FromDomainBaseEntity(item.BaseEntity)
	return m
}

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	AggregateModel
	OrderNumber         string                        `gorm:"type:varchar(20);not null;uniqueIndex"`
	GuestID             *uuid.UUID                    `gorm:"type:uuid;index"`
	RoomID              *uuid.UUID                    `gorm:"type:uuid;index"`
	GuestName           string                        `gorm:"type:varchar(200);not null"`
	GuestPhone          string                        `gorm:"type:varchar(50)"`
	TotalAmount         decimal.Decimal               `gorm:"type:decimal(12,2);not null;default:0"`
	Status              restaurant.OrderStatus        `gorm:"type:varchar(20);not null;default:'placed';index"`
	PaymentStatus       restaurant.OrderPaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SpecialInstructions string                        `gorm:"type:text"`
	Items               []OrderItemModel              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "restaurant_orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *restaurant.Order {
	o := &restaurant.Order{
		BaseAggregateRoot:   m.ToDomainAggregateRoot(),
		OrderNumber:         m.OrderNumber,
		GuestID:             m.GuestID,
		RoomID:              m.RoomID,
		GuestName:           m.GuestName,
		GuestPhone:          m.GuestPhone,
		TotalAmount:         m.TotalAmount,
		Status:              m.Status,
		PaymentStatus:       m.PaymentStatus,
		SpecialInstructions: m.SpecialInstructions,
	}
	if len(m.Items) > 0 {
		o.Items = make([]restaurant.OrderItem, len(m.Items))
		for i, item := range m.Items {
			o.Items[i] = *item.ToDomain()
		}
	}
	return o
}

// OrderModelFromDomain builds a persistence model from a domain Order,
// including its items so a save replaces them in one write.
func OrderModelFromDomain(o *restaurant.Order) *OrderModel {
	m := &OrderModel{
		OrderNumber:         o.OrderNumber,
		GuestID:             o.GuestID,
		RoomID:              o.RoomID,
		GuestName:           o.GuestName,
		GuestPhone:          o.GuestPhone,
		TotalAmount:         o.TotalAmount,
		Status:              o.Status,
		PaymentStatus:       o.PaymentStatus,
		SpecialInstructions: o.SpecialInstructions,
	}
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	if len(o.Items) > 0 {
		m.Items = make([]OrderItemModel, len(o.Items))
		for i := range o.Items {
			m.Items[i] = *OrderItemModelFromDomain(&o.Items[i])
		}
	}
	return m
}

// OrderItemModel is the persistence model for the OrderItem entity.
type OrderItemModel struct {
	BaseModel
	OrderID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemName        string          `gorm:"type:varchar(200);not null"`
	Quantity            int             `gorm:"not null;default:1"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SpecialInstructions string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "restaurant_order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() *restaurant.OrderItem {
	return &restaurant.OrderItem{
		BaseEntity:          m.BaseModel.ToDomain(),
		OrderID:             m.OrderID,
		MenuItemID:          m.MenuItemID,
		MenuItemName:        m.MenuItemName,
		Quantity:            m.Quantity,
		UnitPrice:           m.UnitPrice,
		SpecialInstructions: m.SpecialInstructions,
	}
}

// OrderItemModelFromDomain builds a persistence model from a domain OrderItem
func OrderItemModelFromDomain(item *restaurant.OrderItem) *OrderItemModel {
	m := &OrderItemModel{
		OrderID:             item.OrderID,
		MenuItemID:          item.MenuItemID,
		MenuItemName:        item.MenuItemName,
		Quantity:            item.Quantity,
		UnitPrice:           item.UnitPrice,
		SpecialInstructions: item.SpecialInstructions,
	}
	m.FromDomainBaseEntity(item.BaseEntity)
	return m
}
