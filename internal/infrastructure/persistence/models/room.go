package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
)

// RoomTypeModel is the persistence model for the RoomType entity.
type RoomTypeModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Capacity    int             `gorm:"not null;default:2"`
	Amenities   string          `gorm:"type:text"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (RoomTypeModel) TableName() string {
	return "room_types"
}

// ToDomain converts the persistence model to a domain RoomType
func (m *RoomTypeModel) ToDomain() *room.RoomType {
	return &room.RoomType{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		BasePrice:   m.BasePrice,
		Capacity:    m.Capacity,
		Amenities:   m.Amenities,
		IsActive:    m.IsActive,
	}
}

// RoomTypeModelFromDomain builds a persistence model from a domain RoomType
func RoomTypeModelFromDomain(rt *room.RoomType) *RoomTypeModel {
	m := &RoomTypeModel{
		Name:        rt.Name,
		Description: rt.Description,
		BasePrice:   rt.BasePrice,
		Capacity:    rt.Capacity,
		Amenities:   rt.Amenities,
		IsActive:    rt.IsActive,
	}
	m.FromDomainBaseEntity(rt.BaseEntity)
	return m
}

// RoomModel is the persistence model for the Room aggregate.
type RoomModel struct {
	AggregateModel
	RoomNumber   string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	RoomTypeID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	RoomType     *RoomTypeModel   `gorm:"foreignKey:RoomTypeID"`
	Floor        int              `gorm:"not null;index"`
	Status       room.RoomStatus  `gorm:"type:varchar(20);not null;default:'available';index"`
	CurrentPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes        string           `gorm:"type:text"`
	IsActive     bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (RoomModel) TableName() string {
	return "rooms"
}

// ToDomain converts the persistence model to a domain Room
func (m *RoomModel) ToDomain() *room.Room {
	r := &room.Room{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		RoomNumber:        m.RoomNumber,
		RoomTypeID:        m.RoomTypeID,
		Floor:             m.Floor,
		Status:            m.Status,
		CurrentPrice:      m.CurrentPrice,
		Notes:             m.Notes,
		IsActive:          m.IsActive,
	}
	if m.RoomType != nil {
		r.RoomType = m.RoomType.ToDomain()
	}
	return r
}

// RoomModelFromDomain builds a persistence model from a domain Room.
// The room type association is read-only and never written through a room.
func RoomModelFromDomain(r *room.Room) *RoomModel {
	m := &RoomModel{
		RoomNumber:   r.RoomNumber,
		RoomTypeID:   r.RoomTypeID,
		Floor:        r.Floor,
		Status:       r.Status,
		CurrentPrice: r.CurrentPrice,
		Notes:        r.Notes,
		IsActive:     r.IsActive,
	}
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	return m
}
