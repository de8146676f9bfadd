package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/room"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormRoomRepository implements RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID finds a room by its ID with the room type loaded
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).
		Preload("RoomType").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a room by its room number
func (r *GormRoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*room.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).
		Preload("RoomType").
		Where("room_number = ?", roomNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds rooms matching the filter, ordered by room number
func (r *GormRoomRepository) FindAll(ctx context.Context, filter room.RoomFilter) ([]room.Room, error) {
	var roomModels []models.RoomModel
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RoomModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Preload("RoomType").Order("room_number ASC")

	if err := query.Find(&roomModels).Error; err != nil {
		return nil, err
	}

	rooms := make([]room.Room, len(roomModels))
	for i, model := range roomModels {
		rooms[i] = *model.ToDomain()
	}
	return rooms, nil
}

// Count counts rooms matching the filter
func (r *GormRoomRepository) Count(ctx context.Context, filter room.RoomFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RoomModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a room
func (r *GormRoomRepository) Save(ctx context.Context, rm *room.Room) error {
	model := models.RoomModelFromDomain(rm)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a room
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RoomModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRoomRepository) applyFilterWithoutPagination(query *gorm.DB, filter room.RoomFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("room_number ILIKE ?", searchPattern)
	}

	if filter.RoomTypeID != nil {
		query = query.Where("room_type_id = ?", *filter.RoomTypeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Floor != nil {
		query = query.Where("floor = ?", *filter.Floor)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}

// GormRoomTypeRepository implements RoomTypeRepository using GORM
type GormRoomTypeRepository struct {
	db *gorm.DB
}

// NewGormRoomTypeRepository creates a new GormRoomTypeRepository
func NewGormRoomTypeRepository(db *gorm.DB) *GormRoomTypeRepository {
	return &GormRoomTypeRepository{db: db}
}

func (r *GormRoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.RoomType, error) {
	var model models.RoomTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds room types ordered by name
func (r *GormRoomTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]room.RoomType, error) {
	var typeModels []models.RoomTypeModel
	query := r.db.WithContext(ctx).Model(&models.RoomTypeModel{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("name ASC")

	if err := query.Find(&typeModels).Error; err != nil {
		return nil, err
	}

	types := make([]room.RoomType, len(typeModels))
	for i, model := range typeModels {
		types[i] = *model.ToDomain()
	}
	return types, nil
}

func (r *GormRoomTypeRepository) Save(ctx context.Context, rt *room.RoomType) error {
	model := models.RoomTypeModelFromDomain(rt)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormRoomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RoomTypeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
