package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/restaurant"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormMenuCategoryRepository implements MenuCategoryRepository using GORM
type GormMenuCategoryRepository struct {
	db *gorm.DB
}

// NewGormMenuCategoryRepository creates a new GormMenuCategoryRepository
func NewGormMenuCategoryRepository(db *gorm.DB) *GormMenuCategoryRepository {
	return &GormMenuCategoryRepository{db: db}
}

func (r *GormMenuCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.MenuCategory, error) {
	var model models.MenuCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all menu categories in display order
func (r *GormMenuCategoryRepository) FindAll(ctx context.Context) ([]restaurant.MenuCategory, error) {
	var categoryModels []models.MenuCategoryModel
	if err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]restaurant.MenuCategory, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = *model.ToDomain()
	}
	return categories, nil
}

func (r *GormMenuCategoryRepository) Save(ctx context.Context, c *restaurant.MenuCategory) error {
	model := models.MenuCategoryModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormMenuCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MenuCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.MenuItem, error) {
	var model models.MenuItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory returns all menu items in a category ordered by name
func (r *GormMenuItemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]restaurant.MenuItem, error) {
	var itemModels []models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]restaurant.MenuItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindAvailable returns all currently orderable menu items
func (r *GormMenuItemRepository) FindAvailable(ctx context.Context) ([]restaurant.MenuItem, error) {
	var itemModels []models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]restaurant.MenuItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

func (r *GormMenuItemRepository) Save(ctx context.Context, item *restaurant.MenuItem) error {
	model := models.MenuItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MenuItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
