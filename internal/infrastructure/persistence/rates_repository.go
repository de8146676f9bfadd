package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormTaxRateRepository implements TaxRateRepository using GORM
type GormTaxRateRepository struct {
	db *gorm.DB
}

// NewGormTaxRateRepository creates a new GormTaxRateRepository
func NewGormTaxRateRepository(db *gorm.DB) *GormTaxRateRepository {
	return &GormTaxRateRepository{db: db}
}

func (r *GormTaxRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.TaxRate, error) {
	var model models.TaxRateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns all active tax rates ordered by name
func (r *GormTaxRateRepository) FindActive(ctx context.Context) ([]billing.TaxRate, error) {
	var rateModels []models.TaxRateModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rateModels).Error; err != nil {
		return nil, err
	}

	rates := make([]billing.TaxRate, len(rateModels))
	for i, model := range rateModels {
		rates[i] = *model.ToDomain()
	}
	return rates, nil
}

func (r *GormTaxRateRepository) Save(ctx context.Context, rate *billing.TaxRate) error {
	model := models.TaxRateModelFromDomain(rate)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormTaxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaxRateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormDiscountRepository implements DiscountRepository using GORM
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GormDiscountRepository
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

func (r *GormDiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Discount, error) {
	var model models.DiscountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns all active discounts ordered by name
func (r *GormDiscountRepository) FindActive(ctx context.Context) ([]billing.Discount, error) {
	var discountModels []models.DiscountModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&discountModels).Error; err != nil {
		return nil, err
	}

	discounts := make([]billing.Discount, len(discountModels))
	for i, model := range discountModels {
		discounts[i] = *model.ToDomain()
	}
	return discounts, nil
}

func (r *GormDiscountRepository) Save(ctx context.Context, discount *billing.Discount) error {
	model := models.DiscountModelFromDomain(discount)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormDiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DiscountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
