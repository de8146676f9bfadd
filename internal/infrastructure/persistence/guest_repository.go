package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormGuestRepository implements GuestRepository using GORM
type GormGuestRepository struct {
	db *gorm.DB
}

// NewGormGuestRepository creates a new GormGuestRepository
func NewGormGuestRepository(db *gorm.DB) *GormGuestRepository {
	return &GormGuestRepository{db: db}
}

// FindByID finds a guest by its ID
func (r *GormGuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	var model models.GuestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a guest by email
func (r *GormGuestRepository) FindByEmail(ctx context.Context, email string) (*guest.Guest, error) {
	var model models.GuestModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds guests matching the filter, newest first
func (r *GormGuestRepository) FindAll(ctx context.Context, filter guest.GuestFilter) ([]guest.Guest, error) {
	var guestModels []models.GuestModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.GuestModel{}), filter)

	if err := query.Find(&guestModels).Error; err != nil {
		return nil, err
	}

	guests := make([]guest.Guest, len(guestModels))
	for i, model := range guestModels {
		guests[i] = *model.ToDomain()
	}
	return guests, nil
}

// Count counts guests matching the filter
func (r *GormGuestRepository) Count(ctx context.Context, filter guest.GuestFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.GuestModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a guest
func (r *GormGuestRepository) Save(ctx context.Context, g *guest.Guest) error {
	model := models.GuestModelFromDomain(g)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a guest
func (r *GormGuestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GuestModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByEmail checks if an email is already registered
func (r *GormGuestRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GuestModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountBookings counts bookings referencing the guest
func (r *GormGuestRepository) CountBookings(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveBookings counts confirmed or active bookings referencing the guest
func (r *GormGuestRepository) CountActiveBookings(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("guest_id = ? AND status IN ?", guestID, []string{"confirmed", "active"}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOrders counts restaurant orders referencing the guest
func (r *GormGuestRepository) CountOrders(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormGuestRepository) applyFilter(query *gorm.DB, filter guest.GuestFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, GuestSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormGuestRepository) applyFilterWithoutPagination(query *gorm.DB, filter guest.GuestFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	if filter.GuestType != nil {
		query = query.Where("guest_type = ?", *filter.GuestType)
	}
	if filter.VIPStatus != nil {
		query = query.Where("vip_status = ?", *filter.VIPStatus)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}
