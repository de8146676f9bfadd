package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a booking by its booking number
func (r *GormBookingRepository) FindByNumber(ctx context.Context, bookingNumber string) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).
		Where("booking_number = ?", bookingNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds bookings matching the filter, newest first
func (r *GormBookingRepository) FindAll(ctx context.Context, filter booking.BookingFilter) ([]booking.Booking, error) {
	var bookingModels []models.BookingModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.BookingModel{}), filter)

	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, err
	}

	bookings := make([]booking.Booking, len(bookingModels))
	for i, model := range bookingModels {
		bookings[i] = *model.ToDomain()
	}
	return bookings, nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter booking.BookingFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.BookingModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByGuest counts bookings referencing a guest
func (r *GormBookingRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountConflicting counts confirmed or active bookings for the room whose
// dates overlap [checkIn, checkOut), excluding excludeID
func (r *GormBookingRepository) CountConflicting(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{
			string(booking.BookingStatusConfirmed),
			string(booking.BookingStatusActive),
		}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Where("id <> ?", excludeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	model := models.BookingModelFromDomain(b)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a booking and its payments
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BookingPaymentModel{}, "booking_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BookingModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilter applies filter options to the query
func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter booking.BookingFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BookingSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter booking.BookingFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("booking_number ILIKE ?", searchPattern)
	}

	if filter.GuestID != nil {
		query = query.Where("guest_id = ?", *filter.GuestID)
	}
	if filter.RoomID != nil {
		query = query.Where("room_id = ?", *filter.RoomID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.FromDate != nil {
		query = query.Where("check_in_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("check_in_date < ?", *filter.ToDate)
	}

	return query
}
