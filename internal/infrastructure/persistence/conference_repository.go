package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormConferenceRoomRepository implements ConferenceRoomRepository using GORM
type GormConferenceRoomRepository struct {
	db *gorm.DB
}

// NewGormConferenceRoomRepository creates a new GormConferenceRoomRepository
func NewGormConferenceRoomRepository(db *gorm.DB) *GormConferenceRoomRepository {
	return &GormConferenceRoomRepository{db: db}
}

func (r *GormConferenceRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*conference.ConferenceRoom, error) {
	var model models.ConferenceRoomModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds conference rooms ordered by name
func (r *GormConferenceRoomRepository) FindAll(ctx context.Context, filter shared.Filter) ([]conference.ConferenceRoom, error) {
	var roomModels []models.ConferenceRoomModel
	query := r.db.WithContext(ctx).Model(&models.ConferenceRoomModel{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("name ASC")

	if err := query.Find(&roomModels).Error; err != nil {
		return nil, err
	}

	rooms := make([]conference.ConferenceRoom, len(roomModels))
	for i, model := range roomModels {
		rooms[i] = *model.ToDomain()
	}
	return rooms, nil
}

func (r *GormConferenceRoomRepository) Save(ctx context.Context, room *conference.ConferenceRoom) error {
	model := models.ConferenceRoomModelFromDomain(room)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormConferenceRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ConferenceRoomModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormConferenceBookingRepository implements ConferenceBookingRepository using GORM
type GormConferenceBookingRepository struct {
	db *gorm.DB
}

// NewGormConferenceBookingRepository creates a new GormConferenceBookingRepository
func NewGormConferenceBookingRepository(db *gorm.DB) *GormConferenceBookingRepository {
	return &GormConferenceBookingRepository{db: db}
}

// FindByID finds a conference booking by its ID
func (r *GormConferenceBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*conference.ConferenceBooking, error) {
	var model models.ConferenceBookingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a conference booking by its booking number
func (r *GormConferenceBookingRepository) FindByNumber(ctx context.Context, bookingNumber string) (*conference.ConferenceBooking, error) {
	var model models.ConferenceBookingModel
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

// FindAll finds conference bookings matching the filter, newest first
func (r *GormConferenceBookingRepository) FindAll(ctx context.Context, filter conference.BookingFilter) ([]conference.ConferenceBooking, error) {
	var bookingModels []models.ConferenceBookingModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ConferenceBookingModel{}), filter)

	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, err
	}

	bookings := make([]conference.ConferenceBooking, len(bookingModels))
	for i, model := range bookingModels {
		bookings[i] = *model.ToDomain()
	}
	return bookings, nil
}

// Count counts conference bookings matching the filter
func (r *GormConferenceBookingRepository) Count(ctx context.Context, filter conference.BookingFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ConferenceBookingModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountConflicting counts confirmed bookings for the room whose event window
// overlaps [start, end), excluding excludeID
func (r *GormConferenceBookingRepository) CountConflicting(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ConferenceBookingModel{}).
		Where("room_id = ?", roomID).
		Where("status = ?", conference.BookingStatusConfirmed).
		Where("start_datetime < ? AND end_datetime > ?", end, start).
		Where("id <> ?", excludeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a conference booking
func (r *GormConferenceBookingRepository) Save(ctx context.Context, cb *conference.ConferenceBooking) error {
	model := models.ConferenceBookingModelFromDomain(cb)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a conference booking
func (r *GormConferenceBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ConferenceBookingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormConferenceBookingRepository) applyFilter(query *gorm.DB, filter conference.BookingFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ConferenceBookingSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormConferenceBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter conference.BookingFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("booking_number ILIKE ? OR client_name ILIKE ? OR event_title ILIKE ?",
			searchPattern, searchPattern, searchPattern)
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
		query = query.Where("start_datetime >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("start_datetime < ?", *filter.ToDate)
	}

	return query
}
