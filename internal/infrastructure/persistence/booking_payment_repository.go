package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormBookingPaymentRepository implements BookingPaymentRepository using GORM
type GormBookingPaymentRepository struct {
	db *gorm.DB
}

// NewGormBookingPaymentRepository creates a new GormBookingPaymentRepository
func NewGormBookingPaymentRepository(db *gorm.DB) *GormBookingPaymentRepository {
	return &GormBookingPaymentRepository{db: db}
}

// FindByBooking finds all payments for a booking, newest first
func (r *GormBookingPaymentRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.BookingPayment, error) {
	var paymentModels []models.BookingPaymentModel
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("payment_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]booking.BookingPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates a booking payment
func (r *GormBookingPaymentRepository) Save(ctx context.Context, p *booking.BookingPayment) error {
	model := models.BookingPaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// SumCompletedByBooking sums completed payment amounts for a booking
func (r *GormBookingPaymentRepository) SumCompletedByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.BookingPaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("booking_id = ? AND status = ?", bookingID, booking.BookingPaymentStatusCompleted).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
