package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/report"
)

// GormRevenueRepository implements RevenueRepository with raw aggregate
// queries over the four revenue ledgers
type GormRevenueRepository struct {
	db *gorm.DB
}

// NewGormRevenueRepository creates a new GormRevenueRepository
func NewGormRevenueRepository(db *gorm.DB) *GormRevenueRepository {
	return &GormRevenueRepository{db: db}
}

// GetRevenueSums returns the paid revenue of each ledger for the period.
// Room, restaurant and conference revenue come from their own ledgers so
// booking- and conference-category invoices are not double counted.
func (r *GormRevenueRepository) GetRevenueSums(ctx context.Context, filter report.RevenueReportFilter) (*report.RevenueSums, error) {
	var sums report.RevenueSums

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE payment_status = 'paid' AND created_at >= ? AND created_at < ?`,
		filter.StartDate, filter.EndDate).Scan(&sums.RoomRevenue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM restaurant_orders
		WHERE payment_status = 'paid' AND created_at >= ? AND created_at < ?`,
		filter.StartDate, filter.EndDate).Scan(&sums.RestaurantRevenue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM conference_bookings
		WHERE payment_status = 'paid' AND created_at >= ? AND created_at < ?`,
		filter.StartDate, filter.EndDate).Scan(&sums.ConferenceRevenue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE status = 'paid'
		  AND invoice_type IN ('custom', 'gym', 'swimming_pool')
		  AND created_at >= ? AND created_at < ?`,
		filter.StartDate, filter.EndDate).Scan(&sums.OtherServicesRevenue).Error
	if err != nil {
		return nil, err
	}

	return &sums, nil
}

// GetInvoiceCounts returns invoice volume counts for the period
func (r *GormRevenueRepository) GetInvoiceCounts(ctx context.Context, filter report.RevenueReportFilter) (*report.InvoiceCounts, error) {
	var counts report.InvoiceCounts

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'paid') AS paid,
			COUNT(*) FILTER (WHERE status IN ('draft', 'sent')) AS pending
		FROM invoices
		WHERE created_at >= ? AND created_at < ?`,
		filter.StartDate, filter.EndDate).Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

// GetRecentTransactions returns the latest invoices in the period, newest first
func (r *GormRevenueRepository) GetRecentTransactions(ctx context.Context, filter report.RevenueReportFilter, limit int) ([]report.RevenueTransaction, error) {
	if limit <= 0 {
		limit = 10
	}

	var transactions []report.RevenueTransaction
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			invoice_number,
			customer_name,
			customer_email,
			invoice_type AS service,
			total_amount AS amount,
			status,
			created_at AS date
		FROM invoices
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
		LIMIT ?`,
		filter.StartDate, filter.EndDate, limit).Scan(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
