package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSums is a read model holding the paid revenue of each ledger for
// a period. Room, restaurant and conference revenue come from their own
// ledgers; other services covers paid invoices of the free-standing
// categories (custom, gym, swimming pool).
type RevenueSums struct {
	RoomRevenue          decimal.Decimal `json:"room_revenue"`
	RestaurantRevenue    decimal.Decimal `json:"restaurant_revenue"`
	ConferenceRevenue    decimal.Decimal `json:"conference_revenue"`
	OtherServicesRevenue decimal.Decimal `json:"other_services_revenue"`
}

// Total sums the four revenue categories
func (s RevenueSums) Total() decimal.Decimal {
	return s.RoomRevenue.
		Add(s.RestaurantRevenue).
		Add(s.ConferenceRevenue).
		Add(s.OtherServicesRevenue)
}

// InvoiceCounts is a read model of invoice volume for a period. Pending
// covers draft and sent invoices.
type InvoiceCounts struct {
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// RevenueTransaction is a read model row for the recent-transactions list
type RevenueTransaction struct {
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Service       string          `json:"service"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
}

// RevenueReportFilter bounds report queries to [StartDate, EndDate)
type RevenueReportFilter struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RevenueRepository defines the interface for revenue report queries
type RevenueRepository interface {
	// GetRevenueSums returns the paid revenue of each ledger for the period
	GetRevenueSums(ctx context.Context, filter RevenueReportFilter) (*RevenueSums, error)

	// GetInvoiceCounts returns invoice volume counts for the period
	GetInvoiceCounts(ctx context.Context, filter RevenueReportFilter) (*InvoiceCounts, error)

	// GetRecentTransactions returns the latest invoices in the period,
	// newest first
	GetRecentTransactions(ctx context.Context, filter RevenueReportFilter, limit int) ([]RevenueTransaction, error)
}
