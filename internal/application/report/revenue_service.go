package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/report"
)

// recentTransactionLimit caps the recent-transactions list on the dashboard
const recentTransactionLimit = 10

// TimeFilter selects the reporting window for the revenue dashboard
type TimeFilter string

const (
	TimeFilterToday   TimeFilter = "today"
	TimeFilterWeek    TimeFilter = "week"
	TimeFilterMonth   TimeFilter = "month"
	TimeFilterQuarter TimeFilter = "quarter"
	TimeFilterYear    TimeFilter = "year"
	TimeFilterCustom  TimeFilter = "custom"
)

// Resolve returns the half-open [start, end) window and display name for
// the preset, anchored at now. The rolling presets end at the close of the
// current day. Custom uses the provided dates and falls back to the last
// 30 days when they are missing or inverted.
func (f TimeFilter) Resolve(now time.Time, customStart, customEnd *time.Time) (time.Time, time.Time, string) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	switch f {
	case TimeFilterToday:
		return today, tomorrow, "Today"
	case TimeFilterWeek:
		return today.AddDate(0, 0, -7), tomorrow, "Last 7 Days"
	case TimeFilterQuarter:
		return today.AddDate(0, 0, -90), tomorrow, "Last 90 Days"
	case TimeFilterYear:
		return today.AddDate(0, 0, -365), tomorrow, "Last Year"
	case TimeFilterCustom:
		if customStart != nil && customEnd != nil && !customEnd.Before(*customStart) {
			start := time.Date(customStart.Year(), customStart.Month(), customStart.Day(), 0, 0, 0, 0, now.Location())
			end := time.Date(customEnd.Year(), customEnd.Month(), customEnd.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
			return start, end, "Custom Range"
		}
		return today.AddDate(0, 0, -30), tomorrow, "Last 30 Days"
	default:
		return today.AddDate(0, 0, -30), tomorrow, "Last 30 Days"
	}
}

// RevenueService provides the revenue dashboard aggregations
type RevenueService struct {
	revenueRepo report.RevenueRepository
}

// NewRevenueService creates a new RevenueService
func NewRevenueService(revenueRepo report.RevenueRepository) *RevenueService {
	return &RevenueService{revenueRepo: revenueRepo}
}

// ServiceBreakdownItem is one revenue source's share of the period total
type ServiceBreakdownItem struct {
	Service    string  `json:"service"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TransactionResponse represents a recent invoice on the dashboard
type TransactionResponse struct {
	ID            string  `json:"id"`
	Customer      string  `json:"customer"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	Service       string  `json:"service"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
}

// RevenueSummaryResponse represents the revenue dashboard payload
type RevenueSummaryResponse struct {
	PeriodName           string                 `json:"period_name"`
	PeriodStart          time.Time              `json:"period_start"`
	PeriodEnd            time.Time              `json:"period_end"`
	TotalRevenue         float64                `json:"total_revenue"`
	RoomRevenue          float64                `json:"room_revenue"`
	RestaurantRevenue    float64                `json:"restaurant_revenue"`
	ConferenceRevenue    float64                `json:"conference_revenue"`
	OtherServicesRevenue float64                `json:"other_services_revenue"`
	InvoiceCount         int64                  `json:"invoice_count"`
	PaidInvoices         int64                  `json:"paid_invoices"`
	PendingInvoices      int64                  `json:"pending_invoices"`
	AverageInvoice       float64                `json:"average_invoice"`
	GrowthRate           float64                `json:"growth_rate"`
	ServiceBreakdown     []ServiceBreakdownItem `json:"service_breakdown"`
	RecentTransactions   []TransactionResponse  `json:"recent_transactions"`
}

// MonthlyTrendPoint is one month's total revenue on the trend chart
type MonthlyTrendPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ComputeRevenue builds the revenue dashboard for the window the filter
// resolves to. Growth compares against the immediately preceding period of
// equal length and reports 0 when that period had no revenue.
func (s *RevenueService) ComputeRevenue(ctx context.Context, filter TimeFilter, customStart, customEnd *time.Time) (*RevenueSummaryResponse, error) {
	start, end, periodName := filter.Resolve(time.Now(), customStart, customEnd)

	window := report.RevenueReportFilter{StartDate: start, EndDate: end}
	sums, err := s.revenueRepo.GetRevenueSums(ctx, window)
	if err != nil {
		return nil, err
	}
	counts, err := s.revenueRepo.GetInvoiceCounts(ctx, window)
	if err != nil {
		return nil, err
	}
	recent, err := s.revenueRepo.GetRecentTransactions(ctx, window, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	total := sums.Total()

	average := decimal.Zero
	if counts.Total > 0 {
		average = total.Div(decimal.NewFromInt(counts.Total)).Round(2)
	}

	growth, err := s.computeGrowth(ctx, start, end, total)
	if err != nil {
		return nil, err
	}

	resp := &RevenueSummaryResponse{
		PeriodName:           periodName,
		PeriodStart:          start,
		PeriodEnd:            end,
		TotalRevenue:         toFloat64(total),
		RoomRevenue:          toFloat64(sums.RoomRevenue),
		RestaurantRevenue:    toFloat64(sums.RestaurantRevenue),
		ConferenceRevenue:    toFloat64(sums.ConferenceRevenue),
		OtherServicesRevenue: toFloat64(sums.OtherServicesRevenue),
		InvoiceCount:         counts.Total,
		PaidInvoices:         counts.Paid,
		PendingInvoices:      counts.Pending,
		AverageInvoice:       toFloat64(average),
		GrowthRate:           toFloat64(growth),
		ServiceBreakdown:     buildBreakdown(sums, total),
		RecentTransactions:   make([]TransactionResponse, 0, len(recent)),
	}

	for _, tx := range recent {
		resp.RecentTransactions = append(resp.RecentTransactions, TransactionResponse{
			ID:            tx.InvoiceNumber,
			Customer:      tx.CustomerName,
			CustomerEmail: tx.CustomerEmail,
			Service:       tx.Service,
			Amount:        toFloat64(tx.Amount),
			Status:        tx.Status,
			Date:          tx.Date.Format("2006-01-02"),
		})
	}

	return resp, nil
}

func (s *RevenueService) computeGrowth(ctx context.Context, start, end time.Time, total decimal.Decimal) (decimal.Decimal, error) {
	prevStart := start.Add(-end.Sub(start))
	prevSums, err := s.revenueRepo.GetRevenueSums(ctx, report.RevenueReportFilter{
		StartDate: prevStart,
		EndDate:   start,
	})
	if err != nil {
		return decimal.Zero, err
	}

	previous := prevSums.Total()
	if previous.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	return total.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1), nil
}

func buildBreakdown(sums *report.RevenueSums, total decimal.Decimal) []ServiceBreakdownItem {
	if total.LessThanOrEqual(decimal.Zero) {
		return []ServiceBreakdownItem{}
	}

	sources := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"Room Bookings", sums.RoomRevenue},
		{"Restaurant", sums.RestaurantRevenue},
		{"Conference", sums.ConferenceRevenue},
		{"Other Services", sums.OtherServicesRevenue},
	}

	items := make([]ServiceBreakdownItem, 0, len(sources))
	for _, src := range sources {
		pct := src.amount.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
		items = append(items, ServiceBreakdownItem{
			Service:    src.name,
			Amount:     toFloat64(src.amount),
			Percentage: toFloat64(pct),
		})
	}
	return items
}

// ComputeMonthlyTrend returns total revenue per calendar month for the
// trailing monthsBack months, oldest first. The current month is included
// and covers only its elapsed days.
func (s *RevenueService) ComputeMonthlyTrend(ctx context.Context, monthsBack int) ([]MonthlyTrendPoint, error) {
	if monthsBack < 1 {
		monthsBack = 12
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]MonthlyTrendPoint, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		monthStart := firstOfMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		sums, err := s.revenueRepo.GetRevenueSums(ctx, report.RevenueReportFilter{
			StartDate: monthStart,
			EndDate:   monthEnd,
		})
		if err != nil {
			return nil, err
		}

		points = append(points, MonthlyTrendPoint{
			Month:   monthStart.Format("Jan"),
			Revenue: toFloat64(sums.Total()),
		})
	}
	return points, nil
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
