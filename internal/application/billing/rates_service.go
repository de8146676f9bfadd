package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// RatesService manages the tax rates and discounts applied to invoices
type RatesService struct {
	taxRateRepo  billing.TaxRateRepository
	discountRepo billing.DiscountRepository
	logger       *zap.Logger
}

// NewRatesService creates a new rates service
func NewRatesService(
	taxRateRepo billing.TaxRateRepository,
	discountRepo billing.DiscountRepository,
	logger *zap.Logger,
) *RatesService {
	return &RatesService{
		taxRateRepo:  taxRateRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// CreateTaxRateRequest carries the inputs for tax rate creation
type CreateTaxRateRequest struct {
	Name        string
	Rate        decimal.Decimal
	Description string
}

// CreateTaxRate creates an active tax rate
func (s *RatesService) CreateTaxRate(ctx context.Context, req CreateTaxRateRequest) (*billing.TaxRate, error) {
	rate, err := billing.NewTaxRate(req.Name, req.Rate, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.taxRateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}
	s.logger.Info("tax rate created",
		zap.String("name", rate.Name),
		zap.String("rate", rate.Rate.String()),
	)
	return rate, nil
}

// ListActiveTaxRates returns all active tax rates ordered by name
func (s *RatesService) ListActiveTaxRates(ctx context.Context) ([]billing.TaxRate, error) {
	return s.taxRateRepo.FindActive(ctx)
}

// DeleteTaxRate removes a tax rate
func (s *RatesService) DeleteTaxRate(ctx context.Context, id uuid.UUID) error {
	rate, err := s.taxRateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rate == nil {
		return shared.ErrNotFound
	}
	return s.taxRateRepo.Delete(ctx, id)
}

// CreateDiscountRequest carries the inputs for discount creation
type CreateDiscountRequest struct {
	Name         string
	DiscountType billing.DiscountType
	Value        decimal.Decimal
	Description  string
	ValidTo      *time.Time
}

// CreateDiscount creates an active discount valid from now
func (s *RatesService) CreateDiscount(ctx context.Context, req CreateDiscountRequest) (*billing.Discount, error) {
	d, err := billing.NewDiscount(req.Name, req.DiscountType, req.Value, req.ValidTo)
	if err != nil {
		return nil, err
	}
	d.Description = req.Description

	if err := s.discountRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("discount created",
		zap.String("name", d.Name),
		zap.String("type", string(d.DiscountType)),
	)
	return d, nil
}

// ListActiveDiscounts returns all active discounts ordered by name
func (s *RatesService) ListActiveDiscounts(ctx context.Context) ([]billing.Discount, error) {
	return s.discountRepo.FindActive(ctx)
}

// DeleteDiscount removes a discount
func (s *RatesService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	d, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return shared.ErrNotFound
	}
	return s.discountRepo.Delete(ctx, id)
}
