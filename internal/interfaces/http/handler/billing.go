package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	billingapp "github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/application/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/printing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/dto"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/interfaces/http/middleware"
)

// BillingHandler handles invoice and payment endpoints
type BillingHandler struct {
	BaseHandler
	invoiceService    *billingapp.InvoiceService
	settlementService *billingapp.SettlementService
	printer           *printing.InvoicePrinter
	ratesService      *billingapp.RatesService
}

// NewBillingHandler creates a new BillingHandler. The printer may be nil
// when PDF generation is disabled.
func NewBillingHandler(
	invoiceService *billingapp.InvoiceService,
	settlementService *billingapp.SettlementService,
	printer *printing.InvoicePrinter,
) *BillingHandler {
	return &BillingHandler{
		invoiceService:    invoiceService,
		settlementService: settlementService,
		printer:           printer,
	}
}

// SetRatesService enables the tax rate and discount endpoints
func (h *BillingHandler) SetRatesService(ratesService *billingapp.RatesService) {
	h.ratesService = ratesService
}

// CreateInvoiceRequest is the request body for invoice creation
type CreateInvoiceRequest struct {
	InvoiceType         string          `json:"invoice_type" binding:"required,oneof=custom gym swimming_pool booking conference"`
	BookingID           *uuid.UUID      `json:"booking_id"`
	OrderID             *uuid.UUID      `json:"order_id"`
	ConferenceBookingID *uuid.UUID      `json:"conference_booking_id"`
	CustomerName        string          `json:"customer_name" binding:"max=200"`
	CustomerEmail       string          `json:"customer_email" binding:"omitempty,email,max=200"`
	CustomerPhone       string          `json:"customer_phone" binding:"max=50"`
	CustomerAddress     string          `json:"customer_address" binding:"max=500"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DueDate             *time.Time      `json:"due_date"`
	Status              string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	Notes               string          `json:"notes" binding:"max=2000"`
}

// UpdateInvoiceRequest is the request body for invoice updates
type UpdateInvoiceRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required,min=1,max=200"`
	CustomerEmail string          `json:"customer_email" binding:"omitempty,email,max=200"`
	InvoiceType   string          `json:"invoice_type" binding:"required,oneof=custom gym swimming_pool booking conference"`
	TotalAmount   decimal.Decimal `json:"total_amount" binding:"required"`
	DueDate       time.Time       `json:"due_date" binding:"required"`
	Status        string          `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
	Notes         string          `json:"notes" binding:"max=2000"`
}

// RecordPaymentRequest is the request body for an invoice payment
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required,oneof=cash credit_card debit_card bank_transfer online check other"`
}

// CreateTaxRateRequest is the request body for tax rate creation
type CreateTaxRateRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// CreateDiscountRequest is the request body for discount creation
type CreateDiscountRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	DiscountType string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	Description  string          `json:"description" binding:"max=500"`
	ValidTo      *time.Time      `json:"valid_to"`
}

// CreateInvoice creates an invoice
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), billingapp.CreateInvoiceRequest{
		InvoiceType:         billing.InvoiceType(req.InvoiceType),
		BookingID:           req.BookingID,
		OrderID:             req.OrderID,
		ConferenceBookingID: req.ConferenceBookingID,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		TotalAmount:         req.TotalAmount,
		DueDate:             req.DueDate,
		Status:              billing.InvoiceStatus(req.Status),
		Notes:               req.Notes,
		ActorID:             actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// GetInvoice returns an invoice with its payment history
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListInvoices returns a page of invoices
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	var q dto.ListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	q.Normalize()

	fromDate, err := parseDateQuery(c, "from_date")
	if err != nil {
		h.BadRequest(c, "Invalid from_date value")
		return
	}
	toDate, err := parseDateQuery(c, "to_date")
	if err != nil {
		h.BadRequest(c, "Invalid to_date value")
		return
	}

	page, err := h.invoiceService.ListInvoices(c.Request.Context(), billingapp.ListInvoicesFilter{
		InvoiceType: c.Query("invoice_type"),
		Status:      c.Query("status"),
		Search:      q.Search,
		FromDate:    fromDate,
		ToDate:      toDate,
		Page:        q.Page,
		PageSize:    q.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateInvoice replaces the editable fields of an invoice
func (h *BillingHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	inv, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, billingapp.UpdateInvoiceRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		InvoiceType:   billing.InvoiceType(req.InvoiceType),
		TotalAmount:   req.TotalAmount,
		DueDate:       req.DueDate,
		Status:        billing.InvoiceStatus(req.Status),
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// DeleteInvoice removes an invoice and its payments
func (h *BillingHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPayments returns an invoice's payment history
func (h *BillingHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.invoiceService.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// RecordPayment applies a payment to an invoice
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actorID, err := getActorID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	result, err := h.settlementService.RecordPayment(c.Request.Context(), billingapp.RecordPaymentRequest{
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    billing.PaymentMethod(req.Method),
		ActorID:   actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DownloadPDF renders an invoice as a PDF attachment
func (h *BillingHandler) DownloadPDF(c *gin.Context) {
	if h.printer == nil {
		h.Error(c, http.StatusServiceUnavailable, "PRINTING_DISABLED", "PDF generation is not enabled")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetInvoiceDocument(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pdf, filename, err := h.printer.PrintInvoice(c.Request.Context(), inv)
	if err != nil {
		h.InternalError(c, "Failed to render invoice PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// CreateTaxRate creates an active tax rate
func (h *BillingHandler) CreateTaxRate(c *gin.Context) {
	var req CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.ratesService.CreateTaxRate(c.Request.Context(), billingapp.CreateTaxRateRequest{
		Name:        req.Name,
		Rate:        req.Rate,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rate)
}

// ListTaxRates returns all active tax rates
func (h *BillingHandler) ListTaxRates(c *gin.Context) {
	rates, err := h.ratesService.ListActiveTaxRates(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rates)
}

// DeleteTaxRate removes a tax rate
func (h *BillingHandler) DeleteTaxRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid tax rate ID")
		return
	}

	if err := h.ratesService.DeleteTaxRate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateDiscount creates an active discount
func (h *BillingHandler) CreateDiscount(c *gin.Context) {
	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	d, err := h.ratesService.CreateDiscount(c.Request.Context(), billingapp.CreateDiscountRequest{
		Name:         req.Name,
		DiscountType: billing.DiscountType(req.DiscountType),
		Value:        req.Value,
		Description:  req.Description,
		ValidTo:      req.ValidTo,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, d)
}

// ListDiscounts returns all active discounts
func (h *BillingHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.ratesService.ListActiveDiscounts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, discounts)
}

// DeleteDiscount removes a discount
func (h *BillingHandler) DeleteDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := h.ratesService.DeleteDiscount(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers billing routes
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices", middleware.RequireBookingAccess())
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", middleware.RequireAdmin(), h.DeleteInvoice)
		invoices.GET("/:id/payments", h.ListPayments)
		invoices.POST("/:id/payments", h.RecordPayment)
		invoices.GET("/:id/pdf", h.DownloadPDF)
	}

	if h.ratesService != nil {
		taxRates := rg.Group("/tax-rates", middleware.RequireAdmin())
		{
			taxRates.POST("", h.CreateTaxRate)
			taxRates.GET("", h.ListTaxRates)
			taxRates.DELETE("/:id", h.DeleteTaxRate)
		}

		discounts := rg.Group("/discounts", middleware.RequireAdmin())
		{
			discounts.POST("", h.CreateDiscount)
			discounts.GET("", h.ListDiscounts)
			discounts.DELETE("/:id", h.DeleteDiscount)
		}
	}
}
