package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/billing"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/booking"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/restaurant"
)

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDWithPayments(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*billing.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByConferenceBooking(ctx context.Context, conferenceBookingID uuid.UUID) ([]billing.Invoice, error) {
	args := m.Called(ctx, conferenceBookingID)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter billing.InvoiceFilter) ([]billing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter billing.InvoiceFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveWithLock(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveWithPayment(ctx context.Context, invoice *billing.Invoice, payment *billing.Payment) error {
	args := m.Called(ctx, invoice, payment)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepository is a mock implementation of billing.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter billing.PaymentFilter) ([]billing.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) SumCompletedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockBookingRepository is a mock implementation of booking.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByNumber(ctx context.Context, bookingNumber string) (*booking.Booking, error) {
	args := m.Called(ctx, bookingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, filter booking.BookingFilter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter booking.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountConflicting(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingPaymentRepository is a mock implementation of booking.BookingPaymentRepository
type MockBookingPaymentRepository struct {
	mock.Mock
}

func (m *MockBookingPaymentRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.BookingPayment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]booking.BookingPayment), args.Error(1)
}

func (m *MockBookingPaymentRepository) Save(ctx context.Context, p *booking.BookingPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBookingPaymentRepository) SumCompletedByBooking(ctx context.Context, bookingID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockGuestRepository is a mock implementation of guest.GuestRepository
type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guest.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindByEmail(ctx context.Context, email string) (*guest.Guest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guest.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindAll(ctx context.Context, filter guest.GuestFilter) ([]guest.Guest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]guest.Guest), args.Error(1)
}

func (m *MockGuestRepository) Count(ctx context.Context, filter guest.GuestFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuestRepository) Save(ctx context.Context, g *guest.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuestRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuestRepository) CountBookings(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuestRepository) CountActiveBookings(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuestRepository) CountOrders(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of restaurant.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*restaurant.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter restaurant.OrderFilter) ([]restaurant.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]restaurant.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter restaurant.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByGuest(ctx context.Context, guestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *restaurant.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteByGuest(ctx context.Context, guestID uuid.UUID) error {
	args := m.Called(ctx, guestID)
	return args.Error(0)
}

// MockConferenceBookingRepository is a mock implementation of conference.ConferenceBookingRepository
type MockConferenceBookingRepository struct {
	mock.Mock
}

func (m *MockConferenceBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*conference.ConferenceBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conference.ConferenceBooking), args.Error(1)
}

func (m *MockConferenceBookingRepository) FindByNumber(ctx context.Context, bookingNumber string) (*conference.ConferenceBooking, error) {
	args := m.Called(ctx, bookingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conference.ConferenceBooking), args.Error(1)
}

func (m *MockConferenceBookingRepository) FindAll(ctx context.Context, filter conference.BookingFilter) ([]conference.ConferenceBooking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]conference.ConferenceBooking), args.Error(1)
}

func (m *MockConferenceBookingRepository) Count(ctx context.Context, filter conference.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConferenceBookingRepository) CountConflicting(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, roomID, start, end, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConferenceBookingRepository) Save(ctx context.Context, cb *conference.ConferenceBooking) error {
	args := m.Called(ctx, cb)
	return args.Error(0)
}

func (m *MockConferenceBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
