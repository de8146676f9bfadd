package conference

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/conference"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

// MockConferenceRoomRepository is a mock implementation of conference.ConferenceRoomRepository
type MockConferenceRoomRepository struct {
	mock.Mock
}

func (m *MockConferenceRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*conference.ConferenceRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*conference.ConferenceRoom), args.Error(1)
}

func (m *MockConferenceRoomRepository) FindAll(ctx context.Context, filter shared.Filter) ([]conference.ConferenceRoom, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]conference.ConferenceRoom), args.Error(1)
}

func (m *MockConferenceRoomRepository) Save(ctx context.Context, r *conference.ConferenceRoom) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockConferenceRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
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

func newService(t *testing.T) (*ConferenceService, *MockConferenceRoomRepository, *MockConferenceBookingRepository) {
	t.Helper()
	roomRepo := new(MockConferenceRoomRepository)
	bookingRepo := new(MockConferenceBookingRepository)
	return NewConferenceService(roomRepo, bookingRepo, zap.NewNop()), roomRepo, bookingRepo
}

func newTestRoom(t *testing.T) *conference.ConferenceRoom {
	t.Helper()
	r, err := conference.NewConferenceRoom("Grand Hall", 120, 1, decimal.NewFromInt(40), decimal.NewFromInt(250))
	require.NoError(t, err)
	return r
}

func newTestBooking(t *testing.T, roomID uuid.UUID) *conference.ConferenceBooking {
	t.Helper()
	start := time.Now().Add(72 * time.Hour)
	cb, err := conference.NewConferenceBooking(
		roomID,
		"Aria Logistics", "events@aria.af", "Annual Meeting",
		start, start.Add(6*time.Hour),
		80,
		decimal.NewFromInt(300),
		uuid.New(),
	)
	require.NoError(t, err)
	return cb
}

func TestCreateConferenceRoom(t *testing.T) {
	svc, roomRepo, _ := newService(t)

	roomRepo.On("Save", mock.Anything, mock.AnythingOfType("*conference.ConferenceRoom")).Return(nil)

	resp, err := svc.CreateRoom(context.Background(), CreateConferenceRoomRequest{
		Name:       "Board Room",
		Capacity:   16,
		Floor:      2,
		HourlyRate: decimal.NewFromInt(25),
		DailyRate:  decimal.NewFromInt(150),
	})

	require.NoError(t, err)
	assert.Equal(t, "Board Room", resp.Name)
	assert.Equal(t, "available", resp.Status)
	assert.True(t, resp.IsActive)
}

func TestCreateConferenceRoom_InvalidRate(t *testing.T) {
	svc, roomRepo, _ := newService(t)

	resp, err := svc.CreateRoom(context.Background(), CreateConferenceRoomRequest{
		Name:       "Board Room",
		Capacity:   16,
		HourlyRate: decimal.Zero,
		DailyRate:  decimal.NewFromInt(150),
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Room rates must be positive")
	roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateConferenceBooking(t *testing.T) {
	svc, roomRepo, bookingRepo := newService(t)
	r := newTestRoom(t)
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(4 * time.Hour)

	roomRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	bookingRepo.On("CountConflicting", mock.Anything, r.ID, start, end, uuid.Nil).Return(int64(0), nil)
	bookingRepo.On("Save", mock.Anything, mock.AnythingOfType("*conference.ConferenceBooking")).Return(nil)

	resp, err := svc.CreateBooking(context.Background(), CreateConferenceBookingRequest{
		RoomID:         r.ID,
		ClientName:     "Pamir Media",
		EventTitle:     "Press Conference",
		StartDatetime:  start,
		EndDatetime:    end,
		AttendeesCount: 40,
		TotalAmount:    decimal.NewFromInt(160),
		ActorID:        uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, 4.0, resp.DurationHours)
	assert.True(t, resp.RemainingAmount.Equal(decimal.NewFromInt(160)))
	assert.Len(t, resp.BookingNumber, 12)
}

func TestCreateConferenceBooking_Overlap(t *testing.T) {
	svc, roomRepo, bookingRepo := newService(t)
	r := newTestRoom(t)
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(4 * time.Hour)

	roomRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	bookingRepo.On("CountConflicting", mock.Anything, r.ID, start, end, uuid.Nil).Return(int64(1), nil)

	resp, err := svc.CreateBooking(context.Background(), CreateConferenceBookingRequest{
		RoomID:         r.ID,
		ClientName:     "Pamir Media",
		EventTitle:     "Press Conference",
		StartDatetime:  start,
		EndDatetime:    end,
		AttendeesCount: 40,
		TotalAmount:    decimal.NewFromInt(160),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrRoomUnavailable)
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateConferenceBooking_CapacityExceeded(t *testing.T) {
	svc, roomRepo, _ := newService(t)
	r := newTestRoom(t)
	start := time.Now().Add(48 * time.Hour)

	roomRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)

	resp, err := svc.CreateBooking(context.Background(), CreateConferenceBookingRequest{
		RoomID:         r.ID,
		ClientName:     "Pamir Media",
		EventTitle:     "Press Conference",
		StartDatetime:  start,
		EndDatetime:    start.Add(2 * time.Hour),
		AttendeesCount: 500,
		TotalAmount:    decimal.NewFromInt(80),
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds room capacity")
}

func TestConfirmThenCompleteBooking(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)
	bookingRepo.On("Save", mock.Anything, cb).Return(nil)

	confirmed, err := svc.ConfirmBooking(context.Background(), cb.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	completed, err := svc.CompleteBooking(context.Background(), cb.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

func TestCompleteBooking_RequiresConfirmed(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)

	resp, err := svc.CompleteBooking(context.Background(), cb.ID)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only confirmed bookings can be completed")
}

func TestCancelBooking_CompletedBlocked(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())
	require.NoError(t, cb.Confirm())
	require.NoError(t, cb.Complete())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)

	resp, err := svc.CancelBooking(context.Background(), cb.ID)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Completed bookings cannot be cancelled")
}

func TestRecordPayment_Partial(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)
	bookingRepo.On("Save", mock.Anything, cb).Return(nil)

	resp, err := svc.RecordPayment(context.Background(), cb.ID, decimal.NewFromInt(100))

	require.NoError(t, err)
	assert.Equal(t, "partial", resp.PaymentStatus)
	assert.True(t, resp.RemainingAmount.Equal(decimal.NewFromInt(200)))
}

func TestRecordPayment_FullSettles(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)
	bookingRepo.On("Save", mock.Anything, cb).Return(nil)

	resp, err := svc.RecordPayment(context.Background(), cb.ID, decimal.NewFromInt(300))

	require.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.True(t, resp.RemainingAmount.IsZero())
}

func TestRecordPayment_InvalidAmount(t *testing.T) {
	svc, _, bookingRepo := newService(t)
	cb := newTestBooking(t, uuid.New())

	bookingRepo.On("FindByID", mock.Anything, cb.ID).Return(cb, nil)

	resp, err := svc.RecordPayment(context.Background(), cb.ID, decimal.Zero)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Payment amount must be positive")
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
