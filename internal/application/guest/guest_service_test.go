package guest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/guest"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
)

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

func newService(t *testing.T) (*GuestService, *MockGuestRepository) {
	t.Helper()
	repo := new(MockGuestRepository)
	return NewGuestService(repo, zap.NewNop()), repo
}

func TestCreateGuest(t *testing.T) {
	svc, repo := newService(t)
	repo.On("ExistsByEmail", mock.Anything, "farid@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*guest.Guest")).Return(nil)

	resp, err := svc.CreateGuest(context.Background(), CreateGuestRequest{
		FirstName: "Farid",
		LastName:  "Noori",
		Email:     "farid@example.com",
		Phone:     "+93701234567",
		GuestType: guest.GuestTypeBooking,
		ActorID:   uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Farid Noori", resp.FullName)
	assert.Equal(t, "farid@example.com", resp.Email)
	assert.Equal(t, "booking", resp.GuestType)
	assert.Equal(t, "regular", resp.VIPStatus)
	assert.True(t, resp.IsActive)
}

func TestCreateGuest_DuplicateEmail(t *testing.T) {
	svc, repo := newService(t)
	repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	resp, err := svc.CreateGuest(context.Background(), CreateGuestRequest{
		FirstName: "Farid",
		Phone:     "+93701234567",
		Email:     "taken@example.com",
		GuestType: guest.GuestTypeBooking,
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateGuest_InvalidPhone(t *testing.T) {
	svc, repo := newService(t)

	resp, err := svc.CreateGuest(context.Background(), CreateGuestRequest{
		FirstName: "Farid",
		Phone:     "not-a-phone",
		GuestType: guest.GuestTypeGym,
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone number must be valid")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateGuest_FacilityGuestWithoutEmail(t *testing.T) {
	svc, repo := newService(t)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*guest.Guest")).Return(nil)

	age := 27
	resp, err := svc.CreateGuest(context.Background(), CreateGuestRequest{
		FirstName: "Laila",
		Phone:     "0799887766",
		GuestType: guest.GuestTypeSwimming,
		Age:       &age,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Email)
	assert.Equal(t, "swimming", resp.GuestType)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 27, *resp.Age)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestGetGuest_NotFound(t *testing.T) {
	svc, repo := newService(t)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	resp, err := svc.GetGuest(context.Background(), id)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListGuests(t *testing.T) {
	svc, repo := newService(t)
	g, err := guest.NewGuest("Omar", "Safi", "+93700112233", guest.GuestTypeGym)
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f guest.GuestFilter) bool {
		return f.GuestType != nil && *f.GuestType == guest.GuestTypeGym && f.Page == 1 && f.PageSize == 20
	})).Return([]guest.Guest{*g}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	page, err := svc.ListGuests(context.Background(), ListGuestsFilter{GuestType: "gym"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Omar Safi", page.Items[0].FullName)
	assert.Equal(t, int64(1), page.Total)
}

func TestUpdateGuest_PromotesVIP(t *testing.T) {
	svc, repo := newService(t)
	g, err := guest.NewGuest("Omar", "Safi", "+93700112233", guest.GuestTypeBooking)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
	repo.On("Save", mock.Anything, g).Return(nil)

	resp, err := svc.UpdateGuest(context.Background(), g.ID, UpdateGuestRequest{
		FirstName: "Omar",
		LastName:  "Safi",
		Phone:     "+93700112233",
		GuestType: guest.GuestTypeBooking,
		VIPStatus: guest.VIPStatusGold,
	})

	require.NoError(t, err)
	assert.Equal(t, "gold", resp.VIPStatus)
}

func TestUpdateGuest_EmailConflict(t *testing.T) {
	svc, repo := newService(t)
	g, err := guest.NewGuest("Omar", "Safi", "+93700112233", guest.GuestTypeBooking)
	require.NoError(t, err)
	g.SetEmail("omar@example.com")

	repo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
	repo.On("ExistsByEmail", mock.Anything, "other@example.com").Return(true, nil)

	resp, err := svc.UpdateGuest(context.Background(), g.ID, UpdateGuestRequest{
		FirstName: "Omar",
		Phone:     "+93700112233",
		Email:     "other@example.com",
		GuestType: guest.GuestTypeBooking,
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDeleteGuest(t *testing.T) {
	svc, repo := newService(t)
	g, err := guest.NewGuest("Omar", "Safi", "+93700112233", guest.GuestTypeBooking)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
	repo.On("CountActiveBookings", mock.Anything, g.ID).Return(int64(0), nil)
	repo.On("Delete", mock.Anything, g.ID).Return(nil)

	require.NoError(t, svc.DeleteGuest(context.Background(), g.ID))
	repo.AssertCalled(t, "Delete", mock.Anything, g.ID)
}

func TestDeleteGuest_BlockedByActiveBookings(t *testing.T) {
	svc, repo := newService(t)
	g, err := guest.NewGuest("Omar", "Safi", "+93700112233", guest.GuestTypeBooking)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
	repo.On("CountActiveBookings", mock.Anything, g.ID).Return(int64(1), nil)

	err = svc.DeleteGuest(context.Background(), g.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "active bookings")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
