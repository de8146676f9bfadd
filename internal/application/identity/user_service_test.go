package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/identity"
)

func newUserService(t *testing.T) (*UserService, *MockUserRepository) {
	t.Helper()
	repo := new(MockUserRepository)
	svc := NewUserService(repo, zap.NewNop())
	return svc, repo
}

func TestCreateUser(t *testing.T) {
	svc, repo := newUserService(t)

	repo.On("ExistsByUsername", mock.Anything, "chef.karim").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username:  "chef.karim",
		Password:  "kitchen2024",
		Role:      "restaurant",
		Email:     "karim@example.com",
		FirstName: "Karim",
		LastName:  "Sharifi",
	})

	require.NoError(t, err)
	assert.Equal(t, "chef.karim", resp.Username)
	assert.Equal(t, "restaurant", resp.Role)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "Karim Sharifi", resp.FullName)
	repo.AssertExpectations(t)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc, repo := newUserService(t)

	repo.On("ExistsByUsername", mock.Anything, "chef.karim").Return(true, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "chef.karim",
		Password: "kitchen2024",
		Role:     "restaurant",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "chef.karim",
		Password: "kitchen2024",
		Role:     "janitor",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid role")
}

func TestCreateUser_ShortPassword(t *testing.T) {
	svc, repo := newUserService(t)

	repo.On("ExistsByUsername", mock.Anything, "chef.karim").Return(false, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "chef.karim",
		Password: "short",
		Role:     "restaurant",
	})

	require.Error(t, err)
}

func TestListUsers(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindAll", mock.Anything, mock.AnythingOfType("identity.UserFilter")).
		Return([]identity.User{*user}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("identity.UserFilter")).
		Return(int64(1), nil)

	result, err := svc.ListUsers(context.Background(), ListUsersFilter{})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
}

func TestListUsers_RoleFilter(t *testing.T) {
	svc, repo := newUserService(t)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f identity.UserFilter) bool {
		return f.Role != nil && *f.Role == identity.RoleAdmin
	})).Return([]identity.User{}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("identity.UserFilter")).
		Return(int64(0), nil)

	_, err := svc.ListUsers(context.Background(), ListUsersFilter{Role: "admin"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUser(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	email := "front@example.com"
	phone := "+93700112233"
	resp, err := svc.UpdateUser(context.Background(), user.ID, UpdateUserRequest{
		Email: &email,
		Phone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "front@example.com", resp.Email)
	assert.Equal(t, "+93700112233", resp.Phone)
}

func TestUpdateUser_InvalidEmail(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	email := "not-an-email"
	_, err := svc.UpdateUser(context.Background(), user.ID, UpdateUserRequest{Email: &email})

	require.Error(t, err)
}

func TestChangeRole(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.ChangeRole(context.Background(), user.ID, "admin")

	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestChangeRole_Invalid(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	_, err := svc.ChangeRole(context.Background(), user.ID, "janitor")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid role")
}

func TestResetPassword(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	err := svc.ResetPassword(context.Background(), user.ID, "brandnewpass1")

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("brandnewpass1"))
}

func TestUnlockUser(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)
	user.RecordLoginFailure(1, 15*time.Minute)
	require.True(t, user.IsLocked())

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.UnlockUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.False(t, user.IsLocked())
}

func TestUnlockUser_NotLocked(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	_, err := svc.UnlockUser(context.Background(), user.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not locked")
}

func TestDeactivateUser(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.DeactivateUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, "deactivated", resp.Status)
	assert.False(t, user.CanLogin())
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newUserService(t)
	user := newTestUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Delete", mock.Anything, user.ID).Return(nil)

	err := svc.DeleteUser(context.Background(), user.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
