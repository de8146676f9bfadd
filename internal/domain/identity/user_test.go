package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     Role
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid admin",
			username: "Najib.Admin",
			password: "s3cret-pass",
			role:     RoleAdmin,
		},
		{
			name:     "empty username",
			username: "",
			password: "s3cret-pass",
			role:     RoleAdmin,
			wantErr:  true,
			errMsg:   "Username cannot be empty",
		},
		{
			name:     "short username",
			username: "ab",
			password: "s3cret-pass",
			role:     RoleAdmin,
			wantErr:  true,
			errMsg:   "at least 3 characters",
		},
		{
			name:     "bad characters",
			username: "najib admin",
			password: "s3cret-pass",
			role:     RoleAdmin,
			wantErr:  true,
			errMsg:   "can only contain",
		},
		{
			name:     "short password",
			username: "najib",
			password: "short",
			role:     RoleAdmin,
			wantErr:  true,
			errMsg:   "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.password, tt.role)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "najib.admin", u.Username, "username is lowercased")
			assert.Equal(t, tt.role, u.Role)
			assert.Equal(t, UserStatusActive, u.Status)
			assert.True(t, u.VerifyPassword(tt.password))
			assert.False(t, u.VerifyPassword("wrong-pass"))
			assert.NotContains(t, u.PasswordHash, tt.password)
		})
	}
}

func TestNewUser_UnknownRoleDefaultsToReceptionist(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", Role("janitor"))
	require.NoError(t, err)
	assert.Equal(t, RoleReceptionist, u.Role)
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, RoleAdmin.CanManageBookings())
	assert.True(t, RoleAdmin.CanManageRestaurant())
	assert.True(t, RoleReceptionist.CanManageBookings())
	assert.False(t, RoleReceptionist.CanManageRestaurant())
	assert.False(t, RoleRestaurant.CanManageBookings())
	assert.True(t, RoleRestaurant.CanManageRestaurant())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "receptionist", RoleReceptionist.String())
	assert.Equal(t, "active", UserStatusActive.String())
	assert.Equal(t, "locked", UserStatusLocked.String())
	assert.Equal(t, "deactivated", UserStatusDeactivated.String())
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("frontdesk", "initial-pass", RoleReceptionist)
	require.NoError(t, err)

	err = u.ChangePassword("wrong-pass", "updated-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Current password is incorrect")

	require.NoError(t, u.ChangePassword("initial-pass", "updated-pass"))
	assert.True(t, u.VerifyPassword("updated-pass"))
	assert.False(t, u.VerifyPassword("initial-pass"))
}

func TestUser_LoginFailureLocksAccount(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", RoleReceptionist)
	require.NoError(t, err)

	locked := u.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = u.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = u.RecordLoginFailure(3, time.Hour)
	assert.True(t, locked)

	assert.True(t, u.IsLocked())
	assert.False(t, u.CanLogin())

	require.NoError(t, u.Unlock())
	assert.True(t, u.CanLogin())
	assert.Equal(t, 0, u.FailedAttempts)
}

func TestUser_ExpiredLockAllowsLogin(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", RoleReceptionist)
	require.NoError(t, err)

	u.RecordLoginFailure(1, -time.Minute)
	require.NotNil(t, u.LockedUntil)
	assert.False(t, u.IsLocked(), "lock in the past has expired")
	assert.True(t, u.CanLogin())
}

func TestUser_LockAlwaysSetsExpiry(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", RoleReceptionist)
	require.NoError(t, err)

	locked := u.RecordLoginFailure(1, 0)
	assert.True(t, locked)
	require.NotNil(t, u.LockedUntil, "a lock without an expiry would never release")
}

func TestUser_Deactivate(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", RoleReceptionist)
	require.NoError(t, err)

	require.NoError(t, u.Deactivate())
	assert.False(t, u.CanLogin())
	require.Error(t, u.Deactivate())
}

func TestUser_SetEmail(t *testing.T) {
	u, err := NewUser("frontdesk", "s3cret-pass", RoleReceptionist)
	require.NoError(t, err)

	require.NoError(t, u.SetEmail("Desk@Hotel.AF"))
	assert.Equal(t, "desk@hotel.af", u.Email)

	err = u.SetEmail("not-an-email")
	require.Error(t, err)
}
