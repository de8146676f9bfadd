package guest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		phone     string
		guestType GuestType
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid booking guest",
			firstName: "Ahmad",
			phone:     "+93700123456",
			guestType: GuestTypeBooking,
		},
		{
			name:      "valid gym guest",
			firstName: "Sara",
			phone:     "0700123456",
			guestType: GuestTypeGym,
		},
		{
			name:      "empty first name",
			firstName: "  ",
			phone:     "+93700123456",
			guestType: GuestTypeBooking,
			wantErr:   true,
			errMsg:    "First name cannot be empty",
		},
		{
			name:      "bad phone",
			firstName: "Ahmad",
			phone:     "not-a-phone",
			guestType: GuestTypeBooking,
			wantErr:   true,
			errMsg:    "Phone number must be valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGuest(tt.firstName, "Rahimi", tt.phone, tt.guestType)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.guestType, g.GuestType)
			assert.Equal(t, VIPStatusRegular, g.VIPStatus)
			assert.True(t, g.IsActive)
			assert.Nil(t, g.Email)
		})
	}
}

func TestNewGuest_UnknownTypeDefaultsToBooking(t *testing.T) {
	g, err := NewGuest("Omid", "Noori", "+93700123456", GuestType("spa"))
	require.NoError(t, err)
	assert.Equal(t, GuestTypeBooking, g.GuestType)
}

func TestGuest_FullName(t *testing.T) {
	g, err := NewGuest("Ahmad", "Rahimi", "+93700123456", GuestTypeBooking)
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Rahimi", g.FullName())

	g.LastName = ""
	assert.Equal(t, "Ahmad", g.FullName())
}

func TestGuest_CalculatedAge(t *testing.T) {
	g, err := NewGuest("Ahmad", "Rahimi", "+93700123456", GuestTypeBooking)
	require.NoError(t, err)

	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, g.CalculatedAge(now))

	dob := time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC)
	g.DateOfBirth = &dob
	age := g.CalculatedAge(now)
	require.NotNil(t, age)
	assert.Equal(t, 35, *age, "birthday not yet reached this year")

	dob = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	g.DateOfBirth = &dob
	age = g.CalculatedAge(now)
	require.NotNil(t, age)
	assert.Equal(t, 36, *age)

	stored := 40
	g.Age = &stored
	age = g.CalculatedAge(now)
	require.NotNil(t, age)
	assert.Equal(t, 40, *age, "stored age wins over date of birth")
}

func TestGuest_PromoteVIP(t *testing.T) {
	g, err := NewGuest("Ahmad", "Rahimi", "+93700123456", GuestTypeBooking)
	require.NoError(t, err)

	require.NoError(t, g.PromoteVIP(VIPStatusGold))
	assert.Equal(t, VIPStatusGold, g.VIPStatus)

	err = g.PromoteVIP(VIPStatus("diamond"))
	require.Error(t, err)
	assert.Equal(t, VIPStatusGold, g.VIPStatus)
}
