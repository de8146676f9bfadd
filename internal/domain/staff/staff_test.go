package staff

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaffMember(t *testing.T) {
	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s, err := NewStaffMember(uuid.New(), "EMP-0042", "Front Desk Agent", hired)
	require.NoError(t, err)
	assert.True(t, s.IsActive)
	assert.Equal(t, hired, s.HireDate)
	assert.Nil(t, s.Salary)

	_, err = NewStaffMember(uuid.Nil, "EMP-0042", "Front Desk Agent", hired)
	require.Error(t, err)

	_, err = NewStaffMember(uuid.New(), "", "Front Desk Agent", hired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Employee ID cannot be empty")

	_, err = NewStaffMember(uuid.New(), "EMP-0042", "", hired)
	require.Error(t, err)
}

func TestNewStaffMember_ZeroHireDateDefaultsToNow(t *testing.T) {
	s, err := NewStaffMember(uuid.New(), "EMP-0042", "Chef", time.Time{})
	require.NoError(t, err)
	assert.False(t, s.HireDate.IsZero())
}

func TestStaffMember_SetSalary(t *testing.T) {
	s, err := NewStaffMember(uuid.New(), "EMP-0042", "Chef", time.Now())
	require.NoError(t, err)

	require.NoError(t, s.SetSalary(decimal.NewFromInt(1200)))
	require.NotNil(t, s.Salary)
	assert.True(t, s.Salary.Equal(decimal.NewFromInt(1200)))

	err = s.SetSalary(decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Salary must be positive")
}

func TestNewDepartment(t *testing.T) {
	d, err := NewDepartment("Housekeeping", "Rooms and public areas")
	require.NoError(t, err)
	assert.True(t, d.IsActive)
	assert.Nil(t, d.ManagerID)

	manager := uuid.New()
	d.AssignManager(manager)
	require.NotNil(t, d.ManagerID)
	assert.Equal(t, manager, *d.ManagerID)

	_, err = NewDepartment("", "")
	require.Error(t, err)
}
