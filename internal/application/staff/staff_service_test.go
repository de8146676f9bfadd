package staff

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

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/identity"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/staff"
)

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*staff.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]staff.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, d *staff.Department) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.StaffMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*staff.StaffMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*staff.StaffMember, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) FindAll(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffMember, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]staff.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) Count(ctx context.Context, filter staff.StaffFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStaffRepository) Save(ctx context.Context, s *staff.StaffMember) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter identity.UserFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type serviceMocks struct {
	departmentRepo *MockDepartmentRepository
	staffRepo      *MockStaffRepository
	userRepo       *MockUserRepository
}

func newService(t *testing.T) (*StaffService, *serviceMocks) {
	t.Helper()
	mocks := &serviceMocks{
		departmentRepo: new(MockDepartmentRepository),
		staffRepo:      new(MockStaffRepository),
		userRepo:       new(MockUserRepository),
	}
	svc := NewStaffService(mocks.departmentRepo, mocks.staffRepo, mocks.userRepo, zap.NewNop())
	return svc, mocks
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("housekeeper1", "cleanrooms1", identity.RoleReceptionist)
	require.NoError(t, err)
	return user
}

func newTestDepartment(t *testing.T) *staff.Department {
	t.Helper()
	department, err := staff.NewDepartment("Housekeeping", "Room cleaning and laundry")
	require.NoError(t, err)
	return department
}

func newTestStaffMember(t *testing.T, userID uuid.UUID) *staff.StaffMember {
	t.Helper()
	member, err := staff.NewStaffMember(userID, "EMP-0042", "Housekeeper", time.Now().AddDate(-1, 0, 0))
	require.NoError(t, err)
	return member
}

func TestCreateDepartment(t *testing.T) {
	svc, mocks := newService(t)

	mocks.departmentRepo.On("FindByName", mock.Anything, "Housekeeping").Return(nil, shared.ErrNotFound)
	mocks.departmentRepo.On("Save", mock.Anything, mock.AnythingOfType("*staff.Department")).Return(nil)

	resp, err := svc.CreateDepartment(context.Background(), CreateDepartmentRequest{
		Name:        "Housekeeping",
		Description: "Room cleaning and laundry",
	})

	require.NoError(t, err)
	assert.Equal(t, "Housekeeping", resp.Name)
	assert.True(t, resp.IsActive)
	mocks.departmentRepo.AssertExpectations(t)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	svc, mocks := newService(t)
	existing := newTestDepartment(t)

	mocks.departmentRepo.On("FindByName", mock.Anything, "Housekeeping").Return(existing, nil)

	_, err := svc.CreateDepartment(context.Background(), CreateDepartmentRequest{Name: "Housekeeping"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateDepartment_EmptyName(t *testing.T) {
	svc, mocks := newService(t)

	mocks.departmentRepo.On("FindByName", mock.Anything, "").Return(nil, shared.ErrNotFound)

	_, err := svc.CreateDepartment(context.Background(), CreateDepartmentRequest{Name: ""})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Department name cannot be empty")
}

func TestAssignDepartmentManager(t *testing.T) {
	svc, mocks := newService(t)
	department := newTestDepartment(t)
	user := newTestUser(t)

	mocks.departmentRepo.On("FindByID", mock.Anything, department.ID).Return(department, nil)
	mocks.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.departmentRepo.On("Save", mock.Anything, department).Return(nil)

	resp, err := svc.AssignDepartmentManager(context.Background(), department.ID, user.ID)

	require.NoError(t, err)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, user.ID, *resp.ManagerID)
}

func TestDeleteDepartment_WithStaffBlocked(t *testing.T) {
	svc, mocks := newService(t)
	department := newTestDepartment(t)

	mocks.departmentRepo.On("FindByID", mock.Anything, department.ID).Return(department, nil)
	mocks.staffRepo.On("Count", mock.Anything, mock.AnythingOfType("staff.StaffFilter")).
		Return(int64(3), nil)

	err := svc.DeleteDepartment(context.Background(), department.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestDeleteDepartment(t *testing.T) {
	svc, mocks := newService(t)
	department := newTestDepartment(t)

	mocks.departmentRepo.On("FindByID", mock.Anything, department.ID).Return(department, nil)
	mocks.staffRepo.On("Count", mock.Anything, mock.AnythingOfType("staff.StaffFilter")).
		Return(int64(0), nil)
	mocks.departmentRepo.On("Delete", mock.Anything, department.ID).Return(nil)

	err := svc.DeleteDepartment(context.Background(), department.ID)

	require.NoError(t, err)
	mocks.departmentRepo.AssertExpectations(t)
}

func TestCreateStaffMember(t *testing.T) {
	svc, mocks := newService(t)
	user := newTestUser(t)
	department := newTestDepartment(t)
	salary := decimal.NewFromInt(450)

	mocks.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.staffRepo.On("FindByUserID", mock.Anything, user.ID).Return(nil, shared.ErrNotFound)
	mocks.staffRepo.On("FindByEmployeeID", mock.Anything, "EMP-0042").Return(nil, shared.ErrNotFound)
	mocks.departmentRepo.On("FindByID", mock.Anything, department.ID).Return(department, nil)
	mocks.staffRepo.On("Save", mock.Anything, mock.AnythingOfType("*staff.StaffMember")).Return(nil)

	resp, err := svc.CreateStaffMember(context.Background(), CreateStaffMemberRequest{
		UserID:       user.ID,
		EmployeeID:   "EMP-0042",
		Position:     "Housekeeper",
		DepartmentID: &department.ID,
		Salary:       &salary,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP-0042", resp.EmployeeID)
	assert.Equal(t, "Housekeeper", resp.Position)
	require.NotNil(t, resp.DepartmentID)
	assert.Equal(t, department.ID, *resp.DepartmentID)
	require.NotNil(t, resp.Salary)
	assert.True(t, resp.Salary.Equal(decimal.NewFromInt(450)))
	assert.True(t, resp.IsActive)
}

func TestCreateStaffMember_UnknownUser(t *testing.T) {
	svc, mocks := newService(t)
	userID := uuid.New()

	mocks.userRepo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateStaffMember(context.Background(), CreateStaffMemberRequest{
		UserID:     userID,
		EmployeeID: "EMP-0042",
		Position:   "Housekeeper",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestCreateStaffMember_DuplicateEmployeeID(t *testing.T) {
	svc, mocks := newService(t)
	user := newTestUser(t)
	other := newTestStaffMember(t, uuid.New())

	mocks.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.staffRepo.On("FindByUserID", mock.Anything, user.ID).Return(nil, shared.ErrNotFound)
	mocks.staffRepo.On("FindByEmployeeID", mock.Anything, "EMP-0042").Return(other, nil)

	_, err := svc.CreateStaffMember(context.Background(), CreateStaffMemberRequest{
		UserID:     user.ID,
		EmployeeID: "EMP-0042",
		Position:   "Housekeeper",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}

func TestCreateStaffMember_UserAlreadyHasRecord(t *testing.T) {
	svc, mocks := newService(t)
	user := newTestUser(t)
	existing := newTestStaffMember(t, user.ID)

	mocks.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	mocks.staffRepo.On("FindByUserID", mock.Anything, user.ID).Return(existing, nil)

	_, err := svc.CreateStaffMember(context.Background(), CreateStaffMemberRequest{
		UserID:     user.ID,
		EmployeeID: "EMP-0099",
		Position:   "Housekeeper",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestListStaff(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())

	mocks.staffRepo.On("FindAll", mock.Anything, mock.AnythingOfType("staff.StaffFilter")).
		Return([]staff.StaffMember{*member}, nil)
	mocks.staffRepo.On("Count", mock.Anything, mock.AnythingOfType("staff.StaffFilter")).
		Return(int64(1), nil)

	result, err := svc.ListStaff(context.Background(), ListStaffFilter{})

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
}

func TestUpdateStaffMember_Salary(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())
	salary := decimal.NewFromInt(600)

	mocks.staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	mocks.staffRepo.On("Save", mock.Anything, member).Return(nil)

	resp, err := svc.UpdateStaffMember(context.Background(), member.ID, UpdateStaffMemberRequest{
		Salary: &salary,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Salary)
	assert.True(t, resp.Salary.Equal(decimal.NewFromInt(600)))
}

func TestUpdateStaffMember_NegativeSalary(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())
	salary := decimal.NewFromInt(-100)

	mocks.staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)

	_, err := svc.UpdateStaffMember(context.Background(), member.ID, UpdateStaffMemberRequest{
		Salary: &salary,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Salary must be positive")
}

func TestUpdateStaffMember_EmptyPosition(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())
	position := ""

	mocks.staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)

	_, err := svc.UpdateStaffMember(context.Background(), member.ID, UpdateStaffMemberRequest{
		Position: &position,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Position cannot be empty")
}

func TestDeactivateStaffMember(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())

	mocks.staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	mocks.staffRepo.On("Save", mock.Anything, member).Return(nil)

	resp, err := svc.DeactivateStaffMember(context.Background(), member.ID)

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestDeleteStaffMember(t *testing.T) {
	svc, mocks := newService(t)
	member := newTestStaffMember(t, uuid.New())

	mocks.staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	mocks.staffRepo.On("Delete", mock.Anything, member.ID).Return(nil)

	err := svc.DeleteStaffMember(context.Background(), member.ID)

	require.NoError(t, err)
	mocks.staffRepo.AssertExpectations(t)
}
