package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/shared"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/domain/staff"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/persistence/models"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*staff.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all departments ordered by name
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]staff.Department, error) {
	var departmentModels []models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&departmentModels).Error; err != nil {
		return nil, err
	}

	departments := make([]staff.Department, len(departmentModels))
	for i, model := range departmentModels {
		departments[i] = *model.ToDomain()
	}
	return departments, nil
}

func (r *GormDepartmentRepository) Save(ctx context.Context, d *staff.Department) error {
	model := models.DepartmentModelFromDomain(d)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormStaffRepository implements StaffRepository using GORM
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GormStaffRepository
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func (r *GormStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.StaffMember, error) {
	var model models.StaffMemberModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormStaffRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*staff.StaffMember, error) {
	var model models.StaffMemberModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormStaffRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*staff.StaffMember, error) {
	var model models.StaffMemberModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds staff members matching the filter
func (r *GormStaffRepository) FindAll(ctx context.Context, filter staff.StaffFilter) ([]staff.StaffMember, error) {
	var staffModels []models.StaffMemberModel
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StaffMemberModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	query = query.Order("employee_id ASC")

	if err := query.Find(&staffModels).Error; err != nil {
		return nil, err
	}

	members := make([]staff.StaffMember, len(staffModels))
	for i, model := range staffModels {
		members[i] = *model.ToDomain()
	}
	return members, nil
}

// Count counts staff members matching the filter
func (r *GormStaffRepository) Count(ctx context.Context, filter staff.StaffFilter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StaffMemberModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStaffRepository) Save(ctx context.Context, s *staff.StaffMember) error {
	model := models.StaffMemberModelFromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffMemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStaffRepository) applyFilterWithoutPagination(query *gorm.DB, filter staff.StaffFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("employee_id ILIKE ? OR position ILIKE ?", searchPattern, searchPattern)
	}

	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	return query
}
