package staff

import (
	"Bakehouse-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	StaffRepository interface {
		CreateStaff(ctx context.Context, staff *entities.Staff) error
		GetStaffByID(ctx context.Context, id string) (*entities.Staff, error)
		GetStaffByRegistrationCode(ctx context.Context, code string) (*entities.Staff, error)
		GetStaff(ctx context.Context, search string) ([]*entities.Staff, error)
		UpdateStaff(ctx context.Context, staff *entities.Staff) error
		DeleteStaff(ctx context.Context, id string) error
	}

	staffRepository struct {
		db *gorm.DB
	}
)

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) CreateStaff(ctx context.Context, staff *entities.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) GetStaffByID(ctx context.Context, id string) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) GetStaffByRegistrationCode(ctx context.Context, code string) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Where("registration_code = ?", code).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) GetStaff(ctx context.Context, search string) ([]*entities.Staff, error) {
	var staff []*entities.Staff

	query := r.db.WithContext(ctx).Order("name asc")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) UpdateStaff(ctx context.Context, staff *entities.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepository) DeleteStaff(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Staff{}).Error
}
