package staff

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/internal/utils/storage"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StaffService interface {
		CreateStaff(ctx context.Context, req domain.CreateStaffRequest) (domain.StaffResponse, error)
		GetStaff(ctx context.Context, search string) ([]domain.StaffResponse, error)
		GetStaffByID(ctx context.Context, id string) (domain.StaffResponse, error)
		UpdateStaff(ctx context.Context, id string, req domain.UpdateStaffRequest) error
		DeleteStaff(ctx context.Context, id string) error
		UploadStaffPhoto(ctx context.Context, req domain.UploadStaffPhotoRequest) (string, error)
	}

	staffService struct {
		staffRepository StaffRepository
		s3              storage.AwsS3
	}
)

func NewStaffService(staffRepository StaffRepository, s3 storage.AwsS3) StaffService {
	return &staffService{
		staffRepository: staffRepository,
		s3:              s3,
	}
}

func (s *staffService) CreateStaff(ctx context.Context, req domain.CreateStaffRequest) (domain.StaffResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return domain.StaffResponse{}, domain.ErrInvalidBirthDate
	}

	if _, err := s.staffRepository.GetStaffByRegistrationCode(ctx, req.RegistrationCode); err == nil {
		return domain.StaffResponse{}, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.StaffResponse{}, err
	}

	staff := &entities.Staff{
		ID:               uuid.New(),
		RegistrationCode: req.RegistrationCode,
		Name:             req.Name,
		BirthDate:        birthDate,
		Sex:              req.Sex,
		JobRole:          req.JobRole,
		NationalID:       req.NationalID,
		Email:            req.Email,
		Phone:            req.Phone,
		PostalCode:       req.PostalCode,
		Street:           req.Street,
		Number:           req.Number,
		District:         req.District,
		City:             req.City,
		State:            req.State,
		AddressNote:      req.AddressNote,
	}

	if err := s.staffRepository.CreateStaff(ctx, staff); err != nil {
		return domain.StaffResponse{}, err
	}

	return toStaffResponse(staff), nil
}

func (s *staffService) GetStaff(ctx context.Context, search string) ([]domain.StaffResponse, error) {
	staff, err := s.staffRepository.GetStaff(ctx, search)
	if err != nil {
		return nil, err
	}

	result := make([]domain.StaffResponse, 0, len(staff))
	for _, member := range staff {
		result = append(result, toStaffResponse(member))
	}
	return result, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, id string) (domain.StaffResponse, error) {
	staff, err := s.staffRepository.GetStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StaffResponse{}, domain.ErrStaffNotFound
		}
		return domain.StaffResponse{}, err
	}
	return toStaffResponse(staff), nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id string, req domain.UpdateStaffRequest) error {
	staff, err := s.staffRepository.GetStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStaffNotFound
		}
		return err
	}

	if req.Name != "" {
		staff.Name = req.Name
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return domain.ErrInvalidBirthDate
		}
		staff.BirthDate = birthDate
	}
	if req.Sex != "" {
		staff.Sex = req.Sex
	}
	if req.JobRole != "" {
		staff.JobRole = req.JobRole
	}
	if req.Email != "" {
		staff.Email = req.Email
	}
	if req.Phone != "" {
		staff.Phone = req.Phone
	}
	if req.PostalCode != "" {
		staff.PostalCode = req.PostalCode
	}
	if req.Street != "" {
		staff.Street = req.Street
	}
	if req.Number != "" {
		staff.Number = req.Number
	}
	if req.District != "" {
		staff.District = req.District
	}
	if req.City != "" {
		staff.City = req.City
	}
	if req.State != "" {
		staff.State = req.State
	}
	if req.AddressNote != "" {
		staff.AddressNote = req.AddressNote
	}

	return s.staffRepository.UpdateStaff(ctx, staff)
}

func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	staff, err := s.staffRepository.GetStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrStaffNotFound
		}
		return err
	}

	if staff.PhotoURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(staff.PhotoURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.staffRepository.DeleteStaff(ctx, id)
}

func (s *staffService) UploadStaffPhoto(ctx context.Context, req domain.UploadStaffPhotoRequest) (string, error) {
	staff, err := s.staffRepository.GetStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrStaffNotFound
		}
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(req.Photo.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", domain.ErrStaffPhotoInvalidImage
	}

	if staff.PhotoURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(staff.PhotoURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	url, err := s.s3.UploadFile(req.Photo, "staff")
	if err != nil {
		return "", err
	}

	staff.PhotoURL = url
	if err := s.staffRepository.UpdateStaff(ctx, staff); err != nil {
		return "", err
	}

	return url, nil
}

func toStaffResponse(staff *entities.Staff) domain.StaffResponse {
	return domain.StaffResponse{
		ID:               staff.ID.String(),
		RegistrationCode: staff.RegistrationCode,
		Name:             staff.Name,
		BirthDate:        staff.BirthDate.Format("2006-01-02"),
		Sex:              staff.Sex,
		JobRole:          staff.JobRole,
		NationalID:       staff.NationalID,
		Email:            staff.Email,
		Phone:            staff.Phone,
		PostalCode:       staff.PostalCode,
		Street:           staff.Street,
		Number:           staff.Number,
		District:         staff.District,
		City:             staff.City,
		State:            staff.State,
		AddressNote:      staff.AddressNote,
		PhotoURL:         staff.PhotoURL,
	}
}
