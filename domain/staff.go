package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateStaff      = "staff member created successfully"
	MessageSuccessUpdateStaff      = "staff member updated successfully"
	MessageSuccessDeleteStaff      = "staff member deleted successfully"
	MessageSuccessGetStaff         = "staff members retrieved successfully"
	MessageSuccessUploadStaffPhoto = "staff photo uploaded successfully"

	MessageFailedCreateStaff      = "failed to create staff member"
	MessageFailedUpdateStaff      = "failed to update staff member"
	MessageFailedDeleteStaff      = "failed to delete staff member"
	MessageFailedGetStaff         = "failed to retrieve staff members"
	MessageFailedUploadStaffPhoto = "failed to upload staff photo"

	ErrStaffNotFound          = errors.New("staff member not found")
	ErrDuplicateRegistration  = errors.New("registration code already in use")
	ErrInvalidBirthDate       = errors.New("invalid birth date")
	ErrStaffPhotoInvalidImage = errors.New("invalid image format")
)

type (
	CreateStaffRequest struct {
		RegistrationCode string `json:"registration_code" validate:"required"`
		Name             string `json:"name" validate:"required"`
		BirthDate        string `json:"birth_date" validate:"required"`
		Sex              string `json:"sex" validate:"required,oneof=M F"`
		JobRole          string `json:"job_role" validate:"required"`
		NationalID       string `json:"national_id" validate:"required"`
		Email            string `json:"email" validate:"omitempty,email"`
		Phone            string `json:"phone" validate:"omitempty"`
		PostalCode       string `json:"postal_code" validate:"omitempty"`
		Street           string `json:"street" validate:"omitempty"`
		Number           string `json:"number" validate:"omitempty"`
		District         string `json:"district" validate:"omitempty"`
		City             string `json:"city" validate:"omitempty"`
		State            string `json:"state" validate:"omitempty,len=2"`
		AddressNote      string `json:"address_note" validate:"omitempty"`
	}

	UpdateStaffRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		BirthDate   string `json:"birth_date" validate:"omitempty"`
		Sex         string `json:"sex" validate:"omitempty,oneof=M F"`
		JobRole     string `json:"job_role" validate:"omitempty"`
		Email       string `json:"email" validate:"omitempty,email"`
		Phone       string `json:"phone" validate:"omitempty"`
		PostalCode  string `json:"postal_code" validate:"omitempty"`
		Street      string `json:"street" validate:"omitempty"`
		Number      string `json:"number" validate:"omitempty"`
		District    string `json:"district" validate:"omitempty"`
		City        string `json:"city" validate:"omitempty"`
		State       string `json:"state" validate:"omitempty,len=2"`
		AddressNote string `json:"address_note" validate:"omitempty"`
	}

	UploadStaffPhotoRequest struct {
		StaffID string                `json:"staff_id" form:"staff_id" validate:"required,uuid"`
		Photo   *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	StaffResponse struct {
		ID               string `json:"id"`
		RegistrationCode string `json:"registration_code"`
		Name             string `json:"name"`
		BirthDate        string `json:"birth_date"`
		Sex              string `json:"sex"`
		JobRole          string `json:"job_role"`
		NationalID       string `json:"national_id"`
		Email            string `json:"email,omitempty"`
		Phone            string `json:"phone,omitempty"`
		PostalCode       string `json:"postal_code,omitempty"`
		Street           string `json:"street,omitempty"`
		Number           string `json:"number,omitempty"`
		District         string `json:"district,omitempty"`
		City             string `json:"city,omitempty"`
		State            string `json:"state,omitempty"`
		AddressNote      string `json:"address_note,omitempty"`
		PhotoURL         string `json:"photo_url,omitempty"`
	}
)
