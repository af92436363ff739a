package domain

import (
	"errors"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetUsers   = "users retrieved successfully"
	MessageSuccessDeleteUser = "user deleted successfully"
	MessageSuccessMe         = "user profile retrieved successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedDeleteUser = "failed to delete user"
	MessageFailedMe         = "failed to retrieve user profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrCredentialsInvalid = errors.New("invalid username or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrAdminPasswordWrong = errors.New("administrator password incorrect")
	ErrInvalidRole        = errors.New("invalid role")
)

type (
	RegisterUserRequest struct {
		Username        string `json:"username" validate:"required,min=3"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
		AdminPassword   string `json:"admin_password" validate:"required"`
		Role            string `json:"role" validate:"required,oneof=admin hr inventory pastry"`
		StaffID         string `json:"staff_id" validate:"omitempty,uuid"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Role     string `json:"role"`
		Username string `json:"username"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
		StaffID  string `json:"staff_id,omitempty"`
	}
)
