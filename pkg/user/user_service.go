package user

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/internal/utils/mailing"
	"Bakehouse-Backend/pkg/jwt"
	"Bakehouse-Backend/pkg/staff"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		// Register creates an account on behalf of an administrator; the
		// admin re-confirms their own password before the account is made.
		Register(ctx context.Context, req domain.RegisterUserRequest, adminID string) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository  UserRepository
		staffRepository staff.StaffRepository
		jwtService      jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, staffRepository staff.StaffRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:  userRepository,
		staffRepository: staffRepository,
		jwtService:      jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest, adminID string) (domain.UserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return domain.UserResponse{}, domain.ErrPasswordMismatch
	}

	admin, err := s.userRepository.GetUserByID(ctx, adminID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.AdminPassword)); err != nil {
		return domain.UserResponse{}, domain.ErrAdminPasswordWrong
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hashed),
		Role:     req.Role,
	}

	var staffMember *entities.Staff
	if req.StaffID != "" {
		staffMember, err = s.staffRepository.GetStaffByID(ctx, req.StaffID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.UserResponse{}, domain.ErrStaffNotFound
			}
			return domain.UserResponse{}, err
		}
		user.StaffID = &staffMember.ID
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// Best effort welcome mail when the linked staff member has an email.
	if staffMember != nil && staffMember.Email != "" {
		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>Your account <b>%s</b> was created with the <b>%s</b> role.</p>",
			staffMember.Name, user.Username, user.Role,
		)
		if err := mailing.SendMail(staffMember.Email, "Your Bakehouse account", body); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", staffMember.Email, err)
		}
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}
	return result, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
	}
	if user.StaffID != nil {
		res.StaffID = user.StaffID.String()
	}
	return res
}
