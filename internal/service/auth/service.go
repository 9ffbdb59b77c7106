package auth

import (
	"context"

	"github.com/dayflow/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/dayflow/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewService(userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login verifies the credentials and issues an access token. Lookup failures
// and password mismatches both surface as ErrInvalidCredentials so the
// response does not reveal which emails exist.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var employeeID *string
	if emp, err := s.employeeRepo.GetByUserID(ctx, u.ID); err == nil {
		employeeID = &emp.ID
	} else if err != employee.ErrEmployeeNotFound {
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp := auth.LoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		UserID:       u.ID,
		Role:         string(u.Role),
		IsFirstLogin: u.IsFirstLogin,
	}
	if employeeID != nil {
		resp.EmployeeID = *employeeID
	}
	return resp, nil
}

// ChangePassword replaces the caller's password after verifying the current
// one. Also clears the first-login flag.
func (s *Service) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}
