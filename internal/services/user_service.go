package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/pkg/crypto"
	"taskhive.com/taskhive/pkg/logger"
)

type UserService struct {
	users     *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(users *repository.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates an Employee account. The role is fixed at
// registration; there is no promotion path through the API.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.ErrEmailInUse
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, req.FirstName, req.LastName, req.Email, hash, constants.RoleEmployee)
	if err != nil {
		return nil, err
	}

	logger.Audit.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !crypto.CheckPassword(user.PasswordHash, req.Password) {
		logger.Security.Warn("failed login attempt", zap.String("email", req.Email))
		return "", nil, apperrors.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, actor authz.Identity, userID string) (*model.User, error) {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionRead, authz.Subject{OwnerID: userID}); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns the full user directory; admin only.
func (s *UserService) List(ctx context.Context, actor authz.Identity) ([]model.User, error) {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionList, authz.Subject{}); err != nil {
		logger.Security.Warn("denied user listing", zap.String("actor", actor.UserID))
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, actor authz.Identity, userID string) error {
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionDelete, authz.Subject{OwnerID: userID}); err != nil {
		logger.Security.Warn("denied user deletion",
			zap.String("actor", actor.UserID), zap.String("target", userID))
		return err
	}

	affected, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}

	logger.Audit.Info("user deleted", zap.String("user_id", userID), zap.String("by", actor.UserID))
	return nil
}

// UpdateCredentials changes the caller's own password and/or email. A
// password change requires the current password; an email change
// requires the new address to be unused.
func (s *UserService) UpdateCredentials(ctx context.Context, actor authz.Identity, req dto.UpdateCredentialsRequest) error {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if req.NewPassword != "" {
		if !crypto.CheckPassword(user.PasswordHash, req.CurrentPassword) {
			logger.Security.Warn("credential update with wrong password", zap.String("user_id", user.ID))
			return apperrors.ErrWrongCurrentPassword
		}
		hash, err := crypto.HashPassword(req.NewPassword)
		if err != nil {
			return err
		}
		if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
	}

	if req.Email != "" && req.Email != user.Email {
		_, err := s.users.FindByEmail(ctx, req.Email)
		if err == nil {
			return apperrors.ErrEmailInUse
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.users.UpdateEmail(ctx, user.ID, req.Email); err != nil {
			return err
		}
	}

	logger.Audit.Info("credentials updated", zap.String("user_id", user.ID))
	return nil
}
