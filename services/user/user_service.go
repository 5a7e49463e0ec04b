package userservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/providers"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req RegisterReq) (models.Identity, error)
	Login(ctx context.Context, req LoginReq) (LoginRes, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUser(ctx context.Context, id int64) (models.Identity, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileReq) (models.Identity, error)
	ChangePassword(ctx context.Context, id int64, req ChangePasswordReq) error
	ListUsers(ctx context.Context, filter UserFilter) ([]models.Identity, error)
	UpdateUser(ctx context.Context, actor models.Identity, id int64, req UpdateUserReq) (models.Identity, error)
	DeleteUser(ctx context.Context, actor models.Identity, id int64) error
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

type userServiceStruct struct {
	repo     UserRepository
	db       *sqlx.DB
	tokens   providers.TokenProvider
	logger   providers.ZapLoggerProvider
	notifier providers.ChangeNotifier
	now      func() time.Time
}

func NewUserService(repo UserRepository, db *sqlx.DB, tokens providers.TokenProvider, logger providers.ZapLoggerProvider,
	notifier providers.ChangeNotifier) UserService {
	return &userServiceStruct{
		repo:     repo,
		db:       db,
		tokens:   tokens,
		logger:   logger,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *userServiceStruct) changed(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Invalidate(ctx)
	}
}

var errInvalidCredentials = apperror.NewAuth(apperror.InvalidCredentials, "Invalid credentials")

func (s *userServiceStruct) Register(ctx context.Context, req RegisterReq) (models.Identity, error) {
	user, err := s.createUser(ctx, models.Identity{
		Username:   strings.TrimSpace(req.Username),
		Email:      strings.TrimSpace(req.Email),
		Role:       models.EmployeeRole,
		Department: req.Department,
		IsActive:   true,
	}, req.Password)
	if err != nil {
		return models.Identity{}, err
	}
	s.changed(ctx)
	return user, nil
}

func (s *userServiceStruct) createUser(ctx context.Context, user models.Identity, password string) (created models.Identity, err error) {
	logger := s.logger.GetLogger()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return models.Identity{}, err
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered in createUser", zap.Any("recover_info", r))
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else if commitErr := tx.Commit(); commitErr != nil {
			logger.Error("failed to commit transaction", zap.Error(commitErr))
			err = commitErr
		}
	}()

	usernameTaken, emailTaken, err := s.repo.IsUserTaken(ctx, tx, user.Username, user.Email)
	if err != nil {
		return models.Identity{}, err
	}
	switch {
	case usernameTaken:
		logger.Warn("username already registered", zap.String("username", user.Username))
		return models.Identity{}, apperror.NewConflict(apperror.Duplicate, "Username already exists")
	case emailTaken:
		logger.Warn("email already registered", zap.String("email", user.Email))
		return models.Identity{}, apperror.NewConflict(apperror.Duplicate, "Email already exists")
	}

	created, err = s.repo.InsertUser(ctx, tx, user)
	if err != nil {
		return models.Identity{}, err
	}
	logger.Info("user registered", zap.Int64("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, nil
}

func (s *userServiceStruct) Login(ctx context.Context, req LoginReq) (LoginRes, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return LoginRes{}, errInvalidCredentials
		}
		return LoginRes{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.GetLogger().Info("failed login attempt", zap.String("username", req.Username))
		return LoginRes{}, errInvalidCredentials
	}
	if !user.IsActive {
		return LoginRes{}, apperror.NewAuth(apperror.InactiveAccount, "Account is inactive")
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return LoginRes{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return LoginRes{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return LoginRes{AccessToken: accessToken, RefreshToken: refreshToken, User: user}, nil
}

// Refresh issues a new access token. Refresh tokens minted before the last
// password change are rejected.
func (s *userServiceStruct) Refresh(ctx context.Context, refreshToken string) (string, error) {
	expired := apperror.NewAuth(apperror.SessionExpired, "refresh token is invalid or expired")

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", expired
	}
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", expired
		}
		return "", err
	}
	if !user.IsActive {
		return "", expired
	}
	if claims.IssuedAt.Unix() < user.PasswordChangedAt.Unix() {
		return "", expired
	}
	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *userServiceStruct) GetUser(ctx context.Context, id int64) (models.Identity, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userServiceStruct) UpdateProfile(ctx context.Context, id int64, req UpdateProfileReq) (models.Identity, error) {
	return s.repo.UpdateUser(ctx, id, UpdateUserReq{Email: req.Email, Department: req.Department})
}

func (s *userServiceStruct) ChangePassword(ctx context.Context, id int64, req ChangePasswordReq) error {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperror.NewFieldValidation("Current password is incorrect", map[string]string{"current_password": "is incorrect"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, id, string(hash), s.now()); err != nil {
		return err
	}
	s.logger.GetLogger().Info("password changed", zap.Int64("user_id", id))
	return nil
}

func (s *userServiceStruct) ListUsers(ctx context.Context, filter UserFilter) ([]models.Identity, error) {
	return s.repo.ListUsers(ctx, filter)
}

func (s *userServiceStruct) UpdateUser(ctx context.Context, actor models.Identity, id int64, req UpdateUserReq) (models.Identity, error) {
	if req.Role != nil && !req.Role.IsValid() {
		return models.Identity{}, apperror.NewFieldValidation("Invalid role", map[string]string{"role": "must be one of Admin, Asset Manager, HR, Employee"})
	}
	user, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return models.Identity{}, err
	}
	s.logger.GetLogger().Info("user updated", zap.Int64("user_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return user, nil
}

func (s *userServiceStruct) DeleteUser(ctx context.Context, actor models.Identity, id int64) error {
	if actor.ID == id {
		return apperror.NewValidation(apperror.InvalidField, "Cannot delete your own account")
	}
	if err := s.repo.DeleteUserByID(ctx, id); err != nil {
		return err
	}
	s.logger.GetLogger().Info("user deleted", zap.Int64("user_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return nil
}

// EnsureAdmin creates the bootstrap administrator unless the username exists.
func (s *userServiceStruct) EnsureAdmin(ctx context.Context, username, email, password string) error {
	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !apperror.IsNotFound(err) {
		return err
	}
	_, err = s.createUser(ctx, models.Identity{
		Username: username,
		Email:    email,
		Role:     models.AdminRole,
		IsActive: true,
	}, password)
	return err
}
