package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	req := RegisterReq{Username: " alice ", Email: "alice@example.com", Password: "secret1"}

	tests := []struct {
		name           string
		setup          func(mock sqlmock.Sqlmock)
		expectConflict bool
		expectError    bool
	}{
		{
			name: "success creates employee",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mockRepo.EXPECT().IsUserTaken(ctx, gomock.Any(), "alice", "alice@example.com").Return(false, false, nil)
				mockRepo.EXPECT().InsertUser(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, u models.Identity) (models.Identity, error) {
						assert.Equal(t, models.EmployeeRole, u.Role)
						assert.True(t, u.IsActive)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
						u.ID = 7
						return u, nil
					})
				mock.ExpectCommit()
			},
		},
		{
			name: "username taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mockRepo.EXPECT().IsUserTaken(ctx, gomock.Any(), "alice", "alice@example.com").Return(true, false, nil)
				mock.ExpectRollback()
			},
			expectConflict: true,
			expectError:    true,
		},
		{
			name: "email taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mockRepo.EXPECT().IsUserTaken(ctx, gomock.Any(), "alice", "alice@example.com").Return(false, true, nil)
				mock.ExpectRollback()
			},
			expectConflict: true,
			expectError:    true,
		},
		{
			name: "insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mockRepo.EXPECT().IsUserTaken(ctx, gomock.Any(), "alice", "alice@example.com").Return(false, false, nil)
				mockRepo.EXPECT().InsertUser(ctx, gomock.Any(), gomock.Any()).Return(models.Identity{}, errors.New("db error"))
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			service := &userServiceStruct{
				repo:   mockRepo,
				db:     sqlx.NewDb(db, "postgres"),
				logger: mockLogger,
				now:    time.Now,
			}
			tc.setup(mock)

			user, err := service.Register(ctx, req)
			if tc.expectError {
				assert.Error(t, err)
				assert.Equal(t, tc.expectConflict, apperror.IsConflict(err, apperror.Duplicate))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockTokens := providers.NewMockTokenProvider(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &userServiceStruct{repo: mockRepo, tokens: mockTokens, logger: mockLogger, now: time.Now}

	active := models.Identity{ID: 3, Username: "bob", Role: models.HRRole, IsActive: true, PasswordHash: hashFor(t, "pw123456")}
	inactive := active
	inactive.IsActive = false

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(active, nil)
		mockTokens.EXPECT().GenerateAccessToken(active).Return("access", nil)
		mockTokens.EXPECT().GenerateRefreshToken(int64(3)).Return("refresh", nil)

		res, err := service.Login(ctx, LoginReq{Username: "bob", Password: "pw123456"})
		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, active.ID, res.User.ID)
	})

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(ctx, "ghost").Return(models.Identity{}, apperror.NewNotFound("user"))

		_, err := service.Login(ctx, LoginReq{Username: "ghost", Password: "x"})
		assert.True(t, apperror.IsAuth(err, apperror.InvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(active, nil)

		_, err := service.Login(ctx, LoginReq{Username: "bob", Password: "nope"})
		assert.True(t, apperror.IsAuth(err, apperror.InvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(inactive, nil)

		_, err := service.Login(ctx, LoginReq{Username: "bob", Password: "pw123456"})
		assert.True(t, apperror.IsAuth(err, apperror.InactiveAccount))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByUsername(ctx, "bob").Return(models.Identity{}, errors.New("db down"))

		_, err := service.Login(ctx, LoginReq{Username: "bob", Password: "pw123456"})
		assert.Error(t, err)
		assert.False(t, apperror.IsAuth(err, ""))
	})
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockTokens := providers.NewMockTokenProvider(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &userServiceStruct{repo: mockRepo, tokens: mockTokens, logger: mockLogger, now: time.Now}

	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user := models.Identity{ID: 5, Username: "carol", Role: models.EmployeeRole, IsActive: true, PasswordChangedAt: issued.Add(-time.Hour)}

	t.Run("success", func(t *testing.T) {
		mockTokens.EXPECT().ParseRefreshToken("rt").Return(providers.TokenClaims{UserID: 5, IssuedAt: issued}, nil)
		mockRepo.EXPECT().GetUserByID(ctx, int64(5)).Return(user, nil)
		mockTokens.EXPECT().GenerateAccessToken(user).Return("new-access", nil)

		token, err := service.Refresh(ctx, "rt")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", token)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockTokens.EXPECT().ParseRefreshToken("bad").Return(providers.TokenClaims{}, errors.New("invalid or expired token"))

		_, err := service.Refresh(ctx, "bad")
		assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
	})

	t.Run("issued before password change", func(t *testing.T) {
		changed := user
		changed.PasswordChangedAt = issued.Add(time.Minute)
		mockTokens.EXPECT().ParseRefreshToken("rt").Return(providers.TokenClaims{UserID: 5, IssuedAt: issued}, nil)
		mockRepo.EXPECT().GetUserByID(ctx, int64(5)).Return(changed, nil)

		_, err := service.Refresh(ctx, "rt")
		assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
	})

	t.Run("deactivated user", func(t *testing.T) {
		off := user
		off.IsActive = false
		mockTokens.EXPECT().ParseRefreshToken("rt").Return(providers.TokenClaims{UserID: 5, IssuedAt: issued}, nil)
		mockRepo.EXPECT().GetUserByID(ctx, int64(5)).Return(off, nil)

		_, err := service.Refresh(ctx, "rt")
		assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
	})
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	service := &userServiceStruct{repo: mockRepo, logger: mockLogger, now: func() time.Time { return now }}
	user := models.Identity{ID: 9, PasswordHash: hashFor(t, "oldpass")}

	t.Run("success stamps change time", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(ctx, int64(9)).Return(user, nil)
		mockRepo.EXPECT().UpdatePassword(ctx, int64(9), gomock.Any(), now).
			DoAndReturn(func(_ context.Context, _ int64, hash string, _ time.Time) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
				return nil
			})

		err := service.ChangePassword(ctx, 9, ChangePasswordReq{CurrentPassword: "oldpass", NewPassword: "newpass"})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(ctx, int64(9)).Return(user, nil)

		err := service.ChangePassword(ctx, 9, ChangePasswordReq{CurrentPassword: "guess", NewPassword: "newpass"})
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "current_password")
	})
}

func TestUpdateAndDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := &userServiceStruct{repo: mockRepo, logger: mockLogger, now: time.Now}
	admin := models.Identity{ID: 1, Role: models.AdminRole, IsActive: true}

	t.Run("invalid role rejected before repository", func(t *testing.T) {
		bad := models.Role("Owner")
		_, err := service.UpdateUser(ctx, admin, 2, UpdateUserReq{Role: &bad})
		assert.True(t, apperror.IsValidation(err, ""))
	})

	t.Run("role change", func(t *testing.T) {
		role := models.AssetManagerRole
		mockRepo.EXPECT().UpdateUser(ctx, int64(2), UpdateUserReq{Role: &role}).
			Return(models.Identity{ID: 2, Role: role}, nil)

		user, err := service.UpdateUser(ctx, admin, 2, UpdateUserReq{Role: &role})
		assert.NoError(t, err)
		assert.Equal(t, role, user.Role)
	})

	t.Run("cannot delete self", func(t *testing.T) {
		err := service.DeleteUser(ctx, admin, 1)
		assert.True(t, apperror.IsValidation(err, ""))
	})

	t.Run("delete blocked by assignments", func(t *testing.T) {
		mockRepo.EXPECT().DeleteUserByID(ctx, int64(4)).Return(apperror.NewConflict(apperror.InUse, "in use"))

		err := service.DeleteUser(ctx, admin, 4)
		assert.True(t, apperror.IsConflict(err, apperror.InUse))
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := NewMockUserRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	t.Run("existing admin is left alone", func(t *testing.T) {
		service := &userServiceStruct{repo: mockRepo, logger: mockLogger, now: time.Now}
		mockRepo.EXPECT().GetUserByUsername(ctx, "root").Return(models.Identity{ID: 1}, nil)

		assert.NoError(t, service.EnsureAdmin(ctx, "root", "root@example.com", "rootpass"))
	})

	t.Run("missing admin is created", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		service := &userServiceStruct{repo: mockRepo, db: sqlx.NewDb(db, "postgres"), logger: mockLogger, now: time.Now}
		mockRepo.EXPECT().GetUserByUsername(ctx, "root").Return(models.Identity{}, apperror.NewNotFound("user"))
		mock.ExpectBegin()
		mockRepo.EXPECT().IsUserTaken(ctx, gomock.Any(), "root", "root@example.com").Return(false, false, nil)
		mockRepo.EXPECT().InsertUser(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, u models.Identity) (models.Identity, error) {
				assert.Equal(t, models.AdminRole, u.Role)
				u.ID = 1
				return u, nil
			})
		mock.ExpectCommit()

		assert.NoError(t, service.EnsureAdmin(ctx, "root", "root@example.com", "rootpass"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
