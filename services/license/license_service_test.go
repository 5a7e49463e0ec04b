package licenseservice

import (
	"context"
	"errors"
	"testing"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/providers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingNotifier struct{ calls int }

func (n *countingNotifier) Invalidate(context.Context) { n.calls++ }

type serviceFixture struct {
	service  *licenseService
	repo     *MockLicenseRepository
	sql      sqlmock.Sqlmock
	notifier *countingNotifier
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *serviceFixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	f := &serviceFixture{
		repo:     NewMockLicenseRepository(ctrl),
		sql:      mock,
		notifier: &countingNotifier{},
	}
	f.service = &licenseService{
		repo:     f.repo,
		db:       sqlx.NewDb(db, "postgres"),
		logger:   mockLogger,
		notifier: f.notifier,
	}
	return f
}

var (
	adminUser    = models.Identity{ID: 1, Username: "admin", Role: models.AdminRole, IsActive: true}
	managerUser  = models.Identity{ID: 2, Username: "manager", Role: models.AssetManagerRole, IsActive: true}
	hrUser       = models.Identity{ID: 3, Username: "hr", Role: models.HRRole, IsActive: true}
	employeeUser = models.Identity{ID: 4, Username: "emp", Role: models.EmployeeRole, IsActive: true}
)

func strPtr(v string) *string { return &v }

func TestCreateLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("defaults seats and status", func(t *testing.T) {
		f := newFixture(t, ctrl)
		f.repo.EXPECT().InsertLicense(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l models.License) (models.License, error) {
				assert.Equal(t, "Office", l.SoftwareName)
				assert.Equal(t, 1, l.Seats)
				assert.Equal(t, models.LicenseActive, l.Status)
				require.NotNil(t, l.ExpirationDate)
				assert.Equal(t, 2027, l.ExpirationDate.Year())
				l.ID = 5
				return l, nil
			})

		license, err := f.service.CreateLicense(ctx, managerUser, CreateLicenseReq{
			SoftwareName:   " Office ",
			ExpirationDate: strPtr("2027-01-31"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), license.ID)
		assert.Equal(t, 1, f.notifier.calls)
	})

	t.Run("employee and hr are forbidden", func(t *testing.T) {
		f := newFixture(t, ctrl)
		for _, actor := range []models.Identity{hrUser, employeeUser} {
			_, err := f.service.CreateLicense(ctx, actor, CreateLicenseReq{SoftwareName: "Office"})
			assert.True(t, apperror.IsAuth(err, apperror.Forbidden))
		}
		assert.Zero(t, f.notifier.calls)
	})

	t.Run("rejects expiration before purchase", func(t *testing.T) {
		f := newFixture(t, ctrl)
		_, err := f.service.CreateLicense(ctx, adminUser, CreateLicenseReq{
			SoftwareName:   "Office",
			PurchaseDate:   strPtr("2026-05-01"),
			ExpirationDate: strPtr("2026-04-01"),
		})
		var verr *apperror.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "expiration_date")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newFixture(t, ctrl)
		_, err := f.service.CreateLicense(ctx, adminUser, CreateLicenseReq{SoftwareName: "Office", Status: "Lapsed"})
		assert.True(t, apperror.IsValidation(err, apperror.InvalidField))
	})

	t.Run("unknown asset", func(t *testing.T) {
		f := newFixture(t, ctrl)
		assetID := int64(42)
		f.repo.EXPECT().InsertLicense(ctx, gomock.Any()).Return(models.License{}, apperror.NewNotFound("asset"))

		_, err := f.service.CreateLicense(ctx, adminUser, CreateLicenseReq{SoftwareName: "Office", AssetID: &assetID})
		assert.True(t, apperror.IsNotFound(err))
		assert.Zero(t, f.notifier.calls)
	})
}

func TestUpdateLicenseLocksAndApplies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, ctrl)
		expired := models.LicenseExpired
		seats := 25

		f.sql.ExpectBegin()
		f.repo.EXPECT().GetLicenseForUpdate(ctx, gomock.Any(), int64(9)).
			Return(models.License{ID: 9, SoftwareName: "IDE", Seats: 5, Status: models.LicenseActive}, nil)
		f.repo.EXPECT().UpdateLicense(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, l models.License) (models.License, error) {
				assert.Equal(t, "IDE", l.SoftwareName)
				assert.Equal(t, 25, l.Seats)
				assert.Equal(t, models.LicenseExpired, l.Status)
				return l, nil
			})
		f.sql.ExpectCommit()

		license, err := f.service.UpdateLicense(ctx, managerUser, 9, UpdateLicenseReq{Seats: &seats, Status: &expired})
		require.NoError(t, err)
		assert.Equal(t, models.LicenseExpired, license.Status)
		assert.Equal(t, 1, f.notifier.calls)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("bad date rolls back", func(t *testing.T) {
		f := newFixture(t, ctrl)
		f.sql.ExpectBegin()
		f.repo.EXPECT().GetLicenseForUpdate(ctx, gomock.Any(), int64(9)).
			Return(models.License{ID: 9, SoftwareName: "IDE", Seats: 5, Status: models.LicenseActive}, nil)
		f.sql.ExpectRollback()

		_, err := f.service.UpdateLicense(ctx, managerUser, 9, UpdateLicenseReq{ExpirationDate: strPtr("31/01/2027")})
		assert.True(t, apperror.IsValidation(err, apperror.InvalidField))
		assert.Zero(t, f.notifier.calls)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})
}

func TestListLicensesValidatesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)

	_, err := f.service.ListLicenses(context.Background(), employeeUser, LicenseFilter{Status: "Lapsed"})
	assert.True(t, apperror.IsValidation(err, apperror.InvalidField))

	f.repo.EXPECT().ListLicenses(gomock.Any(), LicenseFilter{Status: "Active"}).
		Return([]models.LicenseResponse{{License: models.License{ID: 1}}}, nil)
	licenses, err := f.service.ListLicenses(context.Background(), employeeUser, LicenseFilter{Status: "Active"})
	require.NoError(t, err)
	assert.Len(t, licenses, 1)
}

func TestExpiringLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	ctx := context.Background()

	_, err := f.service.ExpiringLicenses(ctx, hrUser, -1)
	assert.True(t, apperror.IsValidation(err, ""))

	days := 3
	f.repo.EXPECT().ListExpiring(ctx, 14).Return([]models.LicenseResponse{{DaysUntilExpiry: &days}}, nil)
	licenses, err := f.service.ExpiringLicenses(ctx, hrUser, 14)
	require.NoError(t, err)
	require.Len(t, licenses, 1)
	assert.Equal(t, 3, *licenses[0].DaysUntilExpiry)
}

func TestDeleteLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t, ctrl)
	ctx := context.Background()

	err := f.service.DeleteLicense(ctx, employeeUser, 3)
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))

	f.repo.EXPECT().DeleteLicenseByID(ctx, int64(3)).Return(nil)
	require.NoError(t, f.service.DeleteLicense(ctx, adminUser, 3))
	assert.Equal(t, 1, f.notifier.calls)
}
