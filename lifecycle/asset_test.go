package lifecycle

import (
	"testing"

	"assetflow/apperror"
	"assetflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(id int64, role models.Role) models.Identity {
	return models.Identity{ID: id, Username: "user", Role: role, IsActive: true}
}

func ptr(v int64) *int64 { return &v }

func assertAssignmentInvariant(t *testing.T, a models.Asset) {
	t.Helper()
	assert.Equal(t, a.Status == models.AssetAssigned, a.AssignedToUserID != nil,
		"status %s with assignee %v", a.Status, a.AssignedToUserID)
}

func TestAssign(t *testing.T) {
	manager := user(1, models.AssetManagerRole)
	assignee := user(9, models.EmployeeRole)
	inactive := user(10, models.EmployeeRole)
	inactive.IsActive = false

	tests := []struct {
		name      string
		asset     models.Asset
		actor     models.Identity
		assignee  *models.Identity
		checkErr  func(error) bool
		wantOwner int64
	}{
		{
			name:      "available asset is assigned",
			asset:     models.Asset{ID: 3, Status: models.AssetAvailable},
			actor:     manager,
			assignee:  &assignee,
			wantOwner: 9,
		},
		{
			name:     "already assigned",
			asset:    models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(5)},
			actor:    manager,
			assignee: &assignee,
			checkErr: func(err error) bool { return apperror.IsConflict(err, apperror.AlreadyAssigned) },
		},
		{
			name:     "retired asset",
			asset:    models.Asset{ID: 3, Status: models.AssetRetired},
			actor:    manager,
			assignee: &assignee,
			checkErr: func(err error) bool { return apperror.IsConflict(err, apperror.InvalidTransition) },
		},
		{
			name:     "missing assignee",
			asset:    models.Asset{ID: 3, Status: models.AssetAvailable},
			actor:    manager,
			checkErr: func(err error) bool { return apperror.IsValidation(err, apperror.InvalidAssignee) },
		},
		{
			name:     "inactive assignee",
			asset:    models.Asset{ID: 3, Status: models.AssetAvailable},
			actor:    manager,
			assignee: &inactive,
			checkErr: func(err error) bool { return apperror.IsValidation(err, apperror.InvalidAssignee) },
		},
		{
			name:     "hr may not assign",
			asset:    models.Asset{ID: 3, Status: models.AssetAvailable},
			actor:    user(4, models.HRRole),
			assignee: &assignee,
			checkErr: func(err error) bool { return apperror.IsAuth(err, apperror.Forbidden) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			original := tc.asset
			got, err := Assign(tc.asset, tc.actor, tc.assignee)
			assert.Equal(t, original, tc.asset)

			if tc.checkErr != nil {
				require.Error(t, err)
				assert.True(t, tc.checkErr(err), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.AssetAssigned, got.Asset.Status)
			assert.Equal(t, tc.wantOwner, *got.Asset.AssignedToUserID)
			assert.Equal(t, models.ActionAssigned, got.History.Action)
			assert.Equal(t, tc.wantOwner, *got.History.ToUserID)
			assert.Equal(t, tc.actor.ID, got.History.PerformedByUserID)
			assertAssignmentInvariant(t, got.Asset)
		})
	}
}

func TestAssignConflictKeepsAssignee(t *testing.T) {
	asset := models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(5)}
	other := user(9, models.EmployeeRole)

	_, err := Assign(asset, user(1, models.AdminRole), &other)

	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err, apperror.AlreadyAssigned))
	assert.Equal(t, int64(5), *asset.AssignedToUserID)
}

func TestEmployeeReleasesOwnAsset(t *testing.T) {
	asset := models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(7)}

	got, err := Release(asset, user(7, models.EmployeeRole))

	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, got.Asset.Status)
	assert.Nil(t, got.Asset.AssignedToUserID)
	assert.Equal(t, models.ActionReleased, got.History.Action)
	assert.Equal(t, int64(3), got.History.AssetID)
	require.NotNil(t, got.History.FromUserID)
	assert.Equal(t, int64(7), *got.History.FromUserID)
}

func TestRelease(t *testing.T) {
	t.Run("employee cannot release a colleague's asset", func(t *testing.T) {
		asset := models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(8)}
		_, err := Release(asset, user(7, models.EmployeeRole))
		assert.True(t, apperror.IsAuth(err, apperror.Forbidden))
	})

	t.Run("releasing an available asset conflicts", func(t *testing.T) {
		_, err := Release(models.Asset{ID: 3, Status: models.AssetAvailable}, user(1, models.AdminRole))
		assert.True(t, apperror.IsConflict(err, apperror.NotAssigned))
	})

	t.Run("hr cannot release", func(t *testing.T) {
		asset := models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(8)}
		_, err := Release(asset, user(4, models.HRRole))
		assert.True(t, apperror.IsAuth(err, apperror.Forbidden))
	})
}

func TestAssignThenReleaseRestoresAsset(t *testing.T) {
	manager := user(1, models.AssetManagerRole)
	assignee := user(9, models.EmployeeRole)
	before := models.Asset{ID: 3, Name: "ThinkPad", Status: models.AssetAvailable, Condition: models.ConditionGood}

	assigned, err := Assign(before, manager, &assignee)
	require.NoError(t, err)
	released, err := Release(assigned.Asset, manager)
	require.NoError(t, err)

	assert.Equal(t, before, released.Asset)
	assert.Equal(t, models.ActionAssigned, assigned.History.Action)
	assert.Equal(t, models.ActionReleased, released.History.Action)
}

func TestRetire(t *testing.T) {
	admin := user(1, models.AdminRole)

	got, err := Retire(models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: ptr(7)}, admin)
	require.NoError(t, err)
	assert.Equal(t, models.AssetRetired, got.Asset.Status)
	assert.Nil(t, got.Asset.AssignedToUserID)
	assert.Equal(t, int64(7), *got.History.FromUserID)

	_, err = Retire(got.Asset, admin)
	assert.True(t, apperror.IsConflict(err, apperror.InvalidTransition))

	_, err = Retire(models.Asset{ID: 4, Status: models.AssetAvailable}, user(2, models.HRRole))
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))
}

func TestSetStatus(t *testing.T) {
	manager := user(1, models.AssetManagerRole)

	tests := []struct {
		name     string
		from     models.Asset
		target   models.AssetStatus
		checkErr func(error) bool
	}{
		{name: "available to maintenance", from: models.Asset{Status: models.AssetAvailable}, target: models.AssetUnderMaintenance},
		{name: "assigned to repair", from: models.Asset{Status: models.AssetAssigned, AssignedToUserID: ptr(7)}, target: models.AssetInRepair},
		{name: "maintenance back to available", from: models.Asset{Status: models.AssetUnderMaintenance}, target: models.AssetAvailable},
		{name: "repair to maintenance", from: models.Asset{Status: models.AssetInRepair}, target: models.AssetUnderMaintenance},
		{
			name:     "retired cannot be revived",
			from:     models.Asset{Status: models.AssetRetired},
			target:   models.AssetAvailable,
			checkErr: func(err error) bool { return apperror.IsConflict(err, apperror.InvalidTransition) },
		},
		{
			name:     "assigned requires assign",
			from:     models.Asset{Status: models.AssetUnderMaintenance},
			target:   models.AssetAssigned,
			checkErr: func(err error) bool { return apperror.IsConflict(err, apperror.InvalidTransition) },
		},
		{
			name:     "unknown status",
			from:     models.Asset{Status: models.AssetAvailable},
			target:   models.AssetStatus("Lost"),
			checkErr: func(err error) bool { return apperror.IsValidation(err, apperror.InvalidField) },
		},
		{
			name:     "same status",
			from:     models.Asset{Status: models.AssetAvailable},
			target:   models.AssetAvailable,
			checkErr: func(err error) bool { return apperror.IsConflict(err, apperror.InvalidTransition) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SetStatus(tc.from, manager, tc.target)
			if tc.checkErr != nil {
				require.Error(t, err)
				assert.True(t, tc.checkErr(err), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, got.Asset.Status)
			assert.Equal(t, models.ActionStatusChanged, got.History.Action)
			assert.Equal(t, tc.from.AssignedToUserID, got.History.FromUserID)
			assertAssignmentInvariant(t, got.Asset)
		})
	}
}

func TestAssignmentInvariantAcrossSequences(t *testing.T) {
	manager := user(1, models.AdminRole)
	a := user(7, models.EmployeeRole)
	b := user(8, models.EmployeeRole)
	asset := models.Asset{ID: 1, Status: models.AssetAvailable}

	steps := []func(models.Asset) (Transition, error){
		func(x models.Asset) (Transition, error) { return Assign(x, manager, &a) },
		func(x models.Asset) (Transition, error) { return Assign(x, manager, &b) },
		func(x models.Asset) (Transition, error) { return SetStatus(x, manager, models.AssetUnderMaintenance) },
		func(x models.Asset) (Transition, error) { return Release(x, manager) },
		func(x models.Asset) (Transition, error) { return SetStatus(x, manager, models.AssetAvailable) },
		func(x models.Asset) (Transition, error) { return Assign(x, manager, &b) },
		func(x models.Asset) (Transition, error) { return Release(x, user(8, models.EmployeeRole)) },
		func(x models.Asset) (Transition, error) { return Assign(x, manager, &a) },
		func(x models.Asset) (Transition, error) { return Retire(x, manager) },
		func(x models.Asset) (Transition, error) { return Assign(x, manager, &a) },
	}

	for _, step := range steps {
		next, err := step(asset)
		if err == nil {
			asset = next.Asset
		}
		assertAssignmentInvariant(t, asset)
	}
	assert.Equal(t, models.AssetRetired, asset.Status)
}
