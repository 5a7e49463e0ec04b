package policy

import (
	"testing"

	"assetflow/models"

	"github.com/stretchr/testify/assert"
)

func identity(id int64, role models.Role) models.Identity {
	return models.Identity{ID: id, Username: "u", Role: role, IsActive: true}
}

func int64Ptr(v int64) *int64 { return &v }

func TestCanDecisionTable(t *testing.T) {
	roles := []models.Role{models.AdminRole, models.AssetManagerRole, models.HRRole, models.EmployeeRole}
	// expected grants per role, in the order of roles above
	tests := []struct {
		action Action
		want   [4]Grant
	}{
		{ViewAsset, [4]Grant{Allow, Allow, Allow, OwnOnly}},
		{CreateAsset, [4]Grant{Allow, Allow, Deny, Deny}},
		{EditAsset, [4]Grant{Allow, Allow, Deny, Deny}},
		{DeleteAsset, [4]Grant{Allow, Allow, Deny, Deny}},
		{AssignAsset, [4]Grant{Allow, Allow, Deny, Deny}},
		{ReleaseAsset, [4]Grant{Allow, Allow, Deny, OwnOnly}},
		{ViewUsers, [4]Grant{Allow, Deny, Deny, Deny}},
		{ManageUsers, [4]Grant{Allow, Deny, Deny, Deny}},
		{ViewActivityLog, [4]Grant{Allow, Allow, Deny, Deny}},
		{CreateTicket, [4]Grant{Allow, Allow, Allow, OwnOnly}},
		{ChangeTicketStatus, [4]Grant{Allow, Allow, Deny, Deny}},
		{ChangeTicketAssignment, [4]Grant{Allow, Allow, Deny, Deny}},
		{DeleteTicket, [4]Grant{Allow, Allow, Deny, Deny}},
		{ViewLicense, [4]Grant{Allow, Allow, Allow, Allow}},
		{ManageLicense, [4]Grant{Allow, Allow, Deny, Deny}},
		{Logout, [4]Grant{Allow, Allow, Allow, Allow}},
	}

	for _, tc := range tests {
		for i, role := range roles {
			t.Run(string(tc.action)+"/"+string(role), func(t *testing.T) {
				self := identity(7, role)
				own := Can(self, tc.action, OwnedBy(7))
				other := Can(self, tc.action, OwnedBy(9))

				switch tc.want[i] {
				case Allow:
					assert.True(t, own.Allowed)
					assert.True(t, other.Allowed)
				case OwnOnly:
					assert.True(t, own.Allowed)
					assert.False(t, other.Allowed)
				case Deny:
					assert.False(t, own.Allowed)
					assert.False(t, other.Allowed)
				}
			})
		}
	}
}

func TestCanOwnershipRequiresOwner(t *testing.T) {
	employee := identity(7, models.EmployeeRole)

	unassigned := models.Asset{ID: 3, Status: models.AssetAvailable}
	assert.False(t, Can(employee, ReleaseAsset, AssetResource(unassigned)).Allowed)

	mine := models.Asset{ID: 3, Status: models.AssetAssigned, AssignedToUserID: int64Ptr(7)}
	assert.True(t, Can(employee, ReleaseAsset, AssetResource(mine)).Allowed)
}

func TestEmployeeNeverReachesForeignAssets(t *testing.T) {
	employee := identity(7, models.EmployeeRole)
	fixture := []models.Asset{
		{ID: 1, Status: models.AssetAvailable},
		{ID: 2, Status: models.AssetAssigned, AssignedToUserID: int64Ptr(7)},
		{ID: 3, Status: models.AssetAssigned, AssignedToUserID: int64Ptr(8)},
		{ID: 4, Status: models.AssetUnderMaintenance},
		{ID: 5, Status: models.AssetAssigned, AssignedToUserID: int64Ptr(70)},
		{ID: 6, Status: models.AssetRetired},
	}
	actions := []Action{ViewAsset, EditAsset, DeleteAsset, AssignAsset, ReleaseAsset, RetireAsset, ChangeAssetStatus, CreateTicket}

	for _, asset := range fixture {
		owned := asset.AssignedToUserID != nil && *asset.AssignedToUserID == employee.ID
		for _, action := range actions {
			decision := Can(employee, action, AssetResource(asset))
			if !owned {
				assert.False(t, decision.Allowed, "asset %d action %s", asset.ID, action)
			}
		}
	}
}

func TestCanInactiveIdentity(t *testing.T) {
	admin := identity(1, models.AdminRole)
	admin.IsActive = false

	for action := range table {
		decision := Can(admin, action, OwnedBy(1))
		if action == Logout {
			assert.True(t, decision.Allowed)
			continue
		}
		assert.False(t, decision.Allowed, string(action))
		assert.Equal(t, "identity is inactive", decision.Reason)
	}
}

func TestCanScopedWithoutResource(t *testing.T) {
	decision := Can(identity(7, models.EmployeeRole), ViewAsset, nil)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.Scoped)

	decision = Can(identity(1, models.HRRole), ViewAsset, nil)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.Scoped)

	assert.False(t, Allowed(identity(7, models.EmployeeRole), ReleaseAsset, nil))
}

func TestCanUnknownRoleAndAction(t *testing.T) {
	assert.False(t, Can(identity(1, models.Role("Contractor")), ViewAsset, nil).Allowed)
	assert.False(t, Can(identity(1, models.AdminRole), Action("asset.teleport"), nil).Allowed)
}

func TestHRCannotAssign(t *testing.T) {
	decision := Can(identity(4, models.HRRole), AssignAsset, AssetResource(models.Asset{ID: 3, Status: models.AssetAvailable}))
	assert.False(t, decision.Allowed)
	assert.Equal(t, "HR may not asset.assign", decision.Reason)
	assert.False(t, RoleMay(models.HRRole, AssignAsset))
	assert.True(t, RoleMay(models.EmployeeRole, ReleaseAsset))
}
