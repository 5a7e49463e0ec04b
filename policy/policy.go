// Package policy decides which identity may perform which action on which
// resource. The same table gates the client UI and the server routes; only
// the server's decision is authoritative.
package policy

import (
	"fmt"

	"assetflow/models"
)

type Action string

const (
	ViewAsset              Action = "asset.view"
	CreateAsset            Action = "asset.create"
	EditAsset              Action = "asset.edit"
	DeleteAsset            Action = "asset.delete"
	AssignAsset            Action = "asset.assign"
	ReleaseAsset           Action = "asset.release"
	RetireAsset            Action = "asset.retire"
	ChangeAssetStatus      Action = "asset.status"
	ExportAssets           Action = "asset.export"
	ViewUsers              Action = "user.view"
	ManageUsers            Action = "user.manage"
	ViewActivityLog        Action = "activity.view"
	ViewDashboard          Action = "dashboard.view"
	CreateTicket           Action = "ticket.create"
	ViewTicket             Action = "ticket.view"
	UpdateTicket           Action = "ticket.update"
	ChangeTicketStatus     Action = "ticket.status"
	ChangeTicketAssignment Action = "ticket.assign"
	UploadTicketAttachment Action = "ticket.upload"
	DeleteTicket           Action = "ticket.delete"
	ViewLicense            Action = "license.view"
	ManageLicense          Action = "license.manage"
	Logout                 Action = "session.logout"
)

// Grant is what a role holds for one action.
type Grant int

const (
	Deny Grant = iota
	Allow
	// OwnOnly allows the action when the resource belongs to the caller.
	OwnOnly
)

type rolePolicy map[models.Role]Grant

var (
	managers  = rolePolicy{models.AdminRole: Allow, models.AssetManagerRole: Allow}
	adminOnly = rolePolicy{models.AdminRole: Allow}
	everyone  = rolePolicy{models.AdminRole: Allow, models.AssetManagerRole: Allow, models.HRRole: Allow, models.EmployeeRole: Allow}
)

var staffOrOwner = rolePolicy{
	models.AdminRole:        Allow,
	models.AssetManagerRole: Allow,
	models.HRRole:           Allow,
	models.EmployeeRole:     OwnOnly,
}

var table = map[Action]rolePolicy{
	ViewAsset:   staffOrOwner,
	CreateAsset: managers,
	EditAsset:   managers,
	DeleteAsset: managers,
	AssignAsset: managers,
	ReleaseAsset: {
		models.AdminRole:        Allow,
		models.AssetManagerRole: Allow,
		models.EmployeeRole:     OwnOnly,
	},
	RetireAsset:       managers,
	ChangeAssetStatus: managers,
	ExportAssets: {
		models.AdminRole:        Allow,
		models.AssetManagerRole: Allow,
		models.HRRole:           Allow,
	},
	ViewUsers:              adminOnly,
	ManageUsers:            adminOnly,
	ViewActivityLog:        managers,
	ViewDashboard:          everyone,
	CreateTicket:           staffOrOwner,
	ViewTicket:             staffOrOwner,
	UpdateTicket:           managers,
	ChangeTicketStatus:     managers,
	ChangeTicketAssignment: managers,
	UploadTicketAttachment: staffOrOwner,
	DeleteTicket:           managers,
	ViewLicense:            everyone,
	ManageLicense:          managers,
	Logout:                 everyone,
}

// Resource describes the object an action targets. OwnerID is the asset
// assignee for assets, the reporter for tickets and the user itself for
// user-scoped reads. A nil Resource means the action is not scoped to one object.
type Resource struct {
	OwnerID *int64
}

func AssetResource(a models.Asset) *Resource {
	return &Resource{OwnerID: a.AssignedToUserID}
}

func TicketResource(t models.MaintenanceTicket) *Resource {
	owner := t.ReportedByUserID
	return &Resource{OwnerID: &owner}
}

func OwnedBy(userID int64) *Resource {
	return &Resource{OwnerID: &userID}
}

type Decision struct {
	Allowed bool
	// Scoped is set when the grant only covers the caller's own resources.
	Scoped bool
	Reason string
}

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Reason: reason} }

// Can evaluates the decision table. Without a resource, an OwnOnly grant is
// reported as allowed but Scoped, so list endpoints can narrow their query to
// the caller instead of refusing outright.
func Can(identity models.Identity, action Action, resource *Resource) Decision {
	if !identity.IsActive && action != Logout {
		return deny("identity is inactive")
	}
	roles, ok := table[action]
	if !ok {
		return deny(fmt.Sprintf("unknown action %q", action))
	}
	switch roles[identity.Role] {
	case Allow:
		return allow(fmt.Sprintf("%s may %s", identity.Role, action))
	case OwnOnly:
		if resource == nil {
			return Decision{Allowed: true, Scoped: true, Reason: "limited to own resources"}
		}
		if resource.OwnerID == nil || *resource.OwnerID != identity.ID {
			return deny(fmt.Sprintf("%s may only %s own resources", identity.Role, action))
		}
		return allow("resource owned by caller")
	default:
		return deny(fmt.Sprintf("%s may not %s", identity.Role, action))
	}
}

// Allowed is a shorthand for Can(...).Allowed on a concrete resource.
func Allowed(identity models.Identity, action Action, resource *Resource) bool {
	if resource == nil {
		resource = &Resource{}
	}
	return Can(identity, action, resource).Allowed
}

// RoleMay reports whether the role holds any grant for the action. Used to
// gate routes before the resource is loaded.
func RoleMay(role models.Role, action Action) bool {
	return table[action][role] != Deny
}
