// Package lifecycle holds the asset and ticket state machines. Functions take
// the current record by value and return the next one, so a rejected
// transition leaves the caller's copy untouched.
package lifecycle

import (
	"fmt"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"

	"github.com/jmoiron/sqlx/types"
	jsoniter "github.com/json-iterator/go"
)

// Transition is the next asset state plus the history entry recording it.
type Transition struct {
	Asset   models.Asset
	History models.AssetHistoryEntry
}

func authorize(actor models.Identity, action policy.Action, resource *policy.Resource) error {
	decision := policy.Can(actor, action, resource)
	if !decision.Allowed {
		return apperror.NewAuth(apperror.Forbidden, decision.Reason)
	}
	return nil
}

func metadata(fields map[string]interface{}) types.JSONText {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(fields)
	if err != nil {
		return types.JSONText("{}")
	}
	return types.JSONText(raw)
}

func entry(asset models.Asset, actor models.Identity, action models.HistoryAction, details string) models.AssetHistoryEntry {
	return models.AssetHistoryEntry{
		AssetID:           asset.ID,
		Action:            action,
		Details:           details,
		PerformedByUserID: actor.ID,
	}
}

// Assign binds an Available asset to an active assignee. A nil assignee means
// the user does not exist.
func Assign(asset models.Asset, actor models.Identity, assignee *models.Identity) (Transition, error) {
	if err := authorize(actor, policy.AssignAsset, policy.AssetResource(asset)); err != nil {
		return Transition{}, err
	}
	switch asset.Status {
	case models.AssetAvailable:
	case models.AssetAssigned:
		return Transition{}, apperror.NewConflict(apperror.AlreadyAssigned, "asset is already assigned, release it first")
	default:
		return Transition{}, apperror.NewConflict(apperror.InvalidTransition,
			fmt.Sprintf("cannot assign an asset with status %s", asset.Status))
	}
	if assignee == nil {
		return Transition{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee does not exist")
	}
	if !assignee.IsActive {
		return Transition{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee is not active")
	}

	next := asset
	userID := assignee.ID
	next.Status = models.AssetAssigned
	next.AssignedToUserID = &userID

	history := entry(asset, actor, models.ActionAssigned, fmt.Sprintf("Asset assigned to %s", assignee.Username))
	history.ToUserID = &userID
	history.Metadata = metadata(map[string]interface{}{"from_status": asset.Status, "to_status": next.Status})
	return Transition{Asset: next, History: history}, nil
}

// Release returns an Assigned asset to the pool.
func Release(asset models.Asset, actor models.Identity) (Transition, error) {
	if err := authorize(actor, policy.ReleaseAsset, policy.AssetResource(asset)); err != nil {
		return Transition{}, err
	}
	if asset.Status != models.AssetAssigned || asset.AssignedToUserID == nil {
		return Transition{}, apperror.NewConflict(apperror.NotAssigned, "asset is not assigned")
	}

	previous := *asset.AssignedToUserID
	next := asset
	next.Status = models.AssetAvailable
	next.AssignedToUserID = nil

	history := entry(asset, actor, models.ActionReleased, "Asset released")
	history.FromUserID = &previous
	history.Metadata = metadata(map[string]interface{}{"from_status": asset.Status, "to_status": next.Status})
	return Transition{Asset: next, History: history}, nil
}

// Retire takes an asset out of service from any state, releasing it first
// when it is assigned.
func Retire(asset models.Asset, actor models.Identity) (Transition, error) {
	if err := authorize(actor, policy.RetireAsset, policy.AssetResource(asset)); err != nil {
		return Transition{}, err
	}
	if asset.Status == models.AssetRetired {
		return Transition{}, apperror.NewConflict(apperror.InvalidTransition, "asset is already retired")
	}

	next := asset
	next.Status = models.AssetRetired
	next.AssignedToUserID = nil

	history := entry(asset, actor, models.ActionRetired, "Asset retired")
	history.FromUserID = asset.AssignedToUserID
	history.Metadata = metadata(map[string]interface{}{"from_status": asset.Status, "to_status": next.Status})
	return Transition{Asset: next, History: history}, nil
}

var maintenanceMoves = map[models.AssetStatus][]models.AssetStatus{
	models.AssetAvailable:        {models.AssetUnderMaintenance, models.AssetInRepair},
	models.AssetAssigned:         {models.AssetUnderMaintenance, models.AssetInRepair},
	models.AssetUnderMaintenance: {models.AssetAvailable, models.AssetInRepair},
	models.AssetInRepair:         {models.AssetAvailable, models.AssetUnderMaintenance},
}

// SetStatus performs the administrative moves in and out of maintenance.
// Leaving Assigned drops the assignment so the asset never carries an
// assignee outside the Assigned state.
func SetStatus(asset models.Asset, actor models.Identity, target models.AssetStatus) (Transition, error) {
	if err := authorize(actor, policy.ChangeAssetStatus, policy.AssetResource(asset)); err != nil {
		return Transition{}, err
	}
	if !target.IsValid() {
		return Transition{}, apperror.NewFieldValidation("invalid status", map[string]string{"status": "must be one of Available, Under Maintenance, In Repair"})
	}
	switch target {
	case models.AssetAssigned:
		return Transition{}, apperror.NewConflict(apperror.InvalidTransition, "use assign to give an asset to a user")
	case models.AssetRetired:
		return Transition{}, apperror.NewConflict(apperror.InvalidTransition, "use retire to take an asset out of service")
	}
	allowed := false
	for _, s := range maintenanceMoves[asset.Status] {
		if s == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return Transition{}, apperror.NewConflict(apperror.InvalidTransition,
			fmt.Sprintf("cannot move asset from %s to %s", asset.Status, target))
	}

	next := asset
	next.Status = target
	next.AssignedToUserID = nil

	history := entry(asset, actor, models.ActionStatusChanged, fmt.Sprintf("Status changed from %s to %s", asset.Status, target))
	history.FromUserID = asset.AssignedToUserID
	history.Metadata = metadata(map[string]interface{}{"from_status": asset.Status, "to_status": target})
	return Transition{Asset: next, History: history}, nil
}
