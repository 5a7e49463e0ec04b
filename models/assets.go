package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type AssetStatus string

const (
	AssetAvailable        AssetStatus = "Available"
	AssetAssigned         AssetStatus = "Assigned"
	AssetUnderMaintenance AssetStatus = "Under Maintenance"
	AssetInRepair         AssetStatus = "In Repair"
	AssetRetired          AssetStatus = "Retired"
)

var AssetStatuses = []AssetStatus{AssetAvailable, AssetAssigned, AssetUnderMaintenance, AssetInRepair, AssetRetired}

func (s AssetStatus) IsValid() bool {
	for _, status := range AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type AssetCondition string

const (
	ConditionExcellent AssetCondition = "Excellent"
	ConditionGood      AssetCondition = "Good"
	ConditionFair      AssetCondition = "Fair"
	ConditionPoor      AssetCondition = "Poor"
)

func (c AssetCondition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type Asset struct {
	ID                 int64          `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	Description        *string        `json:"description" db:"description"`
	Category           string         `json:"category" db:"category"`
	SerialNumber       string         `json:"serial_number" db:"serial_number"`
	PurchaseDate       *time.Time     `json:"purchase_date" db:"purchase_date"`
	PurchasePrice      *float64       `json:"purchase_price" db:"purchase_price"`
	WarrantyExpiration *time.Time     `json:"warranty_expiration" db:"warranty_expiration"`
	Status             AssetStatus    `json:"status" db:"status"`
	Condition          AssetCondition `json:"condition" db:"condition"`
	AssignedToUserID   *int64         `json:"assigned_to_user_id" db:"assigned_to_user_id"`
	Location           *string        `json:"location" db:"location"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`
}

type HistoryAction string

const (
	ActionCreated       HistoryAction = "created"
	ActionUpdated       HistoryAction = "updated"
	ActionAssigned      HistoryAction = "assigned"
	ActionReleased      HistoryAction = "released"
	ActionRetired       HistoryAction = "retired"
	ActionStatusChanged HistoryAction = "status_changed"
	ActionDeleted       HistoryAction = "deleted"
)

// AssetHistoryEntry is append-only; rows are never updated or deleted.
type AssetHistoryEntry struct {
	ID                int64          `json:"id" db:"id"`
	AssetID           int64          `json:"asset_id" db:"asset_id"`
	Action            HistoryAction  `json:"action" db:"action"`
	Details           string         `json:"details" db:"details"`
	PerformedByUserID int64          `json:"performed_by_user_id" db:"performed_by_user_id"`
	FromUserID        *int64         `json:"from_user_id" db:"from_user_id"`
	ToUserID          *int64         `json:"to_user_id" db:"to_user_id"`
	Metadata          types.JSONText `json:"metadata" db:"metadata"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
}
