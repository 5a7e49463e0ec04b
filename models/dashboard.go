package models

import "time"

type AssetStats struct {
	Total            int     `json:"total" db:"total"`
	Available        int     `json:"available" db:"available"`
	Assigned         int     `json:"assigned" db:"assigned"`
	UnderMaintenance int     `json:"under_maintenance" db:"under_maintenance"`
	InRepair         int     `json:"in_repair" db:"in_repair"`
	Retired          int     `json:"retired" db:"retired"`
	TotalValue       float64 `json:"total_value" db:"total_value"`
}

type MaintenanceStats struct {
	Total    int `json:"total" db:"total"`
	Open     int `json:"open" db:"open"`
	Resolved int `json:"resolved" db:"resolved"`
}

type UserStats struct {
	Total  int `json:"total" db:"total"`
	Active int `json:"active" db:"active"`
}

type LicenseStats struct {
	Total   int `json:"total" db:"total"`
	Active  int `json:"active" db:"active"`
	Expired int `json:"expired" db:"expired"`
}

type DashboardStats struct {
	Assets      AssetStats       `json:"assets"`
	Maintenance MaintenanceStats `json:"maintenance"`
	Users       UserStats        `json:"users"`
	Licenses    LicenseStats     `json:"licenses"`
}

type GroupCount struct {
	Label string `json:"label" db:"label"`
	Count int    `json:"count" db:"count"`
}

type WarrantyExpiringAsset struct {
	ID                 int64     `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	SerialNumber       string    `json:"serial_number" db:"serial_number"`
	Category           string    `json:"category" db:"category"`
	WarrantyExpiration time.Time `json:"warranty_expiration" db:"warranty_expiration"`
	DaysUntilExpiry    int       `json:"days_until_expiry" db:"days_until_expiry"`
	AssignedToUsername *string   `json:"assigned_to_username" db:"assigned_to_username"`
}

type RecentActivity struct {
	AssetHistoryEntry
	AssetName           *string `json:"asset_name" db:"asset_name"`
	PerformedByUsername *string `json:"performed_by_username" db:"performed_by_username"`
}

type MaintenanceBreakdown struct {
	ByStatus            []GroupCount `json:"by_status"`
	ByPriority          []GroupCount `json:"by_priority"`
	AvgResolutionHours  float64      `json:"avg_resolution_hours"`
	RecentTickets30Days int          `json:"recent_tickets_30days"`
}

type CategoryValue struct {
	Category          string  `json:"category"`
	Count             int     `json:"count"`
	PurchaseValue     float64 `json:"purchase_value"`
	CurrentValue      float64 `json:"current_value"`
	TotalDepreciation float64 `json:"total_depreciation"`
}

type AssetValueSummary struct {
	TotalPurchaseValue float64         `json:"total_purchase_value"`
	TotalCurrentValue  float64         `json:"total_current_value"`
	TotalDepreciation  float64         `json:"total_depreciation"`
	ByCategory         []CategoryValue `json:"by_category"`
}

type MonthlyCount struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}
