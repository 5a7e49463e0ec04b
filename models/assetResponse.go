package models

type Depreciation struct {
	PurchasePrice     float64 `json:"purchase_price"`
	CurrentValue      float64 `json:"current_value"`
	TotalDepreciation float64 `json:"total_depreciation"`
	DepreciationRate  float64 `json:"depreciation_rate"`
	YearsElapsed      float64 `json:"years_elapsed"`
	UsefulLifeYears   int     `json:"useful_life_years"`
}

// AssetResponse is an asset enriched with read-side data for list and detail views.
type AssetResponse struct {
	Asset
	AssignedToUsername *string       `json:"assigned_to_username,omitempty" db:"assigned_to_username"`
	Depreciation       *Depreciation `json:"depreciation,omitempty" db:"-"`
}

// AssetHistoryResponse is a history entry with the usernames it refers to.
type AssetHistoryResponse struct {
	AssetHistoryEntry
	PerformedBy *string `json:"performed_by" db:"performed_by"`
	FromUser    *string `json:"from_user" db:"from_user"`
	ToUser      *string `json:"to_user" db:"to_user"`
}
