package assetservice

import (
	"time"

	"assetflow/models"
)

const dateLayout = "2006-01-02"

type CreateAssetReq struct {
	Name               string                `json:"name" validate:"required,max=100"`
	Description        *string               `json:"description,omitempty"`
	Category           string                `json:"category" validate:"required,max=50"`
	SerialNumber       string                `json:"serial_number" validate:"required,max=100"`
	PurchaseDate       *string               `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice      *float64              `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	WarrantyExpiration *string               `json:"warranty_expiration,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Condition          models.AssetCondition `json:"condition,omitempty"`
	Location           *string               `json:"location,omitempty"`
}

// UpdateAssetReq edits descriptive fields only. Status and assignment move
// through the lifecycle endpoints.
type UpdateAssetReq struct {
	Name               *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description        *string                `json:"description,omitempty"`
	Category           *string                `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	SerialNumber       *string                `json:"serial_number,omitempty" validate:"omitempty,min=1,max=100"`
	PurchaseDate       *string                `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice      *float64               `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	WarrantyExpiration *string                `json:"warranty_expiration,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Condition          *models.AssetCondition `json:"condition,omitempty"`
	Location           *string                `json:"location,omitempty"`
}

type AssignAssetReq struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type SetStatusReq struct {
	Status models.AssetStatus `json:"status" validate:"required"`
}

type AssetFilter struct {
	Category             string
	Statuses             []string
	AssignedTo           *int64
	Department           string
	PurchaseDateFrom     *time.Time
	PurchaseDateTo       *time.Time
	WarrantyExpiringDays *int
	Search               string
	IncludeDepreciation  bool
	Limit                int
	Offset               int
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
