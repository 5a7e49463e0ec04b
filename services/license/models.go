package licenseservice

import (
	"time"

	"assetflow/models"
)

const (
	dateLayout          = "2006-01-02"
	defaultExpiryWindow = 30
)

type CreateLicenseReq struct {
	AssetID        *int64               `json:"asset_id,omitempty" validate:"omitempty,gt=0"`
	SoftwareName   string               `json:"software_name" validate:"required,max=100"`
	LicenseKey     *string              `json:"license_key,omitempty" validate:"omitempty,max=255"`
	Vendor         *string              `json:"vendor,omitempty" validate:"omitempty,max=100"`
	PurchaseDate   *string              `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate *string              `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Cost           *float64             `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Seats          *int                 `json:"seats,omitempty" validate:"omitempty,gte=1"`
	Status         models.LicenseStatus `json:"status,omitempty"`
}

type UpdateLicenseReq struct {
	AssetID        *int64                `json:"asset_id,omitempty" validate:"omitempty,gt=0"`
	SoftwareName   *string               `json:"software_name,omitempty" validate:"omitempty,min=1,max=100"`
	LicenseKey     *string               `json:"license_key,omitempty" validate:"omitempty,max=255"`
	Vendor         *string               `json:"vendor,omitempty" validate:"omitempty,max=100"`
	PurchaseDate   *string               `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate *string               `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Cost           *float64              `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Seats          *int                  `json:"seats,omitempty" validate:"omitempty,gte=1"`
	Status         *models.LicenseStatus `json:"status,omitempty"`
}

type LicenseFilter struct {
	Status       string
	AssetID      *int64
	SoftwareName string
	Limit        int
	Offset       int
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
