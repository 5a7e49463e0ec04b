package models

import "time"

type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "Active"
	LicenseExpired   LicenseStatus = "Expired"
	LicenseCancelled LicenseStatus = "Cancelled"
)

func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseActive, LicenseExpired, LicenseCancelled:
		return true
	}
	return false
}

// License is a software license, optionally installed on one asset.
type License struct {
	ID             int64         `json:"id" db:"id"`
	AssetID        *int64        `json:"asset_id" db:"asset_id"`
	SoftwareName   string        `json:"software_name" db:"software_name"`
	LicenseKey     *string       `json:"license_key" db:"license_key"`
	Vendor         *string       `json:"vendor" db:"vendor"`
	PurchaseDate   *time.Time    `json:"purchase_date" db:"purchase_date"`
	ExpirationDate *time.Time    `json:"expiration_date" db:"expiration_date"`
	Cost           *float64      `json:"cost" db:"cost"`
	Seats          int           `json:"seats" db:"seats"`
	Status         LicenseStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

type LicenseResponse struct {
	License
	AssetName         *string `json:"asset_name,omitempty" db:"asset_name"`
	AssetSerialNumber *string `json:"asset_serial_number,omitempty" db:"asset_serial_number"`
	DaysUntilExpiry   *int    `json:"days_until_expiry,omitempty" db:"days_until_expiry"`
}
