package client

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"assetflow/models"
)

const dateLayout = "2006-01-02"

type RegisterInput struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Department *string `json:"department,omitempty"`
}

type ProfileUpdate struct {
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
}

// AssetInput creates an asset. Dates are YYYY-MM-DD.
type AssetInput struct {
	Name               string                `json:"name"`
	Description        *string               `json:"description,omitempty"`
	Category           string                `json:"category"`
	SerialNumber       string                `json:"serial_number"`
	PurchaseDate       *string               `json:"purchase_date,omitempty"`
	PurchasePrice      *float64              `json:"purchase_price,omitempty"`
	WarrantyExpiration *string               `json:"warranty_expiration,omitempty"`
	Condition          models.AssetCondition `json:"condition,omitempty"`
	Location           *string               `json:"location,omitempty"`
}

// AssetUpdate edits descriptive fields. Nil fields are left alone.
type AssetUpdate struct {
	Name               *string                `json:"name,omitempty"`
	Description        *string                `json:"description,omitempty"`
	Category           *string                `json:"category,omitempty"`
	SerialNumber       *string                `json:"serial_number,omitempty"`
	PurchaseDate       *string                `json:"purchase_date,omitempty"`
	PurchasePrice      *float64               `json:"purchase_price,omitempty"`
	WarrantyExpiration *string                `json:"warranty_expiration,omitempty"`
	Condition          *models.AssetCondition `json:"condition,omitempty"`
	Location           *string                `json:"location,omitempty"`
}

type AssetQuery struct {
	Category             string
	Statuses             []models.AssetStatus
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

func (q AssetQuery) values() url.Values {
	v := url.Values{}
	setString(v, "category", q.Category)
	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = string(s)
		}
		v.Set("status", strings.Join(statuses, ","))
	}
	setID(v, "assigned_to", q.AssignedTo)
	setString(v, "department", q.Department)
	if q.PurchaseDateFrom != nil {
		v.Set("purchase_date_from", q.PurchaseDateFrom.Format(dateLayout))
	}
	if q.PurchaseDateTo != nil {
		v.Set("purchase_date_to", q.PurchaseDateTo.Format(dateLayout))
	}
	if q.WarrantyExpiringDays != nil {
		v.Set("warranty_expiring_days", strconv.Itoa(*q.WarrantyExpiringDays))
	}
	setString(v, "search", q.Search)
	if q.IncludeDepreciation {
		v.Set("include_depreciation", "true")
	}
	setPage(v, q.Limit, q.Offset)
	return v
}

type TicketInput struct {
	AssetID     int64                 `json:"asset_id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    models.TicketPriority `json:"priority,omitempty"`
}

type TicketUpdate struct {
	Title           *string                `json:"title,omitempty"`
	Description     *string                `json:"description,omitempty"`
	Priority        *models.TicketPriority `json:"priority,omitempty"`
	ResolutionNotes *string                `json:"resolution_notes,omitempty"`
}

type TicketQuery struct {
	Status     models.TicketStatus
	Priority   models.TicketPriority
	AssetID    *int64
	ReportedBy *int64
	AssignedTo *int64
	Limit      int
	Offset     int
}

func (q TicketQuery) values() url.Values {
	v := url.Values{}
	setString(v, "status", string(q.Status))
	setString(v, "priority", string(q.Priority))
	setID(v, "asset_id", q.AssetID)
	setID(v, "reported_by", q.ReportedBy)
	setID(v, "assigned_to", q.AssignedTo)
	setPage(v, q.Limit, q.Offset)
	return v
}

// Ticket is a maintenance ticket as the list and detail endpoints return it.
type Ticket struct {
	models.MaintenanceTicket
	AssetName        *string `json:"asset_name"`
	ReporterUsername *string `json:"reporter_username"`
	AssigneeUsername *string `json:"assignee_username"`
}

type UserUpdate struct {
	Role       *models.Role `json:"role,omitempty"`
	Department *string      `json:"department,omitempty"`
	Email      *string      `json:"email,omitempty"`
	IsActive   *bool        `json:"is_active,omitempty"`
}

type UserQuery struct {
	Role       models.Role
	Department string
	IsActive   *bool
	Search     string
	Limit      int
	Offset     int
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	setString(v, "role", string(q.Role))
	setString(v, "department", q.Department)
	if q.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*q.IsActive))
	}
	setString(v, "search", q.Search)
	setPage(v, q.Limit, q.Offset)
	return v
}

// LicenseInput creates a license. Dates are YYYY-MM-DD.
type LicenseInput struct {
	AssetID        *int64               `json:"asset_id,omitempty"`
	SoftwareName   string               `json:"software_name"`
	LicenseKey     *string              `json:"license_key,omitempty"`
	Vendor         *string              `json:"vendor,omitempty"`
	PurchaseDate   *string              `json:"purchase_date,omitempty"`
	ExpirationDate *string              `json:"expiration_date,omitempty"`
	Cost           *float64             `json:"cost,omitempty"`
	Seats          *int                 `json:"seats,omitempty"`
	Status         models.LicenseStatus `json:"status,omitempty"`
}

type LicenseUpdate struct {
	AssetID        *int64                `json:"asset_id,omitempty"`
	SoftwareName   *string               `json:"software_name,omitempty"`
	LicenseKey     *string               `json:"license_key,omitempty"`
	Vendor         *string               `json:"vendor,omitempty"`
	PurchaseDate   *string               `json:"purchase_date,omitempty"`
	ExpirationDate *string               `json:"expiration_date,omitempty"`
	Cost           *float64              `json:"cost,omitempty"`
	Seats          *int                  `json:"seats,omitempty"`
	Status         *models.LicenseStatus `json:"status,omitempty"`
}

type LicenseQuery struct {
	Status       models.LicenseStatus
	AssetID      *int64
	SoftwareName string
	Limit        int
	Offset       int
}

func (q LicenseQuery) values() url.Values {
	v := url.Values{}
	setString(v, "status", string(q.Status))
	setID(v, "asset_id", q.AssetID)
	setString(v, "software_name", q.SoftwareName)
	setPage(v, q.Limit, q.Offset)
	return v
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setID(v url.Values, key string, id *int64) {
	if id != nil {
		v.Set(key, strconv.FormatInt(*id, 10))
	}
}

func setPage(v url.Values, limit, offset int) {
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
}
