package utils

import (
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/models"
)

// AssetValidityCheck covers the cross-field rules struct tags cannot express.
func AssetValidityCheck(purchaseDate, warrantyExpiration *time.Time, price *float64, condition models.AssetCondition) error {
	fields := map[string]string{}
	if purchaseDate != nil && purchaseDate.After(time.Now()) {
		fields["purchase_date"] = "purchase date cannot be in the future"
	}
	if purchaseDate != nil && warrantyExpiration != nil && warrantyExpiration.Before(*purchaseDate) {
		fields["warranty_expiration"] = "warranty cannot expire before the purchase date"
	}
	if price != nil && *price < 0 {
		fields["purchase_price"] = "purchase price cannot be negative"
	}
	if condition != "" && !condition.IsValid() {
		fields["condition"] = "must be one of Excellent, Good, Fair, Poor"
	}
	if len(fields) > 0 {
		return apperror.NewFieldValidation("invalid asset", fields)
	}
	return nil
}

func IsAllowedAttachment(filename string, allowed []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
