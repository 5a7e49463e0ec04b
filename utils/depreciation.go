package utils

import (
	"math"
	"time"

	"assetflow/models"
)

const (
	UsefulLifeYears = 5
	salvageFraction = 0.1
	daysPerYear     = 365.25
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Depreciate applies straight-line depreciation over the useful life down to
// a 10% salvage value. It returns false when price or date is missing.
func Depreciate(price *float64, purchased *time.Time, now time.Time) (models.Depreciation, bool) {
	if price == nil || purchased == nil || *price <= 0 {
		return models.Depreciation{}, false
	}
	salvage := *price * salvageFraction
	annual := (*price - salvage) / UsefulLifeYears

	years := now.Sub(*purchased).Hours() / 24 / daysPerYear
	years = math.Max(0, math.Min(years, UsefulLifeYears))

	total := annual * years
	current := math.Max(*price-total, salvage)

	return models.Depreciation{
		PurchasePrice:     *price,
		CurrentValue:      round2(current),
		TotalDepreciation: round2(total),
		DepreciationRate:  round2(total / *price * 100),
		YearsElapsed:      round2(years),
		UsefulLifeYears:   UsefulLifeYears,
	}, true
}
