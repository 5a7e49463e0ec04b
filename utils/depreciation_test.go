package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDepreciate(t *testing.T) {
	purchased := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 1000.0

	t.Run("missing inputs", func(t *testing.T) {
		_, ok := Depreciate(nil, &purchased, purchased)
		assert.False(t, ok)
		_, ok = Depreciate(&price, nil, purchased)
		assert.False(t, ok)
	})

	t.Run("on purchase day", func(t *testing.T) {
		d, ok := Depreciate(&price, &purchased, purchased)
		assert.True(t, ok)
		assert.Equal(t, 1000.0, d.CurrentValue)
		assert.Equal(t, 0.0, d.TotalDepreciation)
		assert.Equal(t, UsefulLifeYears, d.UsefulLifeYears)
	})

	t.Run("half way", func(t *testing.T) {
		now := purchased.Add(time.Duration(2.5 * daysPerYear * 24 * float64(time.Hour)))
		d, ok := Depreciate(&price, &purchased, now)
		assert.True(t, ok)
		assert.Equal(t, 2.5, d.YearsElapsed)
		assert.Equal(t, 450.0, d.TotalDepreciation)
		assert.Equal(t, 550.0, d.CurrentValue)
		assert.Equal(t, 45.0, d.DepreciationRate)
	})

	t.Run("floors at salvage", func(t *testing.T) {
		d, ok := Depreciate(&price, &purchased, purchased.AddDate(9, 0, 0))
		assert.True(t, ok)
		assert.Equal(t, 5.0, d.YearsElapsed)
		assert.Equal(t, 100.0, d.CurrentValue)
		assert.Equal(t, 900.0, d.TotalDepreciation)
	})
}
