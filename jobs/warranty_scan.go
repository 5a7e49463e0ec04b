package jobs

import (
	"context"
	"fmt"

	"assetflow/models"
	"assetflow/providers"
	metricsprovider "assetflow/providers/metricsProvider"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WarrantySource lists assets whose warranty ends within the given number of days.
type WarrantySource interface {
	ListWarrantyExpiring(ctx context.Context, days int) ([]models.WarrantyExpiringAsset, error)
}

// LicenseSource lists active licenses that expire within the given number of days.
type LicenseSource interface {
	ListExpiring(ctx context.Context, days int) ([]models.LicenseResponse, error)
}

// WarrantyScanJob logs every asset whose warranty is about to lapse, and
// every license about to expire when Licenses is set.
type WarrantyScanJob struct {
	Source   WarrantySource
	Licenses LicenseSource
	Logger   providers.ZapLoggerProvider
	Metrics  *metricsprovider.Metrics
}

func NewWarrantyScanJob(source WarrantySource, logger providers.ZapLoggerProvider, metrics *metricsprovider.Metrics) *WarrantyScanJob {
	return &WarrantyScanJob{Source: source, Logger: logger, Metrics: metrics}
}

func (j *WarrantyScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	payload := WarrantyScanPayload{Days: defaultWarrantyWindow}
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			j.Metrics.ObserveJob(TaskAssetWarrantyScan, err)
			return fmt.Errorf("invalid warranty scan payload: %v: %w", err, asynq.SkipRetry)
		}
	}
	if payload.Days <= 0 {
		payload.Days = defaultWarrantyWindow
	}

	assets, err := j.Source.ListWarrantyExpiring(ctx, payload.Days)
	var licenses []models.LicenseResponse
	if err == nil && j.Licenses != nil {
		licenses, err = j.Licenses.ListExpiring(ctx, payload.Days)
	}
	j.Metrics.ObserveJob(TaskAssetWarrantyScan, err)
	if err != nil {
		return err
	}

	logger := j.Logger.GetLogger()
	for _, asset := range assets {
		fields := []zap.Field{
			zap.Int64("asset_id", asset.ID),
			zap.String("name", asset.Name),
			zap.String("serial_number", asset.SerialNumber),
			zap.Time("warranty_expiration", asset.WarrantyExpiration),
			zap.Int("days_until_expiry", asset.DaysUntilExpiry),
		}
		if asset.AssignedToUsername != nil {
			fields = append(fields, zap.String("assigned_to", *asset.AssignedToUsername))
		}
		logger.Warn("asset warranty expiring", fields...)
	}
	for _, license := range licenses {
		fields := []zap.Field{
			zap.Int64("license_id", license.ID),
			zap.String("software_name", license.SoftwareName),
			zap.String("status", string(license.Status)),
		}
		if license.ExpirationDate != nil {
			fields = append(fields, zap.Time("expiration_date", *license.ExpirationDate))
		}
		if license.DaysUntilExpiry != nil {
			fields = append(fields, zap.Int("days_until_expiry", *license.DaysUntilExpiry))
		}
		if license.AssetID != nil {
			fields = append(fields, zap.Int64("asset_id", *license.AssetID))
		}
		logger.Warn("license expiring", fields...)
	}
	logger.Info("warranty scan complete", zap.Int("window_days", payload.Days),
		zap.Int("expiring", len(assets)), zap.Int("licenses_expiring", len(licenses)))
	return nil
}
