package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"assetflow/models"
	"assetflow/policy"
)

type licenseEnvelope struct {
	Message string         `json:"message"`
	License models.License `json:"license"`
}

func licensePath(id int64) string {
	return fmt.Sprintf("/licenses/%d", id)
}

func (s *Session) ListLicenses(ctx context.Context, q LicenseQuery) ([]models.LicenseResponse, error) {
	if err := s.precheck(policy.ViewLicense, nil); err != nil {
		return nil, err
	}
	licenses := []models.LicenseResponse{}
	if err := s.getJSON(ctx, "/licenses/", q.values(), &licenses); err != nil {
		return nil, err
	}
	return licenses, nil
}

func (s *Session) GetLicense(ctx context.Context, id int64) (models.LicenseResponse, error) {
	if err := s.precheck(policy.ViewLicense, nil); err != nil {
		return models.LicenseResponse{}, err
	}
	var license models.LicenseResponse
	if err := s.getJSON(ctx, licensePath(id), nil, &license); err != nil {
		return models.LicenseResponse{}, err
	}
	return license, nil
}

// ExpiringLicenses lists active licenses that expire within days. A
// non-positive days leaves the window to the server default.
func (s *Session) ExpiringLicenses(ctx context.Context, days int) ([]models.LicenseResponse, error) {
	if err := s.precheck(policy.ViewLicense, nil); err != nil {
		return nil, err
	}
	var query url.Values
	if days > 0 {
		query = url.Values{"days": {strconv.Itoa(days)}}
	}
	licenses := []models.LicenseResponse{}
	if err := s.getJSON(ctx, "/licenses/expiring", query, &licenses); err != nil {
		return nil, err
	}
	return licenses, nil
}

func (s *Session) CreateLicense(ctx context.Context, in LicenseInput) (models.License, error) {
	return s.mutateLicense(ctx, http.MethodPost, "/licenses/", in)
}

func (s *Session) UpdateLicense(ctx context.Context, id int64, in LicenseUpdate) (models.License, error) {
	return s.mutateLicense(ctx, http.MethodPut, licensePath(id), in)
}

func (s *Session) DeleteLicense(ctx context.Context, id int64) error {
	if err := s.precheck(policy.ManageLicense, nil); err != nil {
		return err
	}
	return s.call(ctx, request{method: http.MethodDelete, path: licensePath(id)}, nil)
}

func (s *Session) mutateLicense(ctx context.Context, method, path string, payload interface{}) (models.License, error) {
	if err := s.precheck(policy.ManageLicense, nil); err != nil {
		return models.License{}, err
	}
	var out licenseEnvelope
	if err := s.sendJSON(ctx, method, path, payload, &out); err != nil {
		return models.License{}, err
	}
	return out.License, nil
}
