package client

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"assetflow/models"
	"assetflow/policy"
)

type assetEnvelope struct {
	Message string               `json:"message"`
	Asset   models.AssetResponse `json:"asset"`
}

func assetPath(id int64, suffix string) string {
	return fmt.Sprintf("/assets/%d%s", id, suffix)
}

// ListAssets returns the assets visible to the caller. Employees only ever
// see their own assignments; the server narrows the query for them.
func (s *Session) ListAssets(ctx context.Context, q AssetQuery) ([]models.AssetResponse, error) {
	if err := s.precheck(policy.ViewAsset, nil); err != nil {
		return nil, err
	}
	assets := []models.AssetResponse{}
	if err := s.getJSON(ctx, "/assets/", q.values(), &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Session) GetAsset(ctx context.Context, id int64, includeDepreciation bool) (models.AssetResponse, error) {
	if err := s.precheck(policy.ViewAsset, nil); err != nil {
		return models.AssetResponse{}, err
	}
	var query url.Values
	if includeDepreciation {
		query = url.Values{"include_depreciation": {"true"}}
	}
	var asset models.AssetResponse
	if err := s.getJSON(ctx, assetPath(id, ""), query, &asset); err != nil {
		return models.AssetResponse{}, err
	}
	return asset, nil
}

func (s *Session) CreateAsset(ctx context.Context, in AssetInput) (models.AssetResponse, error) {
	return s.mutateAsset(ctx, policy.CreateAsset, nil, http.MethodPost, "/assets/", in)
}

func (s *Session) UpdateAsset(ctx context.Context, id int64, in AssetUpdate) (models.AssetResponse, error) {
	return s.mutateAsset(ctx, policy.EditAsset, nil, http.MethodPut, assetPath(id, ""), in)
}

func (s *Session) DeleteAsset(ctx context.Context, id int64) error {
	if err := s.precheck(policy.DeleteAsset, nil); err != nil {
		return err
	}
	return s.call(ctx, request{method: http.MethodDelete, path: assetPath(id, "")}, nil)
}

func (s *Session) AssignAsset(ctx context.Context, id, userID int64) (models.AssetResponse, error) {
	return s.mutateAsset(ctx, policy.AssignAsset, nil, http.MethodPost, assetPath(id, "/assign"), map[string]int64{"user_id": userID})
}

// ReleaseAsset returns an asset to the pool. Pass the asset when it is at
// hand so an employee's ownership can be checked before the request.
func (s *Session) ReleaseAsset(ctx context.Context, id int64, known *models.Asset) (models.AssetResponse, error) {
	var resource *policy.Resource
	if known != nil {
		resource = policy.AssetResource(*known)
	}
	return s.mutateAsset(ctx, policy.ReleaseAsset, resource, http.MethodPost, assetPath(id, "/release"), nil)
}

func (s *Session) RetireAsset(ctx context.Context, id int64) (models.AssetResponse, error) {
	return s.mutateAsset(ctx, policy.RetireAsset, nil, http.MethodPost, assetPath(id, "/retire"), nil)
}

func (s *Session) SetAssetStatus(ctx context.Context, id int64, status models.AssetStatus) (models.AssetResponse, error) {
	return s.mutateAsset(ctx, policy.ChangeAssetStatus, nil, http.MethodPut, assetPath(id, "/status"), map[string]models.AssetStatus{"status": status})
}

func (s *Session) mutateAsset(ctx context.Context, action policy.Action, resource *policy.Resource, method, path string, payload interface{}) (models.AssetResponse, error) {
	if err := s.precheck(action, resource); err != nil {
		return models.AssetResponse{}, err
	}
	var out assetEnvelope
	if err := s.sendJSON(ctx, method, path, payload, &out); err != nil {
		return models.AssetResponse{}, err
	}
	return out.Asset, nil
}

func (s *Session) AssetHistory(ctx context.Context, id int64) ([]models.AssetHistoryResponse, error) {
	if err := s.precheck(policy.ViewAsset, nil); err != nil {
		return nil, err
	}
	history := []models.AssetHistoryResponse{}
	if err := s.getJSON(ctx, assetPath(id, "/history"), nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *Session) AssetDepreciation(ctx context.Context, id int64) (models.Depreciation, error) {
	if err := s.precheck(policy.ViewAsset, nil); err != nil {
		return models.Depreciation{}, err
	}
	var d models.Depreciation
	if err := s.getJSON(ctx, assetPath(id, "/depreciation"), nil, &d); err != nil {
		return models.Depreciation{}, err
	}
	return d, nil
}

// ExportAssets streams the CSV export into w and returns the file name the
// server suggested.
func (s *Session) ExportAssets(ctx context.Context, q AssetQuery, w io.Writer) (string, error) {
	if err := s.precheck(policy.ExportAssets, nil); err != nil {
		return "", err
	}
	res, err := s.do(ctx, request{method: http.MethodGet, path: "/assets/export", query: q.values()})
	if err != nil {
		return "", err
	}
	if !res.ok() {
		return "", decodeError(res)
	}
	if _, err := w.Write(res.body); err != nil {
		return "", fmt.Errorf("client: failed to write export: %w", err)
	}
	filename := "assets_export.csv"
	if _, params, err := mime.ParseMediaType(res.header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return filename, nil
}

func (s *Session) UserAssets(ctx context.Context, userID int64) ([]models.AssetResponse, error) {
	if err := s.precheck(policy.ViewAsset, policy.OwnedBy(userID)); err != nil {
		return nil, err
	}
	assets := []models.AssetResponse{}
	if err := s.getJSON(ctx, fmt.Sprintf("/users/%d/assets", userID), nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}
