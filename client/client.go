// Package client is a Go SDK for the AssetFlow REST API.
//
// A Client holds the server address and HTTP transport. A Session layered on
// top of it holds the caller's identity and tokens, attaches the bearer token
// to every call and performs the single refresh-and-retry on 401. Policy
// checks made by a Session are advisory: they save a round trip for calls the
// server would refuse anyway, but the server remains the authority.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/models"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 64 << 10
)

type Config struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client is the unauthenticated transport shared by sessions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: BaseURL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid BaseURL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("client: BaseURL %q must use http or https", cfg.BaseURL)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// request is a fully buffered call so it can be sent a second time after a
// token refresh.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

func jsonRequest(method, path string, payload interface{}) (request, error) {
	req := request{method: method, path: path}
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return request{}, fmt.Errorf("client: failed to encode request body: %w", err)
		}
		req.body = encoded
		req.contentType = "application/json"
	}
	return req, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// send performs one HTTP round trip. Transport failures come back as
// *apperror.NetworkError; HTTP error statuses are left to the caller.
func (c *Client) send(ctx context.Context, req request, accessToken string) (response, error) {
	target := c.baseURL + apiPrefix + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return response{}, fmt.Errorf("client: failed to create request: %w", err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return response{}, ctxErr
		}
		c.logger.Warn("request failed", zap.String("method", req.method), zap.String("path", req.path), zap.Error(err))
		return response{}, &apperror.NetworkError{Err: err}
	}
	defer httpRes.Body.Close()

	data, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return response{}, &apperror.NetworkError{Err: fmt.Errorf("reading response: %w", err)}
	}
	c.logger.Debug("request completed", zap.String("method", req.method), zap.String("path", req.path), zap.Int("status", httpRes.StatusCode))
	return response{status: httpRes.StatusCode, header: httpRes.Header, body: data}, nil
}

type errorBody struct {
	Error  string            `json:"error"`
	Reason string            `json:"reason"`
	Errors map[string]string `json:"errors"`
}

// decodeError turns an error response into the shared taxonomy.
func decodeError(res response) error {
	var payload errorBody
	body := res.body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		payload.Error = strings.TrimSpace(string(body))
	}
	return apperror.FromStatus(res.status, payload.Reason, payload.Error, payload.Errors)
}

func decodeInto(res response, out interface{}) error {
	if !res.ok() {
		return decodeError(res)
	}
	if out == nil || len(res.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("client: failed to parse response: %w", err)
	}
	return nil
}

// Health calls GET /health, which lives outside the API prefix.
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &apperror.NetworkError{Err: err}
	}
	defer httpRes.Body.Close()
	status := map[string]string{}
	if err := json.NewDecoder(httpRes.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("client: failed to parse health response: %w", err)
	}
	return status, nil
}

// Register creates an Employee account. It does not log in.
func (c *Client) Register(ctx context.Context, in RegisterInput) (models.Identity, error) {
	req, err := jsonRequest(http.MethodPost, "/auth/register", in)
	if err != nil {
		return models.Identity{}, err
	}
	res, err := c.send(ctx, req, "")
	if err != nil {
		return models.Identity{}, err
	}
	var out struct {
		User models.Identity `json:"user"`
	}
	if err := decodeInto(res, &out); err != nil {
		return models.Identity{}, err
	}
	return out.User, nil
}
