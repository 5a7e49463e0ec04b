package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Session is either anonymous or authenticated. Tokens live in memory only
// and are gone when the process exits.
type Session struct {
	client *Client

	mu           sync.RWMutex
	identity     *models.Identity
	accessToken  string
	refreshToken string

	refreshes singleflight.Group
}

func NewSession(c *Client) *Session {
	return &Session{client: c}
}

type loginRes struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         models.Identity `json:"user"`
}

// Login exchanges credentials for tokens. A failed login leaves the session
// as it was.
func (s *Session) Login(ctx context.Context, username, password string) (models.Identity, error) {
	req, err := jsonRequest(http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return models.Identity{}, err
	}
	res, err := s.client.send(ctx, req, "")
	if err != nil {
		return models.Identity{}, err
	}
	switch res.status {
	case http.StatusUnauthorized:
		return models.Identity{}, apperror.NewAuth(apperror.InvalidCredentials, decodeError(res).Error())
	case http.StatusForbidden:
		return models.Identity{}, apperror.NewAuth(apperror.InactiveAccount, decodeError(res).Error())
	}
	var out loginRes
	if err := decodeInto(res, &out); err != nil {
		return models.Identity{}, err
	}

	s.mu.Lock()
	identity := out.User
	s.identity = &identity
	s.accessToken = out.AccessToken
	s.refreshToken = out.RefreshToken
	s.mu.Unlock()

	s.client.logger.Info("logged in", zap.String("username", identity.Username), zap.String("role", string(identity.Role)))
	return identity, nil
}

// Logout drops the identity and both tokens. It never fails and may be
// called any number of times.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.accessToken = ""
	s.refreshToken = ""
}

// CurrentIdentity returns the logged-in identity without touching the network.
func (s *Session) CurrentIdentity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func errSessionExpired() error {
	return apperror.NewAuth(apperror.SessionExpired, "session expired, please log in again")
}

// Refresh exchanges the refresh token for a new access token. If the server
// rejects the refresh token the session is logged out.
func (s *Session) Refresh(ctx context.Context) error {
	_, refreshToken := s.tokens()
	if refreshToken == "" {
		return apperror.NewAuth(apperror.Unauthenticated, "not logged in")
	}
	req, err := jsonRequest(http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return err
	}
	res, err := s.client.send(ctx, req, "")
	if err != nil {
		return err
	}
	if res.status == http.StatusUnauthorized || res.status == http.StatusForbidden {
		s.client.logger.Info("refresh token rejected, logging out")
		s.Logout()
		return errSessionExpired()
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeInto(res, &out); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent Logout wins.
	if s.refreshToken != refreshToken {
		return errSessionExpired()
	}
	s.accessToken = out.AccessToken
	return nil
}

// refreshShared collapses concurrent refreshes triggered by parallel 401s.
func (s *Session) refreshShared(ctx context.Context) error {
	_, err, _ := s.refreshes.Do("refresh", func() (interface{}, error) {
		return nil, s.Refresh(ctx)
	})
	return err
}

// Can evaluates the shared policy table for the current identity. The answer
// is advisory; the server re-checks every call.
func (s *Session) Can(action policy.Action, resource *policy.Resource) policy.Decision {
	identity, ok := s.CurrentIdentity()
	if !ok {
		return policy.Decision{Reason: "not logged in"}
	}
	return policy.Can(identity, action, resource)
}

// precheck refuses calls the policy already rules out, without a request.
func (s *Session) precheck(action policy.Action, resource *policy.Resource) error {
	identity, ok := s.CurrentIdentity()
	if !ok {
		return apperror.NewAuth(apperror.Unauthenticated, "not logged in")
	}
	if d := policy.Can(identity, action, resource); !d.Allowed {
		return apperror.NewAuth(apperror.Forbidden, d.Reason)
	}
	return nil
}

// do sends an authenticated request. A 401 triggers exactly one refresh and
// one retry; a second 401 ends the session.
func (s *Session) do(ctx context.Context, req request) (response, error) {
	access, _ := s.tokens()
	if access == "" {
		return response{}, apperror.NewAuth(apperror.Unauthenticated, "not logged in")
	}
	res, err := s.client.send(ctx, req, access)
	if err != nil || res.status != http.StatusUnauthorized {
		return res, err
	}

	if err := s.refreshShared(ctx); err != nil {
		return response{}, err
	}
	access, _ = s.tokens()
	res, err = s.client.send(ctx, req, access)
	if err != nil {
		return response{}, err
	}
	if res.status == http.StatusUnauthorized {
		s.client.logger.Info("request rejected after refresh, logging out", zap.String("path", req.path))
		s.Logout()
		return response{}, errSessionExpired()
	}
	return res, nil
}

func (s *Session) call(ctx context.Context, req request, out interface{}) error {
	res, err := s.do(ctx, req)
	if err != nil {
		return err
	}
	return decodeInto(res, out)
}

func (s *Session) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return s.call(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

func (s *Session) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	req, err := jsonRequest(method, path, payload)
	if err != nil {
		return err
	}
	return s.call(ctx, req, out)
}

// Me reloads the identity from the server and updates the session copy.
func (s *Session) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := s.getJSON(ctx, "/auth/me", nil, &identity); err != nil {
		return models.Identity{}, err
	}
	s.mu.Lock()
	if s.identity != nil {
		s.identity = &identity
	}
	s.mu.Unlock()
	return identity, nil
}

func (s *Session) UpdateProfile(ctx context.Context, in ProfileUpdate) (models.Identity, error) {
	var identity models.Identity
	if err := s.sendJSON(ctx, http.MethodPut, "/auth/me", in, &identity); err != nil {
		return models.Identity{}, err
	}
	s.mu.Lock()
	if s.identity != nil {
		s.identity = &identity
	}
	s.mu.Unlock()
	return identity, nil
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	return s.sendJSON(ctx, http.MethodPost, "/auth/change-password", map[string]string{
		"current_password": current,
		"new_password":     next,
	}, nil)
}
