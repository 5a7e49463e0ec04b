package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminUser    = models.Identity{ID: 1, Username: "admin", Role: models.AdminRole, IsActive: true}
	employeeUser = models.Identity{ID: 4, Username: "emp", Role: models.EmployeeRole, IsActive: true}
)

// fakeAPI is a scripted backend. Routes are keyed by "METHOD /path" below
// the API prefix.
type fakeAPI struct {
	t      *testing.T
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   map[string]int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{t: t, routes: map[string]http.HandlerFunc{}, hits: map[string]int{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) handle(route string, h http.HandlerFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes[route] = h
}

func (a *fakeAPI) count(route string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[route]
}

func (a *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path[len(apiPrefix):]
	a.mu.Lock()
	h, ok := a.routes[route]
	a.hits[route]++
	a.mu.Unlock()
	if !ok {
		a.t.Errorf("unexpected request %s", route)
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func loginAs(identity models.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"user":          identity,
		})
	}
}

func newSession(t *testing.T, srv *httptest.Server) *Session {
	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return NewSession(c)
}

func loggedIn(t *testing.T, identity models.Identity) (*fakeAPI, *Session) {
	api, srv := newFakeAPI(t)
	api.handle("POST /auth/login", loginAs(identity))
	s := newSession(t, srv)
	_, err := s.Login(context.Background(), identity.Username, "secret")
	require.NoError(t, err)
	return api, s
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
	_, err = New(Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)
	c, err := New(Config{BaseURL: "http://localhost:8080/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestSession_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, srv := newFakeAPI(t)
		api.handle("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body["username"])
			assert.Equal(t, "secret", body["password"])
			loginAs(adminUser)(w, r)
		})
		s := newSession(t, srv)

		_, ok := s.CurrentIdentity()
		assert.False(t, ok)

		identity, err := s.Login(context.Background(), "admin", "secret")
		require.NoError(t, err)
		assert.Equal(t, adminUser.ID, identity.ID)

		current, ok := s.CurrentIdentity()
		require.True(t, ok)
		assert.Equal(t, models.AdminRole, current.Role)
		access, refresh := s.tokens()
		assert.Equal(t, "access-1", access)
		assert.Equal(t, "refresh-1", refresh)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		api, srv := newFakeAPI(t)
		api.handle("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		})
		s := newSession(t, srv)

		_, err := s.Login(context.Background(), "admin", "wrong")
		require.Error(t, err)
		assert.True(t, apperror.IsAuth(err, apperror.InvalidCredentials))
		assert.Equal(t, "Invalid credentials", err.Error())
		_, ok := s.CurrentIdentity()
		assert.False(t, ok)
	})

	t.Run("inactive account", func(t *testing.T) {
		api, srv := newFakeAPI(t)
		api.handle("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "Account is inactive"})
		})
		_, err := newSession(t, srv).Login(context.Background(), "admin", "secret")
		assert.True(t, apperror.IsAuth(err, apperror.InactiveAccount))
	})
}

func TestSession_Logout(t *testing.T) {
	_, s := loggedIn(t, adminUser)
	s.Logout()
	s.Logout()

	_, ok := s.CurrentIdentity()
	assert.False(t, ok)
	access, refresh := s.tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	_, err := s.DashboardStats(context.Background())
	assert.True(t, apperror.IsAuth(err, apperror.Unauthenticated))
}

func TestSession_RefreshAndRetry(t *testing.T) {
	t.Run("retries once with the new token", func(t *testing.T) {
		api, s := loggedIn(t, adminUser)
		api.handle("GET /dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer access-2" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
				return
			}
			writeJSON(w, http.StatusOK, models.DashboardStats{Assets: models.AssetStats{Total: 12}})
		})
		api.handle("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "access-2"})
		})

		stats, err := s.DashboardStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 12, stats.Assets.Total)
		assert.Equal(t, 2, api.count("GET /dashboard/stats"))
		assert.Equal(t, 1, api.count("POST /auth/refresh"))
		_, ok := s.CurrentIdentity()
		assert.True(t, ok)
	})

	t.Run("rejected refresh logs out without retrying", func(t *testing.T) {
		api, s := loggedIn(t, adminUser)
		api.handle("GET /dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
		})
		api.handle("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "refresh token is invalid or expired"})
		})

		_, err := s.DashboardStats(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
		assert.Equal(t, 1, api.count("GET /dashboard/stats"))
		_, ok := s.CurrentIdentity()
		assert.False(t, ok)
	})

	t.Run("second 401 ends the session", func(t *testing.T) {
		api, s := loggedIn(t, adminUser)
		api.handle("GET /dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "nope"})
		})
		api.handle("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "access-2"})
		})

		_, err := s.DashboardStats(context.Background())
		assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
		assert.Equal(t, 2, api.count("GET /dashboard/stats"))
		assert.Equal(t, 1, api.count("POST /auth/refresh"))
		_, ok := s.CurrentIdentity()
		assert.False(t, ok)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		api, s := loggedIn(t, adminUser)
		api.handle("POST /assets/7/assign", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "asset is already assigned"})
		})

		_, err := s.AssignAsset(context.Background(), 7, 3)
		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err, ""))
		assert.Equal(t, "asset is already assigned", err.Error())
		assert.Equal(t, 1, api.count("POST /assets/7/assign"))
		assert.Equal(t, 0, api.count("POST /auth/refresh"))
	})
}

func TestSession_NetworkError(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.handle("POST /auth/login", loginAs(adminUser))
	s := newSession(t, srv)
	_, err := s.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	srv.Close()
	_, err = s.ListAssets(context.Background(), AssetQuery{})
	require.Error(t, err)
	assert.True(t, apperror.IsNetwork(err))
	assert.Contains(t, err.Error(), "backend unreachable")
	_, ok := s.CurrentIdentity()
	assert.True(t, ok, "a network failure must not end the session")
}

func TestSession_AdvisoryPolicy(t *testing.T) {
	api, s := loggedIn(t, employeeUser)

	_, err := s.CreateAsset(context.Background(), AssetInput{Name: "Laptop", Category: "IT", SerialNumber: "SN-1"})
	require.Error(t, err)
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))

	_, err = s.RecentActivities(context.Background(), 10)
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))

	other := int64(9)
	_, err = s.ReleaseAsset(context.Background(), 5, &models.Asset{ID: 5, AssignedToUserID: &other})
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))

	assert.Equal(t, 0, api.count("POST /assets/"))
	assert.Equal(t, 0, api.count("POST /assets/5/release"))

	// Scoped grants go through; the server narrows the result.
	api.handle("GET /assets/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.AssetResponse{})
	})
	assets, err := s.ListAssets(context.Background(), AssetQuery{})
	require.NoError(t, err)
	assert.Empty(t, assets)

	assert.True(t, s.Can(policy.ViewAsset, nil).Scoped)
}

func TestSession_ValidationFields(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	api.handle("POST /assets/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"errors": map[string]string{"serial_number": "is required"},
		})
	})

	_, err := s.CreateAsset(context.Background(), AssetInput{Name: "Laptop"})
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["serial_number"])
}

func TestSession_KeepsServerReason(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	api.handle("POST /assets/7/assign", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondAppError(w, apperror.NewConflict(apperror.AlreadyAssigned, "asset is already assigned"), "failed to assign asset")
	})
	api.handle("POST /assets/8/assign", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondAppError(w, apperror.NewValidation(apperror.InvalidAssignee, "user is inactive"), "failed to assign asset")
	})

	_, err := s.AssignAsset(context.Background(), 7, 3)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err, apperror.AlreadyAssigned))
	assert.Contains(t, err.Error(), "asset is already assigned")

	_, err = s.AssignAsset(context.Background(), 8, 3)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err, apperror.InvalidAssignee))
	assert.False(t, apperror.IsValidation(err, apperror.InvalidField))
}

func TestSession_ListAssetsQuery(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	holder := int64(3)
	api.handle("GET /assets/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Laptop", q.Get("category"))
		assert.Equal(t, "Available,Assigned", q.Get("status"))
		assert.Equal(t, "3", q.Get("assigned_to"))
		assert.Equal(t, "true", q.Get("include_depreciation"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Empty(t, q.Get("offset"))
		writeJSON(w, http.StatusOK, []models.AssetResponse{{Asset: models.Asset{ID: 1, Name: "ThinkPad"}}})
	})

	assets, err := s.ListAssets(context.Background(), AssetQuery{
		Category:            "Laptop",
		Statuses:            []models.AssetStatus{models.AssetAvailable, models.AssetAssigned},
		AssignedTo:          &holder,
		IncludeDepreciation: true,
		Limit:               20,
	})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "ThinkPad", assets[0].Name)
}

func TestSession_AssignAsset(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	holder := int64(3)
	api.handle("POST /assets/7/assign", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		var body map[string]int64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(3), body["user_id"])
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Asset assigned successfully",
			"asset":   models.Asset{ID: 7, Status: models.AssetAssigned, AssignedToUserID: &holder},
		})
	})

	asset, err := s.AssignAsset(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, models.AssetAssigned, asset.Status)
	require.NotNil(t, asset.AssignedToUserID)
	assert.Equal(t, int64(3), *asset.AssignedToUserID)
}

func TestSession_ExportAssets(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	api.handle("GET /assets/export", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Laptop", r.URL.Query().Get("category"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=assets_export_20260301_090000.csv")
		_, _ = io.WriteString(w, "ID,Name\n1,ThinkPad\n")
	})

	var buf bytes.Buffer
	name, err := s.ExportAssets(context.Background(), AssetQuery{Category: "Laptop"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "assets_export_20260301_090000.csv", name)
	assert.Equal(t, "ID,Name\n1,ThinkPad\n", buf.String())
}

func TestSession_UploadAttachment(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	var attempts atomic.Int32
	api.handle("POST /maintenance/3/upload", func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
			return
		}
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))
		writeJSON(w, http.StatusOK, map[string]string{"message": "File uploaded successfully", "file_url": "/uploads/ticket_3_x_photo.png"})
	})
	api.handle("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "access-2"})
	})

	url, err := s.UploadAttachment(context.Background(), 3, "photo.png", bytes.NewBufferString("png-bytes"), nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ticket_3_x_photo.png", url)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestSession_ListUsers(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	api.handle("GET /users/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HR", r.URL.Query().Get("role"))
		assert.Equal(t, "false", r.URL.Query().Get("is_active"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"users": []models.Identity{employeeUser}})
	})

	inactive := false
	users, err := s.ListUsers(context.Background(), UserQuery{Role: models.HRRole, IsActive: &inactive})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "emp", users[0].Username)
}
