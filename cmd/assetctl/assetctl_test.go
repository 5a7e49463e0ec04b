package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"assetflow/apperror"
	"assetflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fakeServer(t *testing.T, identity models.Identity, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api/v1")
		if key == "POST /auth/login" {
			writeBody(w, http.StatusOK, map[string]interface{}{
				"access_token": "a", "refresh_token": "r", "user": identity,
			})
			return
		}
		h, ok := routes[key]
		if !ok {
			t.Errorf("unexpected request %s", key)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeBody(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", srv.URL, "-u", "admin", "-p", "secret"}, args...))
	err := root.Execute()
	return out.String(), err
}

var admin = models.Identity{ID: 1, Username: "admin", Email: "admin@example.com", Role: models.AdminRole, IsActive: true}

func TestLoginCommand(t *testing.T) {
	srv := fakeServer(t, admin, nil)
	out, err := run(t, srv, "login")
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "admin@example.com")
	assert.Contains(t, out, "Admin")
}

func TestOutputFormatValidation(t *testing.T) {
	srv := fakeServer(t, admin, nil)
	_, err := run(t, srv, "login", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestMissingCredentials(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--server", "http://127.0.0.1:1", "-u", "", "-p", "", "assets", "list"})
	root.SetOut(&bytes.Buffer{})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials required")
}

func TestAssetsListYAML(t *testing.T) {
	price := 1200.0
	srv := fakeServer(t, admin, map[string]http.HandlerFunc{
		"GET /assets/": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Available", r.URL.Query().Get("status"))
			assert.Equal(t, "7", r.URL.Query().Get("assigned_to"))
			writeBody(w, http.StatusOK, []models.AssetResponse{{Asset: models.Asset{
				ID: 3, Name: "ThinkPad", Category: "Laptop", SerialNumber: "SN-3",
				Status: models.AssetAvailable, Condition: models.ConditionGood, PurchasePrice: &price,
			}}})
		},
	})

	out, err := run(t, srv, "assets", "list", "--status", "Available", "--assigned-to", "7", "-o", "yaml")
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "ThinkPad", decoded[0]["name"])
	assert.Equal(t, "SN-3", decoded[0]["serial_number"])
}

func TestAssetsAssignConflict(t *testing.T) {
	srv := fakeServer(t, admin, map[string]http.HandlerFunc{
		"POST /assets/3/assign": func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusConflict, map[string]string{"error": "asset is already assigned"})
		},
	})
	_, err := run(t, srv, "assets", "assign", "3", "9")
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err, ""))

	_, err = run(t, srv, "assets", "assign", "x", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid asset id")
}

func TestAssetsExportToFile(t *testing.T) {
	srv := fakeServer(t, admin, map[string]http.HandlerFunc{
		"GET /assets/export": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Disposition", "attachment; filename=assets_export_20260301_090000.csv")
			_, _ = w.Write([]byte("ID,Name\n3,ThinkPad\n"))
		},
	})
	target := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, srv, "assets", "export", "--file", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name\n3,ThinkPad\n", string(data))
}

func TestTicketsStatusRejectsUnknownStatus(t *testing.T) {
	srv := fakeServer(t, admin, nil)
	_, err := run(t, srv, "tickets", "status", "4", "Done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid status "Done"`)
}

func TestDashboardActivityDeniedLocally(t *testing.T) {
	hr := models.Identity{ID: 2, Username: "hr", Role: models.HRRole, IsActive: true}
	srv := fakeServer(t, hr, nil)
	_, err := run(t, srv, "dashboard", "activity")
	require.Error(t, err)
	assert.True(t, apperror.IsAuth(err, apperror.Forbidden))
}

func TestDashboardStatsTable(t *testing.T) {
	srv := fakeServer(t, admin, map[string]http.HandlerFunc{
		"GET /dashboard/stats": func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, http.StatusOK, models.DashboardStats{
				Assets:   models.AssetStats{Total: 10, Available: 6, Assigned: 4, TotalValue: 5000},
				Users:    models.UserStats{Total: 3, Active: 3},
				Licenses: models.LicenseStats{Total: 7, Active: 5, Expired: 2},
			})
		},
	})
	out, err := run(t, srv, "dashboard", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "5000.00")
	assert.Contains(t, out, "Licenses")
}

func TestDashboardActivityRejectsNonPositiveInterval(t *testing.T) {
	srv := fakeServer(t, admin, nil)
	for _, interval := range []string{"0s", "-5s"} {
		_, err := run(t, srv, "dashboard", "activity", "--watch", "--interval", interval)
		require.Error(t, err, interval)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestLicensesExpiringTable(t *testing.T) {
	expires := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	days := 14
	srv := fakeServer(t, admin, map[string]http.HandlerFunc{
		"GET /licenses/expiring": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "20", r.URL.Query().Get("days"))
			writeBody(w, http.StatusOK, []models.LicenseResponse{{
				License:         models.License{ID: 2, SoftwareName: "Office 365", Seats: 5, Status: models.LicenseActive, ExpirationDate: &expires},
				DaysUntilExpiry: &days,
			}})
		},
	})
	out, err := run(t, srv, "licenses", "expiring", "--days", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "DAYS LEFT")
	assert.Contains(t, out, "Office 365")
	assert.Contains(t, out, "2026-11-01")
	assert.Contains(t, out, "14")

	_, err = run(t, srv, "licenses", "list", "--status", "Lapsed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid status "Lapsed"`)
}
