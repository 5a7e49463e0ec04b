package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"assetflow/apperror"
	"assetflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_SkipsWhileBusy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{}, 10)
	release := make(chan struct{})
	var inFlight, maxInFlight atomic.Int32

	p := &Poller{Fn: func(ctx context.Context) error {
		n := inFlight.Add(1)
		if n > maxInFlight.Load() {
			maxInFlight.Store(n)
		}
		started <- struct{}{}
		<-release
		inFlight.Add(-1)
		return nil
	}}

	ticks := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		p.run(ctx, ticks)
		close(done)
	}()

	<-started
	ticks <- time.Now()
	ticks <- time.Now()
	ticks <- time.Now()
	require.Eventually(t, func() bool { return p.Skipped() == 3 }, time.Second, time.Millisecond)
	assert.Equal(t, int64(1), p.Runs())

	release <- struct{}{}
	require.Eventually(t, func() bool { return !p.running.Load() }, time.Second, time.Millisecond)

	ticks <- time.Now()
	<-started
	assert.Equal(t, int64(2), p.Runs())

	cancel()
	close(release)
	<-done
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestPoller_ReportsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	p := &Poller{
		Interval: time.Hour,
		Fn:       func(context.Context) error { return errors.New("boom") },
		OnError:  func(err error) { errs <- err },
	}
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.EqualError(t, <-errs, "boom")
	cancel()
	<-done
}

func TestPoller_ZeroIntervalUsesDefault(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ran := make(chan struct{}, 1)
	p := &Poller{Fn: func(context.Context) error {
		ran <- struct{}{}
		return nil
	}}
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	<-ran
	cancel()
	<-done
	assert.Equal(t, int64(1), p.Runs())
}

func TestWatchRecentActivity(t *testing.T) {
	api, s := loggedIn(t, adminUser)
	var polls atomic.Int32
	activity := func(id int64) models.RecentActivity {
		return models.RecentActivity{AssetHistoryEntry: models.AssetHistoryEntry{ID: id, Action: models.ActionAssigned}}
	}
	api.handle("GET /dashboard/recent-activities", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		switch polls.Add(1) {
		case 1:
			writeJSON(w, http.StatusOK, []models.RecentActivity{activity(2), activity(1)})
		case 2:
			writeJSON(w, http.StatusOK, []models.RecentActivity{activity(3), activity(2), activity(1)})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "expired"})
		}
	})
	api.handle("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "refresh token is invalid or expired"})
	})

	var batches [][]int64
	err := s.WatchRecentActivity(context.Background(), 5*time.Millisecond, 5, func(batch []models.RecentActivity) {
		ids := make([]int64, len(batch))
		for i, a := range batch {
			ids[i] = a.ID
		}
		batches = append(batches, ids)
	})

	require.Error(t, err)
	assert.True(t, apperror.IsAuth(err, apperror.SessionExpired))
	assert.Equal(t, [][]int64{{1, 2}, {3}}, batches)
	_, ok := s.CurrentIdentity()
	assert.False(t, ok)
}
