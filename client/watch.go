package client

import (
	"context"
	"sort"
	"sync"
	"time"

	"assetflow/apperror"
	"assetflow/models"

	"go.uber.org/zap"
)

// WatchRecentActivity polls the activity log and hands each batch of entries
// not seen before to onNew, oldest first. It blocks until ctx is cancelled or
// the session expires. Other errors are logged and polling continues.
func (s *Session) WatchRecentActivity(ctx context.Context, interval time.Duration, limit int, onNew func([]models.RecentActivity)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu      sync.Mutex
		lastID  int64
		stopErr error
	)
	poller := &Poller{
		Interval: interval,
		Fn: func(ctx context.Context) error {
			activities, err := s.RecentActivities(ctx, limit)
			if err != nil {
				return err
			}
			fresh := make([]models.RecentActivity, 0, len(activities))
			for _, a := range activities {
				if a.ID > lastID {
					fresh = append(fresh, a)
				}
			}
			if len(fresh) == 0 {
				return nil
			}
			sort.Slice(fresh, func(i, j int) bool { return fresh[i].ID < fresh[j].ID })
			lastID = fresh[len(fresh)-1].ID
			onNew(fresh)
			return nil
		},
		OnError: func(err error) {
			if apperror.IsAuth(err, "") {
				mu.Lock()
				stopErr = err
				mu.Unlock()
				cancel()
				return
			}
			s.client.logger.Warn("activity poll failed", zap.Error(err))
		},
	}
	poller.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	return stopErr
}
