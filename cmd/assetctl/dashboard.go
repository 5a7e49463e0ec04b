package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"assetflow/models"

	"github.com/spf13/cobra"
)

func (a *app) dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Reporting dashboard",
	}
	cmd.AddCommand(a.dashboardStatsCmd(), a.dashboardActivityCmd())
	return cmd
}

func (a *app) dashboardStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Headline counts for assets, tickets, users and licenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := s.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd, stats, []string{"Metric", "Value"}, func() [][]string {
				n := strconv.Itoa
				return [][]string{
					{"Assets", n(stats.Assets.Total)},
					{"  Available", n(stats.Assets.Available)},
					{"  Assigned", n(stats.Assets.Assigned)},
					{"  Under Maintenance", n(stats.Assets.UnderMaintenance)},
					{"  In Repair", n(stats.Assets.InRepair)},
					{"  Retired", n(stats.Assets.Retired)},
					{"  Total value", money(&stats.Assets.TotalValue)},
					{"Tickets", n(stats.Maintenance.Total)},
					{"  Open", n(stats.Maintenance.Open)},
					{"  Resolved", n(stats.Maintenance.Resolved)},
					{"Users", n(stats.Users.Total)},
					{"  Active", n(stats.Users.Active)},
					{"Licenses", n(stats.Licenses.Total)},
					{"  Active", n(stats.Licenses.Active)},
					{"  Expired", n(stats.Licenses.Expired)},
				}
			})
		},
	}
}

func (a *app) printActivities(cmd *cobra.Command, activities []models.RecentActivity) error {
	headers := []string{"When", "Asset", "Action", "By", "Details"}
	return a.render(cmd, activities, headers, func() [][]string {
		rows := make([][]string, 0, len(activities))
		for _, act := range activities {
			rows = append(rows, []string{
				act.CreatedAt.Format("2006-01-02 15:04"), str(act.AssetName), string(act.Action),
				str(act.PerformedByUsername), truncate(act.Details, 60),
			})
		}
		return rows
	})
}

func (a *app) dashboardActivityCmd() *cobra.Command {
	var (
		limit    int
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Recent asset activity (Admin and Asset Manager)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && interval <= 0 {
				return fmt.Errorf("invalid --interval %s: must be positive", interval)
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			if !watch {
				activities, err := s.RecentActivities(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return a.printActivities(cmd, activities)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			var printErr error
			err = s.WatchRecentActivity(ctx, interval, limit, func(batch []models.RecentActivity) {
				if printErr == nil {
					printErr = a.printActivities(cmd, batch)
				}
			})
			if err != nil {
				return err
			}
			return printErr
		},
	}
	f := cmd.Flags()
	f.IntVar(&limit, "limit", 20, "Number of entries to fetch")
	f.BoolVarP(&watch, "watch", "w", false, "Keep polling and print new entries")
	f.DurationVar(&interval, "interval", 10*time.Second, "Polling interval with --watch")
	return cmd
}
