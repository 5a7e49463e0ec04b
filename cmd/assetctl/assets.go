package main

import (
	"fmt"
	"os"
	"strings"

	"assetflow/client"
	"assetflow/models"

	"github.com/spf13/cobra"
)

func (a *app) assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "List and manage assets",
	}
	cmd.AddCommand(
		a.assetsListCmd(),
		a.assetsGetCmd(),
		a.assetActionCmd("assign ID USER_ID", "Assign an available asset to a user", 2,
			func(cmd *cobra.Command, s *client.Session, assetID int64, args []string) (models.AssetResponse, error) {
				userID, err := parseID(args[1], "user id")
				if err != nil {
					return models.AssetResponse{}, err
				}
				return s.AssignAsset(cmd.Context(), assetID, userID)
			}),
		a.assetActionCmd("release ID", "Release an assigned asset", 1,
			func(cmd *cobra.Command, s *client.Session, assetID int64, _ []string) (models.AssetResponse, error) {
				return s.ReleaseAsset(cmd.Context(), assetID, nil)
			}),
		a.assetActionCmd("retire ID", "Retire an asset permanently", 1,
			func(cmd *cobra.Command, s *client.Session, assetID int64, _ []string) (models.AssetResponse, error) {
				return s.RetireAsset(cmd.Context(), assetID)
			}),
		a.assetActionCmd("status ID STATUS", "Move an asset in or out of maintenance", 2,
			func(cmd *cobra.Command, s *client.Session, assetID int64, args []string) (models.AssetResponse, error) {
				status := models.AssetStatus(args[1])
				if !status.IsValid() {
					return models.AssetResponse{}, fmt.Errorf("invalid status %q", args[1])
				}
				return s.SetAssetStatus(cmd.Context(), assetID, status)
			}),
		a.assetsHistoryCmd(),
		a.assetsDepreciationCmd(),
		a.assetsExportCmd(),
	)
	return cmd
}

func bindAssetQuery(cmd *cobra.Command, q *client.AssetQuery, statuses *[]string) {
	f := cmd.Flags()
	f.StringVar(&q.Category, "category", "", "Filter by category")
	f.StringSliceVar(statuses, "status", nil, "Filter by status (repeatable)")
	f.Int64("assigned-to", 0, "Filter by assignee user id")
	f.StringVar(&q.Department, "department", "", "Filter by assignee department")
	f.StringVar(&q.Search, "search", "", "Search name, serial number and description")
	f.IntVar(&q.Limit, "limit", 0, "Page size")
	f.IntVar(&q.Offset, "offset", 0, "Page offset")
}

func finishAssetQuery(cmd *cobra.Command, q *client.AssetQuery, statuses []string) {
	q.AssignedTo = optionalID(cmd.Flags(), "assigned-to")
	for _, s := range statuses {
		q.Statuses = append(q.Statuses, models.AssetStatus(strings.TrimSpace(s)))
	}
}

func (a *app) assetsListCmd() *cobra.Command {
	var (
		q        client.AssetQuery
		statuses []string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finishAssetQuery(cmd, &q, statuses)
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			assets, err := s.ListAssets(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printAssets(cmd, assets)
		},
	}
	bindAssetQuery(cmd, &q, &statuses)
	cmd.Flags().BoolVar(&q.IncludeDepreciation, "depreciation", false, "Include the depreciation breakdown")
	return cmd
}

func (a *app) printAssets(cmd *cobra.Command, assets []models.AssetResponse) error {
	headers := []string{"ID", "Name", "Category", "Serial", "Status", "Condition", "Assigned To", "Price"}
	return a.render(cmd, assets, headers, func() [][]string {
		rows := make([][]string, 0, len(assets))
		for _, asset := range assets {
			assignee := str(asset.AssignedToUsername)
			if assignee == "-" {
				assignee = optID(asset.AssignedToUserID)
			}
			rows = append(rows, []string{
				fmtID(asset.ID), truncate(asset.Name, 32), asset.Category, asset.SerialNumber,
				string(asset.Status), string(asset.Condition), assignee, money(asset.PurchasePrice),
			})
		}
		return rows
	})
}

func (a *app) assetsGetCmd() *cobra.Command {
	var depreciation bool
	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			asset, err := s.GetAsset(cmd.Context(), assetID, depreciation)
			if err != nil {
				return err
			}
			return a.printAssets(cmd, []models.AssetResponse{asset})
		},
	}
	cmd.Flags().BoolVar(&depreciation, "depreciation", false, "Include the depreciation breakdown")
	return cmd
}

type assetAction func(cmd *cobra.Command, s *client.Session, assetID int64, args []string) (models.AssetResponse, error)

func (a *app) assetActionCmd(use, short string, nargs int, action assetAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			asset, err := action(cmd, s, assetID, args)
			if err != nil {
				return err
			}
			return a.printAssets(cmd, []models.AssetResponse{asset})
		},
	}
}

func (a *app) assetsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history ID",
		Short: "Show the audit trail of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			history, err := s.AssetHistory(cmd.Context(), assetID)
			if err != nil {
				return err
			}
			return a.render(cmd, history, []string{"When", "Action", "By", "From", "To", "Details"}, func() [][]string {
				rows := make([][]string, 0, len(history))
				for _, h := range history {
					rows = append(rows, []string{
						h.CreatedAt.Format("2006-01-02 15:04"), string(h.Action), str(h.PerformedBy),
						str(h.FromUser), str(h.ToUser), truncate(h.Details, 60),
					})
				}
				return rows
			})
		},
	}
}

func (a *app) assetsDepreciationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depreciation ID",
		Short: "Show the straight-line depreciation of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			d, err := s.AssetDepreciation(cmd.Context(), assetID)
			if err != nil {
				return err
			}
			return a.render(cmd, d, []string{"Field", "Value"}, func() [][]string {
				return [][]string{
					{"Purchase price", money(&d.PurchasePrice)},
					{"Current value", money(&d.CurrentValue)},
					{"Total depreciation", money(&d.TotalDepreciation)},
					{"Depreciation rate %", money(&d.DepreciationRate)},
					{"Years elapsed", money(&d.YearsElapsed)},
					{"Useful life (years)", fmt.Sprint(d.UsefulLifeYears)},
				}
			})
		},
	}
}

func (a *app) assetsExportCmd() *cobra.Command {
	var (
		q        client.AssetQuery
		statuses []string
		file     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the asset list as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finishAssetQuery(cmd, &q, statuses)
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			if file == "-" {
				_, err := s.ExportAssets(cmd.Context(), q, cmd.OutOrStdout())
				return err
			}
			var buf strings.Builder
			name, err := s.ExportAssets(cmd.Context(), q, &buf)
			if err != nil {
				return err
			}
			if file == "" {
				file = name
			}
			if err := os.WriteFile(file, []byte(buf.String()), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", file, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", file)
			return nil
		},
	}
	bindAssetQuery(cmd, &q, &statuses)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Output file; - for stdout (default: server-suggested name)")
	return cmd
}
