package main

import (
	"fmt"
	"strconv"

	"assetflow/client"
	"assetflow/models"

	"github.com/spf13/cobra"
)

func (a *app) licensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "licenses",
		Aliases: []string{"license"},
		Short:   "Software licenses",
	}
	cmd.AddCommand(
		a.licensesListCmd(),
		a.licensesExpiringCmd(),
		a.licensesGetCmd(),
		a.licensesDeleteCmd(),
	)
	return cmd
}

func (a *app) printLicenses(cmd *cobra.Command, licenses []models.LicenseResponse) error {
	headers := []string{"ID", "Software", "Vendor", "Asset", "Seats", "Status", "Expires", "Days Left"}
	return a.render(cmd, licenses, headers, func() [][]string {
		rows := make([][]string, 0, len(licenses))
		for _, l := range licenses {
			asset := str(l.AssetName)
			if asset == "-" {
				asset = optID(l.AssetID)
			}
			daysLeft := "-"
			if l.DaysUntilExpiry != nil {
				daysLeft = strconv.Itoa(*l.DaysUntilExpiry)
			}
			rows = append(rows, []string{
				fmtID(l.ID), truncate(l.SoftwareName, 32), str(l.Vendor), asset,
				strconv.Itoa(l.Seats), string(l.Status), date(l.ExpirationDate), daysLeft,
			})
		}
		return rows
	})
}

func (a *app) licensesListCmd() *cobra.Command {
	var (
		q      client.LicenseQuery
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List licenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Status = models.LicenseStatus(status)
			if status != "" && !q.Status.IsValid() {
				return fmt.Errorf("invalid status %q", status)
			}
			q.AssetID = optionalID(cmd.Flags(), "asset")
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			licenses, err := s.ListLicenses(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printLicenses(cmd, licenses)
		},
	}
	f := cmd.Flags()
	f.StringVar(&status, "status", "", "Filter by status (Active, Expired, Cancelled)")
	f.Int64("asset", 0, "Filter by asset id")
	f.StringVar(&q.SoftwareName, "software", "", "Filter by software name")
	f.IntVar(&q.Limit, "limit", 0, "Page size")
	f.IntVar(&q.Offset, "offset", 0, "Page offset")
	return cmd
}

func (a *app) licensesExpiringCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "Active licenses that expire soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("invalid --days %d", days)
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			licenses, err := s.ExpiringLicenses(cmd.Context(), days)
			if err != nil {
				return err
			}
			return a.printLicenses(cmd, licenses)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Expiry window in days")
	return cmd
}

func (a *app) licensesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			licenseID, err := parseID(args[0], "license id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			license, err := s.GetLicense(cmd.Context(), licenseID)
			if err != nil {
				return err
			}
			return a.printLicenses(cmd, []models.LicenseResponse{license})
		},
	}
}

func (a *app) licensesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			licenseID, err := parseID(args[0], "license id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.DeleteLicense(cmd.Context(), licenseID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "license %d deleted\n", licenseID)
			return nil
		},
	}
}
