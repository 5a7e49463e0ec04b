package main

import (
	"assetflow/client"
	"assetflow/models"

	"github.com/spf13/cobra"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "User administration",
	}
	cmd.AddCommand(a.usersListCmd())
	return cmd
}

func (a *app) usersListCmd() *cobra.Command {
	var (
		q    client.UserQuery
		role string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users (Admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Role = models.Role(role)
			if cmd.Flags().Changed("active") {
				active, _ := cmd.Flags().GetBool("active")
				q.IsActive = &active
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			users, err := s.ListUsers(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printIdentities(cmd, users...)
		},
	}
	f := cmd.Flags()
	f.StringVar(&role, "role", "", "Filter by role")
	f.StringVar(&q.Department, "department", "", "Filter by department")
	f.Bool("active", true, "Filter by active flag")
	f.StringVar(&q.Search, "search", "", "Search username and email")
	f.IntVar(&q.Limit, "limit", 0, "Page size")
	f.IntVar(&q.Offset, "offset", 0, "Page offset")
	return cmd
}
