package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"assetflow/client"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries the global flags into every subcommand.
type app struct {
	serverURL string
	username  string
	password  string
	outputFmt string

	sess *client.Session
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "assetctl",
		Short:         "Command line client for the AssetFlow API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `assetctl talks to an AssetFlow server.

Every command logs in with --username and --password (or ASSETCTL_USERNAME and
ASSETCTL_PASSWORD). Tokens are kept in memory for the duration of the command
only.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.outputFmt {
			case "table", "json", "yaml":
				return nil
			}
			return fmt.Errorf("unsupported output format %q (use table, json or yaml)", a.outputFmt)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.serverURL, "server", envOr("ASSETCTL_SERVER", "http://localhost:8080"), "AssetFlow server URL")
	flags.StringVarP(&a.username, "username", "u", os.Getenv("ASSETCTL_USERNAME"), "Login username")
	flags.StringVarP(&a.password, "password", "p", os.Getenv("ASSETCTL_PASSWORD"), "Login password")
	flags.StringVarP(&a.outputFmt, "output", "o", "table", "Output format: table, json, yaml")

	root.AddCommand(
		a.loginCmd(),
		a.healthCmd(),
		a.assetsCmd(),
		a.ticketsCmd(),
		a.usersCmd(),
		a.licensesCmd(),
		a.dashboardCmd(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (a *app) newClient() (*client.Client, error) {
	return client.New(client.Config{BaseURL: a.serverURL})
}

// session logs in once per command invocation.
func (a *app) session(ctx context.Context) (*client.Session, error) {
	if a.sess != nil {
		return a.sess, nil
	}
	if a.username == "" || a.password == "" {
		return nil, errors.New("credentials required: pass --username and --password or set ASSETCTL_USERNAME and ASSETCTL_PASSWORD")
	}
	c, err := a.newClient()
	if err != nil {
		return nil, err
	}
	s := client.NewSession(c)
	if _, err := s.Login(ctx, a.username, a.password); err != nil {
		return nil, err
	}
	a.sess = s
	return s, nil
}

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show the logged-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			identity, _ := s.CurrentIdentity()
			return a.printIdentities(cmd, identity)
		},
	}
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			status, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			if a.outputFmt != "table" {
				return a.printStructured(cmd, status)
			}
			printTable(cmd.OutOrStdout(), []string{"Check", "Status"}, [][]string{
				{"Overall", status["status"]},
				{"Database", status["database"]},
				{"Redis", status["redis"]},
			})
			return nil
		},
	}
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}

// optionalID reads an int64 flag only when the user set it.
func optionalID(flags *pflag.FlagSet, name string) *int64 {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetInt64(name)
	if err != nil {
		return nil
	}
	return &v
}
