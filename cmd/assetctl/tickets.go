package main

import (
	"fmt"
	"os"
	"path/filepath"

	"assetflow/client"
	"assetflow/models"

	"github.com/spf13/cobra"
)

func (a *app) ticketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket", "maintenance"},
		Short:   "Maintenance tickets",
	}
	cmd.AddCommand(
		a.ticketsListCmd(),
		a.ticketsCreateCmd(),
		a.ticketsStatusCmd(),
		a.ticketsAssignCmd(),
		a.ticketsDeleteCmd(),
		a.ticketsUploadCmd(),
	)
	return cmd
}

func (a *app) printTickets(cmd *cobra.Command, tickets []client.Ticket) error {
	headers := []string{"ID", "Asset", "Title", "Status", "Priority", "Reporter", "Assignee", "Resolved"}
	return a.render(cmd, tickets, headers, func() [][]string {
		rows := make([][]string, 0, len(tickets))
		for _, t := range tickets {
			asset := str(t.AssetName)
			if asset == "-" {
				asset = fmtID(t.AssetID)
			}
			rows = append(rows, []string{
				fmtID(t.ID), asset, truncate(t.Title, 40), string(t.Status), string(t.Priority),
				str(t.ReporterUsername), str(t.AssigneeUsername), date(t.ResolvedAt),
			})
		}
		return rows
	})
}

func (a *app) ticketsListCmd() *cobra.Command {
	var (
		q        client.TicketQuery
		status   string
		priority string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Status = models.TicketStatus(status)
			q.Priority = models.TicketPriority(priority)
			q.AssetID = optionalID(cmd.Flags(), "asset")
			q.ReportedBy = optionalID(cmd.Flags(), "reported-by")
			q.AssignedTo = optionalID(cmd.Flags(), "assigned-to")
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			tickets, err := s.ListTickets(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printTickets(cmd, tickets)
		},
	}
	f := cmd.Flags()
	f.StringVar(&status, "status", "", "Filter by status")
	f.StringVar(&priority, "priority", "", "Filter by priority")
	f.Int64("asset", 0, "Filter by asset id")
	f.Int64("reported-by", 0, "Filter by reporter user id")
	f.Int64("assigned-to", 0, "Filter by assignee user id")
	f.IntVar(&q.Limit, "limit", 0, "Page size")
	f.IntVar(&q.Offset, "offset", 0, "Page offset")
	return cmd
}

func (a *app) ticketsCreateCmd() *cobra.Command {
	var (
		in       client.TicketInput
		priority string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a problem with an asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Priority = models.TicketPriority(priority)
			if in.Priority != "" && !in.Priority.IsValid() {
				return fmt.Errorf("invalid priority %q", priority)
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			ticket, err := s.CreateTicket(cmd.Context(), in, nil)
			if err != nil {
				return err
			}
			return a.printTickets(cmd, []client.Ticket{ticket})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&in.AssetID, "asset", 0, "Asset id")
	f.StringVar(&in.Title, "title", "", "Short summary")
	f.StringVar(&in.Description, "description", "", "What is wrong")
	f.StringVar(&priority, "priority", "", "Low, Medium, High or Critical (default Medium)")
	_ = cmd.MarkFlagRequired("asset")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func (a *app) ticketsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set the status of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			status := models.TicketStatus(args[1])
			if !status.IsValid() {
				return fmt.Errorf("invalid status %q", args[1])
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			ticket, err := s.SetTicketStatus(cmd.Context(), ticketID, status)
			if err != nil {
				return err
			}
			return a.printTickets(cmd, []client.Ticket{ticket})
		},
	}
}

func (a *app) ticketsAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID USER_ID",
		Short: "Assign a ticket to a technician",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			userID, err := parseID(args[1], "user id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			ticket, err := s.AssignTicket(cmd.Context(), ticketID, userID)
			if err != nil {
				return err
			}
			return a.printTickets(cmd, []client.Ticket{ticket})
		},
	}
}

func (a *app) ticketsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a ticket; the asset is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.DeleteTicket(cmd.Context(), ticketID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ticket %d deleted\n", ticketID)
			return nil
		},
	}
}

func (a *app) ticketsUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload ID FILE",
		Short: "Attach a file to a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticketID, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			url, err := s.UploadAttachment(cmd.Context(), ticketID, filepath.Base(args[1]), f, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
