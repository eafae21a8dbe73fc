package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/interfaces/cli"
)

func newReservationsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List or delete reservations (admin password required)",
	}
	cmd.AddCommand(newReservationsListCmd(opts))
	cmd.AddCommand(newReservationsDeleteCmd(opts))
	return cmd
}

func newReservationsListCmd(opts *rootOptions) *cobra.Command {
	var password string
	c := &cobra.Command{
		Use:   "list",
		Short: "Show all reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if password == "" {
				f := newForm(cmd, a)
				defer f.Close()
				return f.ShowReservations(ctx)
			}
			rows, err := a.admin().ListReservations(ctx, password)
			if err != nil {
				return err
			}
			cli.WriteReservations(cmd.OutOrStdout(), rows)
			return nil
		},
	}
	c.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return c
}

func newReservationsDeleteCmd(opts *rootOptions) *cobra.Command {
	var (
		password string
		id       int64
	)
	c := &cobra.Command{
		Use:   "delete",
		Short: "Delete one reservation, chosen from a list or by --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if id == 0 {
				f := newForm(cmd, a)
				defer f.Close()
				if password == "" {
					return f.DeleteReservation(ctx)
				}
				return f.DeleteReservationAs(ctx, password)
			}
			if password == "" {
				return fmt.Errorf("--id requires --password")
			}
			out, err := a.admin().DeleteReservation(ctx, password, usecases.ByID(id))
			if err != nil {
				return err
			}
			if !out.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Reservation with ID %d not found.\n", out.ID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation with ID %d deleted.\n", out.ID)
			return nil
		},
	}
	c.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted, required with --id)")
	c.Flags().Int64Var(&id, "id", 0, "reservation id to delete (interactive selection when omitted)")
	return c
}
