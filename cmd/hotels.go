package cmd

import (
	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/interfaces/cli"
)

func newHotelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hotels",
		Short: "Show information about all hotels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			hs, err := a.repo.ListHotels(ctx)
			if err != nil {
				return err
			}
			cli.WriteHotels(cmd.OutOrStdout(), hs)
			return nil
		},
	}
}

func newRoomsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the room types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			rts, err := a.repo.ListRoomTypes(ctx)
			if err != nil {
				return err
			}
			cli.WriteRoomTypes(cmd.OutOrStdout(), rts)
			return nil
		},
	}
}
