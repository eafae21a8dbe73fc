package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/application/usecases"
)

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the reservation store can be opened",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			uc := usecases.PingStore{Store: a.db, Timeout: a.cfg.DBTimeout}
			if err := uc.Execute(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", a.cfg.DatabasePath)
			return nil
		},
	}
}
