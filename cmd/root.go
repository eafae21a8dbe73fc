package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

type rootOptions struct {
	dbPath string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hotelres",
		Short:         "Hotel reservation form backed by a local SQLite file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite file (overrides HOTELRES_DB)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newReserveCmd(opts))
	root.AddCommand(newReservationsCmd(opts))
	root.AddCommand(newHotelsCmd(opts))
	root.AddCommand(newRoomsCmd(opts))
	root.AddCommand(newPingCmd(opts))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
