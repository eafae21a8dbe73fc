package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/interfaces/cli"
)

func runForm(cmd *cobra.Command, opts *rootOptions) error {
	ctx, cancel := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	return newForm(cmd, a).Run(ctx)
}

// newForm wires the terminal form to the command's streams. The admin
// password is read without echo when input is an interactive terminal.
func newForm(cmd *cobra.Command, a *app) *cli.Form {
	f := cli.NewForm(cmd.InOrStdin(), cmd.OutOrStdout(), a.book(), a.admin(), a.repo)
	if fd, ok := terminalFD(cmd); ok {
		f.Password = terminalPassword(fd, cmd.OutOrStdout())
	}
	return f
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
