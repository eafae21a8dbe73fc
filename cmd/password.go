package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/example/hotel-reservations/internal/interfaces/cli"
)

// terminalFD returns stdin's descriptor when the command reads from an
// interactive terminal.
func terminalFD(cmd *cobra.Command) (int, bool) {
	if cmd.InOrStdin() != os.Stdin {
		return 0, false
	}
	fd := int(os.Stdin.Fd())
	return fd, term.IsTerminal(fd)
}

func terminalPassword(fd int, out io.Writer) cli.PasswordFunc {
	return func(ctx context.Context, prompt string) (string, bool, error) {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", false, err
		}
		if ctx.Err() != nil {
			return "", false, nil
		}
		return string(b), true, nil
	}
}
