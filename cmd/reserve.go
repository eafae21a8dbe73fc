package cmd

import (
	"github.com/spf13/cobra"

	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/interfaces/cli"
)

func newReserveCmd(opts *rootOptions) *cobra.Command {
	var form reservation.Form

	c := &cobra.Command{
		Use:   "reserve",
		Short: "Submit one reservation without the interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			conf, err := a.book().Execute(ctx, form)
			if err != nil {
				return err
			}
			cli.WriteConfirmation(cmd.OutOrStdout(), conf)
			return nil
		},
	}

	c.Flags().StringVar(&form.Hotel, "hotel", "", "hotel name, e.g. \"Royal Hotel West\"")
	c.Flags().StringVar(&form.RoomType, "room", "", "room type, e.g. Single")
	c.Flags().StringVar(&form.CheckIn, "checkin", "", "check-in date YYYY-MM-DD")
	c.Flags().StringVar(&form.CheckOut, "checkout", "", "check-out date YYYY-MM-DD")
	c.Flags().StringVar(&form.FirstName, "first-name", "", "guest first name (letters only)")
	c.Flags().StringVar(&form.LastName, "last-name", "", "guest last name (letters only)")
	c.Flags().StringVar(&form.Phone, "phone", "", "phone number (digits only)")
	c.Flags().StringVar(&form.Email, "email", "", "email address")
	return c
}
