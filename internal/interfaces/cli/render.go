package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

func WriteConfirmation(w io.Writer, c reservation.Confirmation) {
	fmt.Fprintf(w, "Reservation created!\n"+
		"Reservation ID: %d\n"+
		"Hotel: %s\n"+
		"Room type: %s\n"+
		"Check-in date: %s\n"+
		"Check-out date: %s\n"+
		"First name: %s\n"+
		"Last name: %s\n"+
		"Phone: %s\n"+
		"Email: %s\n",
		c.ReservationID, c.Hotel, c.RoomType,
		c.CheckIn.Format(reservation.DateLayout), c.CheckOut.Format(reservation.DateLayout),
		c.FirstName, c.LastName, c.Phone, c.Email)
}

func WriteReservations(w io.Writer, rows []reservation.Detail) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No reservations.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "Reservation ID: %d\n"+
			"Hotel: %s\n"+
			"Room type: %s\n"+
			"Check-in date: %s\n"+
			"Check-out date: %s\n"+
			"First name: %s\n"+
			"Last name: %s\n"+
			"Phone: %s\n"+
			"Email: %s\n"+
			"%s\n",
			r.ID, r.HotelName, r.RoomTypeName,
			r.CheckIn.Format(reservation.DateLayout), r.CheckOut.Format(reservation.DateLayout),
			r.FirstName, r.LastName, r.Phone, r.Email,
			strings.Repeat("-", 30))
	}
}

// summary is the one-line form used by the delete dialog's list.
func summary(r reservation.Detail) string {
	return fmt.Sprintf("#%d %s, %s, %s..%s, %s %s, %s, %s",
		r.ID, r.HotelName, r.RoomTypeName,
		r.CheckIn.Format(reservation.DateLayout), r.CheckOut.Format(reservation.DateLayout),
		r.FirstName, r.LastName, r.Phone, r.Email)
}

func WriteHotels(w io.Writer, hs []reservation.Hotel) {
	for _, h := range hs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", h.ID, h.Name, h.Address, h.Phone, h.Email)
	}
}

func WriteRoomTypes(w io.Writer, rts []reservation.RoomType) {
	for _, rt := range rts {
		fmt.Fprintf(w, "%d\t%s\n", rt.ID, rt.Name)
	}
}
