package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

type Catalog interface {
	ListHotels(ctx context.Context) ([]reservation.Hotel, error)
	ListRoomTypes(ctx context.Context) ([]reservation.RoomType, error)
}

// PasswordFunc asks for the admin password. ok=false means the prompt was
// cancelled.
type PasswordFunc func(ctx context.Context, prompt string) (password string, ok bool, err error)

// Form is the terminal rendition of the reservation window: one loop that
// reads a user action, runs it to completion and waits for the next one.
type Form struct {
	Book    usecases.BookReservation
	Admin   usecases.AdminService
	Catalog Catalog

	// Password defaults to reading a visible line from the form input. Only
	// the end of input cancels; a blank answer is checked like any other.
	Password PasswordFunc
	Now      func() time.Time

	lines *lineReader
	out   io.Writer
}

func NewForm(in io.Reader, out io.Writer, book usecases.BookReservation, admin usecases.AdminService, catalog Catalog) *Form {
	return &Form{
		Book:    book,
		Admin:   admin,
		Catalog: catalog,
		Now:     time.Now,
		lines:   newLineReader(in),
		out:     out,
	}
}

const menu = `
Hotel reservations
  1) Reserve a room
  2) Delete a reservation
  3) Show all reservations
  4) Show hotel information
  q) Quit
`

// Close releases the input reader. The form reads no more lines after it.
func (f *Form) Close() {
	f.lines.close()
}

// Run dispatches user actions until the user quits, input ends or ctx is
// done, and closes the form on return. Only store failures end the loop with
// an error.
func (f *Form) Run(ctx context.Context) error {
	defer f.Close()
	for {
		fmt.Fprint(f.out, menu)
		choice, ok, err := f.ask(ctx, "> ")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch strings.ToLower(choice) {
		case "1", "reserve":
			err = f.Submit(ctx)
		case "2", "delete":
			err = f.DeleteReservation(ctx)
		case "3", "list", "reservations":
			err = f.ShowReservations(ctx)
		case "4", "hotels":
			err = f.ShowHotels(ctx)
		case "q", "quit", "exit":
			return nil
		case "":
		default:
			fmt.Fprintf(f.out, "Unknown choice %q.\n", choice)
		}
		if err != nil {
			return err
		}
	}
}

func (f *Form) ask(ctx context.Context, prompt string) (string, bool, error) {
	fmt.Fprint(f.out, prompt)
	line, ok, err := f.lines.next(ctx)
	return strings.TrimSpace(line), ok, err
}

func (f *Form) password(ctx context.Context) (string, bool, error) {
	const prompt = "Admin password: "
	if f.Password != nil {
		return f.Password(ctx, prompt)
	}
	return f.ask(ctx, prompt)
}

func (f *Form) Submit(ctx context.Context) error {
	hotels, err := f.Catalog.ListHotels(ctx)
	if err != nil {
		return fmt.Errorf("list hotels: %w", err)
	}
	rooms, err := f.Catalog.ListRoomTypes(ctx)
	if err != nil {
		return fmt.Errorf("list room types: %w", err)
	}

	hotelNames := make([]string, 0, len(hotels))
	for _, h := range hotels {
		hotelNames = append(hotelNames, h.Name)
	}
	roomNames := make([]string, 0, len(rooms))
	for _, r := range rooms {
		roomNames = append(roomNames, r.Name)
	}

	var form reservation.Form
	var ok bool
	if form.Hotel, ok, err = f.pick(ctx, "Hotel", hotelNames); err != nil || !ok {
		return err
	}
	if form.RoomType, ok, err = f.pick(ctx, "Room type", roomNames); err != nil || !ok {
		return err
	}
	fields := []struct {
		prompt string
		dst    *string
		date   bool
	}{
		{"Check-in date (YYYY-MM-DD, today, +N): ", &form.CheckIn, true},
		{"Check-out date (YYYY-MM-DD, today, +N): ", &form.CheckOut, true},
		{"First name: ", &form.FirstName, false},
		{"Last name: ", &form.LastName, false},
		{"Phone number: ", &form.Phone, false},
		{"Email address: ", &form.Email, false},
	}
	for _, fl := range fields {
		v, ok, err := f.ask(ctx, fl.prompt)
		if err != nil || !ok {
			return err
		}
		if fl.date {
			v = resolveDate(v, f.Now())
		}
		*fl.dst = v
	}

	conf, err := f.Book.Execute(ctx, form)
	switch {
	case err == nil:
		WriteConfirmation(f.out, conf)
		return nil
	case errors.Is(err, reservation.ErrIncomplete):
		fmt.Fprintln(f.out, "Please fill in all fields!")
		return nil
	case reservation.IsRecoverable(err):
		fmt.Fprintf(f.out, "Error: %v\n", err)
		return nil
	}
	return err
}

// pick offers a numbered list and accepts a number or an exact name. An
// empty answer leaves the field empty.
func (f *Form) pick(ctx context.Context, label string, options []string) (string, bool, error) {
	fmt.Fprintf(f.out, "%s:\n", label)
	for i, o := range options {
		fmt.Fprintf(f.out, "  %d) %s\n", i+1, o)
	}
	for {
		v, ok, err := f.ask(ctx, label+": ")
		if err != nil || !ok {
			return "", ok, err
		}
		if v == "" {
			return "", true, nil
		}
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], true, nil
		}
		for _, o := range options {
			if o == v {
				return o, true, nil
			}
		}
		fmt.Fprintf(f.out, "Choose one of the listed %ss.\n", strings.ToLower(label))
	}
}

// resolveDate expands the calendar shortcuts "today" and "+N" (days from
// today). Anything else is passed through for the workflow to parse.
func resolveDate(v string, now time.Time) string {
	switch {
	case strings.EqualFold(v, "today"):
		return now.Format(reservation.DateLayout)
	case strings.HasPrefix(v, "+"):
		n, err := strconv.Atoi(v[1:])
		if err != nil || n < 0 {
			return v
		}
		return now.AddDate(0, 0, n).Format(reservation.DateLayout)
	}
	return v
}

func (f *Form) ShowReservations(ctx context.Context) error {
	pw, ok, err := f.password(ctx)
	if err != nil || !ok {
		return err
	}
	rows, err := f.Admin.ListReservations(ctx, pw)
	if errors.Is(err, internaltypes.ErrUnauthorized) {
		fmt.Fprintln(f.out, "Wrong admin password!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}
	WriteReservations(f.out, rows)
	return nil
}

func (f *Form) DeleteReservation(ctx context.Context) error {
	pw, ok, err := f.password(ctx)
	if err != nil || !ok {
		return err
	}
	return f.DeleteReservationAs(ctx, pw)
}

// DeleteReservationAs runs the delete dialog with an already supplied admin
// password.
func (f *Form) DeleteReservationAs(ctx context.Context, pw string) error {
	out, err := f.Admin.DeleteReservation(ctx, pw, f.chooseReservation(ctx))
	if errors.Is(err, internaltypes.ErrUnauthorized) {
		fmt.Fprintln(f.out, "Wrong admin password!")
		return nil
	}
	if err != nil {
		return err
	}
	switch {
	case out.Cancelled:
	case out.Deleted:
		fmt.Fprintf(f.out, "Reservation with ID %d deleted.\n", out.ID)
	default:
		fmt.Fprintf(f.out, "Reservation with ID %d not found.\n", out.ID)
	}
	return nil
}

// chooseReservation is the delete dialog: list, select by number, or cancel
// with an empty answer.
func (f *Form) chooseReservation(ctx context.Context) usecases.Chooser {
	return func(rows []reservation.Detail) (int64, bool, error) {
		if len(rows) == 0 {
			fmt.Fprintln(f.out, "No reservations.")
			return 0, false, nil
		}
		fmt.Fprintln(f.out, "Select the reservation to delete:")
		for i, r := range rows {
			fmt.Fprintf(f.out, "  %d) %s\n", i+1, summary(r))
		}
		for {
			v, ok, err := f.ask(ctx, "Delete (number, empty to cancel): ")
			if err != nil || !ok || v == "" {
				return 0, false, err
			}
			n, err := strconv.Atoi(v)
			if err == nil && n >= 1 && n <= len(rows) {
				return rows[n-1].ID, true, nil
			}
			fmt.Fprintln(f.out, "Choose one of the listed reservations.")
		}
	}
}

func (f *Form) ShowHotels(ctx context.Context) error {
	hs, err := f.Catalog.ListHotels(ctx)
	if err != nil {
		return fmt.Errorf("list hotels: %w", err)
	}
	WriteHotels(f.out, hs)
	return nil
}
