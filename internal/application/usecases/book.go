package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/example/hotel-reservations/internal/domain/reservation"
)

type BookingStore interface {
	FindHotelID(ctx context.Context, name string) (int64, error)
	FindRoomTypeID(ctx context.Context, name string) (int64, error)
	CreateBooking(ctx context.Context, res reservation.Reservation, c reservation.Client) (reservation.Reservation, reservation.Client, error)
}

// BookReservation is the submit workflow: validate the form, resolve the
// catalog names and persist one client plus one reservation.
type BookReservation struct {
	Store BookingStore
}

// Execute returns reservation.ErrIncomplete or a *reservation.ValidationError
// for input the user can correct. Any other error is a store or catalog
// failure.
func (u BookReservation) Execute(ctx context.Context, f reservation.Form) (reservation.Confirmation, error) {
	if u.Store == nil {
		return reservation.Confirmation{}, fmt.Errorf("store is nil")
	}
	checkIn, checkOut, err := f.Validate()
	if err != nil {
		return reservation.Confirmation{}, err
	}

	hotelID, err := u.Store.FindHotelID(ctx, f.Hotel)
	if err != nil {
		return reservation.Confirmation{}, fmt.Errorf("resolve hotel %q: %w", f.Hotel, err)
	}
	roomTypeID, err := u.Store.FindRoomTypeID(ctx, f.RoomType)
	if err != nil {
		return reservation.Confirmation{}, fmt.Errorf("resolve room type %q: %w", f.RoomType, err)
	}

	res, client, err := u.Store.CreateBooking(ctx,
		reservation.Reservation{HotelID: hotelID, RoomTypeID: roomTypeID, CheckIn: checkIn, CheckOut: checkOut},
		reservation.Client{FirstName: f.FirstName, LastName: f.LastName, Phone: f.Phone, Email: f.Email},
	)
	if err != nil {
		log.Printf("book: store failure: %v", err)
		return reservation.Confirmation{}, fmt.Errorf("save reservation: %w", err)
	}

	return reservation.Confirmation{
		ReservationID: res.ID,
		ClientID:      client.ID,
		Hotel:         f.Hotel,
		RoomType:      f.RoomType,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Phone:         f.Phone,
		Email:         f.Email,
	}, nil
}
