// Package catalog holds the fixed hotels and room types offered by the form
// and seeds them into the store.
package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/example/hotel-reservations/internal/db"
	"github.com/example/hotel-reservations/internal/domain/reservation"
)

var hotels = []reservation.Hotel{
	{Name: "Royal Hotel West", Address: "West Address", Phone: "12345678", Email: "west@example.com"},
	{Name: "Royal Hotel East", Address: "East Address", Phone: "87654321", Email: "east@example.com"},
	{Name: "Royal Hotel North", Address: "North Address", Phone: "98765432", Email: "north@example.com"},
	{Name: "Royal Hotel South", Address: "South Address", Phone: "23456789", Email: "south@example.com"},
}

var roomTypes = []string{
	"Single", "Double", "Deluxe Room", "Studio Room", "King Room", "Presidential Suite",
}

// Hotels returns a copy of the fixed hotel list, in display order.
func Hotels() []reservation.Hotel {
	return append([]reservation.Hotel(nil), hotels...)
}

// RoomTypes returns a copy of the fixed room type names, in display order.
func RoomTypes() []string {
	return append([]string(nil), roomTypes...)
}

type Writer interface {
	FindHotelID(ctx context.Context, name string) (int64, error)
	InsertHotel(ctx context.Context, h reservation.Hotel) (int64, error)
	FindRoomTypeID(ctx context.Context, name string) (int64, error)
	InsertRoomType(ctx context.Context, name string) (int64, error)
}

// Seed inserts every fixed hotel and room type whose name is not in the store
// yet. Existing rows are never touched, so Seed can run on every start.
func Seed(ctx context.Context, w Writer) error {
	added := 0
	for _, h := range hotels {
		_, err := w.FindHotelID(ctx, h.Name)
		if err == nil {
			continue
		}
		if !db.IsNotFound(err) {
			return fmt.Errorf("seed hotel %q: %w", h.Name, err)
		}
		if _, err := w.InsertHotel(ctx, h); err != nil {
			return fmt.Errorf("seed hotel %q: %w", h.Name, err)
		}
		added++
	}
	for _, name := range roomTypes {
		_, err := w.FindRoomTypeID(ctx, name)
		if err == nil {
			continue
		}
		if !db.IsNotFound(err) {
			return fmt.Errorf("seed room type %q: %w", name, err)
		}
		if _, err := w.InsertRoomType(ctx, name); err != nil {
			return fmt.Errorf("seed room type %q: %w", name, err)
		}
		added++
	}
	if added > 0 {
		log.Printf("catalog: seeded %d rows", added)
	}
	return nil
}
