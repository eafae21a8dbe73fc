package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

type AdminStore interface {
	ListReservations(ctx context.Context) ([]reservation.Detail, error)
	DeleteReservation(ctx context.Context, id int64) (bool, error)
}

// AdminService gates reservation listing and deletion behind the configured
// admin secret.
type AdminService struct {
	Secret       string
	Reservations AdminStore
}

// CheckAdminSecret compares candidate with the configured secret in constant
// time. An empty secret never matches.
func (a AdminService) CheckAdminSecret(candidate string) bool {
	if a.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.Secret)) == 1
}

func (a AdminService) authorize(password string) error {
	if !a.CheckAdminSecret(password) {
		return internaltypes.ErrUnauthorized
	}
	return nil
}

func (a AdminService) ListReservations(ctx context.Context, password string) ([]reservation.Detail, error) {
	if err := a.authorize(password); err != nil {
		return nil, err
	}
	return a.Reservations.ListReservations(ctx)
}

// Chooser picks one row to delete. ok=false means the user cancelled.
type Chooser func(rows []reservation.Detail) (id int64, ok bool, err error)

type DeleteOutcome struct {
	ID        int64
	Deleted   bool
	Cancelled bool
}

// DeleteReservation runs the delete dialog: list the reservations, let choose
// pick one, delete it.
func (a AdminService) DeleteReservation(ctx context.Context, password string, choose Chooser) (DeleteOutcome, error) {
	if err := a.authorize(password); err != nil {
		return DeleteOutcome{}, err
	}
	rows, err := a.Reservations.ListReservations(ctx)
	if err != nil {
		return DeleteOutcome{}, err
	}
	id, ok, err := choose(rows)
	if err != nil {
		return DeleteOutcome{}, err
	}
	if !ok {
		return DeleteOutcome{Cancelled: true}, nil
	}
	deleted, err := a.Reservations.DeleteReservation(ctx, id)
	if err != nil {
		return DeleteOutcome{}, fmt.Errorf("delete reservation %d: %w", id, err)
	}
	return DeleteOutcome{ID: id, Deleted: deleted}, nil
}

// ByID is a Chooser that always picks id, for non-interactive callers.
func ByID(id int64) Chooser {
	return func([]reservation.Detail) (int64, bool, error) { return id, true, nil }
}
