package usecases

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/hotel-reservations/internal/catalog"
	"github.com/example/hotel-reservations/internal/db"
	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/migrate"
	"github.com/example/hotel-reservations/internal/store"
)

type fixture struct {
	db   *db.DB
	repo *store.Repo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	d, err := db.Open(ctx, filepath.Join(t.TempDir(), "usecases.db"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, migrate.Up(ctx, d))
	repo := store.NewRepo(d)
	require.NoError(t, catalog.Seed(ctx, repo))
	return fixture{db: d, repo: repo}
}

func (f fixture) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func johnSmith() reservation.Form {
	return reservation.Form{
		Hotel:     "Royal Hotel West",
		RoomType:  "Single",
		CheckIn:   "2024-06-01",
		CheckOut:  "2024-06-03",
		FirstName: "John",
		LastName:  "Smith",
		Phone:     "12345678",
		Email:     "john@smith.com",
	}
}
