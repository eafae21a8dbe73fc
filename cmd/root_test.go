package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hotel-reservations/internal/domain/reservation"
	"github.com/example/hotel-reservations/internal/internaltypes"
)

type harness struct {
	t      *testing.T
	dbPath string
}

func newHarness(t *testing.T) harness {
	t.Setenv("HOTELRES_ADMIN_SECRET", "vika")
	t.Setenv("HOTELRES_DB_TIMEOUT_SECONDS", "5")
	return harness{t: t, dbPath: filepath.Join(t.TempDir(), "cmd.db")}
}

func (h harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--db", h.dbPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func (h harness) reserve(args ...string) (string, error) {
	flags := map[string]string{
		"hotel":      "Royal Hotel West",
		"room":       "Single",
		"checkin":    "2024-06-01",
		"checkout":   "2024-06-03",
		"first-name": "John",
		"last-name":  "Smith",
		"phone":      "12345678",
		"email":      "john@smith.com",
	}
	for i := 0; i+1 < len(args); i += 2 {
		flags[args[i]] = args[i+1]
	}
	argv := []string{"reserve"}
	for k, v := range flags {
		argv = append(argv, "--"+k+"="+v)
	}
	return h.run("", argv...)
}

func TestReserveAndList(t *testing.T) {
	h := newHarness(t)

	out, err := h.reserve()
	require.NoError(t, err)
	assert.Contains(t, out, "Reservation created!")
	assert.Contains(t, out, "Reservation ID: 1")

	out, err = h.run("", "reservations", "list", "--password", "vika")
	require.NoError(t, err)
	assert.Contains(t, out, "Hotel: Royal Hotel West")
	assert.Contains(t, out, "First name: John")
}

func TestReserveRejectsInvalidInput(t *testing.T) {
	h := newHarness(t)

	_, err := h.reserve("phone", "+371")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phone number")

	_, err = h.reserve("email", "")
	assert.ErrorIs(t, err, reservation.ErrIncomplete)

	_, err = h.reserve("hotel", "Royal Hotel Nowhere")
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)

	out, err := h.run("", "reservations", "list", "--password", "vika")
	require.NoError(t, err)
	assert.Contains(t, out, "No reservations.")
}

func TestListWrongPassword(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "reservations", "list", "--password", "guess")
	assert.ErrorIs(t, err, internaltypes.ErrUnauthorized)
}

func TestListPromptsForPassword(t *testing.T) {
	h := newHarness(t)
	_, err := h.reserve()
	require.NoError(t, err)

	out, err := h.run("vika\n", "reservations", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Admin password: ")
	assert.Contains(t, out, "Last name: Smith")
}

func TestDeleteByID(t *testing.T) {
	h := newHarness(t)
	_, err := h.reserve()
	require.NoError(t, err)

	out, err := h.run("", "reservations", "delete", "--id", "1", "--password", "vika")
	require.NoError(t, err)
	assert.Contains(t, out, "Reservation with ID 1 deleted.")

	out, err = h.run("", "reservations", "delete", "--id", "1", "--password", "vika")
	require.NoError(t, err)
	assert.Contains(t, out, "Reservation with ID 1 not found.")

	_, err = h.run("", "reservations", "delete", "--id", "1")
	require.Error(t, err)
}

func TestDeleteInteractive(t *testing.T) {
	h := newHarness(t)
	_, err := h.reserve()
	require.NoError(t, err)

	out, err := h.run("vika\n1\n", "reservations", "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "Select the reservation to delete:")
	assert.Contains(t, out, "Reservation with ID 1 deleted.")
}

func TestDeleteInteractiveWithPasswordFlag(t *testing.T) {
	h := newHarness(t)
	_, err := h.reserve()
	require.NoError(t, err)

	out, err := h.run("1\n", "reservations", "delete", "--password", "vika")
	require.NoError(t, err)
	assert.NotContains(t, out, "Admin password: ")
	assert.Contains(t, out, "Reservation with ID 1 deleted.")

	out, err = h.run("", "reservations", "list", "--password", "vika")
	require.NoError(t, err)
	assert.Contains(t, out, "No reservations.")
}

func TestCatalogCommands(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "hotels")
	require.NoError(t, err)
	assert.Contains(t, out, "Royal Hotel West")
	assert.Contains(t, out, "Royal Hotel South")

	out, err = h.run("", "rooms")
	require.NoError(t, err)
	assert.Contains(t, out, "Single")
	assert.Contains(t, out, "King Room")
}

func TestInteractiveFormFromRoot(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("4\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Hotel reservations")
	assert.Contains(t, out, "Royal Hotel North")
}

func TestPingAndVersion(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "ping")
	require.NoError(t, err)
	assert.Contains(t, out, h.dbPath+": ok")

	out, err = h.run("", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hotelres dev")
}

func TestBadTimeoutFailsEveryStoreCommand(t *testing.T) {
	h := newHarness(t)
	t.Setenv("HOTELRES_DB_TIMEOUT_SECONDS", "0")

	_, err := h.run("", "hotels")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOTELRES_DB_TIMEOUT_SECONDS")
}
