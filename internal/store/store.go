package store

import (
	"context"
	"fmt"

	"github.com/example/hotel-reservations/internal/db"
	"github.com/example/hotel-reservations/internal/domain/reservation"
)

// Repo is the reservation store. A Repo returned by InTx runs every
// statement inside that transaction.
type Repo struct {
	db *db.DB
	q  db.Querier
}

func NewRepo(d *db.DB) *Repo { return &Repo{db: d, q: d} }

// InTx runs fn with a Repo bound to a single transaction.
func (r *Repo) InTx(ctx context.Context, fn func(tx *Repo) error) error {
	if _, ok := r.q.(*db.Tx); ok {
		return fn(r)
	}
	return r.db.WithTx(ctx, func(tx *db.Tx) error {
		return fn(&Repo{db: r.db, q: tx})
	})
}

func (r *Repo) FindHotelID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `SELECT Hotel_ID FROM Hotels WHERE Name=?`, name).Scan(&id)
	if err != nil {
		return 0, db.WrapNotFound(err)
	}
	return id, nil
}

func (r *Repo) FindRoomTypeID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `SELECT Room_Type_ID FROM RoomTypes WHERE Name=?`, name).Scan(&id)
	if err != nil {
		return 0, db.WrapNotFound(err)
	}
	return id, nil
}

func (r *Repo) InsertHotel(ctx context.Context, h reservation.Hotel) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO Hotels (Name, Address, Phone, Email) VALUES (?, ?, ?, ?) RETURNING Hotel_ID`,
		h.Name, h.Address, h.Phone, h.Email,
	).Scan(&id)
	return id, err
}

func (r *Repo) InsertRoomType(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `INSERT INTO RoomTypes (Name) VALUES (?) RETURNING Room_Type_ID`, name).Scan(&id)
	return id, err
}

func (r *Repo) ListHotels(ctx context.Context) ([]reservation.Hotel, error) {
	rows, err := r.q.Query(ctx, `SELECT Hotel_ID, Name, Address, Phone, Email FROM Hotels ORDER BY Hotel_ID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reservation.Hotel
	for rows.Next() {
		var h reservation.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) ListRoomTypes(ctx context.Context) ([]reservation.RoomType, error) {
	rows, err := r.q.Query(ctx, `SELECT Room_Type_ID, Name FROM RoomTypes ORDER BY Room_Type_ID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reservation.RoomType
	for rows.Next() {
		var rt reservation.RoomType
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// NextClientID previews the identifier the next client row is expected to
// get: one more than the current maximum, or 1 for an empty table.
func (r *Repo) NextClientID(ctx context.Context) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(Client_ID), 0) + 1 FROM Clients`).Scan(&id)
	return id, err
}

func (r *Repo) InsertClient(ctx context.Context, c reservation.Client) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO Clients (First_Name, Last_Name, Phone, Email) VALUES (?, ?, ?, ?) RETURNING Client_ID`,
		c.FirstName, c.LastName, c.Phone, c.Email,
	).Scan(&id)
	return id, err
}

func (r *Repo) InsertReservation(ctx context.Context, res reservation.Reservation) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
INSERT INTO Reservations (Hotel_ID, Room_Type_ID, Check_In_Date, Check_Out_Date, Client_ID)
VALUES (?, ?, ?, ?, ?)
RETURNING Reservation_ID`,
		res.HotelID, res.RoomTypeID, res.CheckIn.Format(reservation.DateLayout), res.CheckOut.Format(reservation.DateLayout), res.ClientID,
	).Scan(&id)
	return id, err
}

// CreateBooking inserts the client and then the reservation that references
// it, both in one transaction. The ids are filled in on the returned values.
func (r *Repo) CreateBooking(ctx context.Context, res reservation.Reservation, c reservation.Client) (reservation.Reservation, reservation.Client, error) {
	err := r.InTx(ctx, func(tx *Repo) error {
		clientID, err := tx.InsertClient(ctx, c)
		if err != nil {
			return fmt.Errorf("insert client: %w", err)
		}
		c.ID = clientID
		res.ClientID = clientID

		resID, err := tx.InsertReservation(ctx, res)
		if err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		res.ID = resID
		return nil
	})
	if err != nil {
		return reservation.Reservation{}, reservation.Client{}, err
	}
	return res, c, nil
}

// ListReservations joins every reservation with its hotel, room type and
// client. Rows come back in the store's natural order.
func (r *Repo) ListReservations(ctx context.Context) ([]reservation.Detail, error) {
	rows, err := r.q.Query(ctx, `
SELECT Reservations.Reservation_ID, Hotels.Name, RoomTypes.Name,
       Reservations.Check_In_Date, Reservations.Check_Out_Date,
       Clients.First_Name, Clients.Last_Name, Clients.Phone, Clients.Email
FROM Reservations
INNER JOIN Hotels ON Reservations.Hotel_ID = Hotels.Hotel_ID
INNER JOIN RoomTypes ON Reservations.Room_Type_ID = RoomTypes.Room_Type_ID
INNER JOIN Clients ON Reservations.Client_ID = Clients.Client_ID`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reservation.Detail
	for rows.Next() {
		var d reservation.Detail
		var checkIn, checkOut string
		if err := rows.Scan(&d.ID, &d.HotelName, &d.RoomTypeName, &checkIn, &checkOut,
			&d.FirstName, &d.LastName, &d.Phone, &d.Email); err != nil {
			return nil, err
		}
		if d.CheckIn, err = reservation.ParseDate(checkIn); err != nil {
			return nil, fmt.Errorf("reservation %d: check-in: %w", d.ID, err)
		}
		if d.CheckOut, err = reservation.ParseDate(checkOut); err != nil {
			return nil, fmt.Errorf("reservation %d: check-out: %w", d.ID, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteReservation removes one reservation row and reports whether it
// existed. The client row is left in place.
func (r *Repo) DeleteReservation(ctx context.Context, id int64) (bool, error) {
	n, err := r.q.Exec(ctx, `DELETE FROM Reservations WHERE Reservation_ID=?`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
