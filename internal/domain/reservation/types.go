package reservation

import "time"

// DateLayout is the on-disk and on-form date format.
const DateLayout = "2006-01-02"

type Hotel struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string
}

type RoomType struct {
	ID   int64
	Name string
}

type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

type Reservation struct {
	ID         int64
	HotelID    int64
	RoomTypeID int64
	CheckIn    time.Time
	CheckOut   time.Time
	ClientID   int64
}

// Detail is one row of the joined reservation listing.
type Detail struct {
	ID           int64
	HotelName    string
	RoomTypeName string
	CheckIn      time.Time
	CheckOut     time.Time
	FirstName    string
	LastName     string
	Phone        string
	Email        string
}

// Form holds the raw field values of one submission, as typed by the user.
type Form struct {
	Hotel     string
	RoomType  string
	CheckIn   string
	CheckOut  string
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// Complete reports whether every field has a value.
func (f Form) Complete() bool {
	for _, v := range []string{f.Hotel, f.RoomType, f.CheckIn, f.CheckOut, f.FirstName, f.LastName, f.Phone, f.Email} {
		if v == "" {
			return false
		}
	}
	return true
}

// Confirmation echoes a committed submission back to the user.
type Confirmation struct {
	ReservationID int64
	ClientID      int64

	Hotel    string
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time

	FirstName string
	LastName  string
	Phone     string
	Email     string
}
