package reservation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	cases := map[string]bool{
		"Anna":        true,
		"smith":       true,
		"Anna2":       false,
		"":            false,
		"Anna Marija": false,
		"O'Neil":      false,
		"Jānis":       false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValidName(in), "%q", in)
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := map[string]bool{
		"12345678": true,
		"0":        true,
		"+371123":  false,
		"":         false,
		"123 456":  false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValidPhone(in), "%q", in)
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.com":        true,
		"john@smith.com": true,
		"a@b.c.d":        true,
		"a.b.com":        false,
		"a@b@c.com":      false,
		"a@bcom":         false,
		"@b.com":         false,
		"a@.com":         false,
		"":               false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValidEmail(in), "%q", in)
	}
}

func TestIsValidDateOrder(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse(DateLayout, s)
		require.NoError(t, err)
		return v
	}
	assert.True(t, IsValidDateOrder(d("2024-01-10"), d("2024-01-11")))
	assert.False(t, IsValidDateOrder(d("2024-01-10"), d("2024-01-10")))
	assert.False(t, IsValidDateOrder(d("2024-01-11"), d("2024-01-10")))

	// same calendar day with different clock times is still not later
	in := d("2024-01-10").Add(1 * time.Hour)
	out := d("2024-01-10").Add(20 * time.Hour)
	assert.False(t, IsValidDateOrder(in, out))
}

func TestParseDateTruncatesTime(t *testing.T) {
	got, err := ParseDate("2024-06-01 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.Format(DateLayout))

	_, err = ParseDate("01/06/2024")
	require.Error(t, err)
}

func TestParseDateRequiresZeroPadding(t *testing.T) {
	_, err := ParseDate("2024-6-1")
	require.Error(t, err)
	_, err = ParseDate("2024-06-1")
	require.Error(t, err)

	f := validForm()
	f.CheckIn = "2024-6-1"
	_, _, err = f.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CheckDateFormat, ve.Check)
}

func validForm() Form {
	return Form{
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

func TestFormValidate(t *testing.T) {
	in, out, err := validForm().Validate()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", in.Format(DateLayout))
	assert.Equal(t, "2024-06-03", out.Format(DateLayout))
}

func TestFormValidateFirstFailureWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		check  Check
	}{
		{"bad date", func(f *Form) { f.CheckIn = "June 1st" }, CheckDateFormat},
		{"equal dates", func(f *Form) { f.CheckOut = f.CheckIn }, CheckDateOrder},
		// date order is checked before names
		{"order before name", func(f *Form) { f.CheckOut = "2024-05-01"; f.FirstName = "J0hn" }, CheckDateOrder},
		{"bad last name", func(f *Form) { f.LastName = "Smith Jr" }, CheckName},
		{"name before phone", func(f *Form) { f.FirstName = "J0hn"; f.Phone = "abc" }, CheckName},
		{"bad phone", func(f *Form) { f.Phone = "+371123" }, CheckPhone},
		{"bad email", func(f *Form) { f.Email = "john.smith.com" }, CheckEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			_, _, err := f.Validate()
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.check, ve.Check)
			assert.True(t, IsRecoverable(err))
		})
	}
}

func TestFormValidateIncomplete(t *testing.T) {
	f := validForm()
	f.Email = ""
	_, _, err := f.Validate()
	require.ErrorIs(t, err, ErrIncomplete)
	assert.True(t, IsRecoverable(err))
	assert.False(t, IsRecoverable(errors.New("disk I/O error")))
}

func TestDateFormatErrorCarriesParserMessage(t *testing.T) {
	f := validForm()
	f.CheckOut = "2024-13-01"
	_, _, err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date format")
	assert.Contains(t, err.Error(), "month out of range")
}
