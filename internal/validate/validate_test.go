package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"decoyauction/internal/validate"
)

func TestPhone(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"+14155550123", true},
		{"14155550123", true},
		{"+491711234567", true},
		{"912345678901234", true},  // 15 digits, max length
		{"  +14155550123  ", true}, // trimmed before matching
		{"", false},
		{"+", false},
		{"1", false},
		{"+0123456", false}, // leading zero
		{"0123456", false},
		{"415-555-0123", false},
		{"+1 415 555 0123", false},
		{"abc", false},
		{"+1234567890123456", false}, // 16 digits, too long
	}
	for _, tc := range cases {
		_, ok := validate.Phone(tc.in)
		require.Equalf(t, tc.ok, ok, "Phone(%q)", tc.in)
	}
}

func TestPrice(t *testing.T) {
	v, ok := validate.Price("46500.50")
	require.True(t, ok)
	require.Equal(t, 46500.50, v)

	for _, bad := range []string{"", "free", "-10", "0"} {
		_, ok := validate.Price(bad)
		require.Falsef(t, ok, "Price(%q)", bad)
	}
}

func TestImageURL(t *testing.T) {
	_, ok := validate.ImageURL("https://images.example.com/car.jpg")
	require.True(t, ok)

	for _, bad := range []string{"", "not a url", "ftp://x/y.jpg", "/relative/path.jpg"} {
		_, ok := validate.ImageURL(bad)
		require.Falsef(t, ok, "ImageURL(%q)", bad)
	}
}

func TestID(t *testing.T) {
	_, ok := validate.ID("car-m3-2019")
	require.True(t, ok)
	_, ok = validate.ID("../etc/passwd")
	require.False(t, ok)
	_, ok = validate.ID("")
	require.False(t, ok)
}
