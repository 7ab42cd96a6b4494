package usecase

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	got, ok := parseISODate("2024-06-10")
	if !ok || !got.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bare date: got %v ok=%v", got, ok)
	}

	got, ok = parseISODate("2024-06-10T22:15:00Z")
	if !ok || !got.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp: got %v ok=%v", got, ok)
	}

	for _, bad := range []string{"", "06-10-2024", "2024-13-01", "soon"} {
		if _, ok := parseISODate(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestUSToISO(t *testing.T) {
	if got, ok := usToISO("06-10-2024"); !ok || got != "2024-06-10" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if _, ok := usToISO("2024-06-10"); ok {
		t.Fatal("ISO input must not parse as MM-DD-YYYY")
	}
}

func TestDateRange(t *testing.T) {
	r := newDateRange("2024-06-01", "2024-06-10")
	if !r.active() {
		t.Fatal("expected active range")
	}
	cases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), false},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := r.contains(c.at); got != c.want {
			t.Fatalf("contains(%v) = %v, want %v", c.at, got, c.want)
		}
	}

	open := newDateRange("garbage", "")
	if open.active() || !open.contains(time.Unix(0, 0)) {
		t.Fatal("unparseable bounds must be ignored")
	}
}
