package usecase

import (
	"strings"
	"time"
)

const (
	isoDateLayout = "2006-01-02"
	usDateLayout  = "01-02-2006"
)

// parseISODate accepts a bare ISO date or a full RFC3339 timestamp and returns the
// UTC midnight of that calendar day.
func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return startOfDay(t), true
	}
	return time.Time{}, false
}

// usToISO converts MM-DD-YYYY into YYYY-MM-DD.
func usToISO(s string) (string, bool) {
	t, err := time.Parse(usDateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(isoDateLayout), true
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// dateRange is a [from, to] window of midnight-UTC bounds. A bound that did not parse
// is simply absent.
type dateRange struct {
	from, to       time.Time
	hasFrom, hasTo bool
}

func newDateRange(from, to string) dateRange {
	var r dateRange
	r.from, r.hasFrom = parseISODate(from)
	r.to, r.hasTo = parseISODate(to)
	return r
}

func (r dateRange) active() bool {
	return r.hasFrom || r.hasTo
}

func (r dateRange) contains(t time.Time) bool {
	if r.hasFrom && t.Before(r.from) {
		return false
	}
	if r.hasTo && t.After(r.to) {
		return false
	}
	return true
}
