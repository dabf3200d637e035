package domain

import (
	"strconv"
	"time"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateLayout is the wire layout of calendar dates.
const DateLayout = "2006-01-02"

// CivilDate drops the time of day and location, keeping the calendar date.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Period is a closed calendar interval [Start, End].
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the period, both ends included.
func (p Period) Contains(d time.Time) bool {
	d = CivilDate(d)
	return !d.Before(CivilDate(p.Start)) && !d.After(CivilDate(p.End))
}

// MonthPeriod returns the period spanning the whole calendar month of t.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, -1)}
}

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// FrenchMonthLabel renders a month as "Janvier 2025".
func FrenchMonthLabel(year int, month time.Month) string {
	return frenchMonths[month-1] + " " + strconv.Itoa(year)
}

