// Package calendar lays out a month grid and marks the days the library is closed.
package calendar

import (
	"fmt"
	"time"

	"github.com/kevinaaaquil/oct-library/models"
)

// MonthLayout is the query format for a month, e.g. "2024-05".
const MonthLayout = "2006-01"

// Day is one cell of the grid.
type Day struct {
	Date    time.Time `json:"date"`
	Key     string    `json:"key"`
	InMonth bool      `json:"inMonth"`
	Today   bool      `json:"today"`
	Closed  bool      `json:"closed"`
	Reason  string    `json:"reason,omitempty"`
}

// Week is seven days starting on Sunday.
type Week [7]Day

// Month is a rendered month.
type Month struct {
	Year     int                 `json:"year"`
	Month    time.Month          `json:"month"`
	Weeks    []Week              `json:"weeks"`
	Closures []models.ClosedDate `json:"closures"`
}

// Build lays out the month containing month. Every day whose key matches a
// closed date is marked closed; closures lists the matching entries inside the month.
// When two entries share a date the first one wins.
func Build(month, today time.Time, closed []models.ClosedDate) Month {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	byDate := make(map[string]models.ClosedDate, len(closed))
	for _, c := range closed {
		if _, dup := byDate[c.Date]; !dup {
			byDate[c.Date] = c
		}
	}
	todayKey := today.Format(models.DateLayout)

	m := Month{Year: first.Year(), Month: first.Month(), Closures: []models.ClosedDate{}}
	day := first.AddDate(0, 0, -int(first.Weekday()))
	for {
		var w Week
		for i := range w {
			key := day.Format(models.DateLayout)
			c, closed := byDate[key]
			w[i] = Day{
				Date:    day,
				Key:     key,
				InMonth: day.Month() == first.Month(),
				Today:   key == todayKey,
				Closed:  closed,
				Reason:  c.Reason,
			}
			if closed && w[i].InMonth {
				m.Closures = append(m.Closures, c)
			}
			day = day.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, w)
		if day.Month() != first.Month() {
			break
		}
	}
	return m
}

// ParseMonth reads a "YYYY-MM" value, falling back to the month of fallback.
func ParseMonth(s string, fallback time.Time) time.Time {
	if t, err := time.Parse(MonthLayout, s); err == nil {
		return t
	}
	return time.Date(fallback.Year(), fallback.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Key returns the month as "YYYY-MM".
func (m Month) Key() string {
	return m.first().Format(MonthLayout)
}

func (m Month) Prev() string {
	return m.first().AddDate(0, -1, 0).Format(MonthLayout)
}

func (m Month) Next() string {
	return m.first().AddDate(0, 1, 0).Format(MonthLayout)
}

// Label is the heading shown above the grid.
func (m Month) Label() string {
	return fmt.Sprintf("%d年%d月", m.Year, int(m.Month))
}

// Weekdays are the column headings, Sunday first.
var Weekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}
