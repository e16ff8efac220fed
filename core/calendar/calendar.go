package calendar

import (
	"fmt"
	"sort"
	"time"
)

const keyLayout = "2006-01-02"

// MaxDots is the number of event markers a day cell displays before collapsing
// the remainder into a "+N" overflow count.
const MaxDots = 2

// Event colors.
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Event is a dated entry shown on the dashboard mini calendar.
type Event struct {
	ID    string `json:"id" validate:"required"`
	Date  string `json:"date" validate:"required,datekey"`
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required,oneof=green blue yellow red"`
}

// Key returns t's zero-padded YYYY-MM-DD date key.
func Key(t time.Time) string {
	return t.Format(keyLayout)
}

// GroupByDate indexes events by their exact date key.
// Events sharing a key keep their original relative order.
func GroupByDate(events []Event) map[string][]Event {
	byDate := make(map[string][]Event, len(events))
	for _, evt := range events {
		byDate[evt.Date] = append(byDate[evt.Date], evt)
	}
	return byDate
}

type (
	// Cell is one day slot of a month grid.
	Cell struct {
		Date    time.Time `json:"-"`
		Key     string    `json:"key"`
		Day     int       `json:"day"`
		InMonth bool      `json:"inMonth"`
		Today   bool      `json:"today"`
		Events  []Event   `json:"events,omitempty"`
	}

	// Grid is a month laid out as full Sunday-first calendar weeks.
	Grid struct {
		Year  int        `json:"year"`
		Month time.Month `json:"month"`
		Cells []Cell     `json:"cells"`
	}
)

// Label returns the grid's display heading, e.g. "February 2026".
func (g Grid) Label() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// BuildGrid lays out the given month as full Sunday-first calendar weeks.
// Leading and trailing cells borrow days from the adjacent months and are
// marked InMonth=false; the total cell count is always a multiple of 7.
// Each cell carries the events whose date key matches it exactly, and the
// cell whose key equals now's key is flagged Today.
func BuildGrid(year int, month time.Month, events []Event, now time.Time) Grid {
	byDate := GroupByDate(events)
	todayKey := Key(now)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC) // day 0 of next month

	cells := make([]Cell, 0, 42)
	for i := int(first.Weekday()); i > 0; i-- {
		cells = append(cells, newCell(first.AddDate(0, 0, -i), false, byDate, todayKey))
	}
	for day := 1; day <= last.Day(); day++ {
		cells = append(cells, newCell(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true, byDate, todayKey))
	}
	for next := last; len(cells)%7 != 0; {
		next = next.AddDate(0, 0, 1)
		cells = append(cells, newCell(next, false, byDate, todayKey))
	}
	return Grid{Year: year, Month: month, Cells: cells}
}

func newCell(t time.Time, inMonth bool, byDate map[string][]Event, todayKey string) Cell {
	key := Key(t)
	return Cell{
		Date:    t,
		Key:     key,
		Day:     t.Day(),
		InMonth: inMonth,
		Today:   key == todayKey,
		Events:  byDate[key],
	}
}

// Dots returns the events a day cell displays, capped at MaxDots, and the
// count of hidden events beyond the cap. The cell itself keeps the full set.
func Dots(events []Event) ([]Event, int) {
	if len(events) <= MaxDots {
		return events, 0
	}
	return events[:MaxDots], len(events) - MaxDots
}

// Upcoming returns the n events with the smallest date keys. Zero-padded ISO
// keys sort lexicographically in chronological order; ties keep input order.
func Upcoming(events []Event, n int) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
