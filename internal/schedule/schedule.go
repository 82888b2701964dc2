// Package schedule computes room availability: working-day gating, the
// earliest selectable day and the month grid offered to the calendar view.
// Everything here is a pure function of its inputs.
package schedule

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Policy is the fixed set of weekdays on which rooms accept bookings.
type Policy struct {
	workingWeekdays map[time.Weekday]struct{}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func NewPolicy(weekdays ...time.Weekday) Policy {
	p := Policy{workingWeekdays: make(map[time.Weekday]struct{}, len(weekdays))}
	for _, wd := range weekdays {
		p.workingWeekdays[wd] = struct{}{}
	}
	return p
}

// DefaultPolicy is Mon-Fri.
func DefaultPolicy() Policy {
	return NewPolicy(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

// ParsePolicy parses a comma-separated weekday list, e.g. "Mon,Tue,Wed,Thu,Fri".
func ParsePolicy(s string) (Policy, error) {
	parts := strings.Split(s, ",")
	weekdays := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		wd, ok := weekdayNames[name]
		if !ok {
			return Policy{}, errors.Errorf("unknown weekday %q", part)
		}
		weekdays = append(weekdays, wd)
	}
	if len(weekdays) == 0 {
		return Policy{}, errors.New("empty working-day list")
	}
	return NewPolicy(weekdays...), nil
}

func (p Policy) IsWorkingDay(date time.Time) bool {
	_, ok := p.workingWeekdays[date.Weekday()]
	return ok
}

// MinSelectableDate returns today truncated to midnight, advanced to the next
// working day when today is not one. The result is always a working day and
// never in the past.
func MinSelectableDate(p Policy, now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for !p.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// Cell is one day in the month grid. Leading padding positions before the
// first of the month are represented as nil entries.
type Cell struct {
	DayNumber  int       `json:"dayNumber"`
	Date       time.Time `json:"date"`
	WorkingDay bool      `json:"isWorkingDay"`
	BeforeMin  bool      `json:"isBeforeMinDate"`
	Selectable bool      `json:"isSelectable"`
}

// MonthGrid lays out the given month: nil padding for the weekdays before the
// 1st, then one cell per day. A cell is selectable iff it is a working day on
// or after minDate.
func MonthGrid(year int, month time.Month, p Policy, minDate time.Time) []*Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, minDate.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*Cell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, minDate.Location())
		working := p.IsWorkingDay(date)
		beforeMin := date.Before(minDate)
		cells = append(cells, &Cell{
			DayNumber:  day,
			Date:       date,
			WorkingDay: working,
			BeforeMin:  beforeMin,
			Selectable: working && !beforeMin,
		})
	}
	return cells
}

// AvailableSlots returns the room's configured slots for a date, or nothing on
// non-working days. Collisions with existing bookings are not filtered here:
// the database rejects a taken slot on insert.
func AvailableSlots(slots []string, date time.Time, p Policy) []string {
	if !p.IsWorkingDay(date) {
		return nil
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}
