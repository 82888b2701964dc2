package schedule

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNoSlotSelected = errors.New("no slot selected")

// Selection tracks one booking draft: no date -> date -> date+slot. Invalid
// transitions are silent no-ops, and picking a new date always drops the slot
// chosen for the previous one.
type Selection struct {
	policy  Policy
	minDate time.Time
	date    time.Time
	slot    string
}

func NewSelection(p Policy, now time.Time) *Selection {
	return &Selection{
		policy:  p,
		minDate: MinSelectableDate(p, now),
	}
}

func (s *Selection) MinDate() time.Time { return s.minDate }
func (s *Selection) Date() time.Time    { return s.date }
func (s *Selection) Slot() string       { return s.slot }

// SelectDate accepts a working day on or after the minimum selectable date.
// On success any previously selected slot is cleared.
func (s *Selection) SelectDate(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.minDate.Location())
	if !s.policy.IsWorkingDay(d) || d.Before(s.minDate) {
		return false
	}
	s.date = d
	s.slot = ""
	return true
}

// SelectSlot requires a selected date.
func (s *Selection) SelectSlot(slot string) bool {
	if s.date.IsZero() || slot == "" {
		return false
	}
	s.slot = slot
	return true
}

// Submit yields the chosen date and slot. The selection itself is left
// untouched so a failed submission can be retried as-is.
func (s *Selection) Submit() (time.Time, string, error) {
	if s.date.IsZero() || s.slot == "" {
		return time.Time{}, "", ErrNoSlotSelected
	}
	return s.date, s.slot, nil
}
