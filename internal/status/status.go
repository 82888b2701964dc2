// Package status derives the display status of bookings and loans from their
// stored status and the current time. Derived values are recomputed on every
// read and never written back.
package status

import (
	"sort"
	"strings"
	"time"

	"github.com/readspace/library-portal/internal/model"
)

// loanPeriod is the standard loan duration, used to reconstruct a missing
// borrow date from the due date.
const loanPeriod = 7 * 24 * time.Hour

// DeriveBooking returns the effective display status of a booking. Stored
// statuses other than confirmed pass through verbatim; a confirmed booking
// becomes completed once now is strictly past its end instant. A malformed
// end time leaves the booking confirmed.
func DeriveBooking(b model.Booking, now time.Time) model.BookingStatus {
	if b.Status != model.BookingConfirmed {
		return b.Status
	}
	end, ok := endInstant(b.Date.Time, b.EndTime)
	if !ok {
		return model.BookingConfirmed
	}
	if now.After(end) {
		return model.BookingCompleted
	}
	return model.BookingConfirmed
}

// endInstant combines the booking's calendar day with its HH:MM end time,
// seconds zeroed.
func endInstant(day time.Time, hhmm string) (time.Time, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), true
}

type LoanDisplay struct {
	Status model.LoanStatus
	// EffectiveBorrowDate is the borrow date, reconstructed from the due date
	// when missing. Zero when neither is known, which sorts last descending.
	EffectiveBorrowDate time.Time
	// IsOverdue is advisory only: a borrowed loan past its due date. The
	// stored status stays authoritative and is never promoted to late here.
	IsOverdue  bool
	FineAmount *float64
}

// DeriveLoan computes the loan's display annotations. The stored status
// passes through unchanged for all three states.
func DeriveLoan(l model.Loan, now time.Time) LoanDisplay {
	d := LoanDisplay{
		Status:              l.Status,
		EffectiveBorrowDate: effectiveBorrowDate(l),
	}
	switch l.Status {
	case model.LoanLate:
		d.FineAmount = l.FineAmount
	case model.LoanBorrowed:
		if l.DueDate != nil && now.After(*l.DueDate) {
			d.IsOverdue = true
		}
	}
	return d
}

func effectiveBorrowDate(l model.Loan) time.Time {
	if l.BorrowDate != nil && !l.BorrowDate.IsZero() {
		return *l.BorrowDate
	}
	if l.DueDate != nil && !l.DueDate.IsZero() {
		return l.DueDate.Add(-loanPeriod)
	}
	return time.Time{}
}

// SortLoans orders by effective borrow date descending, ties kept in input order.
func SortLoans(items []model.LoanView) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EffectiveBorrowDate.After(items[j].EffectiveBorrowDate.Time)
	})
}

// SortBookings orders by booking date descending, ties kept in input order.
func SortBookings(items []model.BookingView) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date.Time)
	})
}
