package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readspace/library-portal/internal/model"
	"github.com/readspace/library-portal/internal/status"
)

func date(s string) model.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return model.Date{Time: t}
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestDeriveBooking(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name    string
		booking model.Booking
		now     time.Time
		want    model.BookingStatus
	}{
		{
			name:    "confirmed before end stays confirmed",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T11:00:00"),
			want:    model.BookingConfirmed,
		},
		{
			name:    "confirmed after end becomes completed",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T13:00:00"),
			want:    model.BookingCompleted,
		},
		{
			name:    "boundary now equals end is not completed",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T12:00:00"),
			want:    model.BookingConfirmed,
		},
		{
			name:    "one second past end completes",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T12:00:01"),
			want:    model.BookingCompleted,
		},
		{
			name:    "pending_payment passes through",
			booking: model.Booking{Status: model.BookingPendingPayment, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T13:00:00"),
			want:    model.BookingPendingPayment,
		},
		{
			name:    "cancelled passes through",
			booking: model.Booking{Status: model.BookingCancelled, Date: date("2024-06-10"), EndTime: "12:00"},
			now:     ts("2024-06-10T13:00:00"),
			want:    model.BookingCancelled,
		},
		{
			name:    "malformed end time stays confirmed",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10"), EndTime: "noon"},
			now:     ts("2024-06-10T13:00:00"),
			want:    model.BookingConfirmed,
		},
		{
			name:    "empty end time stays confirmed",
			booking: model.Booking{Status: model.BookingConfirmed, Date: date("2024-06-10")},
			now:     ts("2024-06-10T13:00:00"),
			want:    model.BookingConfirmed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, status.DeriveBooking(tt.booking, tt.now))
		})
	}
}

func TestDeriveLoan(t *testing.T) {
	t.Parallel()
	fine := 3.5

	var tests = []struct {
		name string
		loan model.Loan
		now  time.Time
		want status.LoanDisplay
	}{
		{
			name: "borrowed within due date",
			loan: model.Loan{Status: model.LoanBorrowed, BorrowDate: tsp("2024-11-01T00:00:00"), DueDate: tsp("2024-11-08T00:00:00")},
			now:  ts("2024-11-05T10:00:00"),
			want: status.LoanDisplay{Status: model.LoanBorrowed, EffectiveBorrowDate: ts("2024-11-01T00:00:00")},
		},
		{
			name: "borrowed past due date is flagged overdue, not renamed",
			loan: model.Loan{Status: model.LoanBorrowed, BorrowDate: tsp("2024-11-01T00:00:00"), DueDate: tsp("2024-11-08T00:00:00")},
			now:  ts("2024-11-09T10:00:00"),
			want: status.LoanDisplay{Status: model.LoanBorrowed, EffectiveBorrowDate: ts("2024-11-01T00:00:00"), IsOverdue: true},
		},
		{
			name: "returned passes through",
			loan: model.Loan{Status: model.LoanReturned, BorrowDate: tsp("2024-11-01T00:00:00"), DueDate: tsp("2024-11-08T00:00:00")},
			now:  ts("2024-12-01T00:00:00"),
			want: status.LoanDisplay{Status: model.LoanReturned, EffectiveBorrowDate: ts("2024-11-01T00:00:00")},
		},
		{
			name: "late keeps backend status and fine",
			loan: model.Loan{Status: model.LoanLate, BorrowDate: tsp("2024-11-01T00:00:00"), DueDate: tsp("2024-11-08T00:00:00"), FineAmount: &fine},
			now:  ts("2024-12-01T00:00:00"),
			want: status.LoanDisplay{Status: model.LoanLate, EffectiveBorrowDate: ts("2024-11-01T00:00:00"), FineAmount: &fine},
		},
		{
			name: "missing borrow date falls back to due minus seven days",
			loan: model.Loan{Status: model.LoanReturned, DueDate: tsp("2024-11-15T00:00:00")},
			now:  ts("2024-12-01T00:00:00"),
			want: status.LoanDisplay{Status: model.LoanReturned, EffectiveBorrowDate: ts("2024-11-08T00:00:00")},
		},
		{
			name: "missing both dates yields zero sentinel",
			loan: model.Loan{Status: model.LoanReturned},
			now:  ts("2024-12-01T00:00:00"),
			want: status.LoanDisplay{Status: model.LoanReturned},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, status.DeriveLoan(tt.loan, tt.now))
		})
	}
}

func TestSortLoans(t *testing.T) {
	t.Parallel()

	views := []model.LoanView{
		{Loan: model.Loan{LoanUid: "old"}, EffectiveBorrowDate: date("2024-01-01")},
		{Loan: model.Loan{LoanUid: "dateless"}},
		{Loan: model.Loan{LoanUid: "new"}, EffectiveBorrowDate: date("2024-11-01")},
		{Loan: model.Loan{LoanUid: "tie-a"}, EffectiveBorrowDate: date("2024-06-01")},
		{Loan: model.Loan{LoanUid: "tie-b"}, EffectiveBorrowDate: date("2024-06-01")},
	}
	status.SortLoans(views)

	got := make([]string, 0, len(views))
	for _, v := range views {
		got = append(got, v.LoanUid)
	}
	// dateless records sort strictly after any real date; ties keep input order
	require.Equal(t, []string{"new", "tie-a", "tie-b", "old", "dateless"}, got)
}

func TestSortBookings(t *testing.T) {
	t.Parallel()

	views := []model.BookingView{
		{Booking: model.Booking{BookingUid: "a", Date: date("2024-03-01")}},
		{Booking: model.Booking{BookingUid: "b", Date: date("2024-05-01")}},
		{Booking: model.Booking{BookingUid: "c", Date: date("2024-05-01")}},
		{Booking: model.Booking{BookingUid: "d", Date: date("2024-04-01")}},
	}
	status.SortBookings(views)

	got := make([]string, 0, len(views))
	for _, v := range views {
		got = append(got, v.BookingUid)
	}
	require.Equal(t, []string{"b", "c", "d", "a"}, got)
}
