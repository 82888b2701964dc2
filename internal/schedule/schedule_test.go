package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readspace/library-portal/internal/schedule"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	p, err := schedule.ParsePolicy("Mon,Tue,Wed,Thu,Fri")
	require.NoError(t, err)
	require.True(t, p.IsWorkingDay(day("2024-06-10")))  // Monday
	require.False(t, p.IsWorkingDay(day("2024-06-08"))) // Saturday

	p, err = schedule.ParsePolicy("saturday, sunday")
	require.NoError(t, err)
	require.True(t, p.IsWorkingDay(day("2024-06-08")))
	require.False(t, p.IsWorkingDay(day("2024-06-10")))

	_, err = schedule.ParsePolicy("Mon,Funday")
	require.Error(t, err)

	_, err = schedule.ParsePolicy("")
	require.Error(t, err)
}

func TestMinSelectableDate(t *testing.T) {
	t.Parallel()
	policy := schedule.DefaultPolicy()

	var tests = []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "working day truncates to midnight",
			now:  ts("2024-06-10T15:30:00"), // Monday
			want: day("2024-06-10"),
		},
		{
			name: "saturday advances to monday",
			now:  ts("2024-06-08T09:00:00"),
			want: day("2024-06-10"),
		},
		{
			name: "sunday advances to monday",
			now:  ts("2024-06-09T23:59:00"),
			want: day("2024-06-10"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := schedule.MinSelectableDate(policy, tt.now)
			require.Equal(t, tt.want, got)
			require.True(t, policy.IsWorkingDay(got))
			require.False(t, got.Before(day(tt.now.Format(time.DateOnly))))
		})
	}

	// holds for every day of a full year
	for d := day("2024-01-01"); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		got := schedule.MinSelectableDate(policy, d)
		require.True(t, policy.IsWorkingDay(got), "min selectable for %s", d)
		require.False(t, got.Before(d))
	}
}

func TestMonthGrid(t *testing.T) {
	t.Parallel()
	policy := schedule.DefaultPolicy()

	// June 2024 starts on a Saturday: six leading padding cells
	minDate := day("2024-06-12")
	cells := schedule.MonthGrid(2024, time.June, policy, minDate)
	require.Len(t, cells, 6+30)

	for i := 0; i < 6; i++ {
		require.Nil(t, cells[i])
	}
	for i, cell := range cells[6:] {
		require.NotNil(t, cell)
		require.Equal(t, i+1, cell.DayNumber)
		if cell.BeforeMin {
			require.False(t, cell.Selectable, "day %d is before min date", cell.DayNumber)
		}
		if !cell.WorkingDay {
			require.False(t, cell.Selectable, "day %d is not a working day", cell.DayNumber)
		}
	}

	// 2024-06-10 is a working Monday but before the min date
	require.True(t, cells[6+9].WorkingDay)
	require.True(t, cells[6+9].BeforeMin)
	require.False(t, cells[6+9].Selectable)

	// min date itself is selectable
	require.True(t, cells[6+11].Selectable)

	// September 2024 starts on a Sunday: no padding
	cells = schedule.MonthGrid(2024, time.September, policy, day("2024-09-02"))
	require.Len(t, cells, 30)
	require.NotNil(t, cells[0])
}

func TestAvailableSlots(t *testing.T) {
	t.Parallel()
	policy := schedule.DefaultPolicy()
	slots := []string{"09:00-11:00", "11:00-13:00", "14:00-16:00"}

	require.Empty(t, schedule.AvailableSlots(slots, day("2024-06-08"), policy)) // Saturday
	require.Equal(t, slots, schedule.AvailableSlots(slots, day("2024-06-10"), policy))

	// returned slice is a copy
	got := schedule.AvailableSlots(slots, day("2024-06-10"), policy)
	got[0] = "mutated"
	require.Equal(t, "09:00-11:00", slots[0])
}
