package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readspace/library-portal/internal/schedule"
)

func TestSelection(t *testing.T) {
	t.Parallel()
	policy := schedule.DefaultPolicy()
	now := ts("2024-06-07T10:00:00") // Friday

	t.Run("slot requires a date", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, now)
		require.False(t, sel.SelectSlot("09:00-11:00"))
		_, _, err := sel.Submit()
		require.ErrorIs(t, err, schedule.ErrNoSlotSelected)
	})

	t.Run("non-working day is rejected without state change", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, now)
		require.True(t, sel.SelectDate(day("2024-06-10")))
		require.True(t, sel.SelectSlot("09:00-11:00"))

		require.False(t, sel.SelectDate(day("2024-06-15"))) // Saturday
		require.Equal(t, day("2024-06-10"), sel.Date())
		require.Equal(t, "09:00-11:00", sel.Slot())
	})

	t.Run("past date is rejected", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, now)
		require.False(t, sel.SelectDate(day("2024-06-06"))) // Thursday, before min
	})

	t.Run("changing date clears the slot", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, now)
		require.True(t, sel.SelectDate(day("2024-06-10")))
		require.True(t, sel.SelectSlot("09:00-11:00"))

		require.True(t, sel.SelectDate(day("2024-06-11")))
		require.Equal(t, day("2024-06-11"), sel.Date())
		require.Equal(t, "", sel.Slot())
	})

	t.Run("submit leaves the selection intact for retry", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, now)
		require.True(t, sel.SelectDate(day("2024-06-10")))
		require.True(t, sel.SelectSlot("11:00-13:00"))

		date, slot, err := sel.Submit()
		require.NoError(t, err)
		require.Equal(t, day("2024-06-10"), date)
		require.Equal(t, "11:00-13:00", slot)

		// a failed submission can simply be resubmitted
		date, slot, err = sel.Submit()
		require.NoError(t, err)
		require.Equal(t, day("2024-06-10"), date)
		require.Equal(t, "11:00-13:00", slot)
	})

	t.Run("min date is the selection floor", func(t *testing.T) {
		t.Parallel()
		sel := schedule.NewSelection(policy, ts("2024-06-08T10:00:00")) // Saturday
		require.Equal(t, day("2024-06-10"), sel.MinDate())
		require.True(t, sel.SelectDate(day("2024-06-10")))
	})
}
