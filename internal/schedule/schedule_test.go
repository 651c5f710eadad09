package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestDeadlineIsFiveDaysOut(t *testing.T) {
	require.Equal(t, start.Add(5*24*time.Hour), Deadline(start))
}

func TestCheckOnTime(t *testing.T) {
	st := Check(start, start.Add(3*24*time.Hour))
	require.False(t, st.Behind)
	require.Zero(t, st.DaysLate)
	require.Empty(t, st.Message)
}

func TestCheckExactlyAtDeadline(t *testing.T) {
	st := Check(start, Deadline(start))
	require.False(t, st.Behind, "deadline instant itself is still on time")
}

func TestCheckOneDayLate(t *testing.T) {
	st := Check(start, start.Add(6*24*time.Hour))
	require.True(t, st.Behind)
	require.Equal(t, 1, st.DaysLate)
	require.Equal(t, "1 day late", st.Message)
}

func TestCheckHoursLate(t *testing.T) {
	st := Check(start, Deadline(start).Add(3*time.Hour))
	require.True(t, st.Behind)
	require.Zero(t, st.DaysLate)
	require.Equal(t, "behind schedule", st.Message)
}

func TestCheckManyDaysLate(t *testing.T) {
	st := Check(start, Deadline(start).Add(10*24*time.Hour))
	require.Equal(t, 10, st.DaysLate)
	require.Equal(t, "10 days late", st.Message)
}
