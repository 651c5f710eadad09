// Package schedule implements the pacing policy for the institution track:
// every chapter comes with a completion window, and sessions past it are
// flagged as lagging.
package schedule

import (
	"fmt"
	"time"
)

// ChapterWindow is how long a session has to clear a chapter before it is
// considered behind schedule.
const ChapterWindow = 5 * 24 * time.Hour

// Status describes where a session stands against one chapter's window.
type Status struct {
	Deadline time.Time
	Behind   bool
	DaysLate int
	Message  string
}

// Deadline returns when a chapter started at createdAt is due.
func Deadline(createdAt time.Time) time.Time {
	return createdAt.Add(ChapterWindow)
}

// Check evaluates a chapter window at the given instant.
func Check(createdAt, now time.Time) Status {
	deadline := Deadline(createdAt)
	st := Status{Deadline: deadline}
	if !now.After(deadline) {
		return st
	}

	st.Behind = true
	st.DaysLate = int(now.Sub(deadline).Hours() / 24)
	switch {
	case st.DaysLate == 0:
		st.Message = "behind schedule"
	case st.DaysLate == 1:
		st.Message = "1 day late"
	default:
		st.Message = fmt.Sprintf("%d days late", st.DaysLate)
	}
	return st
}
