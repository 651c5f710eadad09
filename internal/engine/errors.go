package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidLevel means the level is outside [1, MaxLevel].
	ErrInvalidLevel = errors.New("level must be between 1 and 3")

	// ErrLevelLocked means the level has not been unlocked yet.
	ErrLevelLocked = errors.New("level is locked")

	// ErrNoContent means the session has no chapter to assess against.
	ErrNoContent = errors.New("no chapter registered for session")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount means a spend amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientXP means the balance cannot cover the spend.
	ErrInsufficientXP = errors.New("insufficient xp balance")

	// ErrNoRemedial means no remedial plan is pending for the session.
	ErrNoRemedial = errors.New("no remedial plan pending")

	// ErrAnswerCount means the submission length does not match the
	// assessment's question count.
	ErrAnswerCount = errors.New("answer count does not match question count")
)

// CooldownError reports a submission or request made while the retry lock
// from a failed run is still active.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("retry available in %s", e.Remaining.Round(time.Second))
}
