// Package xp holds the reward policy: how much XP a passed assessment is
// worth and what completing a chapter pays out. It is pure policy; balances
// live in the progress record and are mutated by the engine.
package xp

import (
	"fmt"
	"math/rand/v2"
)

// ChapterBonus is awarded once when a chapter's final level is cleared.
const ChapterBonus = 500

// rewardRanges maps level to the inclusive [min, max] reward drawn on a pass.
var rewardRanges = map[int][2]int{
	1: {50, 100},
	2: {100, 150},
	3: {150, 200},
}

// RollFunc draws a uniform integer in [min, max]. Injectable so tests and
// the engine can pin outcomes.
type RollFunc func(min, max int) int

// DefaultRoll draws from the process-wide PRNG.
func DefaultRoll(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// Range returns the reward range for a level, ok=false for unknown levels.
func Range(level int) (min, max int, ok bool) {
	r, ok := rewardRanges[level]
	return r[0], r[1], ok
}

// Reward draws the XP amount for passing an assessment at level.
func Reward(level int, roll RollFunc) (int, error) {
	r, ok := rewardRanges[level]
	if !ok {
		return 0, fmt.Errorf("no reward range for level %d", level)
	}
	if roll == nil {
		roll = DefaultRoll
	}
	return roll(r[0], r[1]), nil
}

// Spend validates a deduction against a balance and returns the new balance.
func Spend(balance, amount int) (int, error) {
	if amount <= 0 {
		return balance, fmt.Errorf("spend amount must be positive, got %d", amount)
	}
	if amount > balance {
		return balance, fmt.Errorf("balance %d is less than %d", balance, amount)
	}
	return balance - amount, nil
}
