package engine

// MaxLevel is the highest assessment level in a chapter.
const MaxLevel = 3

// levelPassed applies the per-level pass bar. Levels 1 and 2 are graded out
// of ten; level 3 is five short-answer questions where any scored answer
// clears the bar.
func levelPassed(level, score int) bool {
	switch level {
	case 1:
		return score >= 8
	case 2:
		return score >= 7
	case 3:
		return score > 0
	default:
		return false
	}
}

// validLevel reports whether level is assessable.
func validLevel(level int) bool {
	return level >= 1 && level <= MaxLevel
}
