package sensitivity

// Level is the discrete stability bucket a sensitivity value maps to for
// presentation. Buckets are a one-way view of the numbers and never feed
// back into any computation.
type Level int

const (
	// LevelUnknown marks cells carrying the Undefined sentinel.
	LevelUnknown Level = iota

	// LevelVeryStable marks unbounded cells and values above 10.
	LevelVeryStable

	// LevelStable marks values in [6, 10].
	LevelStable

	// LevelModerate marks values in [4, 6).
	LevelModerate

	// LevelSensitive marks values below 4.
	LevelSensitive
)

// String returns a human-readable bucket name.
func (l Level) String() string {
	switch l {
	case LevelVeryStable:
		return "very-stable"
	case LevelStable:
		return "stable"
	case LevelModerate:
		return "moderate"
	case LevelSensitive:
		return "sensitive"
	default:
		return "unknown"
	}
}

// LevelOf buckets a single sensitivity value.
func LevelOf(v float64) Level {
	switch {
	case IsUndefined(v):
		return LevelUnknown
	case IsUnbounded(v) || v > 10:
		return LevelVeryStable
	case v >= 6:
		return LevelStable
	case v >= 4:
		return LevelModerate
	default:
		return LevelSensitive
	}
}
