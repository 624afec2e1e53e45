package spacedrep

import "time"

// BaseIntervals defines the expanding review schedule in days, indexed by
// the number of consecutive correct answers.
var BaseIntervals = []int{1, 3, 7, 14, 30}

// MaxStage is the highest index in BaseIntervals. Longer streaks stay there.
const MaxStage = 4

// IntervalDays returns the review interval in days after streak consecutive
// correct answers. Negative streaks are treated as zero.
func IntervalDays(streak int) int {
	if streak < 0 {
		streak = 0
	}
	if streak > MaxStage {
		streak = MaxStage
	}
	return BaseIntervals[streak]
}

// Interval is IntervalDays as a duration.
func Interval(streak int) time.Duration {
	return time.Duration(IntervalDays(streak)) * 24 * time.Hour
}
