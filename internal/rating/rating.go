// Package rating holds the single incremental-mean implementation used by
// every call site that feeds a contribution into a pro's aggregate rating.
package rating

import "math"

// Apply folds one 1-5 contribution into an aggregate without replaying
// earlier samples: the new mean is computed from the stored (already
// rounded) rating and count, then rounded again. It returns the new
// rating and count.
func Apply(current float64, count int, value int) (float64, int) {
	newCount := count + 1
	mean := (current*float64(count) + float64(value)) / float64(newCount)
	return Round1(mean), newCount
}

// Round1 rounds half up to one decimal place. This is the only rounding
// site for ratings in the repository.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
