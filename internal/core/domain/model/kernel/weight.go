package kernel

import (
	"fmt"

	"shipnotice/internal/pkg/errs"
)

// Weight is an immutable value object representing a gross weight in pounds.
// The zero value is a valid zero weight, so no constructor guard is needed;
// NewWeight only rejects negative magnitudes.
//
// Example:
//
//	w, err := kernel.NewWeight(25.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(w) // Output: 25.50 LB
type Weight struct {
	pounds float64
}

// NewWeight creates a Weight from a magnitude in pounds.
// Returns an error if pounds is negative.
func NewWeight(pounds float64) (Weight, error) {
	if pounds < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%.2f is negative", pounds))
	}
	return Weight{pounds: pounds}, nil
}

// Pounds returns the weight magnitude in pounds.
func (w Weight) Pounds() float64 {
	return w.pounds
}

// IsZero reports whether the weight is exactly zero pounds.
func (w Weight) IsZero() bool {
	return w.pounds == 0
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{pounds: w.pounds + other.pounds}
}

// Sub returns the difference of two weights, floored at zero.
// The floor keeps remaining-capacity arithmetic from going negative
// when a carton is already over its advisory limit.
func (w Weight) Sub(other Weight) Weight {
	diff := w.pounds - other.pounds
	if diff < 0 {
		diff = 0
	}
	return Weight{pounds: diff}
}

// Scale returns the weight multiplied by a unit count.
func (w Weight) Scale(n int) Weight {
	return Weight{pounds: w.pounds * float64(n)}
}

// Less reports whether w is strictly lighter than other.
func (w Weight) Less(other Weight) bool {
	return w.pounds < other.pounds
}

// String formats the weight with two decimals and the LB unit,
// matching the precision used in TD1 and CTT segments.
func (w Weight) String() string {
	return fmt.Sprintf("%.2f LB", w.pounds)
}
