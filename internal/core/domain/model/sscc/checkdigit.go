package sscc

import (
	"fmt"

	"shipnotice/internal/pkg/errs"
)

// CheckDigit computes the GS1 mod-10 check digit for a string of decimal digits.
//
// The algorithm indexes digits right to left starting at position 0, multiplies
// the digit at every even position by 3 and at every odd position by 1, sums the
// products, and returns (10 - sum mod 10) mod 10. A sum that is already a
// multiple of 10 therefore yields check digit 0.
//
// The function is pure and deterministic. It fails only on malformed input:
// an empty string or any non-numeric character. Internal callers always pass
// the first 17 digits of a container code, but any length is accepted so the
// function can serve external validators.
//
// Example:
//
//	d, _ := sscc.CheckDigit("00614141123456789")
//	// d == 0
func CheckDigit(digits string) (int, error) {
	if len(digits) == 0 {
		return 0, errs.NewValueIsRequiredError("digits")
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause("digits",
				fmt.Errorf("character %q at index %d is not a decimal digit", c, len(digits)-1-i))
		}
		d := int(c - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}

	return (10 - sum%10) % 10, nil
}

// ValidateCode reports whether code is a well-formed 18-digit container code
// whose final digit matches the recomputed check digit. It never returns an
// error: malformed input is simply invalid.
func ValidateCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	check, err := CheckDigit(code[:CodeLength-1])
	if err != nil {
		return false
	}
	last := code[CodeLength-1]
	if last < '0' || last > '9' {
		return false
	}
	return check == int(last-'0')
}
