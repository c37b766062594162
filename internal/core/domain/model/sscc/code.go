package sscc

import (
	"fmt"
	"strconv"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

const (
	// CodeLength is the total digit count of a serialized container code.
	CodeLength = 18

	// MinCompanyPrefixLength and MaxCompanyPrefixLength bound the GS1 company
	// prefix. The serial reference width absorbs the difference so the total
	// stays at CodeLength.
	MinCompanyPrefixLength = 7
	MaxCompanyPrefixLength = 10
)

// ErrCodeIsNotConstructed is returned when attempting to use an improperly
// initialized Code. Codes are created by a Generator or via ParseCode.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"container code must be created via a Generator or ParseCode")

// Code is an immutable SSCC-18 container code: extension digit, company
// prefix, zero-padded serial reference, and a computed check digit. The
// concatenation of the four fields is always exactly CodeLength digits, and
// the check digit always validates under the mod-10 algorithm.
type Code struct { //nolint:recvcheck //using for validation
	extensionDigit  byte
	companyPrefix   string
	serialReference string
	checkDigit      int

	guard guard.ConstructorGuard
}

// newCode assembles a Code from pre-validated fields and computes the check
// digit. Callers (Generator, ParseCode) guarantee the field shapes.
func newCode(extensionDigit byte, companyPrefix, serialReference string) (Code, error) {
	check, err := CheckDigit(string(extensionDigit) + companyPrefix + serialReference)
	if err != nil {
		return Code{}, err
	}
	return Code{
		extensionDigit:  extensionDigit,
		companyPrefix:   companyPrefix,
		serialReference: serialReference,
		checkDigit:      check,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ParseCode splits an 18-digit code string into its fields and verifies the
// check digit. The company prefix is taken at its minimum 7-digit width, the
// same convention the original label data uses; generators with longer
// prefixes still produce codes that round-trip through String.
func ParseCode(code string) (Code, error) {
	if len(code) != CodeLength {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("length is %d, want %d", len(code), CodeLength))
	}
	if !ValidateCode(code) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("check digit %q does not validate", code[CodeLength-1]))
	}

	c := Code{
		extensionDigit:  code[0],
		companyPrefix:   code[1 : 1+MinCompanyPrefixLength],
		serialReference: code[1+MinCompanyPrefixLength : CodeLength-1],
		checkDigit:      int(code[CodeLength-1] - '0'),
		guard:           guard.NewConstructorGuard(),
	}
	return c, nil
}

// Validate checks that the Code was produced by a constructor.
func (c Code) Validate() error {
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

// ExtensionDigit returns the leading extension digit.
func (c Code) ExtensionDigit() byte {
	return c.extensionDigit
}

// CompanyPrefix returns the GS1 company prefix field.
func (c Code) CompanyPrefix() string {
	return c.companyPrefix
}

// SerialReference returns the zero-padded serial reference field.
func (c Code) SerialReference() string {
	return c.serialReference
}

// Serial returns the serial reference as an integer.
func (c Code) Serial() uint64 {
	n, _ := strconv.ParseUint(c.serialReference, 10, 64)
	return n
}

// CheckDigit returns the computed trailing check digit.
func (c Code) CheckDigit() int {
	return c.checkDigit
}

// String returns the full 18-digit code.
func (c Code) String() string {
	return string(c.extensionDigit) + c.companyPrefix + c.serialReference + strconv.Itoa(c.checkDigit)
}

// IsEqual compares two codes digit for digit.
func (c Code) IsEqual(other Code) bool {
	return c.extensionDigit == other.extensionDigit &&
		c.companyPrefix == other.companyPrefix &&
		c.serialReference == other.serialReference &&
		c.checkDigit == other.checkDigit
}
