package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// DefaultCountryCode is assumed when a party address omits the country.
const DefaultCountryCode = "US"

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object describing a shipping party: the named
// origin or destination of a shipment. It keeps the structured fields the
// document encoder needs for N1/N3/N4 segments and that label data carries.
//
// The zero value of Address is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("ACME Warehouse", "123 Industrial Blvd", "", "Dallas", "TX", "75201", "US")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	name        string
	line1       string
	line2       string
	city        string
	state       string
	postalCode  string
	countryCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// Name, line1, city, state, and postalCode are required; line2 is optional
// and countryCode defaults to DefaultCountryCode when empty. The state must
// be a two-letter code and is normalized to upper case.
func NewAddress(name, line1, line2, city, state, postalCode, countryCode string) (Address, error) {
	addr := Address{
		line2: line2,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setName(name),
		addr.setLine1(line1),
		addr.setCity(city),
		addr.setState(state),
		addr.setPostalCode(postalCode),
		addr.setCountryCode(countryCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was built through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the company or location name.
func (a Address) Name() string {
	return a.name
}

// Line1 returns the first street address line.
func (a Address) Line1() string {
	return a.line1
}

// Line2 returns the optional second street address line.
func (a Address) Line2() string {
	return a.line2
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the two-letter state or province code.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the ZIP or postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// CountryCode returns the ISO country code.
func (a Address) CountryCode() string {
	return a.countryCode
}

// String renders the address as a single comma-separated line,
// the format used on human-readable label output.
func (a Address) String() string {
	parts := []string{a.line1}
	if a.line2 != "" {
		parts = append(parts, a.line2)
	}
	parts = append(parts, fmt.Sprintf("%s, %s %s", a.city, a.state, a.postalCode))
	return strings.Join(parts, ", ")
}

func (a *Address) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Address) setLine1(line1 string) error {
	if strings.TrimSpace(line1) == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if len(state) != 2 {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%q is not a 2-letter code", state))
	}
	a.state = strings.ToUpper(state)
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountryCode(countryCode string) error {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	a.countryCode = strings.ToUpper(countryCode)
	return nil
}
