package sscc

import (
	"errors"
	"fmt"
	"strconv"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var (
	// ErrSerialOverflow is the sentinel for an exhausted serial space. The
	// caller must rotate the company prefix or widen the serial field; the
	// generator never wraps around.
	ErrSerialOverflow = errors.New("container code serial space exhausted")

	// ErrConfigIsNotConstructed is returned when a Config was not created via NewConfig.
	ErrConfigIsNotConstructed = errs.NewValueIsRequiredError(
		"generator config must be created via NewConfig constructor")
)

// SerialOverflowError reports a serial value that needs more digits than the
// configured serial reference width.
type SerialOverflowError struct {
	Serial uint64
	Width  int
}

func (e *SerialOverflowError) Error() string {
	return fmt.Sprintf("%s: serial %d does not fit in %d digits", ErrSerialOverflow, e.Serial, e.Width)
}

func (e *SerialOverflowError) Unwrap() error {
	return ErrSerialOverflow
}

// Config fixes the immutable parameters of a Generator: company prefix,
// extension digit, serial reference width, and the starting serial value.
//
// Example:
//
//	cfg, err := sscc.NewConfig("0614141", '0', 9, 1)
//	if err != nil {
//	    // handle validation error
//	}
//	gen, _ := sscc.NewGenerator(cfg)
type Config struct { //nolint:recvcheck //using for validation
	companyPrefix  string
	extensionDigit byte
	serialWidth    int
	serialStart    uint64

	guard guard.ConstructorGuard
}

// NewConfig creates a validated generator configuration.
// The company prefix must be 7-10 decimal digits, the extension digit a single
// decimal digit, and the serial width exactly the remainder that keeps the
// full code at CodeLength digits (extension + prefix + serial + check = 18).
func NewConfig(companyPrefix string, extensionDigit byte, serialWidth int, serialStart uint64) (Config, error) {
	cfg := Config{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cfg.setCompanyPrefix(companyPrefix),
		cfg.setExtensionDigit(extensionDigit),
		cfg.setSerialStart(serialStart),
	); err != nil {
		return Config{}, err
	}

	// serial width depends on the prefix, so it is validated last
	if err := cfg.setSerialWidth(serialWidth); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the Config was built through NewConfig.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// CompanyPrefix returns the GS1 company prefix.
func (c Config) CompanyPrefix() string {
	return c.companyPrefix
}

// ExtensionDigit returns the extension digit.
func (c Config) ExtensionDigit() byte {
	return c.extensionDigit
}

// SerialWidth returns the zero-padded width of the serial reference field.
func (c Config) SerialWidth() int {
	return c.serialWidth
}

// SerialStart returns the first serial value the generator will issue.
func (c Config) SerialStart() uint64 {
	return c.serialStart
}

func (c *Config) setCompanyPrefix(companyPrefix string) error {
	if l := len(companyPrefix); l < MinCompanyPrefixLength || l > MaxCompanyPrefixLength {
		return errs.NewValueIsOutOfRangeError("companyPrefix length",
			len(companyPrefix), MinCompanyPrefixLength, MaxCompanyPrefixLength)
	}
	for i := 0; i < len(companyPrefix); i++ {
		if companyPrefix[i] < '0' || companyPrefix[i] > '9' {
			return errs.NewValueIsInvalidErrorWithCause("companyPrefix",
				fmt.Errorf("character %q at index %d is not a decimal digit", companyPrefix[i], i))
		}
	}
	c.companyPrefix = companyPrefix
	return nil
}

func (c *Config) setExtensionDigit(extensionDigit byte) error {
	if extensionDigit < '0' || extensionDigit > '9' {
		return errs.NewValueIsInvalidErrorWithCause("extensionDigit",
			fmt.Errorf("%q is not a decimal digit", extensionDigit))
	}
	c.extensionDigit = extensionDigit
	return nil
}

func (c *Config) setSerialWidth(serialWidth int) error {
	want := CodeLength - 2 - len(c.companyPrefix)
	if serialWidth != want {
		return errs.NewValueIsInvalidErrorWithCause("serialWidth",
			fmt.Errorf("width %d with a %d-digit prefix does not total %d digits, want %d",
				serialWidth, len(c.companyPrefix), CodeLength, want))
	}
	c.serialWidth = serialWidth
	return nil
}

func (c *Config) setSerialStart(serialStart uint64) error {
	if serialStart == 0 {
		return errs.NewValueIsInvalidErrorWithCause("serialStart",
			fmt.Errorf("0 is not a valid starting serial"))
	}
	c.serialStart = serialStart
	return nil
}

// Generator produces sequential, collision-free container codes. It owns a
// monotonically increasing serial counter; every code returned by Next or
// Batch carries a strictly greater serial than all previously returned codes
// until Reset is called.
//
// A Generator is NOT safe for concurrent use. Callers processing orders
// concurrently must either serialize access behind a mutual-exclusion
// boundary (see adapters/out/codealloc) or construct one generator per worker
// with a disjoint serial range.
type Generator struct {
	config     Config
	nextSerial uint64
}

// NewGenerator creates a Generator positioned at the configured starting serial.
func NewGenerator(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		config:     config,
		nextSerial: config.SerialStart(),
	}, nil
}

// Config returns the generator's immutable configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Next produces the code for the current serial value and advances the
// counter. Returns a SerialOverflowError if the serial would need more digits
// than the configured width; the counter is not advanced on failure.
func (g *Generator) Next() (Code, error) {
	code, err := g.compose(g.nextSerial)
	if err != nil {
		return Code{}, err
	}
	g.nextSerial++
	return code, nil
}

// Peek returns the code Next would produce without advancing the counter.
func (g *Generator) Peek() (Code, error) {
	return g.compose(g.nextSerial)
}

// Batch produces n sequential codes via Next. Serials in the batch are
// strictly increasing and never repeat across the generator's lifetime.
func (g *Generator) Batch(n int) ([]Code, error) {
	if n <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("n",
			fmt.Errorf("%d is not greater than 0", n))
	}

	codes := make([]Code, 0, n)
	for i := 0; i < n; i++ {
		code, err := g.Next()
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// Reset reinitializes the counter to the configured starting serial.
// Used only by test harnesses, never by the production path: resetting
// forfeits the uniqueness invariant for previously issued codes.
func (g *Generator) Reset() {
	g.nextSerial = g.config.SerialStart()
}

// ResetTo reinitializes the counter to an explicit serial value.
// Same caveat as Reset.
func (g *Generator) ResetTo(serial uint64) {
	g.nextSerial = serial
}

func (g *Generator) compose(serial uint64) (Code, error) {
	serialStr := strconv.FormatUint(serial, 10)
	if len(serialStr) > g.config.SerialWidth() {
		return Code{}, &SerialOverflowError{Serial: serial, Width: g.config.SerialWidth()}
	}
	for len(serialStr) < g.config.SerialWidth() {
		serialStr = "0" + serialStr
	}
	return newCode(g.config.ExtensionDigit(), g.config.CompanyPrefix(), serialStr)
}
