package order

import (
	"errors"
	"fmt"
	"strings"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// DefaultUOM is assumed when a line omits the unit of measure.
const DefaultUOM = "EA"

// ErrLineIsNotConstructed is returned when attempting to use an improperly
// initialized Line. Lines must be created via the NewLine constructor.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError(
	"order line must be created via NewLine constructor")

// Line is an immutable order line: a quantity of one SKU as the customer
// ordered it. Lines are read-only input to the cartonizer; the per-carton
// allocations derived from them live in the shipment model.
type Line struct { //nolint:recvcheck //using for validation
	sku         string
	description string
	quantity    int
	uom         string
	unitWeight  *kernel.Weight

	guard guard.ConstructorGuard
}

// NewLine creates a validated order line.
// SKU and description are required, quantity must be at least 1, the unit of
// measure defaults to DefaultUOM, and unitWeight may be nil when the catalog
// carries no weight for the SKU.
func NewLine(sku, description string, quantity int, uom string, unitWeight *kernel.Weight) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setSKU(sku),
		line.setDescription(description),
		line.setQuantity(quantity),
		line.setUOM(uom),
		line.setUnitWeight(unitWeight),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate checks that the Line was built through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// SKU returns the stock keeping unit identifier.
func (l Line) SKU() string {
	return l.sku
}

// Description returns the human-readable item description.
func (l Line) Description() string {
	return l.description
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// UOM returns the unit of measure.
func (l Line) UOM() string {
	return l.uom
}

// UnitWeight returns the per-unit weight, or nil when unknown.
func (l Line) UnitWeight() *kernel.Weight {
	return l.unitWeight
}

// HasUnitWeight reports whether a per-unit weight is known for this line.
func (l Line) HasUnitWeight() bool {
	return l.unitWeight != nil
}

// TotalWeight returns quantity times unit weight, or zero when the unit
// weight is unknown.
func (l Line) TotalWeight() kernel.Weight {
	if l.unitWeight == nil {
		return kernel.Weight{}
	}
	return l.unitWeight.Scale(l.quantity)
}

func (l *Line) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = strings.TrimSpace(sku)
	return nil
}

func (l *Line) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUOM(uom string) error {
	if uom == "" {
		uom = DefaultUOM
	}
	l.uom = strings.ToUpper(uom)
	return nil
}

func (l *Line) setUnitWeight(unitWeight *kernel.Weight) error {
	if unitWeight == nil {
		return nil
	}
	w := *unitWeight
	l.unitWeight = &w
	return nil
}
