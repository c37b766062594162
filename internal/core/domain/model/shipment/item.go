package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly
// initialized Item. Items must be created via the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"packed item must be created via NewItem constructor")

// Item is a packing unit: a quantity of one SKU assigned into exactly one
// carton. Items are derived from order lines by the cartonizer; a line whose
// quantity exceeds the per-carton limits is split into items across several
// cartons, but the packed quantities always sum back to the line quantity.
type Item struct { //nolint:recvcheck //using for validation
	sku         string
	description string
	quantity    int
	uom         string
	unitWeight  *kernel.Weight

	guard guard.ConstructorGuard
}

// NewItem creates a validated packing unit.
func NewItem(sku, description string, quantity int, uom string, unitWeight *kernel.Weight) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKU(sku),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUOM(uom),
		item.setUnitWeight(unitWeight),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks that the Item was built through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// SKU returns the stock keeping unit identifier.
func (i Item) SKU() string {
	return i.sku
}

// Description returns the human-readable item description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the unit count packed into the owning carton.
func (i Item) Quantity() int {
	return i.quantity
}

// UOM returns the unit of measure.
func (i Item) UOM() string {
	return i.uom
}

// UnitWeight returns the per-unit weight, or nil when unknown.
func (i Item) UnitWeight() *kernel.Weight {
	return i.unitWeight
}

// TotalWeight returns quantity times unit weight, or zero when the unit
// weight is unknown.
func (i Item) TotalWeight() kernel.Weight {
	if i.unitWeight == nil {
		return kernel.Weight{}
	}
	return i.unitWeight.Scale(i.quantity)
}

func (i *Item) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUOM(uom string) error {
	if uom == "" {
		uom = "EA"
	}
	i.uom = strings.ToUpper(uom)
	return nil
}

func (i *Item) setUnitWeight(unitWeight *kernel.Weight) error {
	if unitWeight == nil {
		return nil
	}
	w := *unitWeight
	i.unitWeight = &w
	return nil
}
