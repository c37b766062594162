package services

import (
	"errors"
	"fmt"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/order"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var (
	// ErrEmptyOrder is returned when cartonization is asked to pack an order
	// with no line items. Fatal: no partial shipment is produced.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrInvalidQuantity is returned when a line carries a non-positive
	// quantity. Fatal: no partial shipment is produced.
	ErrInvalidQuantity = errors.New("line quantity must be positive")

	// ErrPackingPolicyIsNotConstructed is returned when a PackingPolicy was
	// not created via NewPackingPolicy.
	ErrPackingPolicyIsNotConstructed = errs.NewValueIsRequiredError(
		"packing policy must be created via NewPackingPolicy constructor")
)

// ContainerCodeSource supplies the next sequential container code. The
// production implementation wraps an sscc.Generator; see 4.2 of the sscc
// package docs for the uniqueness guarantees a source must uphold.
type ContainerCodeSource interface {
	Next() (sscc.Code, error)
}

// PackingPolicy fixes the capacity constraints and packing mode for one
// cartonization run.
//
// Example:
//
//	limit, _ := kernel.NewWeight(50)
//	policy, err := services.NewPackingPolicy(50, &limit, false)
type PackingPolicy struct { //nolint:recvcheck //using for validation
	maxUnitsPerCarton  int
	maxWeightPerCarton *kernel.Weight
	segregateBySKU     bool

	guard guard.ConstructorGuard
}

// NewPackingPolicy creates a validated packing policy.
// maxUnitsPerCarton must be at least 1. maxWeightPerCarton is optional (nil
// disables the weight limit); when set it must be positive. segregateBySKU
// isolates each SKU into its own carton set instead of greedy mixing.
func NewPackingPolicy(maxUnitsPerCarton int, maxWeightPerCarton *kernel.Weight, segregateBySKU bool) (PackingPolicy, error) {
	p := PackingPolicy{
		segregateBySKU: segregateBySKU,
		guard:          guard.NewConstructorGuard(),
	}

	if maxUnitsPerCarton < 1 {
		return PackingPolicy{}, errs.NewValueIsInvalidErrorWithCause("maxUnitsPerCarton",
			fmt.Errorf("%d is not greater than 0", maxUnitsPerCarton))
	}
	p.maxUnitsPerCarton = maxUnitsPerCarton

	if maxWeightPerCarton != nil {
		if maxWeightPerCarton.IsZero() {
			return PackingPolicy{}, errs.NewValueIsInvalidErrorWithCause("maxWeightPerCarton",
				fmt.Errorf("weight limit of zero pounds cannot hold any unit"))
		}
		w := *maxWeightPerCarton
		p.maxWeightPerCarton = &w
	}

	return p, nil
}

// Validate checks that the PackingPolicy was built through NewPackingPolicy.
func (p PackingPolicy) Validate() error {
	return p.guard.Validate(ErrPackingPolicyIsNotConstructed)
}

// MaxUnitsPerCarton returns the unit-count ceiling per carton.
func (p PackingPolicy) MaxUnitsPerCarton() int {
	return p.maxUnitsPerCarton
}

// MaxWeightPerCarton returns the weight ceiling per carton, nil when disabled.
func (p PackingPolicy) MaxWeightPerCarton() *kernel.Weight {
	return p.maxWeightPerCarton
}

// SegregateBySKU reports whether each SKU gets its own carton set.
func (p PackingPolicy) SegregateBySKU() bool {
	return p.segregateBySKU
}

// Cartonizer is the domain service that partitions an order's lines into
// capacity-bounded cartons and assembles the shipment aggregate.
//
// Greedy mode keeps a current-carton accumulator and, per line in input
// order, repeatedly allocates as many remaining units as fit under both the
// quantity limit and the optional weight limit, closing the carton and
// opening a new one whenever a limit would be breached. Segregated mode
// applies the same fill logic one line at a time, never mixing SKUs, with
// carton sequencing still global across the run.
//
// The weight limit is advisory for an indivisible unit: a single unit whose
// weight alone exceeds the ceiling is placed alone in its own carton rather
// than dropped.
type Cartonizer struct {
	policy PackingPolicy
}

// NewCartonizer creates a Cartonizer with the given policy.
func NewCartonizer(policy PackingPolicy) (Cartonizer, error) {
	if err := policy.Validate(); err != nil {
		return Cartonizer{}, err
	}
	return Cartonizer{policy: policy}, nil
}

// Policy returns the cartonizer's packing policy.
func (c Cartonizer) Policy() PackingPolicy {
	return c.policy
}

// Cartonize packs the order into cartons, assigns each closed carton the next
// container code from codes, and returns the fully populated shipment with
// rollup totals. Errors: ErrEmptyOrder, ErrInvalidQuantity, or any failure
// from the code source (e.g. sscc.ErrSerialOverflow).
func (c Cartonizer) Cartonize(o *order.Order, codes ContainerCodeSource) (*shipment.Shipment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	lines := o.Lines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order %s", ErrEmptyOrder, o.ID())
	}
	for _, line := range lines {
		if line.Quantity() < 1 {
			return nil, fmt.Errorf("%w: line %s has quantity %d", ErrInvalidQuantity, line.SKU(), line.Quantity())
		}
	}

	cartons, err := c.pack(lines)
	if err != nil {
		return nil, err
	}

	for _, carton := range cartons {
		code, nextErr := codes.Next()
		if nextErr != nil {
			return nil, nextErr
		}
		if assignErr := carton.AssignCode(code); assignErr != nil {
			return nil, assignErr
		}
	}

	shp, err := shipment.NewShipment(
		"SHIP-"+o.ID(),
		o.ShipDate(),
		o.ShipFrom(),
		o.ShipTo(),
		o.CarrierCode(),
		o.ServiceLevel(),
	)
	if err != nil {
		return nil, err
	}

	sequences := make([]int, 0, len(cartons))
	for _, carton := range cartons {
		if addErr := shp.AddCarton(carton); addErr != nil {
			return nil, addErr
		}
		sequences = append(sequences, carton.Sequence())
	}

	orderRef, err := shipment.NewOrder(o.ID(), o.PurchaseOrder(), sequences)
	if err != nil {
		return nil, err
	}
	if err = shp.AddOrder(orderRef); err != nil {
		return nil, err
	}

	return shp, nil
}

// accumulator holds the state of the carton currently being filled.
type accumulator struct {
	items  []shipment.Item
	units  int
	weight kernel.Weight
}

func (a *accumulator) add(item shipment.Item) {
	a.items = append(a.items, item)
	a.units += item.Quantity()
	a.weight = a.weight.Add(item.TotalWeight())
}

func (a *accumulator) empty() bool {
	return len(a.items) == 0
}

func (c Cartonizer) pack(lines []order.Line) ([]*shipment.Carton, error) {
	var (
		cartons  []*shipment.Carton
		acc      accumulator
		sequence = 1
	)

	closeCarton := func() error {
		if acc.empty() {
			return nil
		}
		carton, err := shipment.NewCarton(sequence, acc.items)
		if err != nil {
			return err
		}
		cartons = append(cartons, carton)
		sequence++
		acc = accumulator{}
		return nil
	}

	for _, line := range lines {
		remaining := line.Quantity()

		for remaining > 0 {
			space := c.policy.MaxUnitsPerCarton() - acc.units
			if space <= 0 {
				if err := closeCarton(); err != nil {
					return nil, err
				}
				continue
			}

			qty := remaining
			if qty > space {
				qty = space
			}
			if limit := c.policy.MaxWeightPerCarton(); limit != nil && line.HasUnitWeight() {
				if fit := unitsThatFit(limit.Sub(acc.weight), *line.UnitWeight()); fit < qty {
					qty = fit
				}
			}

			if qty <= 0 {
				if acc.empty() {
					// A single unit heavier than the ceiling still ships:
					// the weight limit is advisory for an indivisible unit.
					qty = 1
				} else {
					if err := closeCarton(); err != nil {
						return nil, err
					}
					continue
				}
			}

			item, err := shipment.NewItem(line.SKU(), line.Description(), qty, line.UOM(), line.UnitWeight())
			if err != nil {
				return nil, err
			}
			acc.add(item)
			remaining -= qty
		}

		if c.policy.SegregateBySKU() {
			if err := closeCarton(); err != nil {
				return nil, err
			}
		}
	}

	if err := closeCarton(); err != nil {
		return nil, err
	}

	return cartons, nil
}

// unitsThatFit returns how many whole units of unitWeight fit into the
// remaining capacity. unitWeight is known to be non-zero only when the line
// carries a weight; a zero unit weight places no bound.
func unitsThatFit(capacity, unitWeight kernel.Weight) int {
	if unitWeight.IsZero() {
		return int(^uint(0) >> 1)
	}
	return int(capacity.Pounds() / unitWeight.Pounds())
}
