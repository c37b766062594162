package shipment

import (
	"errors"
	"fmt"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
)

// DefaultPackagingCode is the TD1 packaging type for a standard carton.
const DefaultPackagingCode = "CTN"

// Default carton dimensions in inches, used when the caller supplies none.
const (
	DefaultCartonLength = 18.0
	DefaultCartonWidth  = 12.0
	DefaultCartonHeight = 10.0
)

var (
	// ErrCartonIsNotConstructed is returned when a Carton was not created via NewCarton.
	ErrCartonIsNotConstructed = errors.New("Carton must be created via NewCarton constructor")

	// ErrContainerCodeAlreadyAssigned indicates an attempt to overwrite a
	// carton's container code. Codes are assigned exactly once.
	ErrContainerCodeAlreadyAssigned = errors.New("carton already has a container code assigned")
)

// Carton is a sequence-numbered physical container holding one or more packed
// items. Its container code is nil until the cartonizer assigns one; after
// assignment the code is immutable.
//
// Invariant: a carton holds at least one unit, even when that single unit
// alone exceeds the configured weight ceiling. The cartonizer never produces
// an empty carton and never drops units.
type Carton struct {
	// sequence is the 1-based position of the carton in the shipment
	sequence int

	// items are the packed units in input order
	items []Item

	// code is the assigned container code, nil until generation
	code *sscc.Code

	// physical attributes in inches
	length float64
	width  float64
	height float64

	// packagingCode is the TD1 packaging type
	packagingCode string

	// isConstructed ensures the carton was created via NewCarton
	isConstructed bool
}

// NewCarton creates a carton from a sequence number and a non-empty item list.
// Dimensional defaults are applied; the container code is left unassigned.
func NewCarton(sequence int, items []Item) (*Carton, error) {
	c := &Carton{
		length:        DefaultCartonLength,
		width:         DefaultCartonWidth,
		height:        DefaultCartonHeight,
		packagingCode: DefaultPackagingCode,
		isConstructed: true,
	}

	if err := errors.Join(c.setSequence(sequence), c.setItems(items)); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carton was properly constructed through NewCarton.
func (c *Carton) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartonIsNotConstructed
	}
	return nil
}

// ID returns the internal carton identifier, derived from the sequence number.
func (c *Carton) ID() string {
	return fmt.Sprintf("CTN-%04d", c.sequence)
}

// Sequence returns the carton's 1-based position in the shipment.
func (c *Carton) Sequence() int {
	return c.sequence
}

// Items returns a copy of the packed units in input order.
func (c *Carton) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Code returns the assigned container code, or nil before assignment.
func (c *Carton) Code() *sscc.Code {
	return c.code
}

// AssignCode assigns the carton's container code exactly once.
func (c *Carton) AssignCode(code sscc.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if c.code != nil {
		return fmt.Errorf("%w: %s already carries %s", ErrContainerCodeAlreadyAssigned, c.ID(), c.code)
	}
	c.code = &code
	return nil
}

// PackagingCode returns the TD1 packaging type code.
func (c *Carton) PackagingCode() string {
	return c.packagingCode
}

// Length returns the carton length in inches.
func (c *Carton) Length() float64 { return c.length }

// Width returns the carton width in inches.
func (c *Carton) Width() float64 { return c.width }

// Height returns the carton height in inches.
func (c *Carton) Height() float64 { return c.height }

// TotalUnits returns the unit count across all items in the carton.
func (c *Carton) TotalUnits() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// Weight returns the carton's gross weight: the sum of item quantities times
// unit weights. Items without a known unit weight contribute zero.
func (c *Carton) Weight() kernel.Weight {
	var total kernel.Weight
	for _, item := range c.items {
		total = total.Add(item.TotalWeight())
	}
	return total
}

func (c *Carton) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	c.sequence = sequence
	return nil
}

func (c *Carton) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	c.items = make([]Item, len(items))
	copy(c.items, items)
	return nil
}
