package order

import (
	"errors"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the validated customer order handed to the core by the input
// boundary. It is the aggregate root for the order side of the pipeline and
// is read-only once constructed.
//
// Order invariants:
//   - order id and purchase order number are present
//   - ship date is set
//   - origin and destination addresses are valid
//   - at least one valid line item
type Order struct {
	// id is the caller-assigned order identifier
	id string

	// purchaseOrder is the customer PO number
	purchaseOrder string

	// shipDate is the scheduled ship date
	shipDate time.Time

	// shipFrom and shipTo describe origin and destination
	shipFrom kernel.Address
	shipTo   kernel.Address

	// carrierCode is the optional SCAC carrier code
	carrierCode string

	// serviceLevel is the optional carrier service description
	serviceLevel string

	// lines are the ordered line items
	lines []Line

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a validated Order. All validation errors are aggregated
// and returned as a single error; no partially valid order is produced.
func NewOrder(
	id string,
	purchaseOrder string,
	shipDate time.Time,
	shipFrom kernel.Address,
	shipTo kernel.Address,
	carrierCode string,
	serviceLevel string,
	lines []Line,
) (*Order, error) {
	o := &Order{
		carrierCode:   strings.ToUpper(carrierCode),
		serviceLevel:  serviceLevel,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPurchaseOrder(purchaseOrder),
		o.setShipDate(shipDate),
		o.setShipFrom(shipFrom),
		o.setShipTo(shipTo),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// PurchaseOrder returns the customer PO number.
func (o *Order) PurchaseOrder() string {
	return o.purchaseOrder
}

// ShipDate returns the scheduled ship date.
func (o *Order) ShipDate() time.Time {
	return o.shipDate
}

// ShipFrom returns the origin address.
func (o *Order) ShipFrom() kernel.Address {
	return o.shipFrom
}

// ShipTo returns the destination address.
func (o *Order) ShipTo() kernel.Address {
	return o.shipTo
}

// CarrierCode returns the SCAC carrier code, empty when not specified.
func (o *Order) CarrierCode() string {
	return o.carrierCode
}

// ServiceLevel returns the carrier service description, empty when not specified.
func (o *Order) ServiceLevel() string {
	return o.serviceLevel
}

// Lines returns a copy of the ordered line items.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalUnits returns the total ordered quantity across all lines.
func (o *Order) TotalUnits() int {
	total := 0
	for _, l := range o.lines {
		total += l.Quantity()
	}
	return total
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setPurchaseOrder(purchaseOrder string) error {
	if strings.TrimSpace(purchaseOrder) == "" {
		return errs.NewValueIsRequiredError("purchaseOrder")
	}
	o.purchaseOrder = purchaseOrder
	return nil
}

func (o *Order) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("shipDate")
	}
	o.shipDate = shipDate
	return nil
}

func (o *Order) setShipFrom(shipFrom kernel.Address) error {
	if err := shipFrom.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipFrom", err)
	}
	o.shipFrom = shipFrom
	return nil
}

func (o *Order) setShipTo(shipTo kernel.Address) error {
	if err := shipTo.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipTo", err)
	}
	o.shipTo = shipTo
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("lines", err)
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
