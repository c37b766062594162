package shipment

import (
	"errors"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// via the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrOrderRefIsNotConstructed is returned when an Order reference was not
	// created via the NewOrder constructor.
	ErrOrderRefIsNotConstructed = errs.NewValueIsRequiredError(
		"shipment order must be created via NewOrder constructor")

	// ErrUnknownCartonSequence indicates an order referencing a carton
	// sequence the shipment does not hold.
	ErrUnknownCartonSequence = errors.New("order references a carton sequence not present in the shipment")
)

// Order is the shipment-side view of a customer order: the order identity
// plus the sequences of the cartons that fulfill it. The full input order
// stays in the order package; this reference is what the hierarchy carries.
type Order struct { //nolint:recvcheck //using for validation
	orderID         string
	purchaseOrder   string
	cartonSequences []int

	guard guard.ConstructorGuard
}

// NewOrder creates a shipment order reference.
func NewOrder(orderID, purchaseOrder string, cartonSequences []int) (Order, error) {
	o := Order{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(orderID) == "" {
		return Order{}, errs.NewValueIsRequiredError("orderID")
	}
	if strings.TrimSpace(purchaseOrder) == "" {
		return Order{}, errs.NewValueIsRequiredError("purchaseOrder")
	}
	if len(cartonSequences) == 0 {
		return Order{}, errs.NewValueIsRequiredError("cartonSequences")
	}

	o.orderID = orderID
	o.purchaseOrder = purchaseOrder
	o.cartonSequences = make([]int, len(cartonSequences))
	copy(o.cartonSequences, cartonSequences)
	return o, nil
}

// Validate checks that the Order was built through NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderRefIsNotConstructed)
}

// OrderID returns the customer order identifier.
func (o Order) OrderID() string {
	return o.orderID
}

// PurchaseOrder returns the customer PO number.
func (o Order) PurchaseOrder() string {
	return o.purchaseOrder
}

// CartonSequences returns the sequences of the cartons fulfilling this order.
func (o Order) CartonSequences() []int {
	seqs := make([]int, len(o.cartonSequences))
	copy(seqs, o.cartonSequences)
	return seqs
}

// Shipment is the root aggregate of the cartonization output: the orders it
// fulfills, the cartons that realize them, and rollup totals. Totals are
// recomputed from the cartons after every structural change and are never
// stored independently of their source.
type Shipment struct {
	id           string
	shipDate     time.Time
	shipFrom     kernel.Address
	shipTo       kernel.Address
	carrierCode  string
	serviceLevel string

	orders  []Order
	cartons []*Carton

	totalWeight  kernel.Weight
	totalCartons int

	isConstructed bool
}

// NewShipment creates an empty shipment shell. Orders and cartons are added
// afterwards by the cartonizer; totals start at zero.
func NewShipment(
	id string,
	shipDate time.Time,
	shipFrom kernel.Address,
	shipTo kernel.Address,
	carrierCode string,
	serviceLevel string,
) (*Shipment, error) {
	s := &Shipment{
		carrierCode:   strings.ToUpper(carrierCode),
		serviceLevel:  serviceLevel,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipDate(shipDate),
		s.setShipFrom(shipFrom),
		s.setShipTo(shipTo),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was properly constructed through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() string {
	return s.id
}

// ShipDate returns the scheduled ship date.
func (s *Shipment) ShipDate() time.Time {
	return s.shipDate
}

// ShipFrom returns the origin address.
func (s *Shipment) ShipFrom() kernel.Address {
	return s.shipFrom
}

// ShipTo returns the destination address.
func (s *Shipment) ShipTo() kernel.Address {
	return s.shipTo
}

// CarrierCode returns the SCAC carrier code, empty when not specified.
func (s *Shipment) CarrierCode() string {
	return s.carrierCode
}

// ServiceLevel returns the carrier service description, empty when not specified.
func (s *Shipment) ServiceLevel() string {
	return s.serviceLevel
}

// Orders returns a copy of the order references in this shipment.
func (s *Shipment) Orders() []Order {
	orders := make([]Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Cartons returns the cartons in sequence order. The returned slice is a
// copy; the cartons themselves are shared references.
func (s *Shipment) Cartons() []*Carton {
	cartons := make([]*Carton, len(s.cartons))
	copy(cartons, s.cartons)
	return cartons
}

// CartonBySequence returns the carton with the given sequence number, or an
// ErrUnknownCartonSequence error if the shipment holds no such carton.
func (s *Shipment) CartonBySequence(sequence int) (*Carton, error) {
	for _, c := range s.cartons {
		if c.Sequence() == sequence {
			return c, nil
		}
	}
	return nil, ErrUnknownCartonSequence
}

// AddOrder appends an order reference. Every carton sequence the order
// references must already be present in the shipment.
func (s *Shipment) AddOrder(o Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for _, seq := range o.CartonSequences() {
		if _, err := s.CartonBySequence(seq); err != nil {
			return err
		}
	}
	s.orders = append(s.orders, o)
	return nil
}

// AddCarton appends a carton and recomputes rollup totals.
func (s *Shipment) AddCarton(c *Carton) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.cartons = append(s.cartons, c)
	s.recomputeTotals()
	return nil
}

// TotalWeight returns the rollup gross weight across all cartons.
func (s *Shipment) TotalWeight() kernel.Weight {
	return s.totalWeight
}

// TotalCartons returns the rollup carton count.
func (s *Shipment) TotalCartons() int {
	return s.totalCartons
}

// TotalUnits returns the total packed unit count across all cartons.
func (s *Shipment) TotalUnits() int {
	total := 0
	for _, c := range s.cartons {
		total += c.TotalUnits()
	}
	return total
}

// LineItemCount returns the number of distinct packed items across all
// cartons, one per SKU per carton. This is the count the document summary
// trailer reports.
func (s *Shipment) LineItemCount() int {
	count := 0
	for _, c := range s.cartons {
		count += len(c.Items())
	}
	return count
}

func (s *Shipment) recomputeTotals() {
	s.totalCartons = len(s.cartons)
	var weight kernel.Weight
	for _, c := range s.cartons {
		weight = weight.Add(c.Weight())
	}
	s.totalWeight = weight
}

func (s *Shipment) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

func (s *Shipment) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("shipDate")
	}
	s.shipDate = shipDate
	return nil
}

func (s *Shipment) setShipFrom(shipFrom kernel.Address) error {
	if err := shipFrom.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipFrom", err)
	}
	s.shipFrom = shipFrom
	return nil
}

func (s *Shipment) setShipTo(shipTo kernel.Address) error {
	if err := shipTo.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipTo", err)
	}
	s.shipTo = shipTo
	return nil
}
