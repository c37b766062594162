package asn

import (
	"errors"
	"fmt"

	"shipnotice/internal/core/domain/model/shipment"
)

// Level tags a hierarchy node with its HL level code.
type Level string

const (
	// LevelShipment is the root shipment level (HL03 = S).
	LevelShipment Level = "S"
	// LevelOrder is the customer order level (HL03 = O).
	LevelOrder Level = "O"
	// LevelTare is the carton level (HL03 = T, tare = packaging).
	LevelTare Level = "T"
	// LevelItem is the SKU level (HL03 = I).
	LevelItem Level = "I"
)

var (
	// ErrShipmentIsIncomplete indicates a shipment that cannot be expressed
	// as a hierarchy: missing orders, cartons, items, or container codes.
	ErrShipmentIsIncomplete = errors.New("shipment is incomplete")
)

// Node is one leveled entry in the shipment hierarchy. Ids are assigned in
// strict depth-first visitation order starting at 1 with a single global
// counter; the parent link is a plain integer reference into the arena
// (0 only at the root). Nodes are constructed once per document build and
// never mutated afterwards.
//
// The payload is a tagged variant: exactly one of the level fields is set,
// matching the Level tag.
type Node struct {
	id          int
	parent      int
	level       Level
	hasChildren bool

	shipment *shipment.Shipment
	order    *shipment.Order
	carton   *shipment.Carton
	item     *shipment.Item
}

// ID returns the node's depth-first ordinal, starting at 1.
func (n Node) ID() int { return n.id }

// Parent returns the parent node's ordinal, 0 at the root.
func (n Node) Parent() int { return n.parent }

// Level returns the node's level tag.
func (n Node) Level() Level { return n.level }

// HasChildren reports whether the node has at least one child in the traversal.
func (n Node) HasChildren() bool { return n.hasChildren }

// Shipment returns the payload at LevelShipment nodes, nil elsewhere.
func (n Node) Shipment() *shipment.Shipment { return n.shipment }

// Order returns the payload at LevelOrder nodes, nil elsewhere.
func (n Node) Order() *shipment.Order { return n.order }

// Carton returns the payload at LevelTare nodes, nil elsewhere.
func (n Node) Carton() *shipment.Carton { return n.carton }

// Item returns the payload at LevelItem nodes, nil elsewhere.
func (n Node) Item() *shipment.Item { return n.item }

// Hierarchy is the arena of nodes produced by one depth-first walk over a
// shipment. The slice order is the visitation (and therefore emission) order.
type Hierarchy struct {
	nodes []Node
}

// Nodes returns the nodes in depth-first order.
func (h *Hierarchy) Nodes() []Node {
	nodes := make([]Node, len(h.nodes))
	copy(nodes, h.nodes)
	return nodes
}

// Len returns the total node count.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// ItemCount returns the number of item-level nodes, the value the summary
// trailer reports as the line item count.
func (h *Hierarchy) ItemCount() int {
	count := 0
	for _, n := range h.nodes {
		if n.level == LevelItem {
			count++
		}
	}
	return count
}

// CartonCount returns the number of tare-level nodes.
func (h *Hierarchy) CartonCount() int {
	count := 0
	for _, n := range h.nodes {
		if n.level == LevelTare {
			count++
		}
	}
	return count
}

// BuildHierarchy walks the shipment depth-first (shipment, then each order,
// then each of its cartons, then each item within the carton) and assigns
// global ordinal ids in visitation order. Re-running the builder on an
// unchanged shipment reproduces identical id and parent assignments.
//
// The shipment must be complete: at least one order and one carton, every
// carton holding at least one item and carrying a container code.
func BuildHierarchy(shp *shipment.Shipment) (*Hierarchy, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}
	if err := validateComplete(shp); err != nil {
		return nil, err
	}

	h := &Hierarchy{}
	nextID := 0
	push := func(n Node) int {
		nextID++
		n.id = nextID
		h.nodes = append(h.nodes, n)
		return nextID
	}

	orders := shp.Orders()
	shipmentID := push(Node{
		level:       LevelShipment,
		parent:      0,
		hasChildren: len(orders) > 0,
		shipment:    shp,
	})

	for i := range orders {
		orderRef := orders[i]
		sequences := orderRef.CartonSequences()
		orderID := push(Node{
			level:       LevelOrder,
			parent:      shipmentID,
			hasChildren: len(sequences) > 0,
			order:       &orderRef,
		})

		for _, seq := range sequences {
			carton, err := shp.CartonBySequence(seq)
			if err != nil {
				return nil, err
			}
			items := carton.Items()
			cartonID := push(Node{
				level:       LevelTare,
				parent:      orderID,
				hasChildren: len(items) > 0,
				carton:      carton,
			})

			for j := range items {
				item := items[j]
				push(Node{
					level:  LevelItem,
					parent: cartonID,
					item:   &item,
				})
			}
		}
	}

	return h, nil
}

func validateComplete(shp *shipment.Shipment) error {
	if len(shp.Orders()) == 0 {
		return fmt.Errorf("%w: shipment %s has no orders", ErrShipmentIsIncomplete, shp.ID())
	}
	cartons := shp.Cartons()
	if len(cartons) == 0 {
		return fmt.Errorf("%w: shipment %s has no cartons", ErrShipmentIsIncomplete, shp.ID())
	}
	for _, c := range cartons {
		if len(c.Items()) == 0 {
			return fmt.Errorf("%w: carton %s has no items", ErrShipmentIsIncomplete, c.ID())
		}
		if c.Code() == nil {
			return fmt.Errorf("%w: carton %s has no container code", ErrShipmentIsIncomplete, c.ID())
		}
	}
	return nil
}
