package label

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
)

// carrierNames maps common SCAC codes to the names printed on labels.
// Unknown codes pass through unchanged.
var carrierNames = map[string]string{
	"UPSN": "UPS",
	"FDEG": "FedEx Ground",
	"FDXE": "FedEx Express",
	"FXFE": "FedEx Freight",
	"FEDX": "FedEx",
	"UPGF": "UPS Freight",
	"RDWY": "YRC Freight",
	"DHRN": "DHL",
	"USPS": "USPS",
}

// CarrierName resolves a SCAC code to a printable carrier name. Unknown codes
// are returned verbatim; an empty code yields an empty name.
func CarrierName(carrierCode string) string {
	if name, ok := carrierNames[carrierCode]; ok {
		return name
	}
	return carrierCode
}

// Label is the read model for one carton's shipping label. It is a plain
// projection of shipment state, assembled by the Builder and consumed by a
// renderer.
type Label struct {
	Code           sscc.Code
	CartonSequence int
	TotalCartons   int

	ShipmentID    string
	OrderID       string
	PurchaseOrder string

	ShipFrom kernel.Address
	ShipTo   kernel.Address

	CarrierName  string
	ServiceLevel string

	Weight    kernel.Weight
	UnitCount int

	// Contents holds one line per packed item, "SKU: Description (qty UOM)".
	Contents []string

	ShipDate time.Time
}

// CartonID returns the carton's internal identifier on the label.
func (l Label) CartonID() string {
	return fmt.Sprintf("CTN-%04d", l.CartonSequence)
}

// Position renders the "carton N of M" marker.
func (l Label) Position() string {
	return fmt.Sprintf("%d of %d", l.CartonSequence, l.TotalCartons)
}

// Batch groups the labels generated for one shipment in a single run.
type Batch struct {
	ID          uuid.UUID
	ShipmentID  string
	Labels      []Label
	GeneratedAt time.Time
}

// Builder projects a complete shipment into a label batch, one label per
// carton in sequence order.
type Builder struct{}

// NewBuilder creates a label builder.
func NewBuilder() Builder {
	return Builder{}
}

// BuildBatch builds one label per carton. The shipment must be complete:
// every carton carries a container code and the shipment references at least
// one order.
func (b Builder) BuildBatch(shp *shipment.Shipment) (Batch, error) {
	if err := shp.Validate(); err != nil {
		return Batch{}, err
	}

	orders := shp.Orders()
	if len(orders) == 0 {
		return Batch{}, errs.NewValueIsRequiredError("shipment orders")
	}
	primary := orders[0]

	cartons := shp.Cartons()
	labels := make([]Label, 0, len(cartons))
	for _, carton := range cartons {
		code := carton.Code()
		if code == nil {
			return Batch{}, fmt.Errorf("carton %s has no container code", carton.ID())
		}

		labels = append(labels, Label{
			Code:           *code,
			CartonSequence: carton.Sequence(),
			TotalCartons:   shp.TotalCartons(),
			ShipmentID:     shp.ID(),
			OrderID:        primary.OrderID(),
			PurchaseOrder:  primary.PurchaseOrder(),
			ShipFrom:       shp.ShipFrom(),
			ShipTo:         shp.ShipTo(),
			CarrierName:    CarrierName(shp.CarrierCode()),
			ServiceLevel:   shp.ServiceLevel(),
			Weight:         carton.Weight(),
			UnitCount:      carton.TotalUnits(),
			Contents:       contents(carton),
			ShipDate:       shp.ShipDate(),
		})
	}

	return Batch{
		ID:          uuid.New(),
		ShipmentID:  shp.ID(),
		Labels:      labels,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func contents(carton *shipment.Carton) []string {
	items := carton.Items()
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %s (%d %s)", item.SKU(), item.Description(), item.Quantity(), item.UOM()))
	}
	return lines
}
