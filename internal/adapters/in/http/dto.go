package http

import (
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/order"
)

// AddressDTO carries one postal address in requests and responses.
type AddressDTO struct {
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode,omitempty"`
}

// LineDTO carries one order line.
type LineDTO struct {
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	UOM         string   `json:"uom,omitempty"`
	UnitWeight  *float64 `json:"unitWeight,omitempty"`
}

// ShipNoticeRequest is the body of POST /api/v1/shipments: one validated
// order to cartonize and encode.
type ShipNoticeRequest struct {
	OrderID       string     `json:"orderId"`
	PurchaseOrder string     `json:"purchaseOrder"`
	ShipDate      string     `json:"shipDate"`
	ShipFrom      AddressDTO `json:"shipFrom"`
	ShipTo        AddressDTO `json:"shipTo"`
	CarrierCode   string     `json:"carrierCode,omitempty"`
	ServiceLevel  string     `json:"serviceLevel,omitempty"`
	Lines         []LineDTO  `json:"lines"`
}

// ShipNoticeResponse reports the generated document and its bookkeeping.
type ShipNoticeResponse struct {
	ShipmentID    string   `json:"shipmentId"`
	ControlNumber string   `json:"controlNumber"`
	SegmentCount  int      `json:"segmentCount"`
	LineItemCount int      `json:"lineItemCount"`
	CartonCount   int      `json:"cartonCount"`
	TotalWeight   float64  `json:"totalWeight"`
	ContainerCodes []string `json:"containerCodes"`
	Document      string   `json:"document"`
}

// ContainerCodeResponse reports the next allocatable container code.
type ContainerCodeResponse struct {
	Code   string `json:"code"`
	Serial uint64 `json:"serial"`
}

// ValidateCodeRequest is the body of POST /api/v1/container-codes/validate.
type ValidateCodeRequest struct {
	Code string `json:"code"`
}

// ValidateCodeResponse reports the validation verdict.
type ValidateCodeResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toOrder converts the request into the order aggregate, running all domain
// validation in the process.
func (r ShipNoticeRequest) toOrder() (*order.Order, error) {
	shipDate, err := time.Parse("2006-01-02", r.ShipDate)
	if err != nil {
		return nil, err
	}

	shipFrom, err := r.ShipFrom.toAddress()
	if err != nil {
		return nil, err
	}
	shipTo, err := r.ShipTo.toAddress()
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(r.Lines))
	for _, dto := range r.Lines {
		var unitWeight *kernel.Weight
		if dto.UnitWeight != nil {
			w, weightErr := kernel.NewWeight(*dto.UnitWeight)
			if weightErr != nil {
				return nil, weightErr
			}
			unitWeight = &w
		}

		line, lineErr := order.NewLine(dto.SKU, dto.Description, dto.Quantity, dto.UOM, unitWeight)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.NewOrder(
		r.OrderID,
		r.PurchaseOrder,
		shipDate,
		shipFrom,
		shipTo,
		r.CarrierCode,
		r.ServiceLevel,
		lines,
	)
}

func (a AddressDTO) toAddress() (kernel.Address, error) {
	return kernel.NewAddress(a.Name, a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.CountryCode)
}
