package asn

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// PurposeOriginal is the BSN01 transaction purpose for an original ship notice.
const PurposeOriginal = "00"

var (
	// ErrControlNumberIsNotConstructed is returned for a zero-value ControlNumber.
	ErrControlNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"control number must be created via NewControlNumber or ControlNumberFromString")

	// ErrHeaderIsNotConstructed is returned for a zero-value Header.
	ErrHeaderIsNotConstructed = errs.NewValueIsRequiredError(
		"document header must be created via NewHeader constructor")

	// ErrSummaryIsNotConstructed is returned for a zero-value Summary.
	ErrSummaryIsNotConstructed = errs.NewValueIsRequiredError(
		"document summary must be created via NewSummary constructor")

	// ErrDocumentIsNotConstructed is returned when a Document was not created
	// via the NewDocument factory method.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
)

// ControlNumber identifies one interchange. It is generated once at document
// build time and reused verbatim in every matching open/close pair (ISA/IEA,
// GS/GE, ST/SE). At most nine digits; the segment builder pads per field.
type ControlNumber struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewControlNumber derives a control number from a timestamp: the last nine
// digits of its YYYYMMDDHHMMSS rendering, the same derivation the trading
// partner sees on consecutive documents as a strictly advancing number.
func NewControlNumber(t time.Time) ControlNumber {
	stamp := t.Format("20060102150405")
	return ControlNumber{
		value: stamp[len(stamp)-9:],
		guard: guard.NewConstructorGuard(),
	}
}

// ControlNumberFromString creates a control number from an explicit digit
// string of one to nine digits.
func ControlNumberFromString(s string) (ControlNumber, error) {
	if len(s) == 0 || len(s) > 9 {
		return ControlNumber{}, errs.NewValueIsOutOfRangeError("controlNumber length", len(s), 1, 9)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ControlNumber{}, errs.NewValueIsInvalidErrorWithCause("controlNumber",
				fmt.Errorf("character %q at index %d is not a decimal digit", s[i], i))
		}
	}
	return ControlNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the ControlNumber was built through a constructor.
func (c ControlNumber) Validate() error {
	return c.guard.Validate(ErrControlNumberIsNotConstructed)
}

// String returns the raw digit string.
func (c ControlNumber) String() string {
	return c.value
}

// Header carries the document-level metadata: purpose code, shipment
// identity, date, interchange parties, and the control number.
type Header struct { //nolint:recvcheck //using for validation
	purposeCode   string
	shipmentID    string
	shipDate      time.Time
	senderID      string
	receiverID    string
	controlNumber ControlNumber

	guard guard.ConstructorGuard
}

// NewHeader creates a validated document header. An empty purposeCode
// defaults to PurposeOriginal.
func NewHeader(purposeCode, shipmentID string, shipDate time.Time, senderID, receiverID string, controlNumber ControlNumber) (Header, error) {
	h := Header{
		guard: guard.NewConstructorGuard(),
	}

	if purposeCode == "" {
		purposeCode = PurposeOriginal
	}
	h.purposeCode = purposeCode

	if err := errors.Join(
		requireField("shipmentID", shipmentID),
		requireField("senderID", senderID),
		requireField("receiverID", receiverID),
		controlNumber.Validate(),
	); err != nil {
		return Header{}, err
	}
	if shipDate.IsZero() {
		return Header{}, errs.NewValueIsRequiredError("shipDate")
	}

	h.shipmentID = shipmentID
	h.shipDate = shipDate
	h.senderID = senderID
	h.receiverID = receiverID
	h.controlNumber = controlNumber
	return h, nil
}

// Validate checks that the Header was built through NewHeader.
func (h Header) Validate() error {
	return h.guard.Validate(ErrHeaderIsNotConstructed)
}

// PurposeCode returns the BSN01 transaction purpose code.
func (h Header) PurposeCode() string { return h.purposeCode }

// ShipmentID returns the shipment identifier carried in BSN02.
func (h Header) ShipmentID() string { return h.shipmentID }

// ShipDate returns the shipment date used for the envelope timestamps.
func (h Header) ShipDate() time.Time { return h.shipDate }

// SenderID returns the interchange sender identifier.
func (h Header) SenderID() string { return h.senderID }

// ReceiverID returns the interchange receiver identifier.
func (h Header) ReceiverID() string { return h.receiverID }

// ControlNumber returns the interchange control number.
func (h Header) ControlNumber() ControlNumber { return h.controlNumber }

// Summary carries the totals the caller declares from shipment rollups. The
// encoder re-derives the same totals during its walk and fails with an
// EncodingMismatchError when they disagree.
type Summary struct { //nolint:recvcheck //using for validation
	lineItemCount int
	totalQuantity int
	totalWeight   kernel.Weight
	cartonCount   int

	guard guard.ConstructorGuard
}

// NewSummary creates a validated summary. Counts must be positive: a
// document without items or cartons is not encodable.
func NewSummary(lineItemCount, totalQuantity int, totalWeight kernel.Weight, cartonCount int) (Summary, error) {
	if lineItemCount < 1 {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause("lineItemCount",
			fmt.Errorf("%d is not greater than 0", lineItemCount))
	}
	if totalQuantity < 1 {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause("totalQuantity",
			fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	if cartonCount < 1 {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause("cartonCount",
			fmt.Errorf("%d is not greater than 0", cartonCount))
	}
	return Summary{
		lineItemCount: lineItemCount,
		totalQuantity: totalQuantity,
		totalWeight:   totalWeight,
		cartonCount:   cartonCount,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Summary was built through NewSummary.
func (s Summary) Validate() error {
	return s.guard.Validate(ErrSummaryIsNotConstructed)
}

// LineItemCount returns the declared item-node count.
func (s Summary) LineItemCount() int { return s.lineItemCount }

// TotalQuantity returns the declared packed unit total.
func (s Summary) TotalQuantity() int { return s.totalQuantity }

// TotalWeight returns the declared gross weight total.
func (s Summary) TotalWeight() kernel.Weight { return s.totalWeight }

// CartonCount returns the declared carton count.
func (s Summary) CartonCount() int { return s.cartonCount }

// Document is the complete shell handed to the encoder: header, delimiter
// configuration, the numbered hierarchy, and the declared summary.
type Document struct {
	header    Header
	delims    Delimiters
	hierarchy *Hierarchy
	summary   Summary

	isConstructed bool
}

// NewDocument assembles a document for encoding.
func NewDocument(header Header, delims Delimiters, hierarchy *Hierarchy, summary Summary) (*Document, error) {
	if err := errors.Join(header.Validate(), summary.Validate()); err != nil {
		return nil, err
	}
	if hierarchy == nil || hierarchy.Len() == 0 {
		return nil, errs.NewValueIsRequiredError("hierarchy")
	}
	if delims.Segment == "" || delims.Element == "" || delims.SubElement == "" {
		return nil, errs.NewValueIsRequiredError("delimiters")
	}

	return &Document{
		header:        header,
		delims:        delims,
		hierarchy:     hierarchy,
		summary:       summary,
		isConstructed: true,
	}, nil
}

// Validate ensures the Document was properly constructed through NewDocument.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// Header returns the document header.
func (d *Document) Header() Header { return d.header }

// Delimiters returns the delimiter configuration.
func (d *Document) Delimiters() Delimiters { return d.delims }

// Hierarchy returns the numbered node arena.
func (d *Document) Hierarchy() *Hierarchy { return d.hierarchy }

// Summary returns the declared totals.
func (d *Document) Summary() Summary { return d.summary }

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
