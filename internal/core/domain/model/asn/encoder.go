package asn

import (
	"errors"
	"fmt"
	"strings"

	"shipnotice/internal/core/domain/model/kernel"
)

var (
	// ErrEncoderClosed is returned when Encode is called on an encoder that
	// has already produced its document. Encoders are single-use.
	ErrEncoderClosed = errors.New("encoder already produced its document and cannot be reused")

	// ErrEncodingMismatch indicates that a declared summary total disagrees
	// with the total derived during the hierarchy walk.
	ErrEncodingMismatch = errors.New("declared summary total does not match derived total")
)

// EncodingMismatchError reports which declared total disagreed with the value
// derived from the hierarchy walk. No document is produced on mismatch.
type EncodingMismatchError struct {
	Field    string
	Declared int
	Derived  int
}

// Error implements the error interface.
func (e *EncodingMismatchError) Error() string {
	return fmt.Sprintf("declared summary total does not match derived total: %s declared %d, derived %d",
		e.Field, e.Declared, e.Derived)
}

// Unwrap supports errors.Is checks against ErrEncodingMismatch.
func (e *EncodingMismatchError) Unwrap() error {
	return ErrEncodingMismatch
}

// encoderState tracks the encoder's progress through the document. States
// advance monotonically; stateClosed is terminal.
type encoderState int

const (
	stateInit encoderState = iota
	stateHeaderEmitted
	stateTraversing
	stateSummaryEmitted
	stateClosed
)

// Encoder serializes one Document into an X12 856 segment stream. It emits
// the interchange and group envelope, the transaction set with one HL block
// per hierarchy node, the totals trailer, and the closing envelope, keeping
// the control-number and segment-count bookkeeping exact.
//
// An Encoder is single-use: after a successful or failed Encode it stays
// closed and a fresh Encoder must be created for the next document.
type Encoder struct {
	doc   *Document
	sb    SegmentBuilder
	state encoderState

	segments []string
	stIndex  int

	segmentCount  int
	lineItemCount int
}

// NewEncoder creates an encoder for the given document.
func NewEncoder(doc *Document) (*Encoder, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{
		doc:   doc,
		sb:    NewSegmentBuilder(doc.Delimiters()),
		state: stateInit,
	}, nil
}

// Encode produces the complete document text, every segment followed by the
// segment terminator (including the last). On any error the encoder closes
// without producing output.
func (e *Encoder) Encode() (string, error) {
	if e.state != stateInit {
		return "", ErrEncoderClosed
	}

	e.emitEnvelopeOpen()
	if err := e.traverse(); err != nil {
		e.state = stateClosed
		return "", err
	}
	if err := e.emitSummary(); err != nil {
		e.state = stateClosed
		return "", err
	}
	e.emitEnvelopeClose()

	e.state = stateClosed
	e.segmentCount = len(e.segments)

	var sb strings.Builder
	for _, seg := range e.segments {
		sb.WriteString(seg)
		sb.WriteString(e.doc.Delimiters().Segment)
	}
	return sb.String(), nil
}

// SegmentCount returns the total number of segments emitted, ISA through IEA.
// Zero before a successful Encode.
func (e *Encoder) SegmentCount() int {
	return e.segmentCount
}

// LineItemCount returns the number of item-level HL blocks emitted. Zero
// before a successful Encode.
func (e *Encoder) LineItemCount() int {
	return e.lineItemCount
}

func (e *Encoder) push(segment string) {
	e.segments = append(e.segments, segment)
}

func (e *Encoder) emitEnvelopeOpen() {
	header := e.doc.Header()
	ctrl := header.ControlNumber().String()
	ts := header.ShipDate()

	e.push(e.sb.ISA(header.SenderID(), header.ReceiverID(), ctrl, ts))
	e.push(e.sb.GS(header.SenderID(), header.ReceiverID(), ctrl, ts))
	e.stIndex = len(e.segments)
	e.push(e.sb.ST(ctrl))
	e.push(e.sb.BSN(header.PurposeCode(), header.ShipmentID(), ts))

	e.state = stateHeaderEmitted
}

// traverse emits one HL block per hierarchy node in depth-first order,
// deriving the totals that must later reconcile with the declared summary.
func (e *Encoder) traverse() error {
	e.state = stateTraversing

	for _, node := range e.doc.Hierarchy().Nodes() {
		e.push(e.sb.HL(node.ID(), node.Parent(), node.Level(), node.HasChildren()))

		switch node.Level() {
		case LevelShipment:
			e.emitShipmentDetails(node)
		case LevelOrder:
			e.push(e.sb.REF("PO", node.Order().PurchaseOrder()))
		case LevelTare:
			carton := node.Carton()
			e.push(e.sb.REF("0J", carton.Code().String()))
			e.push(e.sb.TD1(carton.PackagingCode(), 1, carton.Weight()))
		case LevelItem:
			item := node.Item()
			e.push(e.sb.LIN("SK", item.SKU()))
			e.push(e.sb.SN1(item.Quantity(), item.UOM()))
			e.lineItemCount++
		default:
			return fmt.Errorf("hierarchy node %d has unknown level %q", node.ID(), node.Level())
		}
	}

	return nil
}

func (e *Encoder) emitShipmentDetails(node Node) {
	shp := node.Shipment()
	if shp.CarrierCode() != "" {
		e.push(e.sb.TD5(shp.CarrierCode()))
	}
	e.push(e.sb.DTM("011", shp.ShipDate()))
	e.emitParty("SF", shp.ShipFrom())
	e.emitParty("ST", shp.ShipTo())
}

func (e *Encoder) emitParty(entityCode string, addr kernel.Address) {
	e.push(e.sb.N1(entityCode, addr.Name()))
	e.push(e.sb.N3(addr.Line1(), addr.Line2()))
	e.push(e.sb.N4(addr.City(), addr.State(), addr.PostalCode(), addr.CountryCode()))
}

// emitSummary reconciles the declared totals against the walk before writing
// the CTT and SE trailers. SE01 counts every segment from ST through SE
// inclusive.
func (e *Encoder) emitSummary() error {
	summary := e.doc.Summary()
	hierarchy := e.doc.Hierarchy()

	if err := e.reconcile("lineItemCount", summary.LineItemCount(), e.lineItemCount); err != nil {
		return err
	}
	if err := e.reconcile("cartonCount", summary.CartonCount(), hierarchy.CartonCount()); err != nil {
		return err
	}
	derivedQuantity := 0
	for _, node := range hierarchy.Nodes() {
		if node.Level() == LevelItem {
			derivedQuantity += node.Item().Quantity()
		}
	}
	if err := e.reconcile("totalQuantity", summary.TotalQuantity(), derivedQuantity); err != nil {
		return err
	}

	e.push(e.sb.CTT(summary.LineItemCount(), summary.TotalWeight()))

	ctrl := e.doc.Header().ControlNumber().String()
	seCount := len(e.segments) - e.stIndex + 1
	e.push(e.sb.SE(seCount, ctrl))

	e.state = stateSummaryEmitted
	return nil
}

func (e *Encoder) reconcile(field string, declared, derived int) error {
	if declared != derived {
		return &EncodingMismatchError{Field: field, Declared: declared, Derived: derived}
	}
	return nil
}

func (e *Encoder) emitEnvelopeClose() {
	ctrl := e.doc.Header().ControlNumber().String()
	e.push(e.sb.GE(1, ctrl))
	e.push(e.sb.IEA(1, ctrl))
}
