package asn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
)

// Default X12 delimiters.
const (
	DefaultSegmentTerminator   = "~"
	DefaultElementSeparator    = "*"
	DefaultSubElementSeparator = ":"
)

// Delimiters configures the three separators of the encoded document.
type Delimiters struct {
	Segment    string
	Element    string
	SubElement string
}

// DefaultDelimiters returns the conventional ~ * : delimiter set.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Segment:    DefaultSegmentTerminator,
		Element:    DefaultElementSeparator,
		SubElement: DefaultSubElementSeparator,
	}
}

// SegmentBuilder renders individual X12 004010 segments for an 856 ship
// notice. All methods return the segment WITHOUT its terminator; the encoder
// joins segments with the configured terminator.
type SegmentBuilder struct {
	delims Delimiters
}

// NewSegmentBuilder creates a SegmentBuilder with the given delimiters.
func NewSegmentBuilder(delims Delimiters) SegmentBuilder {
	return SegmentBuilder{delims: delims}
}

func (b SegmentBuilder) join(elements ...string) string {
	return strings.Join(elements, b.delims.Element)
}

// ISA renders the Interchange Control Header. ISA is the one fixed-width
// segment of the grammar: sender and receiver ids are space-padded to 15
// characters and the control number is zero-padded to 9 digits.
func (b SegmentBuilder) ISA(senderID, receiverID, controlNumber string, ts time.Time) string {
	return b.join(
		"ISA",
		"00", "          ", // ISA01-02: no authorization information
		"00", "          ", // ISA03-04: no security information
		"ZZ", padRight(senderID, 15), // ISA05-06: sender
		"ZZ", padRight(receiverID, 15), // ISA07-08: receiver
		ts.Format("060102"), // ISA09: date YYMMDD
		ts.Format("1504"),   // ISA10: time HHMM
		"U",                 // ISA11: US EDI community
		"00401",             // ISA12: version
		zeroPad(controlNumber, 9), // ISA13: control number
		"0",                 // ISA14: no acknowledgment requested
		"P",                 // ISA15: production
		b.delims.SubElement, // ISA16: sub-element separator
	)
}

// GS renders the Functional Group Header (functional id SH, version 004010).
func (b SegmentBuilder) GS(senderCode, receiverCode, controlNumber string, ts time.Time) string {
	return b.join(
		"GS",
		"SH",
		senderCode,
		receiverCode,
		ts.Format("20060102"),
		ts.Format("1504"),
		zeroPad(controlNumber, 9),
		"X",
		"004010",
	)
}

// GE renders the Functional Group Trailer.
func (b SegmentBuilder) GE(transactionCount int, controlNumber string) string {
	return b.join("GE", strconv.Itoa(transactionCount), zeroPad(controlNumber, 9))
}

// IEA renders the Interchange Control Trailer.
func (b SegmentBuilder) IEA(groupCount int, controlNumber string) string {
	return b.join("IEA", strconv.Itoa(groupCount), zeroPad(controlNumber, 9))
}

// ST renders the Transaction Set Header for an 856.
func (b SegmentBuilder) ST(controlNumber string) string {
	return b.join("ST", "856", zeroPad(controlNumber, 4))
}

// SE renders the Transaction Set Trailer. segmentCount covers every segment
// from ST through SE inclusive and must match the records actually written.
func (b SegmentBuilder) SE(segmentCount int, controlNumber string) string {
	return b.join("SE", strconv.Itoa(segmentCount), zeroPad(controlNumber, 4))
}

// BSN renders the Beginning Segment for Ship Notice.
func (b SegmentBuilder) BSN(purposeCode, shipmentID string, ts time.Time) string {
	return b.join("BSN", purposeCode, shipmentID, ts.Format("20060102"), ts.Format("1504"))
}

// HL renders a Hierarchical Level segment. A parent of 0 renders as an empty
// element (the root); the child flag is 1 when the node has children.
func (b SegmentBuilder) HL(id, parent int, level Level, hasChildren bool) string {
	parentStr := ""
	if parent > 0 {
		parentStr = strconv.Itoa(parent)
	}
	childFlag := "0"
	if hasChildren {
		childFlag = "1"
	}
	return b.join("HL", strconv.Itoa(id), parentStr, string(level), childFlag)
}

// REF renders a Reference Identification segment. Qualifier PO carries the
// purchase order number; qualifier 0J carries the container code.
func (b SegmentBuilder) REF(qualifier, referenceID string) string {
	return b.join("REF", qualifier, referenceID)
}

// DTM renders a Date/Time Reference segment in CCYYMMDD format
// (qualifier 011 = shipped).
func (b SegmentBuilder) DTM(qualifier string, date time.Time) string {
	return b.join("DTM", qualifier, date.Format("20060102"), "204")
}

// N1 renders a Party Identification segment (SF = ship from, ST = ship to).
func (b SegmentBuilder) N1(entityCode, name string) string {
	return b.join("N1", entityCode, name)
}

// N3 renders a Party Location segment; line2 is omitted when empty.
func (b SegmentBuilder) N3(line1, line2 string) string {
	if line2 == "" {
		return b.join("N3", line1)
	}
	return b.join("N3", line1, line2)
}

// N4 renders a Geographic Location segment.
func (b SegmentBuilder) N4(city, state, postalCode, countryCode string) string {
	return b.join("N4", city, state, postalCode, countryCode)
}

// TD1 renders Carrier Details (Quantity and Weight) for one carton:
// packaging code, lading quantity, and gross weight in pounds.
func (b SegmentBuilder) TD1(packagingCode string, ladingQuantity int, weight kernel.Weight) string {
	return b.join(
		"TD1",
		packagingCode,
		strconv.Itoa(ladingQuantity),
		"", "", "", // TD103-105 unused
		"G",
		formatWeight(weight),
		"LB",
	)
}

// TD5 renders Carrier Details (Routing Sequence) with a SCAC-qualified
// carrier code (routing B = origin and destination carrier).
func (b SegmentBuilder) TD5(carrierCode string) string {
	return b.join("TD5", "B", "2", carrierCode)
}

// LIN renders an Item Identification segment. LIN01 is intentionally blank;
// the qualifier is usually SK (stock keeping unit).
func (b SegmentBuilder) LIN(qualifier, productID string) string {
	return b.join("LIN", "", qualifier, productID)
}

// SN1 renders an Item Detail (Shipment) segment. SN101 is intentionally blank.
func (b SegmentBuilder) SN1(quantity int, uom string) string {
	return b.join("SN1", "", strconv.Itoa(quantity), uom)
}

// CTT renders the Transaction Totals segment: line item count and, in CTT04,
// the total gross weight.
func (b SegmentBuilder) CTT(lineItemCount int, totalWeight kernel.Weight) string {
	return b.join(
		"CTT",
		strconv.Itoa(lineItemCount),
		"", "", // CTT02-03 unused
		formatWeight(totalWeight),
		"LB",
	)
}

func formatWeight(w kernel.Weight) string {
	return fmt.Sprintf("%.2f", w.Pounds())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
