// Package asn models the advance ship notice document and its X12 004010 856
// encoding.
//
// The package splits the work into three layers. BuildHierarchy flattens a
// complete shipment into a depth-first arena of leveled nodes (shipment,
// order, tare, item) with globally sequential ids. Document pairs that
// hierarchy with a validated Header, declared Summary totals, and a delimiter
// configuration. Encoder serializes the document into the final segment
// stream with exact envelope bookkeeping: one control number shared by every
// open/close pair, and an SE count covering ST through SE inclusive.
//
// The encoder re-derives the summary totals during its walk and refuses to
// produce a document whose declared and derived totals disagree; see
// EncodingMismatchError.
package asn
