package commands

import (
	"context"
	"time"

	"shipnotice/internal/core/domain/model/asn"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/services"
	"shipnotice/internal/core/ports"
)

// GenerateShipNoticeResult carries the encoded document and its bookkeeping.
type GenerateShipNoticeResult struct {
	// Document is the complete segment stream, every segment terminated.
	Document string

	// ControlNumber is the interchange control number shared by every
	// open/close envelope pair in the document.
	ControlNumber string

	// SegmentCount is the total number of segments, ISA through IEA.
	SegmentCount int

	// LineItemCount is the number of item-level HL blocks.
	LineItemCount int

	// Shipment is the cartonized shipment the document describes.
	Shipment *shipment.Shipment
}

// GenerateShipNoticeCommandHandler runs the full pipeline: cartonization,
// hierarchy numbering, and 856 encoding.
//
// Example:
//
//	handler := NewGenerateShipNoticeCommandHandler(cartonizer, codes)
//	cmd, _ := NewGenerateShipNoticeCommand(ord, "SENDER", "RECEIVER", time.Time{})
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("ship notice generation failed: %w", err)
//	}
type GenerateShipNoticeCommandHandler struct {
	cartonizer services.Cartonizer
	codes      ports.ContainerCodes
	now        func() time.Time
}

// NewGenerateShipNoticeCommandHandler creates a handler for ship notice
// generation. The handler's clock supplies the document timestamp when the
// command does not fix one.
func NewGenerateShipNoticeCommandHandler(cartonizer services.Cartonizer, codes ports.ContainerCodes) GenerateShipNoticeCommandHandler {
	return GenerateShipNoticeCommandHandler{
		cartonizer: cartonizer,
		codes:      codes,
		now:        time.Now,
	}
}

// Handle processes the command end to end. The operation is all or nothing:
// any failure in packing, numbering, or encoding yields no document.
func (h GenerateShipNoticeCommandHandler) Handle(ctx context.Context, cmd GenerateShipNoticeCommand) (GenerateShipNoticeResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateShipNoticeResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return GenerateShipNoticeResult{}, err
	}

	shp, err := h.cartonizer.Cartonize(cmd.Order(), h.codes)
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	hierarchy, err := asn.BuildHierarchy(shp)
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	issuedAt := cmd.IssuedAt()
	if issuedAt.IsZero() {
		issuedAt = h.now()
	}
	controlNumber := asn.NewControlNumber(issuedAt)

	header, err := asn.NewHeader(asn.PurposeOriginal, shp.ID(), shp.ShipDate(), cmd.SenderID(), cmd.ReceiverID(), controlNumber)
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	summary, err := asn.NewSummary(shp.LineItemCount(), shp.TotalUnits(), shp.TotalWeight(), shp.TotalCartons())
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	doc, err := asn.NewDocument(header, asn.DefaultDelimiters(), hierarchy, summary)
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	encoder, err := asn.NewEncoder(doc)
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	text, err := encoder.Encode()
	if err != nil {
		return GenerateShipNoticeResult{}, err
	}

	return GenerateShipNoticeResult{
		Document:      text,
		ControlNumber: controlNumber.String(),
		SegmentCount:  encoder.SegmentCount(),
		LineItemCount: encoder.LineItemCount(),
		Shipment:      shp,
	}, nil
}
