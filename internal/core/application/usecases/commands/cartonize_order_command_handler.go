package commands

import (
	"context"

	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/services"
	"shipnotice/internal/core/ports"
)

// CartonizeOrderCommandHandler packs orders into cartons using the configured
// packing policy and the shared container code allocator.
//
// Example:
//
//	handler := NewCartonizeOrderCommandHandler(cartonizer, codes)
//	cmd, _ := NewCartonizeOrderCommand(ord)
//
//	shp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("cartonization failed: %w", err)
//	}
type CartonizeOrderCommandHandler struct {
	cartonizer services.Cartonizer
	codes      ports.ContainerCodes
}

// NewCartonizeOrderCommandHandler creates a handler for cartonization.
// Requires the domain cartonizer and a container code source.
func NewCartonizeOrderCommandHandler(cartonizer services.Cartonizer, codes ports.ContainerCodes) CartonizeOrderCommandHandler {
	return CartonizeOrderCommandHandler{
		cartonizer: cartonizer,
		codes:      codes,
	}
}

// Handle processes the cartonization command and returns the populated
// shipment. The operation is all or nothing: on any failure no shipment is
// produced and no container codes leak into the output.
func (h CartonizeOrderCommandHandler) Handle(ctx context.Context, cmd CartonizeOrderCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.cartonizer.Cartonize(cmd.Order(), h.codes)
}
