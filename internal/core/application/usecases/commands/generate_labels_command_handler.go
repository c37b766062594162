package commands

import (
	"context"

	"shipnotice/internal/core/domain/model/label"
	"shipnotice/internal/core/ports"
)

// GenerateLabelsCommandHandler builds one label per carton and hands the
// batch to the configured renderer.
type GenerateLabelsCommandHandler struct {
	builder  label.Builder
	renderer ports.LabelRenderer
}

// NewGenerateLabelsCommandHandler creates a handler for label generation.
// Requires a renderer implementation for the output medium.
func NewGenerateLabelsCommandHandler(renderer ports.LabelRenderer) GenerateLabelsCommandHandler {
	return GenerateLabelsCommandHandler{
		builder:  label.NewBuilder(),
		renderer: renderer,
	}
}

// Handle builds the batch and renders it. The batch is returned even though
// rendering already happened so callers can report label counts and ids.
func (h GenerateLabelsCommandHandler) Handle(ctx context.Context, cmd GenerateLabelsCommand) (label.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return label.Batch{}, err
	}

	batch, err := h.builder.BuildBatch(cmd.Shipment())
	if err != nil {
		return label.Batch{}, err
	}

	if err = h.renderer.Render(ctx, batch); err != nil {
		return label.Batch{}, err
	}

	return batch, nil
}
