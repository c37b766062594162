package ports

import (
	"context"

	"shipnotice/internal/core/domain/model/label"
)

// LabelRenderer is the outbound port for writing a label batch to an output
// medium.
type LabelRenderer interface {
	// Render writes every label in the batch.
	Render(ctx context.Context, batch label.Batch) error
}
