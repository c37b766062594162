package queries

import (
	"context"

	"shipnotice/internal/core/ports"
)

// PeekContainerCodeQueryHandler reads the allocator's next code without
// advancing it.
type PeekContainerCodeQueryHandler struct {
	codes ports.ContainerCodes
}

// NewPeekContainerCodeQueryHandler creates a handler over the shared
// container code allocator.
func NewPeekContainerCodeQueryHandler(codes ports.ContainerCodes) PeekContainerCodeQueryHandler {
	return PeekContainerCodeQueryHandler{codes: codes}
}

// Handle executes the peek. Returns the same error surface as allocation,
// including serial overflow when the range is exhausted.
func (h PeekContainerCodeQueryHandler) Handle(ctx context.Context, query PeekContainerCodeQuery) (PeekContainerCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PeekContainerCodeQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return PeekContainerCodeQueryResponse{}, err
	}

	code, err := h.codes.Peek()
	if err != nil {
		return PeekContainerCodeQueryResponse{}, err
	}

	return PeekContainerCodeQueryResponse{
		Code:   code.String(),
		Serial: code.Serial(),
	}, nil
}
