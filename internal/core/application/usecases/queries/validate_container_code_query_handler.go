package queries

import (
	"context"

	"shipnotice/internal/core/domain/model/sscc"
)

// ValidateContainerCodeQueryHandler checks candidate container codes against
// the length and check digit rules.
type ValidateContainerCodeQueryHandler struct{}

// NewValidateContainerCodeQueryHandler creates a validation handler. The
// check is pure computation and needs no dependencies.
func NewValidateContainerCodeQueryHandler() ValidateContainerCodeQueryHandler {
	return ValidateContainerCodeQueryHandler{}
}

// Handle executes the validation. A malformed candidate yields Valid false,
// never an error.
func (h ValidateContainerCodeQueryHandler) Handle(ctx context.Context, query ValidateContainerCodeQuery) (ValidateContainerCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateContainerCodeQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return ValidateContainerCodeQueryResponse{}, err
	}

	return ValidateContainerCodeQueryResponse{
		Code:  query.Code(),
		Valid: sscc.ValidateCode(query.Code()),
	}, nil
}
