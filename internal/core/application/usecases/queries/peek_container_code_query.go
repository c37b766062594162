// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for the read side of the use case layer.
// Queries return plain read models for specific use cases.
package queries

import (
	"errors"

	"shipnotice/internal/pkg/guard"
)

var (
	ErrPeekContainerCodeQueryIsNotConstructed = errors.New(
		"PeekContainerCodeQuery must be created via NewPeekContainerCodeQuery constructor",
	)
)

// PeekContainerCodeQuery asks which container code the allocator would hand
// out next, without consuming it.
//
// Example:
//
//	query := NewPeekContainerCodeQuery()
//	handler := NewPeekContainerCodeQueryHandler(codes)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to peek container code: %w", err)
//	}
//	fmt.Printf("Next code: %s\n", response.Code)
type PeekContainerCodeQuery struct {
	guard guard.ConstructorGuard
}

// NewPeekContainerCodeQuery creates a parameterless peek query.
func NewPeekContainerCodeQuery() PeekContainerCodeQuery {
	return PeekContainerCodeQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrPeekContainerCodeQueryIsNotConstructed if validation fails.
func (q PeekContainerCodeQuery) Validate() error {
	return q.guard.Validate(ErrPeekContainerCodeQueryIsNotConstructed)
}

// PeekContainerCodeQueryResponse represents the next allocatable container
// code in the read model.
type PeekContainerCodeQueryResponse struct {
	Code   string
	Serial uint64
}
