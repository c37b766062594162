package queries

import (
	"errors"
	"strings"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var (
	ErrValidateContainerCodeQueryIsNotConstructed = errors.New(
		"ValidateContainerCodeQuery must be created via NewValidateContainerCodeQuery constructor",
	)
)

// ValidateContainerCodeQuery asks whether a candidate string is a
// well-formed container code with a correct check digit.
//
// Example:
//
//	query, err := NewValidateContainerCodeQuery("006141410000000012")
//	if err != nil {
//	    return err
//	}
//
//	response, _ := handler.Handle(ctx, query)
//	fmt.Printf("valid: %t\n", response.Valid)
type ValidateContainerCodeQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewValidateContainerCodeQuery creates a validation query for the given
// candidate code. The candidate must be non-empty; well-formedness is the
// handler's verdict, not a constructor error.
func NewValidateContainerCodeQuery(code string) (ValidateContainerCodeQuery, error) {
	q := ValidateContainerCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(code) == "" {
		return ValidateContainerCodeQuery{}, errs.NewValueIsRequiredError("code")
	}
	q.code = code

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrValidateContainerCodeQueryIsNotConstructed if validation fails.
func (q ValidateContainerCodeQuery) Validate() error {
	return q.guard.Validate(ErrValidateContainerCodeQueryIsNotConstructed)
}

// Code returns the candidate code under validation.
func (q ValidateContainerCodeQuery) Code() string {
	return q.code
}

// ValidateContainerCodeQueryResponse reports the validation verdict.
type ValidateContainerCodeQueryResponse struct {
	Code  string
	Valid bool
}
