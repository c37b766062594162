package ports

import "shipnotice/internal/core/domain/model/sscc"

// ContainerCodes is the outbound port for sequential container code
// allocation. Implementations must be safe for concurrent use and must never
// hand the same code to two callers.
type ContainerCodes interface {
	// Next allocates and returns the next container code.
	Next() (sscc.Code, error)

	// Peek returns the code Next would allocate without advancing.
	Peek() (sscc.Code, error)

	// Batch allocates n consecutive codes. n must be positive; on overflow
	// mid-batch no codes are consumed.
	Batch(n int) ([]sscc.Code, error)
}
