// Package codealloc adapts the container code generator to the
// ports.ContainerCodes port. The generator itself keeps no locking; the
// allocator serializes all access so concurrent callers never observe the
// same serial.
package codealloc

import (
	"sync"

	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
)

// Allocator wraps a single sscc.Generator behind a mutex.
type Allocator struct {
	mu  sync.Mutex
	gen *sscc.Generator
}

// NewAllocator creates an allocator over the given generator.
func NewAllocator(gen *sscc.Generator) (*Allocator, error) {
	if gen == nil {
		return nil, errs.NewValueIsRequiredError("gen")
	}
	return &Allocator{gen: gen}, nil
}

// Next allocates and returns the next container code.
func (a *Allocator) Next() (sscc.Code, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen.Next()
}

// Peek returns the code Next would allocate without advancing the serial.
func (a *Allocator) Peek() (sscc.Code, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen.Peek()
}

// Batch allocates n consecutive codes atomically with respect to other
// callers.
func (a *Allocator) Batch(n int) ([]sscc.Code, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen.Batch(n)
}
