// Package kernel provides core domain primitives shared across the ship notice
// domain model.
//
// The package includes:
//   - Weight: a value object for gross weights in pounds with arithmetic helpers
//   - Address: a value object for shipping parties (origin and destination)
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
