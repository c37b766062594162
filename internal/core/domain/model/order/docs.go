// Package order models the validated customer order: the Order aggregate and
// its immutable Line value objects. The order is the read-only input of the
// cartonization pipeline; raw-submission parsing and schema validation happen
// at the adapter boundary before an Order is ever constructed.
package order
