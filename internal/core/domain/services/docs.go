// Package services contains stateless domain services that coordinate
// multiple aggregates. The Cartonizer partitions a validated order into
// capacity-bounded cartons with assigned container codes and builds the
// shipment aggregate.
package services
