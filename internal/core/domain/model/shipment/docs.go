// Package shipment models the cartonization output: packed Items, sequence-
// numbered Cartons carrying container codes, and the Shipment root aggregate
// with rollup totals recomputed from its cartons.
package shipment
