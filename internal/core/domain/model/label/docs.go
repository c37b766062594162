// Package label projects a completed shipment into per-carton shipping
// labels. Labels are plain read models; rendering them to an output medium is
// an adapter concern behind the ports.LabelRenderer port.
package label
