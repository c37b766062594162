// Package render implements the ports.LabelRenderer port with a plain-text
// writer. Each label becomes a fixed-width block suitable for console output
// or piping to a print spooler.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shipnotice/internal/core/domain/model/label"
	"shipnotice/internal/pkg/errs"
)

const rule = "========================================"

// TextRenderer writes label batches as human-readable text blocks.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) (*TextRenderer, error) {
	if w == nil {
		return nil, errs.NewValueIsRequiredError("w")
	}
	return &TextRenderer{w: w}, nil
}

// Render writes every label in the batch, stopping early if the context is
// canceled.
func (r *TextRenderer) Render(ctx context.Context, batch label.Batch) error {
	for _, l := range batch.Labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(r.w, formatLabel(l)); err != nil {
			return fmt.Errorf("render label %s: %w", l.CartonID(), err)
		}
	}
	return nil
}

func formatLabel(l label.Label) string {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "SHIP FROM: %s\n", l.ShipFrom.Name())
	fmt.Fprintf(&sb, "  %s\n", l.ShipFrom.String())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "SHIP TO:   %s\n", l.ShipTo.Name())
	fmt.Fprintf(&sb, "  %s\n", l.ShipTo.String())
	sb.WriteString("\n")
	if l.CarrierName != "" {
		fmt.Fprintf(&sb, "CARRIER:   %s", l.CarrierName)
		if l.ServiceLevel != "" {
			fmt.Fprintf(&sb, " (%s)", l.ServiceLevel)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "PO:        %s\n", l.PurchaseOrder)
	fmt.Fprintf(&sb, "SHIPMENT:  %s\n", l.ShipmentID)
	fmt.Fprintf(&sb, "CARTON:    %s (%s)\n", l.CartonID(), l.Position())
	fmt.Fprintf(&sb, "WEIGHT:    %s\n", l.Weight)
	fmt.Fprintf(&sb, "UNITS:     %d\n", l.UnitCount)
	if len(l.Contents) > 0 {
		sb.WriteString("CONTENTS:\n")
		for _, line := range l.Contents {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "SSCC-18:   %s\n", l.Code)
	sb.WriteString(rule + "\n")

	return sb.String()
}
