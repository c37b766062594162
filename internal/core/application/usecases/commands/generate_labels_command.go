package commands

import (
	"errors"

	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/pkg/guard"
)

var (
	ErrGenerateLabelsCommandIsNotConstructed = errors.New(
		"GenerateLabelsCommand must be created via NewGenerateLabelsCommand constructor",
	)
)

// GenerateLabelsCommand represents a request to build and render shipping
// labels for every carton in a completed shipment.
type GenerateLabelsCommand struct { //nolint:recvcheck //using for validation
	shipment *shipment.Shipment

	guard guard.ConstructorGuard
}

// NewGenerateLabelsCommand creates a command to generate labels for the given
// shipment.
func NewGenerateLabelsCommand(shp *shipment.Shipment) (GenerateLabelsCommand, error) {
	cmd := GenerateLabelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipment(shp); err != nil {
		return GenerateLabelsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateLabelsCommandIsNotConstructed if validation fails.
func (c GenerateLabelsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLabelsCommandIsNotConstructed)
}

// Shipment returns the shipment to label.
func (c GenerateLabelsCommand) Shipment() *shipment.Shipment {
	return c.shipment
}

func (c *GenerateLabelsCommand) setShipment(shp *shipment.Shipment) error {
	if err := shp.Validate(); err != nil {
		return err
	}

	c.shipment = shp
	return nil
}
