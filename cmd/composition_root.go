package cmd

import (
	"io"

	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/adapters/out/render"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"
	"shipnotice/internal/core/ports"
)

// CompositionRoot wires the domain services, the shared container code
// allocator, and the outbound adapters the use case handlers depend on.
type CompositionRoot struct {
	config     Config
	cartonizer services.Cartonizer
	codes      ports.ContainerCodes
	renderer   ports.LabelRenderer
}

// NewCompositionRoot builds the object graph from the given config. Labels
// render to labelOut.
func NewCompositionRoot(config Config, labelOut io.Writer) (CompositionRoot, error) {
	serialWidth := sscc.CodeLength - 2 - len(config.CompanyPrefix)
	codeConfig, err := sscc.NewConfig(config.CompanyPrefix, config.ExtensionDigit, serialWidth, config.SerialStart)
	if err != nil {
		return CompositionRoot{}, err
	}
	generator, err := sscc.NewGenerator(codeConfig)
	if err != nil {
		return CompositionRoot{}, err
	}
	allocator, err := codealloc.NewAllocator(generator)
	if err != nil {
		return CompositionRoot{}, err
	}

	var maxWeight *kernel.Weight
	if config.MaxWeightPerCarton > 0 {
		w, weightErr := kernel.NewWeight(config.MaxWeightPerCarton)
		if weightErr != nil {
			return CompositionRoot{}, weightErr
		}
		maxWeight = &w
	}
	policy, err := services.NewPackingPolicy(config.MaxUnitsPerCarton, maxWeight, config.SegregateBySKU)
	if err != nil {
		return CompositionRoot{}, err
	}
	cartonizer, err := services.NewCartonizer(policy)
	if err != nil {
		return CompositionRoot{}, err
	}

	renderer, err := render.NewTextRenderer(labelOut)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		cartonizer: cartonizer,
		codes:      allocator,
		renderer:   renderer,
	}, nil
}

func (c *CompositionRoot) CreateCartonizeOrderCommandHandler() commands.CartonizeOrderCommandHandler {
	return commands.NewCartonizeOrderCommandHandler(c.cartonizer, c.codes)
}

func (c *CompositionRoot) CreateGenerateShipNoticeCommandHandler() commands.GenerateShipNoticeCommandHandler {
	return commands.NewGenerateShipNoticeCommandHandler(c.cartonizer, c.codes)
}

func (c *CompositionRoot) CreateGenerateLabelsCommandHandler() commands.GenerateLabelsCommandHandler {
	return commands.NewGenerateLabelsCommandHandler(c.renderer)
}

func (c *CompositionRoot) CreatePeekContainerCodeQueryHandler() queries.PeekContainerCodeQueryHandler {
	return queries.NewPeekContainerCodeQueryHandler(c.codes)
}

func (c *CompositionRoot) CreateValidateContainerCodeQueryHandler() queries.ValidateContainerCodeQueryHandler {
	return queries.NewValidateContainerCodeQueryHandler()
}
