package commands_test

import (
	"context"
	"errors"
	"testing"

	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/label"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer captures rendered batches and can be primed to fail.
type recordingRenderer struct {
	batches []label.Batch
	err     error
}

func (r *recordingRenderer) Render(_ context.Context, batch label.Batch) error {
	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, batch)
	return nil
}

func TestGenerateLabelsCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should build and render one label per carton", func(t *testing.T) {
		renderer := &recordingRenderer{}
		handler := commands.NewGenerateLabelsCommandHandler(renderer)
		cmd, err := commands.NewGenerateLabelsCommand(testCartonizedShipment(t))
		require.NoError(t, err)

		batch, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, batch.ID)
		assert.Equal(t, "SHIP-ORD-1001", batch.ShipmentID)
		require.Len(t, batch.Labels, 2)
		assert.Equal(t, "1 of 2", batch.Labels[0].Position())
		assert.Equal(t, "2 of 2", batch.Labels[1].Position())

		require.Len(t, renderer.batches, 1)
		assert.Equal(t, batch.ID, renderer.batches[0].ID)
	})

	t.Run("should propagate renderer failure", func(t *testing.T) {
		rendererErr := errors.New("printer offline")
		renderer := &recordingRenderer{err: rendererErr}
		handler := commands.NewGenerateLabelsCommandHandler(renderer)
		cmd, err := commands.NewGenerateLabelsCommand(testCartonizedShipment(t))
		require.NoError(t, err)

		batch, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, rendererErr)
		assert.Empty(t, batch.Labels)
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		handler := commands.NewGenerateLabelsCommandHandler(&recordingRenderer{})

		var cmd commands.GenerateLabelsCommand
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, commands.ErrGenerateLabelsCommandIsNotConstructed, err)
	})
}
