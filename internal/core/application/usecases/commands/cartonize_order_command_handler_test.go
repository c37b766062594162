package commands_test

import (
	"context"
	"testing"

	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAllocator(t *testing.T) *codealloc.Allocator {
	t.Helper()
	cfg, err := sscc.NewConfig("0614141", '0', 9, 1)
	require.NoError(t, err)
	gen, err := sscc.NewGenerator(cfg)
	require.NoError(t, err)
	alloc, err := codealloc.NewAllocator(gen)
	require.NoError(t, err)
	return alloc
}

func testCartonizer(t *testing.T, maxUnits int) services.Cartonizer {
	t.Helper()
	policy, err := services.NewPackingPolicy(maxUnits, nil, false)
	require.NoError(t, err)
	cartonizer, err := services.NewCartonizer(policy)
	require.NoError(t, err)
	return cartonizer
}

func TestCartonizeOrderCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should pack the order into coded cartons", func(t *testing.T) {
		handler := commands.NewCartonizeOrderCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewCartonizeOrderCommand(testOrder(t, testLine(t, "SKU-1", 120, 0)))
		require.NoError(t, err)

		shp, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, shp.TotalCartons())
		for _, c := range shp.Cartons() {
			require.NotNil(t, c.Code())
		}
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		handler := commands.NewCartonizeOrderCommandHandler(testCartonizer(t, 50), testAllocator(t))

		var cmd commands.CartonizeOrderCommand
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, commands.ErrCartonizeOrderCommandIsNotConstructed, err)
	})

	t.Run("should stop on canceled context", func(t *testing.T) {
		handler := commands.NewCartonizeOrderCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewCartonizeOrderCommand(testOrder(t, testLine(t, "SKU-1", 10, 0)))
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = handler.Handle(canceled, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("allocator serials continue across orders", func(t *testing.T) {
		alloc := testAllocator(t)
		handler := commands.NewCartonizeOrderCommandHandler(testCartonizer(t, 50), alloc)

		first, err := commands.NewCartonizeOrderCommand(testOrder(t, testLine(t, "SKU-1", 60, 0)))
		require.NoError(t, err)
		second, err := commands.NewCartonizeOrderCommand(testOrder(t, testLine(t, "SKU-2", 10, 0)))
		require.NoError(t, err)

		shpA, err := handler.Handle(ctx, first)
		require.NoError(t, err)
		shpB, err := handler.Handle(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, uint64(2), shpA.Cartons()[1].Code().Serial())
		assert.Equal(t, uint64(3), shpB.Cartons()[0].Code().Serial())
	})
}
