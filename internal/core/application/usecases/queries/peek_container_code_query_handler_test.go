package queries_test

import (
	"context"
	"testing"

	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/sscc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAllocator(t *testing.T, prefix string, serialWidth int, start uint64) *codealloc.Allocator {
	t.Helper()
	cfg, err := sscc.NewConfig(prefix, '0', serialWidth, start)
	require.NoError(t, err)
	gen, err := sscc.NewGenerator(cfg)
	require.NoError(t, err)
	alloc, err := codealloc.NewAllocator(gen)
	require.NoError(t, err)
	return alloc
}

func TestPeekContainerCodeQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should report the next code without consuming it", func(t *testing.T) {
		alloc := testAllocator(t, "0614141", 9, 1)
		handler := queries.NewPeekContainerCodeQueryHandler(alloc)

		first, err := handler.Handle(ctx, queries.NewPeekContainerCodeQuery())
		require.NoError(t, err)
		second, err := handler.Handle(ctx, queries.NewPeekContainerCodeQuery())
		require.NoError(t, err)

		assert.Equal(t, "006141410000000012", first.Code)
		assert.Equal(t, uint64(1), first.Serial)
		assert.Equal(t, first, second)

		next, err := alloc.Next()
		require.NoError(t, err)
		assert.Equal(t, first.Code, next.String())
	})

	t.Run("should surface serial overflow", func(t *testing.T) {
		alloc := testAllocator(t, "0614141999", 6, 999999)
		_, err := alloc.Next()
		require.NoError(t, err)

		handler := queries.NewPeekContainerCodeQueryHandler(alloc)
		_, err = handler.Handle(ctx, queries.NewPeekContainerCodeQuery())

		require.Error(t, err)
		assert.ErrorIs(t, err, sscc.ErrSerialOverflow)
	})

	t.Run("should fail with unconstructed query", func(t *testing.T) {
		handler := queries.NewPeekContainerCodeQueryHandler(testAllocator(t, "0614141", 9, 1))

		var query queries.PeekContainerCodeQuery
		_, err := handler.Handle(ctx, query)

		require.Error(t, err)
		assert.Equal(t, queries.ErrPeekContainerCodeQueryIsNotConstructed, err)
	})

	t.Run("should stop on canceled context", func(t *testing.T) {
		handler := queries.NewPeekContainerCodeQueryHandler(testAllocator(t, "0614141", 9, 1))

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := handler.Handle(canceled, queries.NewPeekContainerCodeQuery())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
