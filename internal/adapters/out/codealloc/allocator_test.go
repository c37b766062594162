package codealloc_test

import (
	"sync"
	"testing"

	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/core/domain/model/sscc"

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

func TestNewAllocator(t *testing.T) {
	t.Run("should reject nil generator", func(t *testing.T) {
		_, err := codealloc.NewAllocator(nil)
		require.Error(t, err)
	})
}

func TestAllocatorSequencing(t *testing.T) {
	alloc := testAllocator(t)

	peeked, err := alloc.Peek()
	require.NoError(t, err)
	next, err := alloc.Next()
	require.NoError(t, err)
	assert.True(t, peeked.IsEqual(next))

	batch, err := alloc.Batch(3)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, uint64(2), batch[0].Serial())
	assert.Equal(t, uint64(4), batch[2].Serial())
}

func TestAllocatorConcurrentNext(t *testing.T) {
	alloc := testAllocator(t)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	results := make(chan string, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				code, err := alloc.Next()
				if err != nil {
					t.Error(err)
					return
				}
				results <- code.String()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for code := range results {
		assert.False(t, seen[code], "duplicate code handed out: %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
