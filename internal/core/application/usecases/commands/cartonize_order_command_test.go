package commands_test

import (
	"testing"
	"time"

	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, name string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(name, "123 Main St", "", "Dallas", "TX", "75201", "US")
	require.NoError(t, err)
	return addr
}

func testLine(t *testing.T, sku string, quantity int, unitPounds float64) order.Line {
	t.Helper()
	var unitWeight *kernel.Weight
	if unitPounds > 0 {
		w, err := kernel.NewWeight(unitPounds)
		require.NoError(t, err)
		unitWeight = &w
	}
	line, err := order.NewLine(sku, "Item "+sku, quantity, "EA", unitWeight)
	require.NoError(t, err)
	return line
}

func testOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		"ORD-1001", "PO-555",
		time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		testAddress(t, "Warehouse"), testAddress(t, "Store"),
		"UPSN", "Ground",
		lines,
	)
	require.NoError(t, err)
	return o
}

func TestNewCartonizeOrderCommand(t *testing.T) {
	t.Run("should create command from constructed order", func(t *testing.T) {
		o := testOrder(t, testLine(t, "SKU-1", 10, 0))

		cmd, err := commands.NewCartonizeOrderCommand(o)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, o, cmd.Order())
	})

	t.Run("should fail with unconstructed order", func(t *testing.T) {
		var o order.Order

		_, err := commands.NewCartonizeOrderCommand(&o)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CartonizeOrderCommand
		assert.Equal(t, commands.ErrCartonizeOrderCommandIsNotConstructed, cmd.Validate())
	})
}
