package commands_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/sscc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShipNoticeCommandHandler(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	t.Run("should encode a single-carton shipment end to end", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t, testLine(t, "SKU-123", 2, 5)), "SENDER", "RECEIVER", issuedAt)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "824150405", result.ControlNumber)
		assert.Equal(t, 25, result.SegmentCount)
		assert.Equal(t, 1, result.LineItemCount)

		require.NotNil(t, result.Shipment)
		assert.Equal(t, "SHIP-ORD-1001", result.Shipment.ID())
		assert.Equal(t, 1, result.Shipment.TotalCartons())

		doc := result.Document
		assert.True(t, strings.HasPrefix(doc, "ISA*00*"))
		assert.True(t, strings.HasSuffix(doc, "IEA*1*824150405~"))
		assert.Contains(t, doc, "ST*856*824150405~")
		assert.Contains(t, doc, "BSN*00*SHIP-ORD-1001*20260824*")
		assert.Contains(t, doc, "REF*PO*PO-555~")
		assert.Contains(t, doc, "REF*0J*006141410000000012~")
		assert.Contains(t, doc, "LIN**SK*SKU-123~")
		assert.Contains(t, doc, "SN1**2*EA~")
		assert.Contains(t, doc, "CTT*1***10.00*LB~")
		assert.Contains(t, doc, "SE*21*824150405~")
		assert.Equal(t, 25, strings.Count(doc, "~"))
	})

	t.Run("should split a large order across cartons", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t, testLine(t, "SKU-1", 120, 0)), "SENDER", "RECEIVER", issuedAt)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Shipment.TotalCartons())
		assert.Equal(t, 3, result.LineItemCount)
		assert.Equal(t, 3, strings.Count(result.Document, "*T*"))
		assert.Contains(t, result.Document, "SN1**50*EA~")
		assert.Contains(t, result.Document, "SN1**20*EA~")
		assert.Contains(t, result.Document, "CTT*3***0.00*LB~")
	})

	t.Run("three lines fitting one carton yield one item node per SKU", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 100), testAllocator(t))
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t,
				testLine(t, "SKU-A", 30, 1.5),
				testLine(t, "SKU-B", 30, 1.2),
				testLine(t, "SKU-C", 40, 0.75),
			),
			"SENDER", "RECEIVER", issuedAt)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Shipment.TotalCartons())
		assert.Equal(t, 100, result.Shipment.TotalUnits())
		assert.Equal(t, 111.0, result.Shipment.TotalWeight().Pounds())
		assert.Equal(t, 3, result.LineItemCount)
		assert.Equal(t, uint64(1), result.Shipment.Cartons()[0].Code().Serial())
		assert.Contains(t, result.Document, "CTT*3***111.00*LB~")
		assert.Contains(t, result.Document, "ST*856*824150405~")
		assert.Contains(t, result.Document, "SE*27*824150405~")
		assert.Contains(t, result.Document, "IEA*1*824150405~")
	})

	t.Run("three lines of one hundred units pack into two mixed cartons", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t,
				testLine(t, "SKU-A", 40, 1),
				testLine(t, "SKU-B", 35, 1),
				testLine(t, "SKU-C", 25, 1),
			),
			"SENDER", "RECEIVER", issuedAt)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Shipment.TotalCartons())
		assert.Equal(t, 100, result.Shipment.TotalUnits())
		assert.Equal(t, 4, result.LineItemCount)
		assert.Equal(t, 37, result.SegmentCount)
		assert.Contains(t, result.Document, "SN1**40*EA~")
		assert.Contains(t, result.Document, "SN1**10*EA~")
		assert.Contains(t, result.Document, "SN1**25*EA~")
		assert.Contains(t, result.Document, "CTT*4***100.00*LB~")
		assert.Contains(t, result.Document, "SE*33*824150405~")
	})

	t.Run("zero timestamp falls back to the clock", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), testAllocator(t))
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t, testLine(t, "SKU-1", 1, 0)), "SENDER", "RECEIVER", time.Time{})
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{9}$`), result.ControlNumber)
	})

	t.Run("should surface serial overflow", func(t *testing.T) {
		cfg, err := sscc.NewConfig("0614141999", '0', 6, 999999)
		require.NoError(t, err)
		gen, err := sscc.NewGenerator(cfg)
		require.NoError(t, err)
		alloc, err := codealloc.NewAllocator(gen)
		require.NoError(t, err)

		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), alloc)
		cmd, err := commands.NewGenerateShipNoticeCommand(
			testOrder(t, testLine(t, "SKU-1", 60, 0)), "SENDER", "RECEIVER", issuedAt)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, sscc.ErrSerialOverflow)
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		handler := commands.NewGenerateShipNoticeCommandHandler(testCartonizer(t, 50), testAllocator(t))

		var cmd commands.GenerateShipNoticeCommand
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, commands.ErrGenerateShipNoticeCommandIsNotConstructed, err)
	})
}
