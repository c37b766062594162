package asn_test

import (
	"strings"
	"testing"
	"time"

	"shipnotice/internal/core/domain/model/asn"
	"shipnotice/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T, shp *shipment.Shipment) *asn.Document {
	t.Helper()

	ctrl := asn.NewControlNumber(time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC))
	header, err := asn.NewHeader("", shp.ID(), shp.ShipDate(), "SENDER", "RECEIVER", ctrl)
	require.NoError(t, err)

	hierarchy, err := asn.BuildHierarchy(shp)
	require.NoError(t, err)

	summary, err := asn.NewSummary(shp.LineItemCount(), shp.TotalUnits(), shp.TotalWeight(), shp.TotalCartons())
	require.NoError(t, err)

	doc, err := asn.NewDocument(header, asn.DefaultDelimiters(), hierarchy, summary)
	require.NoError(t, err)
	return doc
}

// splitSegments drops the trailing empty element produced by the final
// terminator.
func splitSegments(t *testing.T, text string) []string {
	t.Helper()
	require.True(t, strings.HasSuffix(text, "~"), "document must end with the segment terminator")
	parts := strings.Split(text, "~")
	return parts[:len(parts)-1]
}

func TestEncodeSingleCarton(t *testing.T) {
	shp := testShipment(t, "UPSN", []shipment.Item{testItem(t, "SKU-123", 2, 5)})
	encoder, err := asn.NewEncoder(testDocument(t, shp))
	require.NoError(t, err)

	text, err := encoder.Encode()
	require.NoError(t, err)

	segments := splitSegments(t, text)
	require.Len(t, segments, 25)
	assert.Equal(t, 25, encoder.SegmentCount())
	assert.Equal(t, 1, encoder.LineItemCount())

	t.Run("envelope order", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(segments[0], "ISA*"))
		assert.True(t, strings.HasPrefix(segments[1], "GS*SH*SENDER*RECEIVER*"))
		assert.Equal(t, "ST*856*824150405", segments[2])
		assert.Equal(t, "BSN*00*SHIP-ORD-1001*20260824*0000", segments[3])
		assert.True(t, strings.HasPrefix(segments[len(segments)-2], "GE*1*"))
		assert.True(t, strings.HasPrefix(segments[len(segments)-1], "IEA*1*"))
	})

	t.Run("control number opens and closes every pair", func(t *testing.T) {
		assert.Contains(t, segments[0], "*824150405*")
		assert.Contains(t, segments[1], "*824150405*")
		assert.Equal(t, "GE*1*824150405", segments[len(segments)-2])
		assert.Equal(t, "IEA*1*824150405", segments[len(segments)-1])
		assert.True(t, strings.HasSuffix(segments[len(segments)-3], "*824150405"))
	})

	t.Run("shipment level details", func(t *testing.T) {
		assert.Equal(t, "HL*1**S*1", segments[4])
		assert.Equal(t, "TD5*B*2*UPSN", segments[5])
		assert.Equal(t, "DTM*011*20260824*204", segments[6])
		assert.Equal(t, "N1*SF*Warehouse", segments[7])
		assert.Equal(t, "N1*ST*Store", segments[10])
	})

	t.Run("order, carton, and item levels", func(t *testing.T) {
		assert.Equal(t, "HL*2*1*O*1", segments[13])
		assert.Equal(t, "REF*PO*PO-555", segments[14])
		assert.Equal(t, "HL*3*2*T*1", segments[15])
		assert.Equal(t, "REF*0J*006141410000000012", segments[16])
		assert.Equal(t, "TD1*CTN*1****G*10.00*LB", segments[17])
		assert.Equal(t, "HL*4*3*I*0", segments[18])
		assert.Equal(t, "LIN**SK*SKU-123", segments[19])
		assert.Equal(t, "SN1**2*EA", segments[20])
	})

	t.Run("summary counts are exact", func(t *testing.T) {
		assert.Equal(t, "CTT*1***10.00*LB", segments[21])
		// SE01 counts ST through SE inclusive: 25 total minus ISA, GS, GE, IEA.
		assert.Equal(t, "SE*21*824150405", segments[22])
	})
}

func TestEncodeWithoutCarrier(t *testing.T) {
	shp := testShipment(t, "", []shipment.Item{testItem(t, "SKU-1", 1, 0)})
	encoder, err := asn.NewEncoder(testDocument(t, shp))
	require.NoError(t, err)

	text, err := encoder.Encode()
	require.NoError(t, err)

	assert.NotContains(t, text, "TD5")
	segments := splitSegments(t, text)
	require.Len(t, segments, 24)

	// SE count still reconciles with the emitted stream
	var seIndex, stIndex int
	for i, seg := range segments {
		if strings.HasPrefix(seg, "ST*") {
			stIndex = i
		}
		if strings.HasPrefix(seg, "SE*") {
			seIndex = i
		}
	}
	declared := strings.Split(segments[seIndex], "*")[1]
	assert.Equal(t, "20", declared)
	assert.Equal(t, 20, seIndex-stIndex+1)
}

func TestEncodeMultiCarton(t *testing.T) {
	shp := testShipment(t, "UPSN",
		[]shipment.Item{testItem(t, "SKU-1", 2, 1)},
		[]shipment.Item{testItem(t, "SKU-1", 2, 1)},
		[]shipment.Item{testItem(t, "SKU-1", 2, 1)},
	)
	encoder, err := asn.NewEncoder(testDocument(t, shp))
	require.NoError(t, err)

	text, err := encoder.Encode()
	require.NoError(t, err)

	assert.Equal(t, 3, encoder.LineItemCount())
	assert.Contains(t, text, "HL*3*2*T*1~")
	assert.Contains(t, text, "HL*5*2*T*1~")
	assert.Contains(t, text, "HL*7*2*T*1~")
	assert.Contains(t, text, "HL*4*3*I*0~")
	assert.Contains(t, text, "HL*6*5*I*0~")
	assert.Contains(t, text, "HL*8*7*I*0~")
	assert.Contains(t, text, "CTT*3***6.00*LB~")
}

func TestEncodeMismatch(t *testing.T) {
	shp := testShipment(t, "UPSN", []shipment.Item{testItem(t, "SKU-1", 2, 5)})

	ctrl := asn.NewControlNumber(time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC))
	header, err := asn.NewHeader("", shp.ID(), shp.ShipDate(), "SENDER", "RECEIVER", ctrl)
	require.NoError(t, err)
	hierarchy, err := asn.BuildHierarchy(shp)
	require.NoError(t, err)

	// declared line item count disagrees with the single item node
	summary, err := asn.NewSummary(2, shp.TotalUnits(), shp.TotalWeight(), shp.TotalCartons())
	require.NoError(t, err)
	doc, err := asn.NewDocument(header, asn.DefaultDelimiters(), hierarchy, summary)
	require.NoError(t, err)

	encoder, err := asn.NewEncoder(doc)
	require.NoError(t, err)

	text, err := encoder.Encode()

	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, asn.ErrEncodingMismatch)

	var mismatch *asn.EncodingMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "lineItemCount", mismatch.Field)
	assert.Equal(t, 2, mismatch.Declared)
	assert.Equal(t, 1, mismatch.Derived)

	// a failed encoder is closed too
	_, err = encoder.Encode()
	assert.ErrorIs(t, err, asn.ErrEncoderClosed)
}

func TestEncoderIsSingleUse(t *testing.T) {
	shp := testShipment(t, "UPSN", []shipment.Item{testItem(t, "SKU-1", 1, 0)})
	encoder, err := asn.NewEncoder(testDocument(t, shp))
	require.NoError(t, err)

	first, err := encoder.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	_, err = encoder.Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, asn.ErrEncoderClosed)
}

func TestEncodeIsDeterministic(t *testing.T) {
	shp := testShipment(t, "UPSN",
		[]shipment.Item{testItem(t, "SKU-1", 2, 1), testItem(t, "SKU-2", 3, 2)},
		[]shipment.Item{testItem(t, "SKU-3", 1, 0)},
	)

	doc := testDocument(t, shp)
	first, err := asn.NewEncoder(doc)
	require.NoError(t, err)
	second, err := asn.NewEncoder(doc)
	require.NoError(t, err)

	a, err := first.Encode()
	require.NoError(t, err)
	b, err := second.Encode()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
