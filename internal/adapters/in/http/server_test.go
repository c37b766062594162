package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterhttp "shipnotice/internal/adapters/in/http"
	"shipnotice/internal/adapters/out/codealloc"
	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"
)

func newTestEcho(t *testing.T, withValidator bool) *echo.Echo {
	t.Helper()

	cfg, err := sscc.NewConfig("0614141", '0', 9, 1)
	require.NoError(t, err)
	gen, err := sscc.NewGenerator(cfg)
	require.NoError(t, err)
	codes, err := codealloc.NewAllocator(gen)
	require.NoError(t, err)

	policy, err := services.NewPackingPolicy(50, nil, false)
	require.NoError(t, err)
	cartonizer, err := services.NewCartonizer(policy)
	require.NoError(t, err)

	server := adapterhttp.NewServer(
		commands.NewGenerateShipNoticeCommandHandler(cartonizer, codes),
		queries.NewPeekContainerCodeQueryHandler(codes),
		queries.NewValidateContainerCodeQueryHandler(),
		"SENDER",
		"RECEIVER",
	)

	e := echo.New()
	var validator echo.MiddlewareFunc
	if withValidator {
		validator, err = adapterhttp.NewRequestValidator()
		require.NoError(t, err)
	}
	server.RegisterRoutes(e, validator)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validShipNoticeBody = `{
	"orderId": "ORD-1001",
	"purchaseOrder": "PO-555",
	"shipDate": "2026-08-24",
	"shipFrom": {"name": "Warehouse", "line1": "123 Main St", "city": "Dallas", "state": "TX", "postalCode": "75201"},
	"shipTo": {"name": "Store", "line1": "9 Retail Row", "city": "Austin", "state": "TX", "postalCode": "78701"},
	"carrierCode": "UPSN",
	"serviceLevel": "Ground",
	"lines": [{"sku": "SKU-123", "description": "Widget", "quantity": 2, "uom": "EA", "unitWeight": 5.0}]
}`

func TestHealth(t *testing.T) {
	e := newTestEcho(t, false)

	rec := doJSON(e, nethttp.MethodGet, "/health", "")

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateShipment(t *testing.T) {
	t.Run("should generate ship notice for valid order", func(t *testing.T) {
		e := newTestEcho(t, true)

		rec := doJSON(e, nethttp.MethodPost, "/api/v1/shipments", validShipNoticeBody)

		require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

		var resp adapterhttp.ShipNoticeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "SHIP-ORD-1001", resp.ShipmentID)
		assert.Regexp(t, `^\d{9}$`, resp.ControlNumber)
		assert.Equal(t, 25, resp.SegmentCount)
		assert.Equal(t, 1, resp.LineItemCount)
		assert.Equal(t, 1, resp.CartonCount)
		assert.Equal(t, 10.0, resp.TotalWeight)
		require.Len(t, resp.ContainerCodes, 1)
		assert.Equal(t, "006141410000000012", resp.ContainerCodes[0])
		assert.Contains(t, resp.Document, "BSN*00*SHIP-ORD-1001*20260824*")
		assert.Contains(t, resp.Document, "REF*0J*006141410000000012~")
		assert.True(t, strings.HasSuffix(resp.Document, "~"))
	})

	t.Run("should reject body that breaks the contract", func(t *testing.T) {
		e := newTestEcho(t, true)

		noLines := `{
			"orderId": "ORD-1001",
			"purchaseOrder": "PO-555",
			"shipDate": "2026-08-24",
			"shipFrom": {"name": "A", "line1": "1 St", "city": "Dallas", "state": "TX", "postalCode": "75201"},
			"shipTo": {"name": "B", "line1": "2 St", "city": "Austin", "state": "TX", "postalCode": "78701"},
			"lines": []
		}`
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/shipments", noLines)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "contract")
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		e := newTestEcho(t, false)

		rec := doJSON(e, nethttp.MethodPost, "/api/v1/shipments", "{not json")

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject order that fails domain validation", func(t *testing.T) {
		e := newTestEcho(t, false)

		badState := strings.Replace(validShipNoticeBody, `"state": "TX"`, `"state": "Texas"`, 1)
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/shipments", badState)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid order data")
	})

	t.Run("should report conflict when the code range is exhausted", func(t *testing.T) {
		cfg, err := sscc.NewConfig("0614141999", '0', 6, 999999)
		require.NoError(t, err)
		gen, err := sscc.NewGenerator(cfg)
		require.NoError(t, err)
		codes, err := codealloc.NewAllocator(gen)
		require.NoError(t, err)

		policy, err := services.NewPackingPolicy(50, nil, false)
		require.NoError(t, err)
		cartonizer, err := services.NewCartonizer(policy)
		require.NoError(t, err)

		server := adapterhttp.NewServer(
			commands.NewGenerateShipNoticeCommandHandler(cartonizer, codes),
			queries.NewPeekContainerCodeQueryHandler(codes),
			queries.NewValidateContainerCodeQueryHandler(),
			"SENDER", "RECEIVER",
		)
		e := echo.New()
		server.RegisterRoutes(e, nil)

		bigOrder := strings.Replace(validShipNoticeBody, `"quantity": 2`, `"quantity": 60`, 1)
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/shipments", bigOrder)

		assert.Equal(t, nethttp.StatusConflict, rec.Code)
	})
}

func TestPeekContainerCode(t *testing.T) {
	e := newTestEcho(t, true)

	first := doJSON(e, nethttp.MethodGet, "/api/v1/container-codes/next", "")
	require.Equal(t, nethttp.StatusOK, first.Code)

	var resp adapterhttp.ContainerCodeResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	assert.Equal(t, "006141410000000012", resp.Code)
	assert.Equal(t, uint64(1), resp.Serial)

	second := doJSON(e, nethttp.MethodGet, "/api/v1/container-codes/next", "")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestValidateContainerCode(t *testing.T) {
	e := newTestEcho(t, true)

	t.Run("valid code", func(t *testing.T) {
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/container-codes/validate", `{"code":"006141410000000012"}`)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.JSONEq(t, `{"code":"006141410000000012","valid":true}`, rec.Body.String())
	})

	t.Run("wrong check digit", func(t *testing.T) {
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/container-codes/validate", `{"code":"006141410000000013"}`)

		require.Equal(t, nethttp.StatusOK, rec.Code)
		assert.JSONEq(t, `{"code":"006141410000000013","valid":false}`, rec.Body.String())
	})

	t.Run("missing code breaks the contract", func(t *testing.T) {
		rec := doJSON(e, nethttp.MethodPost, "/api/v1/container-codes/validate", `{}`)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}
