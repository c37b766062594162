// Package http is the inbound HTTP adapter. It exposes ship notice
// generation and container code operations over a small JSON API, with
// request bodies checked against the embedded OpenAPI contract before they
// reach the use case layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/application/usecases/queries"
	"shipnotice/internal/core/domain/model/asn"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generateShipNoticeHandler commands.GenerateShipNoticeCommandHandler

	// Query handlers
	peekContainerCodeHandler     queries.PeekContainerCodeQueryHandler
	validateContainerCodeHandler queries.ValidateContainerCodeQueryHandler

	senderID   string
	receiverID string
}

// NewServer creates a new HTTP server with the required command and query
// handlers. senderID and receiverID identify this system and its trading
// partner on every generated interchange.
func NewServer(
	generateShipNoticeHandler commands.GenerateShipNoticeCommandHandler,
	peekContainerCodeHandler queries.PeekContainerCodeQueryHandler,
	validateContainerCodeHandler queries.ValidateContainerCodeQueryHandler,
	senderID string,
	receiverID string,
) *Server {
	return &Server{
		generateShipNoticeHandler:    generateShipNoticeHandler,
		peekContainerCodeHandler:     peekContainerCodeHandler,
		validateContainerCodeHandler: validateContainerCodeHandler,
		senderID:                     senderID,
		receiverID:                   receiverID,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. The validator
// middleware guards the /api/v1 group.
func (s *Server) RegisterRoutes(e *echo.Echo, validator echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	if validator != nil {
		api.Use(validator)
	}
	api.POST("/shipments", s.CreateShipment)
	api.GET("/container-codes/next", s.PeekContainerCode)
	api.POST("/container-codes/validate", s.ValidateContainerCode)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipment handles POST /api/v1/shipments: cartonizes the submitted
// order and returns the encoded ship notice.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req ShipNoticeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ord, err := req.toOrder()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewGenerateShipNoticeCommand(ord, s.senderID, s.receiverID, time.Time{})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship notice request: " + err.Error(),
		})
	}

	result, err := s.generateShipNoticeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(statusForGenerationError(err), ErrorResponse{
			Code:    statusForGenerationError(err),
			Message: "Failed to generate ship notice: " + err.Error(),
		})
	}

	shp := result.Shipment
	codes := make([]string, 0, shp.TotalCartons())
	for _, carton := range shp.Cartons() {
		codes = append(codes, carton.Code().String())
	}

	return ctx.JSON(http.StatusCreated, ShipNoticeResponse{
		ShipmentID:     shp.ID(),
		ControlNumber:  result.ControlNumber,
		SegmentCount:   result.SegmentCount,
		LineItemCount:  result.LineItemCount,
		CartonCount:    shp.TotalCartons(),
		TotalWeight:    shp.TotalWeight().Pounds(),
		ContainerCodes: codes,
		Document:       result.Document,
	})
}

// PeekContainerCode handles GET /api/v1/container-codes/next.
func (s *Server) PeekContainerCode(ctx echo.Context) error {
	query := queries.NewPeekContainerCodeQuery()

	response, err := s.peekContainerCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sscc.ErrSerialOverflow) {
			status = http.StatusConflict
		}
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to peek container code: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, ContainerCodeResponse{
		Code:   response.Code,
		Serial: response.Serial,
	})
}

// ValidateContainerCode handles POST /api/v1/container-codes/validate.
func (s *Server) ValidateContainerCode(ctx echo.Context) error {
	var req ValidateCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewValidateContainerCodeQuery(req.Code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid candidate code: " + err.Error(),
		})
	}

	response, err := s.validateContainerCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to validate container code",
		})
	}

	return ctx.JSON(http.StatusOK, ValidateCodeResponse{
		Code:  response.Code,
		Valid: response.Valid,
	})
}

// statusForGenerationError maps pipeline failures to HTTP statuses: bad
// order data is the client's fault, serial exhaustion is a conflict, and
// everything else is internal.
func statusForGenerationError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, sscc.ErrSerialOverflow):
		return http.StatusConflict
	case errors.Is(err, asn.ErrEncodingMismatch):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
