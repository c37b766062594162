package http

import (
	"bytes"
	_ "embed"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openapiSpec []byte

// NewRequestValidator builds an echo middleware that checks each request
// against the embedded OpenAPI contract before the handler runs. Requests
// whose route is not described by the contract pass through untouched.
func NewRequestValidator() (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, routeErr := router.FindRoute(req)
			if routeErr != nil {
				if routeErr == routers.ErrPathNotFound || routeErr == routers.ErrMethodNotAllowed {
					return next(ctx)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, routeErr.Error())
			}

			// The validator consumes the body; buffer it so the handler can
			// still bind it afterwards.
			var body []byte
			if req.Body != nil {
				body, routeErr = io.ReadAll(req.Body)
				if routeErr != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "cannot read request body")
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: "Request does not match API contract: " + validateErr.Error(),
				})
			}

			if body != nil {
				req.Body = io.NopCloser(bytes.NewReader(body))
			}
			return next(ctx)
		}
	}, nil
}
