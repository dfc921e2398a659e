package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openapiSpec []byte

// LoadOpenAPISpec parses and validates the embedded API contract. Called at
// startup so a malformed contract fails the boot instead of the first request.
func LoadOpenAPISpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPIRoute serves the validated contract at /openapi.json.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
}
