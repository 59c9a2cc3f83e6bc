package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawDocument []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(rawDocument)
		if err != nil {
			swaggerErr = fmt.Errorf("failed to load OpenAPI document: %w", err)
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("OpenAPI document is invalid: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}

type embeddedDoc struct{}

// ReadDoc returns the raw document for swag.
func (embeddedDoc) ReadDoc() string {
	return string(rawDocument)
}

func init() {
	swag.Register(swag.Name, embeddedDoc{})
}
