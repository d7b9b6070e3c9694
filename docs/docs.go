// Package docs carries the OpenAPI document of the stub provider.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var SwaggerJSON []byte

type document struct{}

func (document) ReadDoc() string {
	return string(SwaggerJSON)
}

func init() {
	swag.Register(swag.Name, document{})
}
