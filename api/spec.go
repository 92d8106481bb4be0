package api

import (
	_ "embed"
)

//go:embed api.yaml
var specYAML []byte

// SpecYAML returns the raw OpenAPI document served at /openapi.yaml.
func SpecYAML() []byte {
	return specYAML
}
