// Package api holds the service's OpenAPI document.
package api

import _ "embed"

//go:generate oapi-codegen -generate types,chi-server -package openapi -o ../internal/infrastructure/http/openapi/openapi.gen.go openapi.yaml

//go:embed openapi.yaml
var Spec []byte
