// Package api carries the embedded OpenAPI description of the
// service. The HTTP adapter serves it and the emitter validates
// blueprint documents against its Blueprint schema.
package api

import _ "embed"

//go:embed openapi.yaml
var Spec []byte
