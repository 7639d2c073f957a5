package domain

import "errors"

// ErrEmptyDescription is returned when a generation request carries no
// usable description text. It is the only hard failure: every other
// input problem surfaces as diagnostics on a produced scenario.
var ErrEmptyDescription = errors.New("description is empty")

// ErrUnknownKind is returned when a module kind is not present in the
// registry.
var ErrUnknownKind = errors.New("unknown module kind")

// ErrUnknownTemplate is returned when a named template does not exist.
var ErrUnknownTemplate = errors.New("unknown template")

// ErrArtifactNotFound is returned when a generation cannot be found in
// an artifact store.
var ErrArtifactNotFound = errors.New("artifact not found")
