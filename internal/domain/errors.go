package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrMalformedValue      = errors.New("malformed value")
	ErrUnrecognizedTag     = errors.New("unrecognized tag")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrMissingRequiredProp = errors.New("missing required prop")
	ErrUnknownPreset       = errors.New("unknown preset")
)
