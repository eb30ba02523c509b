package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (a trip id with no row, an unknown or ended session).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input cannot be processed at all
// (e.g. missing request body, unparseable date, empty chat query).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New(ErrValidationText)

// ErrValidationText is the message of ErrValidation, exposed so handlers can
// strip it from wrapped errors when building client-facing messages.
const ErrValidationText = "validation error"

// ErrWeatherUnavailable is returned by the weather client when no usable
// weather data came back. It is never fatal: plan generation carries on
// without weather context.
var ErrWeatherUnavailable = errors.New("weather unavailable")

// ErrGeneration is returned when the text generation service fails or
// returns no text. Handlers should map this to HTTP 502.
var ErrGeneration = errors.New("generation failed")
