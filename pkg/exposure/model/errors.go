package model

import "github.com/pkg/errors"

var (
	// ErrUnknownParameter is returned when an override names a parameter
	// the target model does not declare.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrInvalidParameter is returned when a parameter value is outside
	// its documented domain or a required value is missing.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownScenario is returned when the requested scenario is not
	// one of the model's documented scenarios.
	ErrUnknownScenario = errors.New("unknown scenario")
)
