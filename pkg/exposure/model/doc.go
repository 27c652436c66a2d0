// Package model contains the building blocks shared by every occupational
// exposure model: the parameter schema with defaults, units and domain
// checks, the scenario presets, the evaluation options and the immutable
// evaluation result.
package model
