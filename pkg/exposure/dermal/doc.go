// Package dermal implements the ChemSTEER dermal occupational exposure
// models. Every model is a pure function from an optional override set to
// an immutable result; defaults, scenarios, domains and equations follow
// the ChemSTEER User Guide.
package dermal
