package model

import (
	"strconv"

	"github.com/pkg/errors"
)

// Route is the exposure pathway a model covers.
type Route string

const (
	RouteInhalation Route = "inhalation"
	RouteDermal     Route = "dermal"
)

// Inputs is a resolved set of parameter values keyed by parameter name.
type Inputs map[string]float64

// CheckFunc validates a single parameter value against its documented
// domain. It returns an error wrapping ErrInvalidParameter on violation.
type CheckFunc func(name string, value float64) error

// Param declares one model input: its name, unit annotation, default value
// and domain constraint. A parameter is resolved, in order of precedence,
// from a caller override, a scenario preset, its Derive rule, or Default.
type Param struct {
	Name  string
	Units string

	// Default is the documented default value. Ignored when Required is
	// set or Derive is non-nil.
	Default float64

	// Required marks a parameter with no usable default; evaluation fails
	// unless an override supplies it.
	Required bool

	// Derive computes the default from previously declared parameters.
	Derive func(in Inputs) float64

	// Check validates the resolved value. Nil means unconstrained.
	Check CheckFunc
}

// Output declares one computed quantity and its unit annotation.
type Output struct {
	Name  string
	Units string
}

// Equation is the documented closed-form expression for one computed
// quantity, kept for reporting.
type Equation struct {
	Name string
	Expr string
}

// Within returns a check that the value lies in [min, max].
func Within(min, max float64) CheckFunc {
	return func(name string, value float64) error {
		if value < min || value > max {
			return errors.Wrapf(ErrInvalidParameter,
				"bounds of %s are outside of range (%s <= value <= %s)",
				name, formatBound(min), formatBound(max))
		}

		return nil
	}
}

// WithinPositive returns a check that the value lies in (0, max]. It guards
// parameters used as divisors, where zero would silently propagate an
// infinity through the computation.
func WithinPositive(max float64) CheckFunc {
	return func(name string, value float64) error {
		if value <= 0 || value > max {
			return errors.Wrapf(ErrInvalidParameter,
				"bounds of %s are outside of range (0 < value <= %s)",
				name, formatBound(max))
		}

		return nil
	}
}

// AtLeast returns a check that the value is at least min.
func AtLeast(min float64) CheckFunc {
	return func(name string, value float64) error {
		if value < min {
			return errors.Wrapf(ErrInvalidParameter,
				"bounds of %s are outside of range (%s <= value)",
				name, formatBound(min))
		}

		return nil
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CommonParams returns the parameters shared by every model of both routes,
// in their declared order. defaultNWexp is the number of workers exposed
// per site documented for the specific model.
func CommonParams(defaultNWexp float64) []Param {
	return []Param{
		{Name: "ED", Units: "days/site-yr", Default: 1, Check: Within(0, 365)},
		{Name: "NWexp", Units: "worker/site", Default: defaultNWexp},
		{Name: "NS", Units: "sites", Default: 1},
		{Name: "EY", Units: "years", Default: 40, Check: AtLeast(0)},
		{Name: "BW", Units: "kg", Default: 70, Check: AtLeast(0)},
		{Name: "ATc", Units: "years", Default: 70, Check: AtLeast(0)},
		{Name: "AT", Units: "years", Default: 40},
	}
}
