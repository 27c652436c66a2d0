package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Scenario is a documented preset that replaces the defaults of specific
// parameters. The "user" scenario carries no preset and leaves every
// parameter at its declared default.
type Scenario struct {
	Name string

	// Preset holds fixed parameter values applied as scenario defaults.
	Preset map[string]float64

	// Derive holds scenario defaults computed from previously resolved
	// parameters.
	Derive map[string]func(in Inputs) float64
}

// Definition is the complete, fixed description of one exposure model:
// identity, parameter schema, scenarios, documented equations and the pure
// computation rule. Definitions are built at package init time and never
// mutated afterwards.
type Definition struct {
	// Name is the catalog identifier, e.g. "automobile_spray_coating".
	Name string

	// Title is the model name as it appears in ChemSTEER.
	Title string

	Route Route

	DefaultScenario string
	Scenarios       []Scenario

	// Params is the ordered input schema. Reports list inputs in this
	// order.
	Params []Param

	// Outputs is the ordered list of computed quantities.
	Outputs []Output

	// Equations documents the closed-form expressions for reporting.
	Equations []Equation

	// Compute maps a complete, domain-valid input set to the output set.
	// It must be pure.
	Compute func(in Inputs) map[string]float64
}

// Eval merges the given overrides onto the model's defaults, validates the
// resulting input set and computes the output set. Validation failures
// abort before any computation.
func (d *Definition) Eval(opts ...Option) (*Result, error) {
	set := settings{overrides: make(map[string]float64)}
	for _, opt := range opts {
		opt(&set)
	}

	for name := range set.overrides {
		if !d.hasParam(name) {
			return nil, errors.Wrapf(ErrUnknownParameter, "model %s: parameter %s", d.Name, name)
		}
	}

	scenario, err := d.pickScenario(set.scenario)
	if err != nil {
		return nil, err
	}

	in := make(Inputs, len(d.Params))

	for i := range d.Params {
		param := &d.Params[i]

		value, err := d.resolve(param, scenario, set.overrides, in)
		if err != nil {
			return nil, err
		}

		if param.Check != nil {
			err = param.Check(param.Name, value)
			if err != nil {
				return nil, errors.Wrapf(err, "model %s", d.Name)
			}
		}

		in[param.Name] = value
	}

	return newResult(d, scenario.Name, in, d.Compute(in)), nil
}

func (d *Definition) resolve(param *Param, scenario *Scenario, overrides map[string]float64, in Inputs) (float64, error) {
	if value, ok := overrides[param.Name]; ok {
		return value, nil
	}

	if derive, ok := scenario.Derive[param.Name]; ok {
		return derive(in), nil
	}

	if value, ok := scenario.Preset[param.Name]; ok {
		return value, nil
	}

	if param.Derive != nil {
		return param.Derive(in), nil
	}

	if param.Required {
		return 0, errors.Wrapf(ErrInvalidParameter,
			"model %s: parameter %s is required and has no default", d.Name, param.Name)
	}

	return param.Default, nil
}

func (d *Definition) pickScenario(name string) (*Scenario, error) {
	if name == "" {
		name = d.DefaultScenario
	}

	name = normaliseScenario(name)

	for i := range d.Scenarios {
		if d.Scenarios[i].Name == name {
			return &d.Scenarios[i], nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownScenario, "model %s: scenario %q, options are '%s'",
		d.Name, name, strings.Join(d.ScenarioNames(), "', '"))
}

func (d *Definition) hasParam(name string) bool {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return true
		}
	}

	return false
}

func normaliseScenario(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), ", ", ",")
}

// ScenarioNames lists the documented scenarios in declared order.
func (d *Definition) ScenarioNames() []string {
	names := make([]string, 0, len(d.Scenarios))
	for i := range d.Scenarios {
		names = append(names, d.Scenarios[i].Name)
	}

	return names
}

// Defaults returns the canonical default input set under the default
// scenario. Parameters without a static default (required or derived from
// other inputs) are omitted.
func (d *Definition) Defaults() map[string]float64 {
	scenario, _ := d.pickScenario(d.DefaultScenario)

	defaults := make(map[string]float64, len(d.Params))

	for i := range d.Params {
		param := &d.Params[i]

		if value, ok := scenario.Preset[param.Name]; ok {
			defaults[param.Name] = value

			continue
		}

		if _, ok := scenario.Derive[param.Name]; ok {
			continue
		}

		if param.Required || param.Derive != nil {
			continue
		}

		defaults[param.Name] = param.Default
	}

	return defaults
}

// Units returns the unit annotation for every declared input and output.
func (d *Definition) Units() map[string]string {
	units := make(map[string]string, len(d.Params)+len(d.Outputs))

	for i := range d.Params {
		units[d.Params[i].Name] = d.Params[i].Units
	}

	for _, out := range d.Outputs {
		units[out.Name] = out.Units
	}

	return units
}
