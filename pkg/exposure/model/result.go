package model

// Result is the immutable outcome of one model evaluation: the merged input
// set actually used, the computed output set, and the model metadata needed
// to report them. Accessors return copies, so a Result can never be changed
// after construction.
type Result struct {
	model    string
	title    string
	route    Route
	scenario string

	equations   []Equation
	inputNames  []string
	outputNames []string
	inputs      map[string]float64
	outputs     map[string]float64
	units       map[string]string
}

func newResult(d *Definition, scenario string, in Inputs, out map[string]float64) *Result {
	res := &Result{
		model:       d.Name,
		title:       d.Title,
		route:       d.Route,
		scenario:    scenario,
		equations:   append([]Equation(nil), d.Equations...),
		inputNames:  make([]string, 0, len(d.Params)),
		outputNames: make([]string, 0, len(d.Outputs)),
		inputs:      make(map[string]float64, len(in)),
		outputs:     make(map[string]float64, len(out)),
		units:       d.Units(),
	}

	for i := range d.Params {
		name := d.Params[i].Name
		res.inputNames = append(res.inputNames, name)
		res.inputs[name] = in[name]
	}

	for _, output := range d.Outputs {
		res.outputNames = append(res.outputNames, output.Name)
		res.outputs[output.Name] = out[output.Name]
	}

	return res
}

// Model returns the catalog identifier, e.g. "automobile_spray_coating".
func (r *Result) Model() string { return r.model }

// Title returns the model name as it appears in ChemSTEER.
func (r *Result) Title() string { return r.title }

// Route returns the exposure route of the model.
func (r *Result) Route() Route { return r.route }

// Scenario returns the scenario the evaluation used.
func (r *Result) Scenario() string { return r.scenario }

// Equations returns the documented equations in declared order.
func (r *Result) Equations() []Equation {
	return append([]Equation(nil), r.equations...)
}

// Inputs returns a copy of the merged input set actually used.
func (r *Result) Inputs() map[string]float64 {
	return copyValues(r.inputs)
}

// Outputs returns a copy of the computed output set.
func (r *Result) Outputs() map[string]float64 {
	return copyValues(r.outputs)
}

// InputNames returns the input names in the model's declared order.
func (r *Result) InputNames() []string {
	return append([]string(nil), r.inputNames...)
}

// OutputNames returns the output names in the model's declared order.
func (r *Result) OutputNames() []string {
	return append([]string(nil), r.outputNames...)
}

// Input returns one input value by name.
func (r *Result) Input(name string) (float64, bool) {
	value, ok := r.inputs[name]

	return value, ok
}

// Output returns one output value by name.
func (r *Result) Output(name string) (float64, bool) {
	value, ok := r.outputs[name]

	return value, ok
}

// Unit returns the unit annotation of an input or output name.
func (r *Result) Unit(name string) string {
	return r.units[name]
}

func copyValues(values map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(values))
	for name, value := range values {
		cp[name] = value
	}

	return cp
}
