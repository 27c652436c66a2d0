package inhalation

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// SmallVolumeSolidsHandling evaluates the EPA-OPPT Small Volume Solids
// Handling inhalation exposure model. Ys, the weight fraction of the
// chemical in the particulate, has no default and must be supplied.
func SmallVolumeSolidsHandling(opts ...model.Option) (*model.Result, error) {
	return smallVolumeSolidsHandling.Eval(opts...)
}

var smallVolumeSolidsHandling = &model.Definition{
	Name:            "small_volume_solids_handling",
	Title:           "EPA-OPPT Small Volume Solids Handling",
	Route:           model.RouteInhalation,
	DefaultScenario: "typical",
	Scenarios: []model.Scenario{
		{Name: "typical", Preset: preset("EF", 0.0477)},
		{Name: "worst-case", Preset: preset("EF", 0.161)},
		{Name: "user"},
	},
	Params: append(model.CommonParams(1),
		model.Param{Name: "AH", Units: "kg/worker-shift", Default: 1, Check: model.Within(0, 54)},
		model.Param{Name: "Ys", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		model.Param{Name: "Sd", Units: "shift/worker-day", Default: 1, Check: model.Within(0, 3)},
		model.Param{Name: "EF", Units: "mg/kg", Default: 0.0477},
	),
	Outputs: doseSet(),
	Equations: doseEquations(
		model.Equation{Name: "I", Expr: "EF * AH * Ys * Sd"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		i := equations.HandlingDoseRate(in["EF"], in["AH"], in["Ys"], in["Sd"])

		return doseOutputs(in, i)
	},
}
