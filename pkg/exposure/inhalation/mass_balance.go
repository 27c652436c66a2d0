package inhalation

import (
	"math"

	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// MassBalance evaluates the EPA-OPPT Mass Balance inhalation exposure
// model. G (vapor generation rate), MW, VP and X are required. Under the
// outdoor worst-case scenario the ventilation rate Q is derived from the
// wind speed vz; every other scenario presets Q and the mixing factor k.
func MassBalance(opts ...model.Option) (*model.Result, error) {
	return massBalance.Eval(opts...)
}

var massBalance = &model.Definition{
	Name:            "mass_balance",
	Title:           "EPA-OPPT Mass Balance",
	Route:           model.RouteInhalation,
	DefaultScenario: "indoor,typical",
	Scenarios: []model.Scenario{
		{Name: "indoor,typical", Preset: map[string]float64{"Q": 3000, "k": 0.5}},
		{Name: "indoor,worst-case", Preset: map[string]float64{"Q": 500, "k": 0.1}},
		{Name: "outdoor,typical", Preset: map[string]float64{"Q": 237600, "k": 0.5}},
		{
			Name:   "outdoor,worst-case",
			Preset: preset("k", 0.1),
			Derive: map[string]func(in model.Inputs) float64{
				"Q": func(in model.Inputs) float64 {
					wind := 60 * in["vz"] / 5280

					return 26400 * wind * wind * wind
				},
			},
		},
		{Name: "user"},
	},
	Params: append(model.CommonParams(1),
		model.Param{Name: "T", Units: "K", Default: 298},
		model.Param{Name: "G", Units: "g/s", Required: true},
		model.Param{Name: "MW", Units: "g/mol", Required: true},
		model.Param{Name: "X", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		model.Param{Name: "VP", Units: "torr", Required: true},
		model.Param{Name: "Vm", Units: "L/mol", Default: 24.45, Check: model.AtLeast(0)},
		model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
		model.Param{Name: "h", Units: "hrs/day", Default: 8, Check: model.Within(0, 24)},
		model.Param{Name: "vz", Units: "ft/min", Default: 440, Check: model.AtLeast(0)},
		model.Param{Name: "Q", Units: "ft^3/min", Default: 3000},
		model.Param{Name: "k", Units: "dimensionless", Default: 0.5, Check: model.Within(0, 1)},
	),
	Outputs: doseSet(cvOutput, cmOutput),
	Equations: doseEquations(
		model.Equation{Name: "Cv", Expr: "min((170000 * T * G) / (MW * Q * k), (1000000 * X * VP) / 760)"},
		model.Equation{Name: "Cm", Expr: "Cv * MW / Vm"},
		model.Equation{Name: "I", Expr: "Cm * b * h"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		cv := math.Min(
			(170000*in["T"]*in["G"])/(in["MW"]*in["Q"]*in["k"]),
			1000000*in["X"]*in["VP"]/760,
		)
		cm := cv * in["MW"] / in["Vm"]

		out := doseOutputs(in, equations.InhalationDoseRate(cm, in["b"], in["h"]))
		out["Cv"] = cv
		out["Cm"] = cm

		return out
	},
}
