package inhalation

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// UserDefined evaluates the User-defined inhalation exposure model. Cv, MW
// and h are required; unless overridden the mass concentration Cm is
// derived as Cv * MW / Vm * Ys.
func UserDefined(opts ...model.Option) (*model.Result, error) {
	return userDefined.Eval(opts...)
}

var userDefined = &model.Definition{
	Name:            "user_defined_inhalation",
	Title:           "User-defined Inhalation",
	Route:           model.RouteInhalation,
	DefaultScenario: "user",
	Scenarios:       []model.Scenario{{Name: "user"}},
	Params: append(model.CommonParams(1),
		model.Param{Name: "Cv", Units: "ppm", Required: true},
		model.Param{Name: "MW", Units: "g/mol", Required: true},
		model.Param{Name: "Vm", Units: "L/mol", Default: 24.45, Check: model.AtLeast(0)},
		model.Param{Name: "Ys", Units: "dimensionless", Default: 1, Check: model.Within(0, 1)},
		model.Param{
			Name: "Cm", Units: "mg/m^3", Check: model.AtLeast(0),
			Derive: func(in model.Inputs) float64 {
				return in["Cv"] * in["MW"] / in["Vm"] * in["Ys"]
			},
		},
		model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
		model.Param{Name: "h", Units: "hrs/day", Required: true, Check: model.Within(0, 24)},
	),
	Outputs: doseSet(),
	Equations: doseEquations(
		model.Equation{Name: "Cm", Expr: "Cv * MW / Vm * Ys"},
		model.Equation{Name: "I", Expr: "Cm * b * h"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		return doseOutputs(in, equations.InhalationDoseRate(in["Cm"], in["b"], in["h"]))
	},
}
