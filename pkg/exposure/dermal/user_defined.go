package dermal

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// UserDefined evaluates the User-defined dermal exposure model. The low and
// high scenarios preset both the contact surface S and the quantity
// remaining on skin Qu.
func UserDefined(opts ...model.Option) (*model.Result, error) {
	return userDefined.Eval(opts...)
}

var userDefined = &model.Definition{
	Name:            "user_defined_dermal",
	Title:           "User-defined Dermal",
	Route:           model.RouteDermal,
	DefaultScenario: "high",
	Scenarios: []model.Scenario{
		{Name: "low", Preset: map[string]float64{"S": 535, "Qu": 0.7}},
		{Name: "high", Preset: map[string]float64{"S": 1070, "Qu": 2.1}},
		{Name: "user"},
	},
	Params: append(model.CommonParams(1),
		model.Param{Name: "S", Units: "cm^2", Default: 1070},
		model.Param{Name: "Qu", Units: "mg/cm^2-event", Default: 2.1},
		model.Param{Name: "FT", Units: "events/worker-day", Default: 1, Check: model.AtLeast(0)},
		model.Param{Name: "Yderm", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
	),
	Outputs: doseSet(),
	Equations: doseEquations(
		model.Equation{Name: "Dexp", Expr: "S * Qu * Yderm * FT"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		dexp := equations.DermalDoseRate(in["S"], in["Qu"], in["Yderm"], in["FT"])

		return doseOutputs(in, dexp)
	},
}
