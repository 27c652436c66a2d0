package inhalation

import (
	"math"

	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// PELLimitingParticulates evaluates the OSHA PEL-limiting model for
// substance-specific particulates. The air concentration is scaled from the
// OSHA PEL-TWA concentration KCk of the particulate carrying the chemical.
func PELLimitingParticulates(opts ...model.Option) (*model.Result, error) {
	return pelLimitingParticulates.Eval(opts...)
}

var pelLimitingParticulates = &model.Definition{
	Name:            "pel_limiting_particulates",
	Title:           "OSHA PEL-limiting Model for Substance-specific Particulates",
	Route:           model.RouteInhalation,
	DefaultScenario: "user",
	Scenarios:       []model.Scenario{{Name: "user"}},
	Params: append(model.CommonParams(1),
		model.Param{Name: "KCk", Units: "mg/m^3", Default: 15},
		model.Param{Name: "Ys", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		model.Param{Name: "Ypel", Units: "dimensionless", Default: 1, Check: model.Within(0, 1)},
		model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
		model.Param{Name: "h", Units: "hrs/day", Default: 8, Check: model.Within(0, 24)},
	),
	Outputs: doseSet(cmOutput),
	Equations: doseEquations(
		model.Equation{Name: "Cm", Expr: "KCk * Ys / Ypel"},
		model.Equation{Name: "I", Expr: "Cm * b * h"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		cm := in["KCk"] * in["Ys"] / in["Ypel"]

		out := doseOutputs(in, equations.InhalationDoseRate(cm, in["b"], in["h"]))
		out["Cm"] = cm

		return out
	},
}

// PELLimitingVapors evaluates the OSHA PEL-limiting model for
// substance-specific vapors. Unless overridden, the PEL chemical weight
// fraction Ypel defaults to 1 - Ys.
func PELLimitingVapors(opts ...model.Option) (*model.Result, error) {
	return pelLimitingVapors.Eval(opts...)
}

var pelLimitingVapors = &model.Definition{
	Name:            "pel_limiting_vapors",
	Title:           "OSHA PEL-limiting Model for Substance-specific Vapors",
	Route:           model.RouteInhalation,
	DefaultScenario: "user",
	Scenarios:       []model.Scenario{{Name: "user"}},
	Params: append(model.CommonParams(1),
		model.Param{Name: "Cvk", Units: "ppm", Required: true},
		model.Param{Name: "VP", Units: "torr", Required: true},
		model.Param{Name: "Ys", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		model.Param{Name: "MW", Units: "g/mol", Required: true},
		model.Param{Name: "VPpel", Units: "torr", Required: true},
		model.Param{
			Name: "Ypel", Units: "dimensionless", Check: model.Within(0, 1),
			Derive: func(in model.Inputs) float64 { return 1 - in["Ys"] },
		},
		model.Param{Name: "MWpel", Units: "g/mol", Required: true},
		model.Param{Name: "X", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		model.Param{Name: "Vm", Units: "L/mol", Default: 24.45, Check: model.AtLeast(0)},
		model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
		model.Param{Name: "h", Units: "hrs/day", Default: 8, Check: model.Within(0, 24)},
	),
	Outputs: doseSet(cvOutput, cmOutput),
	Equations: doseEquations(
		model.Equation{Name: "Cv", Expr: "min(Cvk * (VP * Ys / MW) / (VPpel * Ypel / MWpel), (1000000 * X * VP) / 760)"},
		model.Equation{Name: "Cm", Expr: "Cv * MW / Vm"},
		model.Equation{Name: "I", Expr: "Cm * b * h"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		cv := math.Min(
			in["Cvk"]*(in["VP"]*in["Ys"]/in["MW"])/(in["VPpel"]*in["Ypel"]/in["MWpel"]),
			1000000*in["X"]*in["VP"]/760,
		)
		cm := cv * in["MW"] / in["Vm"]

		out := doseOutputs(in, equations.InhalationDoseRate(cm, in["b"], in["h"]))
		out["Cv"] = cv
		out["Cm"] = cm

		return out
	},
}

// TotalPNORPELLimiting evaluates the OSHA Total PNOR PEL-limiting
// inhalation exposure model (particulates not otherwise regulated,
// 15 mg/m^3 PEL-TWA).
func TotalPNORPELLimiting(opts ...model.Option) (*model.Result, error) {
	return totalPNORPELLimiting.Eval(opts...)
}

var totalPNORPELLimiting = pnorDefinition(
	"total_pnor_pel_limiting", "OSHA Total PNOR PEL-limiting", 15)

// RespirablePNORPELLimiting evaluates the OSHA Respirable PNOR PEL-limiting
// inhalation exposure model (5 mg/m^3 PEL-TWA).
func RespirablePNORPELLimiting(opts ...model.Option) (*model.Result, error) {
	return respirablePNORPELLimiting.Eval(opts...)
}

var respirablePNORPELLimiting = pnorDefinition(
	"respirable_pnor_pel_limiting", "OSHA Respirable PNOR PEL-limiting", 5)

// pnorDefinition builds the two PNOR PEL-limiting models, which differ only
// in identity and the default PEL concentration.
func pnorDefinition(name, title string, kck float64) *model.Definition {
	return &model.Definition{
		Name:            name,
		Title:           title,
		Route:           model.RouteInhalation,
		DefaultScenario: "user",
		Scenarios:       []model.Scenario{{Name: "user"}},
		Params: append(model.CommonParams(1),
			model.Param{Name: "KCk", Units: "mg/m^3", Default: kck},
			model.Param{Name: "Ys", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
			model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
			model.Param{Name: "h", Units: "hrs/day", Default: 8, Check: model.Within(0, 24)},
		),
		Outputs: doseSet(cmOutput),
		Equations: doseEquations(
			model.Equation{Name: "Cm", Expr: "KCk * Ys"},
			model.Equation{Name: "I", Expr: "Cm * b * h"},
		),
		Compute: func(in model.Inputs) map[string]float64 {
			cm := in["KCk"] * in["Ys"]

			out := doseOutputs(in, equations.InhalationDoseRate(cm, in["b"], in["h"]))
			out["Cm"] = cm

			return out
		},
	}
}
