package inhalation

import (
	"math"

	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// AutomobileOEMSprayCoating evaluates the EPA-OPPT Automobile OEM Spray
// Coating inhalation exposure model. Ymist, the weight fraction of the
// chemical in the mist, is required; unless overridden Ys is derived as
// min(Ymist/Ysf, 1).
func AutomobileOEMSprayCoating(opts ...model.Option) (*model.Result, error) {
	return automobileOEMSprayCoating.Eval(opts...)
}

var automobileOEMSprayCoating = mistDefinition(mistModel{
	name:            "automobile_oem_spray_coating",
	title:           "EPA-OPPT Automobile OEM Spray Coating",
	defaultScenario: "conventional,downdraft",
	defaultKCk:      2.3,
	defaultNWexp:    17,
	scenarios: []model.Scenario{
		{Name: "conventional,downdraft", Preset: preset("KCk", 2.3)},
		{Name: "conventional,crossdraft", Preset: preset("KCk", 15)},
		{Name: "hvlp,downdraft", Preset: preset("KCk", 1.9)},
		{Name: "hvlp,crossdraft", Preset: preset("KCk", 15)},
		{Name: "user"},
	},
})

// AutomobileRefinishSprayCoating evaluates the EPA-OPPT Automobile Refinish
// Spray Coating inhalation exposure model.
func AutomobileRefinishSprayCoating(opts ...model.Option) (*model.Result, error) {
	return automobileRefinishSprayCoating.Eval(opts...)
}

var automobileRefinishSprayCoating = mistDefinition(mistModel{
	name:            "automobile_refinish_spray_coating",
	title:           "EPA-OPPT Automobile Refinish Spray Coating",
	defaultScenario: "conventional,crossdraft",
	defaultKCk:      15,
	defaultNWexp:    3,
	scenarios: []model.Scenario{
		{Name: "conventional,downdraft", Preset: preset("KCk", 2.3)},
		{Name: "conventional,crossdraft", Preset: preset("KCk", 15)},
		{Name: "hvlp,downdraft", Preset: preset("KCk", 1.9)},
		{Name: "hvlp,crossdraft", Preset: preset("KCk", 15)},
		{Name: "user"},
	},
})

// UVRollCoating evaluates the EPA-OPPT UV Roll Coating inhalation exposure
// model.
func UVRollCoating(opts ...model.Option) (*model.Result, error) {
	return uvRollCoating.Eval(opts...)
}

var uvRollCoating = mistDefinition(mistModel{
	name:            "uv_roll_coating",
	title:           "EPA-OPPT UV Roll Coating",
	defaultScenario: "high end of range",
	defaultKCk:      0.26,
	defaultNWexp:    1,
	scenarios: []model.Scenario{
		{Name: "low end of range", Preset: preset("KCk", 0.04)},
		{Name: "high end of range", Preset: preset("KCk", 0.26)},
		{Name: "user"},
	},
})

// AutomobileSprayCoating evaluates the EPA-OPPT Automobile Spray Coating
// inhalation exposure model. The air concentration is the scenario's KCk
// directly; no weight fraction is involved.
func AutomobileSprayCoating(opts ...model.Option) (*model.Result, error) {
	return automobileSprayCoating.Eval(opts...)
}

var automobileSprayCoating = &model.Definition{
	Name:            "automobile_spray_coating",
	Title:           "EPA-OPPT Automobile Spray Coating",
	Route:           model.RouteInhalation,
	DefaultScenario: "high,conventional,crossdraft",
	Scenarios: []model.Scenario{
		{Name: "low,conventional,crossdraft", Preset: preset("KCk", 0.05)},
		{Name: "high,conventional,crossdraft", Preset: preset("KCk", 18.4)},
		{Name: "low,conventional,downdraft", Preset: preset("KCk", 0.01)},
		{Name: "high,conventional,downdraft", Preset: preset("KCk", 3.7)},
		{Name: "low,hvlp,crossdraft", Preset: preset("KCk", 1.0)},
		{Name: "high,hvlp,crossdraft", Preset: preset("KCk", 5.2)},
		{Name: "low,hvlp,downdraft", Preset: preset("KCk", 0.6)},
		{Name: "high,hvlp,downdraft", Preset: preset("KCk", 1.4)},
		{Name: "user"},
	},
	Params: append(model.CommonParams(3),
		model.Param{Name: "KCk", Units: "mg/m^3", Default: 18.4},
		model.Param{Name: "b", Units: "m^3/hr", Default: 1.25, Check: model.Within(0, 7.9)},
		model.Param{Name: "h", Units: "hrs/day", Default: 8, Check: model.Within(0, 24)},
	),
	Outputs: doseSet(cmOutput),
	Equations: doseEquations(
		model.Equation{Name: "Cm", Expr: "KCk"},
		model.Equation{Name: "I", Expr: "Cm * b * h"},
	),
	Compute: func(in model.Inputs) map[string]float64 {
		cm := in["KCk"]

		out := doseOutputs(in, equations.InhalationDoseRate(cm, in["b"], in["h"]))
		out["Cm"] = cm

		return out
	},
}

type mistModel struct {
	name            string
	title           string
	defaultScenario string
	defaultKCk      float64
	defaultNWexp    float64
	scenarios       []model.Scenario
}

// mistDefinition builds the mist-based coating models, which share the
// Cm = KCk * Ys rule and the derived solids weight fraction.
func mistDefinition(m mistModel) *model.Definition {
	return &model.Definition{
		Name:            m.name,
		Title:           m.title,
		Route:           model.RouteInhalation,
		DefaultScenario: m.defaultScenario,
		Scenarios:       m.scenarios,
		Params: append(model.CommonParams(m.defaultNWexp),
			model.Param{Name: "KCk", Units: "mg/m^3", Default: m.defaultKCk},
			model.Param{Name: "Ymist", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
			model.Param{Name: "Ysf", Units: "dimensionless", Default: 0.25, Check: model.WithinPositive(1)},
			model.Param{
				Name: "Ys", Units: "dimensionless", Check: model.Within(0, 1),
				Derive: func(in model.Inputs) float64 {
					return math.Min(in["Ymist"]/in["Ysf"], 1)
				},
			},
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
