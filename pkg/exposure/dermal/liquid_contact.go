package dermal

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// OneHandLiquidContact evaluates the EPA-OPPT 1-Hand Dermal Contact with
// Liquid exposure model. Yderm, the weight fraction of the chemical in the
// liquid, is required.
func OneHandLiquidContact(opts ...model.Option) (*model.Result, error) {
	return oneHandLiquidContact.Eval(opts...)
}

var oneHandLiquidContact = liquidDefinition(liquidModel{
	name:      "one_hand_liquid_contact",
	title:     "EPA-OPPT 1-Hand Dermal Contact with Liquid",
	surface:   535,
	defaultQu: 2.1,
	lowQu:     0.7,
	highQu:    2.1,
})

// TwoHandLiquidContact evaluates the EPA-OPPT 2-Hand Dermal Contact with
// Liquid exposure model.
func TwoHandLiquidContact(opts ...model.Option) (*model.Result, error) {
	return twoHandLiquidContact.Eval(opts...)
}

var twoHandLiquidContact = liquidDefinition(liquidModel{
	name:      "two_hand_liquid_contact",
	title:     "EPA-OPPT 2-Hand Dermal Contact with Liquid",
	surface:   1070,
	defaultQu: 2.1,
	lowQu:     0.7,
	highQu:    2.1,
})

// TwoHandLiquidImmersion evaluates the EPA-OPPT 2-Hand Dermal Immersion
// with Liquid exposure model.
func TwoHandLiquidImmersion(opts ...model.Option) (*model.Result, error) {
	return twoHandLiquidImmersion.Eval(opts...)
}

var twoHandLiquidImmersion = liquidDefinition(liquidModel{
	name:      "two_hand_liquid_immersion",
	title:     "EPA-OPPT 2-Hand Dermal Immersion with Liquid",
	surface:   1070,
	defaultQu: 10.3,
	lowQu:     1.3,
	highQu:    10.3,
})

type liquidModel struct {
	name      string
	title     string
	surface   float64
	defaultQu float64
	lowQu     float64
	highQu    float64
}

// liquidDefinition builds the liquid contact and immersion models, which
// share Dexp = S * Qu * Yderm * FT and differ in contact surface and the
// documented quantity remaining on skin.
func liquidDefinition(m liquidModel) *model.Definition {
	return &model.Definition{
		Name:            m.name,
		Title:           m.title,
		Route:           model.RouteDermal,
		DefaultScenario: "high",
		Scenarios: []model.Scenario{
			{Name: "low", Preset: preset("Qu", m.lowQu)},
			{Name: "high", Preset: preset("Qu", m.highQu)},
			{Name: "user"},
		},
		Params: append(model.CommonParams(1),
			model.Param{Name: "S", Units: "cm^2", Default: m.surface},
			model.Param{Name: "Qu", Units: "mg/cm^2-event", Default: m.defaultQu},
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
}
