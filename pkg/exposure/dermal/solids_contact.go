package dermal

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// TwoHandSolidsContact evaluates the EPA-OPPT 2-Hand Dermal Contact with
// Solids exposure model. The total amount on skin SQu is characterised
// directly, without separate surface area and film thickness terms.
func TwoHandSolidsContact(opts ...model.Option) (*model.Result, error) {
	return twoHandSolidsContact.Eval(opts...)
}

var twoHandSolidsContact = solidsDefinition(
	"two_hand_solids_contact", "EPA-OPPT 2-Hand Dermal Contact with Solids", 3100)

// TwoHandContainerSurfaceContact evaluates the EPA-OPPT 2-Hand Dermal
// Contact with Container Surfaces exposure model.
func TwoHandContainerSurfaceContact(opts ...model.Option) (*model.Result, error) {
	return twoHandContainerSurfaceContact.Eval(opts...)
}

var twoHandContainerSurfaceContact = solidsDefinition(
	"two_hand_container_surface_contact", "EPA-OPPT 2-Hand Dermal Contact with Container Surfaces", 1100)

func solidsDefinition(name, title string, squ float64) *model.Definition {
	return &model.Definition{
		Name:            name,
		Title:           title,
		Route:           model.RouteDermal,
		DefaultScenario: "high",
		Scenarios: []model.Scenario{
			{Name: "high", Preset: preset("SQu", squ)},
			{Name: "user"},
		},
		Params: append(model.CommonParams(1),
			model.Param{Name: "SQu", Units: "mg/event", Default: squ},
			model.Param{Name: "FT", Units: "events/worker-day", Default: 1, Check: model.AtLeast(0)},
			model.Param{Name: "Yderm", Units: "dimensionless", Required: true, Check: model.Within(0, 1)},
		),
		Outputs: doseSet(),
		Equations: doseEquations(
			model.Equation{Name: "Dexp", Expr: "SQu * Yderm * FT"},
		),
		Compute: func(in model.Inputs) map[string]float64 {
			dexp := equations.SolidsDoseRate(in["SQu"], in["Yderm"], in["FT"])

			return doseOutputs(in, dexp)
		},
	}
}
