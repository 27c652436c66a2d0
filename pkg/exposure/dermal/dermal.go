package dermal

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

// doseSet returns the output declarations every dermal model shares. The
// potential dose rate Dexp is listed last, matching the documented report
// order.
func doseSet() []model.Output {
	return []model.Output{
		{Name: "NW", Units: "workers"},
		{Name: "LADD", Units: "mg/kg-day"},
		{Name: "ADD", Units: "mg/kg-day"},
		{Name: "APDR", Units: "mg/kg-day"},
		{Name: "Dexp", Units: "mg/day"},
	}
}

// doseEquations appends the dose equations common to every dermal model to
// the model-specific dose rate equation.
func doseEquations(rate model.Equation) []model.Equation {
	return []model.Equation{
		rate,
		{Name: "NW", Expr: "NWexp * NS"},
		{Name: "LADD", Expr: "(Dexp * ED * EY) / (BW * ATc * 365)"},
		{Name: "ADD", Expr: "(Dexp * ED * EY) / (BW * AT * 365)"},
		{Name: "APDR", Expr: "Dexp / BW"},
	}
}

// doseOutputs computes the dose quantities shared by every dermal model
// from the potential dose rate dexp.
func doseOutputs(in model.Inputs, dexp float64) map[string]float64 {
	return map[string]float64{
		"NW":   equations.WorkersExposed(in["NWexp"], in["NS"]),
		"LADD": equations.DailyDose(dexp, in["ED"], in["EY"], in["BW"], in["ATc"]),
		"ADD":  equations.DailyDose(dexp, in["ED"], in["EY"], in["BW"], in["AT"]),
		"APDR": equations.AcuteDoseRate(dexp, in["BW"]),
		"Dexp": dexp,
	}
}

func preset(name string, value float64) map[string]float64 {
	return map[string]float64{name: value}
}

// Definitions returns every dermal model definition in catalog order.
func Definitions() []*model.Definition {
	return []*model.Definition{
		oneHandLiquidContact,
		twoHandLiquidContact,
		twoHandLiquidImmersion,
		twoHandSolidsContact,
		twoHandContainerSurfaceContact,
		userDefined,
	}
}
