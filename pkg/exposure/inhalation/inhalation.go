package inhalation

import (
	"github.com/HumanExposure/cloet/internal/equations"
	"github.com/HumanExposure/cloet/pkg/exposure/model"
)

var (
	cvOutput = model.Output{Name: "Cv", Units: "ppm"}
	cmOutput = model.Output{Name: "Cm", Units: "mg/m^3"}
)

// doseSet returns the output declarations every inhalation model shares,
// prefixed with the model-specific concentration outputs. The potential
// dose rate I is listed last, matching the documented report order.
func doseSet(extra ...model.Output) []model.Output {
	outs := append([]model.Output{}, extra...)

	return append(outs,
		model.Output{Name: "NW", Units: "workers"},
		model.Output{Name: "LADD", Units: "mg/kg-day"},
		model.Output{Name: "ADD", Units: "mg/kg-day"},
		model.Output{Name: "APDR", Units: "mg/kg-day"},
		model.Output{Name: "I", Units: "mg/day"},
	)
}

// doseEquations appends the dose equations common to every inhalation model
// to the model-specific concentration and dose rate equations.
func doseEquations(extra ...model.Equation) []model.Equation {
	eqs := append([]model.Equation{}, extra...)

	return append(eqs,
		model.Equation{Name: "NW", Expr: "NWexp * NS"},
		model.Equation{Name: "LADD", Expr: "(I * ED * EY) / (BW * ATc * 365)"},
		model.Equation{Name: "ADD", Expr: "(I * ED * EY) / (BW * AT * 365)"},
		model.Equation{Name: "APDR", Expr: "I / BW"},
	)
}

// doseOutputs computes the dose quantities shared by every inhalation model
// from the potential dose rate i.
func doseOutputs(in model.Inputs, i float64) map[string]float64 {
	return map[string]float64{
		"NW":   equations.WorkersExposed(in["NWexp"], in["NS"]),
		"LADD": equations.DailyDose(i, in["ED"], in["EY"], in["BW"], in["ATc"]),
		"ADD":  equations.DailyDose(i, in["ED"], in["EY"], in["BW"], in["AT"]),
		"APDR": equations.AcuteDoseRate(i, in["BW"]),
		"I":    i,
	}
}

func preset(name string, value float64) map[string]float64 {
	return map[string]float64{name: value}
}

// Definitions returns every inhalation model definition in catalog order.
func Definitions() []*model.Definition {
	return []*model.Definition{
		smallVolumeSolidsHandling,
		massBalance,
		pelLimitingParticulates,
		pelLimitingVapors,
		totalPNORPELLimiting,
		respirablePNORPELLimiting,
		automobileOEMSprayCoating,
		automobileRefinishSprayCoating,
		automobileSprayCoating,
		uvRollCoating,
		userDefined,
	}
}
