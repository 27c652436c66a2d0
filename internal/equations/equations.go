// Package equations holds the closed-form dose equations shared by every
// exposure model, taken from the ChemSTEER User Guide.
package equations

// DaysPerYear is the year length used by every daily dose equation.
const DaysPerYear = 365

// InhalationDoseRate returns the inhalation potential dose rate I (mg/day)
// from the mass concentration of the chemical in air Cm (mg/m^3), the
// volumetric inhalation rate b (m^3/hr) and the daily exposure duration h
// (hrs/day).
func InhalationDoseRate(cm, b, h float64) float64 {
	return cm * b * h
}

// HandlingDoseRate returns the inhalation potential dose rate I (mg/day)
// for solids handling from the exposure factor ef (mg/kg), the amount of
// solid handled ah (kg/worker-shift), the weight fraction ys and the number
// of shifts sd (shift/worker-day).
func HandlingDoseRate(ef, ah, ys, sd float64) float64 {
	return ef * ah * ys * sd
}

// DermalDoseRate returns the dermal potential dose rate Dexp (mg/day) from
// the contact surface area s (cm^2), the quantity remaining on skin qu
// (mg/cm^2-event), the weight fraction yderm and the event frequency ft
// (events/worker-day).
func DermalDoseRate(s, qu, yderm, ft float64) float64 {
	return s * qu * yderm * ft
}

// SolidsDoseRate returns the dermal potential dose rate Dexp (mg/day) when
// the total amount on skin squ (mg/event) is characterised directly.
func SolidsDoseRate(squ, yderm, ft float64) float64 {
	return squ * yderm * ft
}

// WorkersExposed returns the total number of workers exposed NW from the
// workers exposed per site and the number of sites.
func WorkersExposed(nwexp, ns float64) float64 {
	return nwexp * ns
}

// DailyDose returns an average daily dose (mg/kg-day) for the potential dose
// rate pdr over the averaging time t in years. With t = ATc it is the
// lifetime average daily dose LADD, with t = AT the average daily dose ADD.
func DailyDose(pdr, ed, ey, bw, t float64) float64 {
	return (pdr * ed * ey) / (bw * t * DaysPerYear)
}

// AcuteDoseRate returns the acute potential dose rate APDR (mg/kg-day).
func AcuteDoseRate(pdr, bw float64) float64 {
	return pdr / bw
}
