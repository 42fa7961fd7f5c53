package cop

import "math"

const kelvinOffset = 273.15

// Display labels, in record order.
const (
	LabelOutdoor     = "Outdoor °C"
	LabelFlow        = "Flow °C"
	LabelReturn      = "Return °C"
	LabelCondDelta   = "ΔT_cond K"
	LabelEvapDelta   = "ΔT_evap K"
	LabelEfficiency  = "ηCarnot"
	LabelCarnotCOP   = "Carnot COP"
	LabelExpectedCOP = "Expected COP"
)

// Record contains the inputs echoed back together with every derived figure.
type Record struct {
	OutdoorC         float64
	FlowC            float64
	ReturnC          float64
	CondenserDeltaK  float64
	EvaporatorDeltaK float64
	EfficiencyFactor float64
	CarnotCOP        float64
	ExpectedCOP      float64
}

// Field is a single labeled figure of a Record.
type Field struct {
	Label string
	Value float64
}

// Fields returns the record as ordered label/value pairs.
func (r Record) Fields() []Field {
	return []Field{
		{Label: LabelOutdoor, Value: r.OutdoorC},
		{Label: LabelFlow, Value: r.FlowC},
		{Label: LabelReturn, Value: r.ReturnC},
		{Label: LabelCondDelta, Value: r.CondenserDeltaK},
		{Label: LabelEvapDelta, Value: r.EvaporatorDeltaK},
		{Label: LabelEfficiency, Value: r.EfficiencyFactor},
		{Label: LabelCarnotCOP, Value: r.CarnotCOP},
		{Label: LabelExpectedCOP, Value: r.ExpectedCOP},
	}
}

// CondenserDelta returns the gap in kelvin between mean water temperature and
// refrigerant saturation on the condenser side.
func CondenserDelta(flowC float64) float64 {
	switch {
	case flowC <= 37:
		return 3.0
	case flowC <= 52:
		return 4.0
	default:
		return 5.0
	}
}

// EvaporatorDelta returns the gap in kelvin between outdoor air and
// refrigerant saturation on the evaporator side.
func EvaporatorDelta(outdoorC float64) float64 {
	switch {
	case outdoorC >= 5:
		return 5.0
	case outdoorC >= 0:
		return 6.0
	case outdoorC >= -5:
		return 7.0
	default:
		return 8.0
	}
}

// EfficiencyFactor returns the share of the Carnot COP the unit achieves,
// rounded to 3 decimal places.
func EfficiencyFactor(outdoorC, flowC float64) float64 {
	var base float64
	switch {
	case outdoorC >= 5:
		base = 0.48
	case outdoorC >= 0:
		base = 0.47
	case outdoorC >= -5:
		base = 0.45
	default:
		base = 0.44
	}

	// hotter condenser water costs a little efficiency
	switch {
	case flowC >= 50:
		base -= 0.03
	case flowC >= 40:
		base -= 0.02
	}
	return round(base, 3)
}

// Estimate computes the Carnot and expected COP for the given outdoor, flow
// and return temperatures in degrees Celsius. NaN inputs propagate and equal
// saturation temperatures produce an infinite Carnot COP.
func Estimate(outdoorC, flowC, returnC float64) Record {
	condDelta := CondenserDelta(flowC)
	evapDelta := EvaporatorDelta(outdoorC)

	condSatK := (flowC+returnC)/2 + condDelta + kelvinOffset
	evapSatK := outdoorC - evapDelta + kelvinOffset

	carnot := condSatK / (condSatK - evapSatK)
	eta := EfficiencyFactor(outdoorC, flowC)
	expected := eta * carnot

	return Record{
		OutdoorC:         outdoorC,
		FlowC:            flowC,
		ReturnC:          returnC,
		CondenserDeltaK:  condDelta,
		EvaporatorDeltaK: evapDelta,
		EfficiencyFactor: eta,
		CarnotCOP:        round(carnot, 2),
		ExpectedCOP:      round(expected, 2),
	}
}

// round rounds half toward positive infinity.
func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(v*scale+0.5) / scale
}
