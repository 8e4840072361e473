package fincore

import (
	"fmt"
	"math"
)

// ReturnAnalysis describes a realized investment return over a horizon.
type ReturnAnalysis struct {
	InitialValue     Money
	FinalValue       Money
	Years            float64
	AbsoluteReturn   Money
	ROI              Percent
	AnnualizedReturn float64
}

func (r ReturnAnalysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("initialValue", r.InitialValue)
	w.Append("finalValue", r.FinalValue)
	w.Append("years", r.Years)
	w.Append("absoluteReturn", r.AbsoluteReturn)
	w.Append("roiPercentage", float64(r.ROI))
	w.Append("annualizedReturn", r.AnnualizedReturn)
	return w.MarshalJSON()
}

// AnalyzeReturn derives absolute return, ROI percentage and annualized
// return from initial and final values over a horizon:
// annualized = (final/initial)^(1/years) - 1.
func AnalyzeReturn(initial, final Money, years float64) (ReturnAnalysis, error) {
	if initial.IsZero() {
		return ReturnAnalysis{}, fmt.Errorf("return analysis: %w", ErrZeroPrincipal)
	}
	if years <= 0 {
		return ReturnAnalysis{}, fmt.Errorf("return analysis over %g years: %w", years, ErrNegativeTenor)
	}
	absolute := final.Sub(initial)
	ratio := final.Ratio(initial).InexactFloat64()
	return ReturnAnalysis{
		InitialValue:     initial,
		FinalValue:       final,
		Years:            years,
		AbsoluteReturn:   absolute,
		ROI:              Percent(100 * absolute.AsFloat() / initial.AsFloat()),
		AnnualizedReturn: math.Pow(ratio, 1/years) - 1,
	}, nil
}
