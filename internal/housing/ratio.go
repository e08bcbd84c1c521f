package housing

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// areaPerResident returns the residential area per resident when the record
// is eligible. Non-finite ratios (NaN or Inf areas) are not comparable and are skipped.
func areaPerResident(r Record) (float64, bool) {
	if r.ResidentialArea == nil || r.Population == nil || *r.Population <= 0 {
		return 0, false
	}
	v := *r.ResidentialArea / float64(*r.Population)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MinAreaPerResident returns the address of the record with the smallest
// residential area per resident. Records without an area or with a
// non-positive population are skipped. The earliest record wins ties.
// ok is false when no record is eligible.
func MinAreaPerResident(records []Record) (address string, ok bool) {
	best := math.Inf(1)
	for _, r := range records {
		v, eligible := areaPerResident(r)
		if !eligible {
			continue
		}
		if v < best {
			best = v
			address = r.Address
			ok = true
		}
	}
	return address, ok
}

// RatioSummary describes the distribution of area per resident across eligible records.
type RatioSummary struct {
	Eligible int     `json:"eligible" yaml:"eligible"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Mean     float64 `json:"mean" yaml:"mean"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
}

// SummarizeAreaPerResident computes a RatioSummary. StdDev is the sample
// standard deviation and is 0 with fewer than two eligible records.
func SummarizeAreaPerResident(records []Record) RatioSummary {
	var vals []float64
	for _, r := range records {
		if v, ok := areaPerResident(r); ok {
			vals = append(vals, v)
		}
	}
	s := RatioSummary{Eligible: len(vals)}
	if len(vals) == 0 {
		return s
	}
	s.Min, s.Max = vals[0], vals[0]
	for _, v := range vals[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	return s
}
