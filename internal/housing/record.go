package housing

// Column names expected in the source header.
const (
	ColAreaID          = "area_id"
	ColAddress         = "house_address"
	ColFloorCount      = "floor_count"
	ColHeatingType     = "heating_house_type"
	ColHeatingValue    = "heating_value"
	ColResidentialArea = "area_residential"
	ColPopulation      = "population"
)

// RequiredColumns lists every column a source header must name. Order is not significant.
var RequiredColumns = []string{
	ColAreaID,
	ColAddress,
	ColFloorCount,
	ColHeatingType,
	ColHeatingValue,
	ColResidentialArea,
	ColPopulation,
}

// Record is one housing unit loaded from the source. Numeric fields are nil
// when the value is absent (only possible with LoadOptions.AllowBlank or for
// records built by callers).
type Record struct {
	AreaID          string   `json:"area_id" yaml:"area_id"`
	Address         string   `json:"house_address" yaml:"house_address"`
	FloorCount      *int     `json:"floor_count" yaml:"floor_count"`
	HeatingType     string   `json:"heating_house_type" yaml:"heating_house_type"`
	HeatingValue    *float64 `json:"heating_value" yaml:"heating_value"`
	ResidentialArea *float64 `json:"area_residential" yaml:"area_residential"`
	Population      *int     `json:"population" yaml:"population"`
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
