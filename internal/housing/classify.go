package housing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category is a floor-count band. Values are ordered by the bands they cover.
type Category int

const (
	LowRise  Category = iota + 1 // 1-5 floors
	MidRise                      // 6-16 floors
	HighRise                     // 17+ floors
)

// Categories lists every band in order.
var Categories = []Category{LowRise, MidRise, HighRise}

// Band upper bounds, inclusive.
const (
	lowRiseMaxFloors = 5
	midRiseMaxFloors = 16
)

func (c Category) String() string {
	switch c {
	case LowRise:
		return "low-rise"
	case MidRise:
		return "mid-rise"
	case HighRise:
		return "high-rise"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText encodes the category as its stable id.
func (c Category) MarshalText() ([]byte, error) {
	switch c {
	case LowRise, MidRise, HighRise:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("invalid category %d", int(c))
}

// Classify returns the band for a floor count.
func Classify(floors int) (Category, error) {
	if floors <= 0 {
		return 0, &ClassifyError{Value: strconv.Itoa(floors), Err: ErrOutOfRange}
	}
	switch {
	case floors <= lowRiseMaxFloors:
		return LowRise, nil
	case floors <= midRiseMaxFloors:
		return MidRise, nil
	default:
		return HighRise, nil
	}
}

// ClassifyNumber classifies a floor count given as an arbitrary number.
// The integer check runs before the range check.
func ClassifyNumber(x float64) (Category, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, &ClassifyError{Value: strconv.FormatFloat(x, 'g', -1, 64), Err: ErrTypeMismatch}
	}
	return Classify(clampFloors(x))
}

// ParseFloorCount parses operator input. Integral floats such as "5.0" are
// accepted; integral values beyond the int32 range are clamped so they keep
// their band (or their out-of-range error when negative).
func ParseFloorCount(s string) (int, error) {
	raw := strings.TrimSpace(s)
	if v, err := strconv.Atoi(raw); err == nil {
		return clampFloors(float64(v)), nil
	}
	x, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Overflow parses as ±Inf.
		return clampFloors(x), nil
	}
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, &ClassifyError{Value: strconv.Quote(raw), Err: ErrTypeMismatch}
	}
	return clampFloors(x), nil
}

func clampFloors(x float64) int {
	switch {
	case x > math.MaxInt32:
		return math.MaxInt32
	case x < math.MinInt32:
		return math.MinInt32
	}
	return int(x)
}

// ClassifyAll classifies every record that carries a floor count. Records
// without one are skipped; any other failure aborts the batch.
func ClassifyAll(records []Record) ([]Category, error) {
	out := make([]Category, 0, len(records))
	for i, r := range records {
		if r.FloorCount == nil {
			continue
		}
		c, err := Classify(*r.FloorCount)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, r.Address, err)
		}
		out = append(out, c)
	}
	return out, nil
}
