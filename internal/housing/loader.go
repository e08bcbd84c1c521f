package housing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOptions controls how a source file is parsed.
type LoadOptions struct {
	// Delimiter for fields. If 0, picked from the file extension (tab for .tsv, comma otherwise).
	Delimiter rune
	// AllowBlank loads blank numeric cells as absent values instead of failing.
	AllowBlank bool
}

// DefaultLoadOptions returns strict comma-separated loading.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// LoadFile reads every data row of the file at path into Records, preserving row order.
func LoadFile(path string, opt LoadOptions) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	if opt.Delimiter == 0 {
		opt.Delimiter = sniffDelimiter(path)
	}
	recs, err := Load(f, opt)
	if err != nil {
		var se *SourceError
		if errors.As(err, &se) && se.Path == "" {
			se.Path = path
		}
		return nil, err
	}
	return recs, nil
}

// Load parses delimited text with a header row from r.
func Load(r io.Reader, opt LoadOptions) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comma = ','
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SourceError{Err: errors.New("empty input: missing header row")}
		}
		return nil, &SourceError{Err: fmt.Errorf("read header: %w", err)}
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, &SourceError{Err: err}
	}

	var out []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &CoercionError{Row: row, Err: err}
		}
		rec, err := parseRow(row, fields, idx, opt)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(row int, fields []string, idx map[string]int, opt LoadOptions) (Record, error) {
	get := func(col string) string { return strings.TrimSpace(fields[idx[col]]) }

	var rec Record
	rec.AreaID = get(ColAreaID)
	rec.Address = get(ColAddress)
	rec.HeatingType = get(ColHeatingType)

	var err error
	if rec.FloorCount, err = parseIntField(row, ColFloorCount, get(ColFloorCount), opt); err != nil {
		return Record{}, err
	}
	if rec.HeatingValue, err = parseFloatField(row, ColHeatingValue, get(ColHeatingValue), opt); err != nil {
		return Record{}, err
	}
	if rec.ResidentialArea, err = parseFloatField(row, ColResidentialArea, get(ColResidentialArea), opt); err != nil {
		return Record{}, err
	}
	if rec.Population, err = parseIntField(row, ColPopulation, get(ColPopulation), opt); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseIntField(row int, col, raw string, opt LoadOptions) (*int, error) {
	if raw == "" && opt.AllowBlank {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &CoercionError{Row: row, Column: col, Value: raw, Err: errors.New("not an integer")}
	}
	return &v, nil
}

func parseFloatField(row int, col, raw string, opt LoadOptions) (*float64, error) {
	if raw == "" && opt.AllowBlank {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &CoercionError{Row: row, Column: col, Value: raw, Err: errors.New("not a number")}
	}
	return &v, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
