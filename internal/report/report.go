package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KaramelBytes/housestat-cli/internal/housing"
	"github.com/KaramelBytes/housestat-cli/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Report collects the pipeline results for one run.
type Report struct {
	RunID          string               `json:"run_id" yaml:"run_id"`
	Source         string               `json:"source" yaml:"source"`
	Records        int                  `json:"records" yaml:"records"`
	QueryFloors    int                  `json:"query_floors" yaml:"query_floors"`
	QueryCategory  housing.Category     `json:"query_category" yaml:"query_category"`
	QueryLabel     string               `json:"query_label" yaml:"query_label"`
	Counts         []CategoryCount      `json:"counts" yaml:"counts"`
	MinAreaAddress string               `json:"min_area_address" yaml:"min_area_address"`
	MinAreaFound   bool                 `json:"min_area_found" yaml:"min_area_found"`
	AreaPerRes     housing.RatioSummary `json:"area_per_resident" yaml:"area_per_resident"`

	locale Locale
}

// CategoryCount is one entry of the ordered per-category tally.
type CategoryCount struct {
	Category housing.Category `json:"category" yaml:"category"`
	Label    string           `json:"label" yaml:"label"`
	Count    int              `json:"count" yaml:"count"`
}

// Build runs classification, aggregation and ratio search over records and
// classifies floors ad hoc. Any classification error aborts the build.
func Build(source string, records []housing.Record, floors int, loc Locale) (*Report, error) {
	qc, err := housing.Classify(floors)
	if err != nil {
		return nil, err
	}
	labels, err := housing.ClassifyAll(records)
	if err != nil {
		return nil, fmt.Errorf("classify records: %w", err)
	}
	counts := housing.CountCategories(labels)
	addr, found := housing.MinAreaPerResident(records)

	rep := &Report{
		RunID:          uuid.NewString(),
		Source:         source,
		Records:        len(records),
		QueryFloors:    floors,
		QueryCategory:  qc,
		QueryLabel:     loc.Label(qc),
		MinAreaAddress: addr,
		MinAreaFound:   found,
		AreaPerRes:     housing.SummarizeAreaPerResident(records),
		locale:         loc,
	}
	for _, c := range counts.Categories() {
		n, _ := counts.Get(c)
		rep.Counts = append(rep.Counts, CategoryCount{Category: c, Label: loc.Label(c), Count: n})
	}
	return rep, nil
}

// Text renders the console output. withStats appends the area-per-resident summary.
func (r *Report) Text(withStats bool) string {
	loc := r.locale
	if loc.CountLine == nil {
		loc = Russian
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", loc.QueryHeading, r.QueryLabel))
	b.WriteString(loc.CountsHeading + "\n")
	for _, c := range r.Counts {
		b.WriteString(loc.CountLine(c.Label, c.Count) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", loc.MinHeading, r.MinAreaAddress))
	if withStats {
		s := r.AreaPerRes
		b.WriteString("\n[AREA PER RESIDENT]\n")
		b.WriteString(fmt.Sprintf("eligible: %d of %d\n", s.Eligible, r.Records))
		if s.Eligible > 0 {
			b.WriteString(fmt.Sprintf("min %.4g, max %.4g, mean %.4g, std %.4g\n", s.Min, s.Max, s.Mean, s.StdDev))
		}
	}
	return b.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return utils.PrettyJSON(r)
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces output in the named format: text | json | yaml.
func (r *Report) Render(format string, withStats bool) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return []byte(r.Text(withStats)), nil
	case "json":
		b, err := r.JSON()
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml", "yml":
		return r.YAML()
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json or yaml)", format)
	}
}
