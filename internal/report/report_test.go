package report

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/housestat-cli/internal/housing"
	"gopkg.in/yaml.v3"
)

func sampleRecords() []housing.Record {
	return []housing.Record{
		{Address: "ул. Мира 7", FloorCount: housing.Int(9), ResidentialArea: housing.Float(1200), Population: housing.Int(80)},
		{Address: "ул. Ленина 1", FloorCount: housing.Int(5), ResidentialArea: housing.Float(300), Population: housing.Int(30)},
		{Address: "ул. Садовая 2", FloorCount: housing.Int(3), ResidentialArea: housing.Float(200), Population: housing.Int(0)},
		{Address: "пр. Победы 12", FloorCount: housing.Int(24), ResidentialArea: housing.Float(5400), Population: housing.Int(350)},
	}
}

func TestBuildAndRussianText(t *testing.T) {
	rep, err := Build("housing_data.csv", sampleRecords(), 4, Russian)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "Классификация дома на основе количества этажей: Малоэтажный\n" +
		"Классификация домов на основе количества этажей:\n" +
		"Среднеэтажных: 1 домов\n" +
		"Малоэтажных: 2 домов\n" +
		"Многоэтажных: 1 домов\n" +
		"\n" +
		"Адрес дома с наименьшим средним количеством квадратных метров жилой площади на одного жильца: ул. Ленина 1\n"
	if got := rep.Text(false); got != want {
		t.Fatalf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}

func TestEnglishCountLine(t *testing.T) {
	rep, err := Build("x.csv", sampleRecords(), 30, English)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out := rep.Text(false)
	if !strings.HasPrefix(out, "Category of the house by floor count: High-rise\n") {
		t.Fatalf("unexpected heading: %q", out)
	}
	if !strings.Contains(out, "Low-rise houses: 2\n") {
		t.Fatalf("missing count line: %q", out)
	}
}

func TestRussianCountLineDropsLastLetter(t *testing.T) {
	if got := Russian.CountLine("Малоэтажный", 3); got != "Малоэтажных: 3 домов" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildRejectsInvalidQuery(t *testing.T) {
	_, err := Build("x.csv", sampleRecords(), 0, Russian)
	if !errors.Is(err, housing.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestBuildPropagatesBatchFailure(t *testing.T) {
	recs := append(sampleRecords(), housing.Record{Address: "bad", FloorCount: housing.Int(-1)})
	_, err := Build("x.csv", recs, 3, Russian)
	if !errors.Is(err, housing.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if !strings.Contains(err.Error(), "classify records") {
		t.Fatalf("expected stage in message, got %v", err)
	}
}

func TestTextWithoutEligibleRecords(t *testing.T) {
	recs := []housing.Record{{Address: "a", FloorCount: housing.Int(2), ResidentialArea: housing.Float(10), Population: housing.Int(0)}}
	rep, err := Build("x.csv", recs, 2, Russian)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.MinAreaFound {
		t.Fatalf("expected no eligible record")
	}
	if !strings.HasSuffix(rep.Text(false), "жильца: \n") {
		t.Fatalf("expected empty address, got %q", rep.Text(false))
	}
}

func TestTextStats(t *testing.T) {
	rep, err := Build("x.csv", sampleRecords(), 2, Russian)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out := rep.Text(true)
	if !strings.Contains(out, "[AREA PER RESIDENT]") || !strings.Contains(out, "eligible: 3 of 4") {
		t.Fatalf("missing stats: %q", out)
	}
}

func TestRenderJSON(t *testing.T) {
	rep, err := Build("x.csv", sampleRecords(), 7, English)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := rep.Render("json", false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var got struct {
		RunID         string `json:"run_id"`
		QueryCategory string `json:"query_category"`
		Counts        []struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"counts"`
		MinAreaAddress string `json:"min_area_address"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, b)
	}
	if got.RunID == "" || got.QueryCategory != "mid-rise" || got.MinAreaAddress != "ул. Ленина 1" {
		t.Fatalf("unexpected report: %+v", got)
	}
	if len(got.Counts) != 3 || got.Counts[0].Category != "mid-rise" || got.Counts[1].Count != 2 {
		t.Fatalf("unexpected counts: %+v", got.Counts)
	}
}

func TestRenderJSONWithInfiniteArea(t *testing.T) {
	recs := append(sampleRecords(), housing.Record{Address: "huge", FloorCount: housing.Int(2), ResidentialArea: housing.Float(math.Inf(1)), Population: housing.Int(5)})
	rep, err := Build("x.csv", recs, 7, English)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := rep.Render("json", false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !json.Valid(b) {
		t.Fatalf("invalid json:\n%s", b)
	}
	if rep.AreaPerRes.Eligible != 3 || rep.MinAreaAddress != "ул. Ленина 1" {
		t.Fatalf("unexpected ratio results: %+v %q", rep.AreaPerRes, rep.MinAreaAddress)
	}
}

func TestRenderYAML(t *testing.T) {
	rep, err := Build("x.csv", sampleRecords(), 7, Russian)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := rep.Render("yaml", false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, b)
	}
	if got["query_category"] != "mid-rise" {
		t.Fatalf("unexpected query_category: %v\n%s", got["query_category"], b)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	rep, err := Build("x.csv", nil, 1, Russian)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := rep.Render("xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLookupLocale(t *testing.T) {
	if l, err := LookupLocale("EN"); err != nil || l.Code != "en" {
		t.Fatalf("en: %v %v", l.Code, err)
	}
	if l, err := LookupLocale(""); err != nil || l.Code != "ru" {
		t.Fatalf("default: %v %v", l.Code, err)
	}
	if _, err := LookupLocale("de"); err == nil {
		t.Fatalf("expected error")
	}
}
