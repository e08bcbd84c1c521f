package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/housestat-cli/internal/housing"
)

// Locale holds the console strings for one language.
type Locale struct {
	Code   string
	Prompt string
	// Headings for the three output blocks.
	QueryHeading  string
	CountsHeading string
	MinHeading    string
	Labels        map[housing.Category]string
	// CountLine renders one per-category count line from a display label.
	CountLine func(label string, n int) string
}

// Label returns the display label for c, falling back to its stable id.
func (l Locale) Label(c housing.Category) string {
	if s, ok := l.Labels[c]; ok {
		return s
	}
	return c.String()
}

// Russian reproduces the original console output: the label drops its last
// letter and takes the genitive plural ending ("Малоэтажный" -> "Малоэтажных").
var Russian = Locale{
	Code:          "ru",
	Prompt:        "Введите этажность дома: ",
	QueryHeading:  "Классификация дома на основе количества этажей:",
	CountsHeading: "Классификация домов на основе количества этажей:",
	MinHeading:    "Адрес дома с наименьшим средним количеством квадратных метров жилой площади на одного жильца:",
	Labels: map[housing.Category]string{
		housing.LowRise:  "Малоэтажный",
		housing.MidRise:  "Среднеэтажный",
		housing.HighRise: "Многоэтажный",
	},
	CountLine: func(label string, n int) string {
		return fmt.Sprintf("%sх: %d домов", dropLastRune(label), n)
	},
}

// English is the en console locale.
var English = Locale{
	Code:          "en",
	Prompt:        "Enter floor count: ",
	QueryHeading:  "Category of the house by floor count:",
	CountsHeading: "Houses per category:",
	MinHeading:    "Address of the house with the least residential area per resident:",
	Labels: map[housing.Category]string{
		housing.LowRise:  "Low-rise",
		housing.MidRise:  "Mid-rise",
		housing.HighRise: "High-rise",
	},
	CountLine: func(label string, n int) string {
		return fmt.Sprintf("%s houses: %d", label, n)
	},
}

// LookupLocale returns the locale for code (case-insensitive).
func LookupLocale(code string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "ru":
		return Russian, nil
	case "en":
		return English, nil
	default:
		return Locale{}, fmt.Errorf("unsupported locale: %s (use ru or en)", code)
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
