package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/evnalsb-cloud/protein-tracker/models"
)

// labelMapping pins a classifier label keyword to a known nutrient
// value. Kept as an ordered slice so that a label containing several
// keywords always resolves the same way.
type labelMapping struct {
	keyword       string
	name          string
	proteinPer100 float64
}

var directLabelMappings = []labelMapping{
	{"cheeseburger", "Cheeseburger", 15.0},
	{"hamburger", "Hamburger", 13.0},
	{"hot dog", "Hot Dog", 11.0},
	{"pizza", "Pizza", 11.0},
	{"fried chicken", "Fried Chicken", 24.0},
	{"chicken", "Chicken (cooked)", 27.0},
	{"steak", "Beef Steak (cooked)", 27.0},
	{"beef", "Beef (cooked)", 26.0},
	{"salmon", "Salmon (cooked)", 25.0},
	{"sushi", "Sushi", 9.0},
	{"fish", "Fish (cooked)", 22.0},
	{"shrimp", "Shrimp (cooked)", 24.0},
	{"omelette", "Omelette", 11.0},
	{"egg", "Egg (whole)", 13.0},
	{"burrito", "Burrito", 8.0},
	{"taco", "Taco", 12.0},
	{"sandwich", "Sandwich", 10.0},
	{"pasta", "Pasta (cooked)", 5.8},
	{"noodle", "Noodles (cooked)", 5.0},
	{"rice", "Rice (cooked)", 2.7},
	{"yogurt", "Yogurt (plain)", 5.0},
	{"pancake", "Pancakes", 6.0},
	{"salad", "Green Salad", 1.4},
	{"soup", "Soup", 3.0},
	{"bread", "Bread", 9.0},
	{"french fries", "French Fries", 3.4},
}

// ResolveLabels maps classifier output onto food records.
//
// Pairs below minConfidence are dropped. Each surviving label is first
// tried against the direct mapping table (label contains keyword,
// case-insensitive). Only if no label in the whole set produced a direct
// hit does the fuzzy fallback run: labels are split on "," and "/" into
// keywords, and the first keyword that finds a curated match contributes
// that match, re-tagged as recognized. Labels matching nothing in either
// step are skipped silently. The result keeps probability order and is
// truncated to maxResults.
func ResolveLabels(preds []Prediction, curated *CuratedSet, minConfidence float64, maxResults int) []models.FoodRecord {
	var surviving []Prediction
	for _, p := range preds {
		if p.Probability >= minConfidence {
			surviving = append(surviving, p)
		}
	}

	var out []models.FoodRecord
	for i, p := range surviving {
		m, ok := directMatch(p.Label)
		if !ok {
			continue
		}
		conf := confidencePercent(p.Probability)
		out = append(out, models.FoodRecord{
			ID:                fmt.Sprintf("recognized-%d", i+1),
			Name:              m.name,
			ProteinPer100:     m.proteinPer100,
			ProteinPerServing: m.proteinPer100,
			ServingSize:       100,
			ServingUnit:       "g",
			Source:            models.SourceRecognized,
			Confidence:        &conf,
		})
	}

	// All-or-nothing fallback: fuzzy matching only kicks in when the
	// direct table matched nothing across the entire prediction set.
	if len(out) == 0 {
		for i, p := range surviving {
			rec, ok := fuzzyMatch(p.Label, curated)
			if !ok {
				continue
			}
			conf := confidencePercent(p.Probability)
			rec.ID = fmt.Sprintf("recognized-%d", i+1)
			rec.Source = models.SourceRecognized
			rec.Confidence = &conf
			out = append(out, rec)
		}
	}

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

func directMatch(label string) (labelMapping, bool) {
	l := strings.ToLower(label)
	for _, m := range directLabelMappings {
		if strings.Contains(l, m.keyword) {
			return m, true
		}
	}
	return labelMapping{}, false
}

// fuzzyMatch tries each keyword of the label against the curated set in
// order and stops at the first keyword that yields a match.
func fuzzyMatch(label string, curated *CuratedSet) (models.FoodRecord, bool) {
	for _, kw := range splitKeywords(label) {
		if matches := curated.Search(kw); len(matches) > 0 {
			return matches[0], true
		}
	}
	return models.FoodRecord{}, false
}

func splitKeywords(label string) []string {
	parts := strings.FieldsFunc(label, func(r rune) bool {
		return r == ',' || r == '/'
	})
	var out []string
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func confidencePercent(probability float64) float64 {
	return math.Round(probability * 100)
}
