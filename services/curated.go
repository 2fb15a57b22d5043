package services

import (
	"fmt"
	"strings"

	"github.com/evnalsb-cloud/protein-tracker/models"
)

// CuratedSet is the static, hand-verified table of common foods. It is
// read-only for the lifetime of the engine and doubles as the instant
// offline search tier and as the fuzzy-match target for classifier
// labels.
type CuratedSet struct {
	records []models.FoodRecord
}

type curatedEntry struct {
	name          string
	proteinPer100 float64
}

// Protein values are grams per 100 g, cross-checked against USDA data.
var curatedFoods = []curatedEntry{
	{"Chicken Breast (cooked)", 31.0},
	{"Chicken Thigh (cooked)", 26.0},
	{"Turkey Breast (cooked)", 29.0},
	{"Beef Steak (lean, cooked)", 27.0},
	{"Ground Beef (cooked)", 26.0},
	{"Pork Loin (cooked)", 27.0},
	{"Salmon (cooked)", 25.0},
	{"Tuna (canned in water)", 24.0},
	{"Shrimp (cooked)", 24.0},
	{"Egg (whole)", 13.0},
	{"Egg White", 11.0},
	{"Greek Yogurt (plain)", 10.0},
	{"Cottage Cheese", 11.0},
	{"Cheddar Cheese", 25.0},
	{"Milk (whole)", 3.4},
	{"Tofu (firm)", 14.0},
	{"Tempeh", 19.0},
	{"Lentils (cooked)", 9.0},
	{"Chickpeas (cooked)", 8.9},
	{"Black Beans (cooked)", 8.9},
	{"Peanut Butter", 25.0},
	{"Almonds", 21.0},
	{"Quinoa (cooked)", 4.4},
	{"Oats (dry)", 13.0},
	{"Whey Protein Powder", 80.0},
	{"Rice (white, cooked)", 2.7},
	{"Pasta (cooked)", 5.8},
	{"Bread (whole wheat)", 13.0},
	{"Green Salad", 1.4},
	{"Mixed Vegetables (cooked)", 2.6},
}

// DefaultCuratedSet builds the built-in reference set. Ids are synthetic
// local indexes, unique within the set.
func DefaultCuratedSet() *CuratedSet {
	records := make([]models.FoodRecord, 0, len(curatedFoods))
	for i, e := range curatedFoods {
		records = append(records, models.FoodRecord{
			ID:                fmt.Sprintf("curated-%d", i+1),
			Name:              e.name,
			ProteinPer100:     e.proteinPer100,
			ProteinPerServing: e.proteinPer100, // reference serving is 100 g
			ServingSize:       100,
			ServingUnit:       "g",
			Source:            models.SourceCurated,
		})
	}
	return &CuratedSet{records: records}
}

// NewCuratedSet wraps an explicit record list, mainly for tests.
func NewCuratedSet(records []models.FoodRecord) *CuratedSet {
	return &CuratedSet{records: records}
}

// Search returns entries whose name contains the query, compared
// case-insensitively, in set order. It is synchronous and never fails.
func (c *CuratedSet) Search(query string) []models.FoodRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.FoodRecord
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}
