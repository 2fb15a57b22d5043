package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/evnalsb-cloud/protein-tracker/models"
)

// Nutrient map keys, per the Open Food Facts suffix convention.
const (
	nutrientProteinPer100     = "proteins_100g"
	nutrientProtein           = "proteins"
	nutrientProteinPerServing = "proteins_serving"
)

const unknownFoodName = "Unknown food"

// NormalizeProduct converts one raw remote payload into a FoodRecord.
// It is total: a payload missing its nutrient map, name or serving data
// still yields a record, with protein zeroed and descriptive fields
// defaulted. Filtering zero-protein records is the caller's job.
//
// localIndex is used to synthesize an id when the source omits its code.
func NormalizeProduct(raw RawProduct, localIndex int) models.FoodRecord {
	id := raw.Code
	if id == "" {
		id = fmt.Sprintf("remote-%d", localIndex)
	}

	name := raw.ProductName
	if name == "" {
		name = unknownFoodName
	}

	servingSize := raw.ServingQuantity
	if servingSize <= 0 {
		servingSize = 100
	}

	per100 := nutrientValue(raw.Nutriments, nutrientProteinPer100)
	if per100 == 0 {
		per100 = nutrientValue(raw.Nutriments, nutrientProtein)
	}
	if per100 < 0 {
		per100 = 0
	}

	// A directly measured per-serving value wins over the derived one.
	perServing := nutrientValue(raw.Nutriments, nutrientProteinPerServing)
	if perServing <= 0 {
		perServing = per100 * servingSize / 100
	}

	return models.FoodRecord{
		ID:                id,
		Name:              name,
		Brand:             raw.Brands,
		ProteinPer100:     Round1(per100),
		ProteinPerServing: Round1(perServing),
		ServingSize:       servingSize,
		ServingUnit:       "g",
		Source:            models.SourceRemote,
		Image:             raw.ImageURL,
	}
}

// nutrientValue reads a numeric nutrient out of the raw map, tolerating
// the API's habit of sometimes encoding numbers as strings.
func nutrientValue(nutriments map[string]interface{}, key string) float64 {
	v, ok := nutriments[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Round1 rounds to one decimal place, the precision protein figures are
// kept at throughout.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
