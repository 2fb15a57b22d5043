package services

import (
	"github.com/evnalsb-cloud/protein-tracker/models"
)

// ScaleProtein returns the grams of protein in servingSize units of the
// record's ServingUnit, scaled linearly from the per-100 reference and
// rounded to one decimal. ProteinPer100 is the single scaling basis;
// ProteinPerServing is never consulted here so records with a non-100
// reference serving cannot introduce a second basis.
//
// Precondition: servingSize > 0, validated by callers before a record
// reaches the scaler.
func ScaleProtein(record models.FoodRecord, servingSize float64) float64 {
	return Round1(record.ProteinPer100 * servingSize / 100)
}
