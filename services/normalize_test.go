package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evnalsb-cloud/protein-tracker/models"
	"github.com/evnalsb-cloud/protein-tracker/services"
)

func TestNormalizeProduct(t *testing.T) {
	tests := []struct {
		name string
		raw  services.RawProduct
		want models.FoodRecord
	}{
		{
			name: "per-100 value with derived per-serving",
			raw: services.RawProduct{
				Code:            "737628064502",
				ProductName:     "Rice Noodles",
				Brands:          "Thai Kitchen",
				ServingQuantity: 55,
				Nutriments:      map[string]interface{}{"proteins_100g": 7.3},
			},
			want: models.FoodRecord{
				ID:                "737628064502",
				Name:              "Rice Noodles",
				Brand:             "Thai Kitchen",
				ProteinPer100:     7.3,
				ProteinPerServing: 4.0, // 7.3 * 55 / 100, rounded
				ServingSize:       55,
				ServingUnit:       "g",
				Source:            models.SourceRemote,
			},
		},
		{
			name: "measured per-serving value wins over derivation",
			raw: services.RawProduct{
				Code:            "X1",
				ProductName:     "Protein Bar",
				ServingQuantity: 60,
				Nutriments: map[string]interface{}{
					"proteins_100g":    33.3,
					"proteins_serving": 20.0,
				},
			},
			want: models.FoodRecord{
				ID:                "X1",
				Name:              "Protein Bar",
				ProteinPer100:     33.3,
				ProteinPerServing: 20.0,
				ServingSize:       60,
				ServingUnit:       "g",
				Source:            models.SourceRemote,
			},
		},
		{
			name: "secondary protein key when per-100 is absent",
			raw: services.RawProduct{
				Code:        "X2",
				ProductName: "Lentil Soup",
				Nutriments:  map[string]interface{}{"proteins": 4.6},
			},
			want: models.FoodRecord{
				ID:                "X2",
				Name:              "Lentil Soup",
				ProteinPer100:     4.6,
				ProteinPerServing: 4.6,
				ServingSize:       100,
				ServingUnit:       "g",
				Source:            models.SourceRemote,
			},
		},
		{
			name: "missing nutrient map defaults to zero protein",
			raw:  services.RawProduct{Code: "X3", ProductName: "Mystery Item"},
			want: models.FoodRecord{
				ID:          "X3",
				Name:        "Mystery Item",
				ServingSize: 100,
				ServingUnit: "g",
				Source:      models.SourceRemote,
			},
		},
		{
			name: "missing name and code get placeholders",
			raw:  services.RawProduct{Nutriments: map[string]interface{}{"proteins_100g": 12.0}},
			want: models.FoodRecord{
				ID:                "remote-7",
				Name:              "Unknown food",
				ProteinPer100:     12.0,
				ProteinPerServing: 12.0,
				ServingSize:       100,
				ServingUnit:       "g",
				Source:            models.SourceRemote,
			},
		},
		{
			name: "string-encoded nutrient values are tolerated",
			raw: services.RawProduct{
				Code:        "X4",
				ProductName: "Oat Drink",
				Nutriments:  map[string]interface{}{"proteins_100g": "1.1"},
			},
			want: models.FoodRecord{
				ID:                "X4",
				Name:              "Oat Drink",
				ProteinPer100:     1.1,
				ProteinPerServing: 1.1,
				ServingSize:       100,
				ServingUnit:       "g",
				Source:            models.SourceRemote,
			},
		},
		{
			name: "negative protein clamps to zero",
			raw: services.RawProduct{
				Code:        "X5",
				ProductName: "Bad Data",
				Nutriments:  map[string]interface{}{"proteins_100g": -3.0},
			},
			want: models.FoodRecord{
				ID:          "X5",
				Name:        "Bad Data",
				ServingSize: 100,
				ServingUnit: "g",
				Source:      models.SourceRemote,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.NormalizeProduct(tt.raw, 7)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.ProteinPer100, 0.0)
		})
	}
}

func TestNormalizeProduct_RoundsToOneDecimal(t *testing.T) {
	raw := services.RawProduct{
		Code:            "R1",
		ProductName:     "Granola",
		ServingQuantity: 45,
		Nutriments:      map[string]interface{}{"proteins_100g": 13.333},
	}
	got := services.NormalizeProduct(raw, 0)
	assert.Equal(t, 13.3, got.ProteinPer100)
	assert.Equal(t, 6.0, got.ProteinPerServing) // 13.3 * 45 / 100 = 5.985
}
