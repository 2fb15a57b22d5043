package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evnalsb-cloud/protein-tracker/services"
)

func rawProduct(code, name string, protein float64) services.RawProduct {
	return services.RawProduct{
		Code:        code,
		ProductName: name,
		Nutriments:  map[string]interface{}{"proteins_100g": protein},
	}
}

func TestMergeProducts_FirstArrayWinsOnDuplicateCode(t *testing.T) {
	// Two queries for the same search return the same code with
	// different names; the first-listed array is the trusted one.
	structured := []services.RawProduct{rawProduct("X123", "Chicken Breast Fillet", 23.0)}
	freeText := []services.RawProduct{rawProduct("X123", "Chkn Brst", 22.0)}

	got := services.MergeProducts(structured, freeText)

	require.Len(t, got, 1)
	assert.Equal(t, "X123", got[0].ID)
	assert.Equal(t, "Chicken Breast Fillet", got[0].Name)
}

func TestMergeProducts_NoDuplicateKeysAndKeysComeFromInput(t *testing.T) {
	a := []services.RawProduct{
		rawProduct("A", "Food A", 10),
		rawProduct("B", "Food B", 11),
	}
	b := []services.RawProduct{
		rawProduct("B", "Food B again", 12),
		rawProduct("C", "Food C", 13),
	}

	got := services.MergeProducts(a, b)

	seen := make(map[string]bool)
	for _, r := range got {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.Contains(t, []string{"A", "B", "C"}, r.ID)
	}
	assert.Len(t, got, 3)
}

func TestMergeProducts_StableFirstSeenOrder(t *testing.T) {
	a := []services.RawProduct{
		rawProduct("1", "First", 5),
		rawProduct("2", "Second", 6),
	}
	b := []services.RawProduct{
		rawProduct("3", "Third", 7),
		rawProduct("1", "First duplicate", 8),
	}

	got := services.MergeProducts(a, b)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{got[0].Name, got[1].Name, got[2].Name})
}

func TestMergeProducts_DropsZeroProteinRecords(t *testing.T) {
	batch := []services.RawProduct{
		rawProduct("1", "Water", 0),
		rawProduct("2", "Chicken", 31),
		{Code: "3", ProductName: "No Nutrients"},
	}

	got := services.MergeProducts(batch)

	require.Len(t, got, 1)
	assert.Equal(t, "Chicken", got[0].Name)
}

func TestMergeProducts_EmptyInput(t *testing.T) {
	assert.Empty(t, services.MergeProducts())
	assert.Empty(t, services.MergeProducts(nil, nil))
}
