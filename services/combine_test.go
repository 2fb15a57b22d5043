package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evnalsb-cloud/protein-tracker/models"
	"github.com/evnalsb-cloud/protein-tracker/services"
)

// stubRemote implements services.RemoteSource for tests.
type stubRemote struct {
	byName  []services.RawProduct
	byBrand []services.RawProduct
	product *services.RawProduct
	err     error
}

func (s *stubRemote) SearchByName(ctx context.Context, query string) ([]services.RawProduct, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byName, nil
}

func (s *stubRemote) SearchByBrand(ctx context.Context, query string) ([]services.RawProduct, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byBrand, nil
}

func (s *stubRemote) ProductByCode(ctx context.Context, code string) (*services.RawProduct, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func TestCombineResults_CuratedSuppressesRemoteByName(t *testing.T) {
	curated := []models.FoodRecord{
		{ID: "curated-1", Name: "Chicken Breast (cooked)", ProteinPer100: 31, Source: models.SourceCurated},
	}
	remote := []models.FoodRecord{
		{ID: "r1", Name: "chicken breast (cooked)", ProteinPer100: 31.2, Source: models.SourceRemote},
		{ID: "r2", Name: "Chicken Breast Strips", ProteinPer100: 20, Source: models.SourceRemote},
	}

	got := services.CombineResults(curated, remote)

	require.Len(t, got, 2)
	assert.Equal(t, "curated-1", got[0].ID, "curated entry must not be shadowed")
	assert.Equal(t, models.SourceCurated, got[0].Source)
	assert.Equal(t, "r2", got[1].ID, "non-duplicate remote results survive")
}

func TestCombineResults_CuratedFirstThenRemote(t *testing.T) {
	curated := []models.FoodRecord{
		{ID: "c1", Name: "Tofu (firm)", Source: models.SourceCurated},
		{ID: "c2", Name: "Tempeh", Source: models.SourceCurated},
	}
	remote := []models.FoodRecord{
		{ID: "r1", Name: "Tofu Scramble Mix", Source: models.SourceRemote},
	}

	got := services.CombineResults(curated, remote)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"c1", "c2", "r1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFoodService_SearchDegradesToCuratedOnRemoteFailure(t *testing.T) {
	curated := services.DefaultCuratedSet()

	healthy := services.NewFoodService(curated, &stubRemote{}, nil)
	failing := services.NewFoodService(curated, &stubRemote{err: errors.New("remote down")}, nil)

	want := healthy.Search(context.Background(), "chicken")
	got := failing.Search(context.Background(), "chicken")

	assert.Equal(t, want, got, "failing remote must equal curated-only results")
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Equal(t, models.SourceCurated, r.Source)
	}
}

func TestFoodService_SearchMergesBothRemoteLegs(t *testing.T) {
	remote := &stubRemote{
		byName:  []services.RawProduct{rawProduct("N1", "Protein Shake", 8)},
		byBrand: []services.RawProduct{rawProduct("B1", "Brand Bar", 30), rawProduct("N1", "Shadowed", 8)},
	}
	svc := services.NewFoodService(services.NewCuratedSet(nil), remote, nil)

	got := svc.Search(context.Background(), "protein shake")

	require.Len(t, got, 2)
	assert.Equal(t, "Protein Shake", got[0].Name, "name leg is the trusted array")
	assert.Equal(t, "Brand Bar", got[1].Name)
}

func TestFoodService_Barcode(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		raw := rawProduct("737628064502", "Rice Noodles", 7.3)
		svc := services.NewFoodService(services.NewCuratedSet(nil), &stubRemote{product: &raw}, nil)

		got, err := svc.Barcode(context.Background(), "737628064502")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Rice Noodles", got.Name)
		assert.Equal(t, models.SourceRemote, got.Source)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := services.NewFoodService(services.NewCuratedSet(nil), &stubRemote{}, nil)

		got, err := svc.Barcode(context.Background(), "000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCuratedSet_Search(t *testing.T) {
	curated := services.DefaultCuratedSet()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := curated.Search("CHICKEN")
		require.NotEmpty(t, got)
		assert.Equal(t, "Chicken Breast (cooked)", got[0].Name)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, curated.Search(""))
		assert.Empty(t, curated.Search("   "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, curated.Search("xylophone"))
	})

	t.Run("unique ids within the set", func(t *testing.T) {
		got := curated.Search("cooked")
		seen := make(map[string]bool)
		for _, r := range got {
			assert.False(t, seen[r.ID])
			seen[r.ID] = true
		}
	})
}
