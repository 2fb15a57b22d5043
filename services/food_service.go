package services

import (
	"context"

	"github.com/evnalsb-cloud/protein-tracker/models"
)

// Defaults for photo recognition.
const (
	DefaultMinConfidence = 0.3
	DefaultMaxResults    = 5
)

// RemoteSource is the remote nutrition catalog the engine queries. The
// concrete implementation is OpenFoodFactsService; tests stub it.
type RemoteSource interface {
	SearchByName(ctx context.Context, query string) ([]RawProduct, error)
	SearchByBrand(ctx context.Context, query string) ([]RawProduct, error)
	ProductByCode(ctx context.Context, code string) (*RawProduct, error)
}

type FoodService struct {
	curated    *CuratedSet
	remote     RemoteSource
	classifier Classifier
}

func NewFoodService(curated *CuratedSet, remote RemoteSource, classifier Classifier) *FoodService {
	return &FoodService{curated: curated, remote: remote, classifier: classifier}
}

// Search resolves a free-text query. The curated tier always answers;
// remote results are merged behind it with curated names winning. A
// failing remote source degrades to curated-only, it never surfaces.
func (s *FoodService) Search(ctx context.Context, query string) []models.FoodRecord {
	curatedHits := s.curated.Search(query)
	return CombineResults(curatedHits, s.searchRemote(ctx, query))
}

// searchRemote runs both remote legs of the search, name first because
// name matches are the more trusted array for the merger.
func (s *FoodService) searchRemote(ctx context.Context, query string) []models.FoodRecord {
	if s.remote == nil {
		return nil
	}
	byName, err := s.remote.SearchByName(ctx, query)
	if err != nil {
		byName = nil
	}
	byBrand, err := s.remote.SearchByBrand(ctx, query)
	if err != nil {
		byBrand = nil
	}
	return MergeProducts(byName, byBrand)
}

// Barcode looks a product up by exact code. A nil record with nil error
// means the code is unknown.
func (s *FoodService) Barcode(ctx context.Context, code string) (*models.FoodRecord, error) {
	if s.remote == nil {
		return nil, nil
	}
	raw, err := s.remote.ProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	rec := NormalizeProduct(*raw, 0)
	return &rec, nil
}

// Recognize classifies a photo and resolves its labels into records.
// Classifier failure is returned as-is (wrapping
// ErrClassifierUnavailable) so callers can distinguish "could not try"
// from an empty match set.
func (s *FoodService) Recognize(ctx context.Context, imageBase64 string, minConfidence float64, maxResults int) ([]models.FoodRecord, error) {
	preds, err := s.classifier.DetectLabels(ctx, imageBase64)
	if err != nil {
		return nil, err
	}
	return ResolveLabels(preds, s.curated, minConfidence, maxResults), nil
}
