package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// RawProduct is one record as returned by the Open Food Facts API before
// normalization. Nutriments keeps the raw nutrient map because the API
// mixes numeric values with string annotations (e.g. "proteins_unit").
type RawProduct struct {
	Code            string                 `json:"code"`
	ProductName     string                 `json:"product_name"`
	Brands          string                 `json:"brands"`
	ServingQuantity float64                `json:"serving_quantity"`
	ImageURL        string                 `json:"image_front_small_url"`
	Nutriments      map[string]interface{} `json:"nutriments"`
}

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService initializes the client with its HTTP transport.
// OFF_BASE_URL overrides the endpoint (useful for staging mirrors).
func NewOpenFoodFactsService() *OpenFoodFactsService {
	base := os.Getenv("OFF_BASE_URL")
	if base == "" {
		base = "https://world.openfoodfacts.org"
	}
	return &OpenFoodFactsService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Products []RawProduct `json:"products"`
}

// SearchByName runs a full-text product-name search.
func (s *OpenFoodFactsService) SearchByName(ctx context.Context, query string) ([]RawProduct, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=20",
		s.baseURL, url.QueryEscape(query),
	)
	return s.search(ctx, u)
}

// SearchByBrand runs the same logical search against the brands tag, the
// structured leg of a text search. Callers feed both legs to the merger
// with the name leg first.
func (s *OpenFoodFactsService) SearchByBrand(ctx context.Context, query string) ([]RawProduct, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?tagtype_0=brands&tag_contains_0=contains&tag_0=%s&action=process&json=1&page_size=20",
		s.baseURL, url.QueryEscape(query),
	)
	return s.search(ctx, u)
}

func (s *OpenFoodFactsService) search(ctx context.Context, u string) ([]RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts search error %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search JSON: %w", err)
	}
	return sr.Products, nil
}

type productResponse struct {
	Status  int        `json:"status"`
	Product RawProduct `json:"product"`
}

// ProductByCode fetches a single product by exact barcode.
func (s *OpenFoodFactsService) ProductByCode(ctx context.Context, code string) (*RawProduct, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", s.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts product API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts product API error %d: %s", resp.StatusCode, string(body))
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if pr.Status != 1 {
		return nil, nil
	}
	pr.Product.Code = code
	return &pr.Product, nil
}
