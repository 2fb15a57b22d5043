package services

import (
	"strings"

	"github.com/evnalsb-cloud/protein-tracker/models"
)

// MergeProducts combines the raw result arrays of several remote queries
// issued for the same logical search. Arrays are concatenated in call
// order and deduplicated by product code, first occurrence wins, so
// callers order arrays by trust. Survivors are normalized and records
// without a usable protein figure are dropped. Relative order is stable.
func MergeProducts(batches ...[]RawProduct) []models.FoodRecord {
	seen := make(map[string]struct{})
	var out []models.FoodRecord
	idx := 0
	for _, batch := range batches {
		for _, raw := range batch {
			if raw.Code != "" {
				if _, dup := seen[raw.Code]; dup {
					continue
				}
				seen[raw.Code] = struct{}{}
			}
			rec := NormalizeProduct(raw, idx)
			idx++
			if rec.ProteinPer100 <= 0 {
				continue
			}
			out = append(out, rec)
		}
	}
	return out
}

// CombineResults merges curated hits with remote results. Curated
// entries are hand-verified and authoritative: they come first, in
// curated-set order, and any remote record whose name equals a curated
// name (case-insensitively) is suppressed as a noisier duplicate.
// Remote sources use different identity schemes than the curated set,
// which is why the dedup key is the name and not the id.
func CombineResults(curated, remote []models.FoodRecord) []models.FoodRecord {
	out := make([]models.FoodRecord, 0, len(curated)+len(remote))
	out = append(out, curated...)
	for _, r := range remote {
		if hasName(curated, r.Name) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasName(records []models.FoodRecord, name string) bool {
	for _, r := range records {
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}
