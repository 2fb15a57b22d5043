package models

// Source tags where a FoodRecord came from. It is set once at
// construction and never inferred after the fact.
type Source string

const (
	SourceCurated    Source = "curated"
	SourceRemote     Source = "remote"
	SourceRecognized Source = "recognized"
)

// FoodRecord is the normalized shape every food candidate is converted
// into, whether it came from the curated table, a remote lookup or the
// image classifier. Records are immutable after construction; serving
// scaling produces a derived number, never a mutated record.
type FoodRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Brand             string  `json:"brand,omitempty"`
	ProteinPer100     float64 `json:"protein_per_100"`
	ProteinPerServing float64 `json:"protein_per_serving"`
	ServingSize       float64 `json:"serving_size"`
	ServingUnit       string  `json:"serving_unit"`
	Source            Source  `json:"source"`

	// Confidence is set only for recognized records, 0–100. A nil
	// pointer means "no confidence concept", not zero confidence.
	Confidence *float64 `json:"confidence,omitempty"`

	// Image is a display thumbnail URL. Cosmetic only; it never
	// participates in matching or merging.
	Image string `json:"image,omitempty"`
}
