package recommender

import "encoding/json"

// Any is the wildcard selector value that disables a filter dimension.
const Any = "Any"

// Restaurant represents a single dataset row. Records are immutable after load.
type Restaurant struct {
	Name     string  `json:"name"`
	Cuisines string  `json:"cuisines"`
	Locality string  `json:"locality"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	Votes    int     `json:"votes"`

	// CombinedText is the derived search string (name + cuisines + locality)
	// used as the unit of vector comparison.
	CombinedText string `json:"combinedText"`
}

// FilterCriteria narrows the table for one user interaction.
type FilterCriteria struct {
	Locality string `json:"locality"`
	Cuisine  string `json:"cuisine"`
}

// Recommendation is a single presented neighbor of the seed restaurant.
type Recommendation struct {
	Restaurant Restaurant `json:"restaurant"`
	RowIndex   int        `json:"rowIndex"`
	Distance   float32    `json:"distance"`
	MapURL     string     `json:"mapUrl"`
}

// Result holds the outcome of one filter-then-recommend query.
type Result struct {
	Matches         int              `json:"matches"`
	Seed            Restaurant       `json:"seed"`
	SeedIndex       int              `json:"seedIndex"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	DataPath       string `json:"dataPath"`
	VectorizerPath string `json:"vectorizerPath"`
	IndexPath      string `json:"indexPath"`
	Neighbors      int    `json:"neighbors"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.DataPath == "" {
		c.DataPath = "data/zomato_pune.csv"
	}
	if c.VectorizerPath == "" {
		c.VectorizerPath = "models/tfidf_vectorizer.gob"
	}
	if c.IndexPath == "" {
		c.IndexPath = "models/knn_recommender.gob"
	}
	if c.Neighbors <= 1 {
		c.Neighbors = 6
	}
}
