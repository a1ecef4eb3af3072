package recommender

import (
	"log"
	"net/url"
)

const mapSearchTemplate = "https://www.google.com/maps/search/?api=1&query="

// Service wires the loaded table, feature matrix and model artifacts into the
// one operation the presentation layer consumes: Recommend. All fields are
// built once at startup and read-only afterwards, so a Service is safe for
// any number of concurrent readers.
type Service struct {
	cfg        Config
	table      *Table
	matrix     [][]float32
	vectorizer Vectorizer
	index      NeighborIndex
	dataErr    error
	logger     *log.Logger
}

// NewService loads the dataset and both model artifacts and builds the
// feature matrix.
//
// A missing dataset is recoverable: the service comes up with an empty table
// and DataErr reports the condition for on-screen display. A missing model
// artifact is fatal and aborts construction.
func NewService(cfg Config, logger *log.Logger) (*Service, error) {
	cfg.ApplyDefaults()
	s := &Service{cfg: cfg, logger: logger}

	table, err := LoadDataset(cfg.DataPath)
	if err != nil {
		s.dataErr = err
		s.logf("dataset unavailable: %v", err)
	} else {
		s.logf("loaded %d restaurants from %s", table.Len(), cfg.DataPath)
	}
	s.table = table

	vectorizer, err := LoadVectorizer(cfg.VectorizerPath)
	if err != nil {
		return nil, err
	}
	s.vectorizer = vectorizer

	index, err := LoadIndex(cfg.IndexPath)
	if err != nil {
		return nil, err
	}
	s.index = index

	s.matrix = BuildFeatureMatrix(s.table, s.vectorizer)
	if index.Size() != table.Len() {
		s.logf("index holds %d vectors but table has %d rows", index.Size(), table.Len())
	}
	return s, nil
}

// Config returns a copy of the service configuration.
func (s *Service) Config() Config {
	return s.cfg.Clone()
}

// Table returns the loaded restaurant table.
func (s *Service) Table() *Table {
	return s.table
}

// DataErr reports the recoverable dataset-loading condition, if any.
func (s *Service) DataErr() error {
	return s.dataErr
}

// MatrixRow returns the feature vector for the given original table row.
func (s *Service) MatrixRow(i int) []float32 {
	return s.matrix[i]
}

// Localities returns the locality selector options.
func (s *Service) Localities() []string {
	return s.table.Localities()
}

// CuisineOptions returns the cuisine selector options.
func (s *Service) CuisineOptions() []string {
	return s.table.CuisineOptions()
}

// Recommend runs one filter-then-recommend query.
//
// The filter selects the seed only: the seed is the first row of the filtered
// view, and neighbors are drawn from the full original table. The nearest
// neighbor of the seed is the seed row itself and is dropped from the
// presented result. A zero-row view returns ErrNoMatch without touching the
// index.
func (s *Service) Recommend(criteria FilterCriteria) (Result, error) {
	view := s.table.Filter(criteria)
	if view.Len() == 0 {
		return Result{}, ErrNoMatch
	}

	seedIdx := view.Index(0)
	seed := view.Record(0)
	queryVec := s.vectorizer.Transform(seed.CombinedText)
	neighbors := s.index.Query(queryVec, s.cfg.Neighbors)

	recs := make([]Recommendation, 0, s.cfg.Neighbors-1)
	for _, n := range neighbors {
		if n.Index == seedIdx {
			continue
		}
		if n.Index >= s.table.Len() {
			continue
		}
		rec := s.table.Record(n.Index)
		recs = append(recs, Recommendation{
			Restaurant: rec,
			RowIndex:   n.Index,
			Distance:   n.Distance,
			MapURL:     MapSearchURL(rec.Address),
		})
		if len(recs) == s.cfg.Neighbors-1 {
			break
		}
	}
	s.logf("query locality=%q cuisine=%q matched %d rows, %d recommendations", criteria.Locality, criteria.Cuisine, view.Len(), len(recs))
	return Result{
		Matches:         view.Len(),
		Seed:            seed,
		SeedIndex:       seedIdx,
		Recommendations: recs,
	}, nil
}

// MapSearchURL builds the external map-search link for an address.
func MapSearchURL(address string) string {
	return mapSearchTemplate + url.QueryEscape(address)
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
