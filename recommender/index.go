package recommender

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
)

// Supported distance metrics for the nearest-neighbor index.
const (
	MetricCosine    = "cosine"
	MetricEuclidean = "euclidean"
)

// Neighbor is one ranked answer from a nearest-neighbor query.
type Neighbor struct {
	Index    int
	Distance float32
}

// NeighborIndex answers "k most similar vectors" queries against a fixed,
// externally trained vector set. Queried, never mutated.
type NeighborIndex interface {
	Query(vec []float32, k int) []Neighbor
	Size() int
}

// KNNIndex is a brute-force nearest-neighbor index over row-ordered vectors.
// Row i of the index corresponds to row i of the restaurant table it was
// trained on.
type KNNIndex struct {
	metric  string
	vectors [][]float32
}

// knnArtifact is the serialized gob form of a trained index.
type knnArtifact struct {
	Metric  string
	Vectors [][]float32
}

// NewKNNIndex constructs an index over the given vectors.
func NewKNNIndex(vectors [][]float32, metric string) (*KNNIndex, error) {
	switch metric {
	case "":
		metric = MetricCosine
	case MetricCosine, MetricEuclidean:
	default:
		return nil, fmt.Errorf("unsupported metric %q", metric)
	}
	items := make([][]float32, len(vectors))
	for i, v := range vectors {
		items[i] = cloneVector(v)
	}
	return &KNNIndex{metric: metric, vectors: items}, nil
}

// Metric returns the configured distance metric.
func (idx *KNNIndex) Metric() string {
	return idx.metric
}

// Size returns the number of vectors stored.
func (idx *KNNIndex) Size() int {
	return len(idx.vectors)
}

// Query returns the k nearest rows to vec, ascending by distance. Ties
// resolve to the lower row index so results are deterministic.
func (idx *KNNIndex) Query(vec []float32, k int) []Neighbor {
	if len(idx.vectors) == 0 || len(vec) == 0 || k <= 0 {
		return nil
	}
	hits := make([]Neighbor, 0, len(idx.vectors))
	for i, stored := range idx.vectors {
		hits = append(hits, Neighbor{Index: i, Distance: idx.distance(vec, stored)})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance == hits[j].Distance {
			return hits[i].Index < hits[j].Index
		}
		return hits[i].Distance < hits[j].Distance
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

func (idx *KNNIndex) distance(a, b []float32) float32 {
	if idx.metric == MetricEuclidean {
		return euclideanDistance(a, b)
	}
	return 1 - cosineSimilarity(a, b)
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		fa := float64(a[i])
		fb := float64(b[i])
		dot += fa * fb
		na += fa * fa
		nb += fb * fb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

func euclideanDistance(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}

// LoadIndex deserializes a trained nearest-neighbor index artifact. A missing
// file is a fatal configuration error wrapping ErrArtifactMissing.
func LoadIndex(path string) (*KNNIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ArtifactError{Kind: "index", Path: path, Err: ErrArtifactMissing}
		}
		return nil, &ArtifactError{Kind: "index", Path: path, Err: err}
	}
	defer f.Close()
	var art knnArtifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, &ArtifactError{Kind: "index", Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return NewKNNIndex(art.Vectors, art.Metric)
}

// SaveIndex serializes the index to its artifact form.
func SaveIndex(path string, idx *KNNIndex) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create index artifact: %w", err)
	}
	art := knnArtifact{Metric: idx.metric, Vectors: idx.vectors}
	if err := gob.NewEncoder(f).Encode(art); err != nil {
		f.Close()
		return fmt.Errorf("encode index artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close index artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename index artifact: %w", err)
	}
	return nil
}
