package recommender

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// Vectorizer turns text into a fixed-dimension feature vector. The concrete
// weights come from an externally trained artifact; implementations never
// re-fit at query time.
type Vectorizer interface {
	Transform(text string) []float32
	TransformAll(texts []string) [][]float32
	Dim() int
}

// Unicode word tokens of at least two characters, mirroring the token pattern
// the vectorizer was trained with.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// TFIDFVectorizer is a fixed TF-IDF transform: term frequency times a trained
// inverse-document-frequency weight, L2-normalized.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float32
	lowercase  bool
}

// tfidfArtifact is the serialized gob form of a trained vectorizer.
type tfidfArtifact struct {
	Vocabulary map[string]int
	IDF        []float32
	Lowercase  bool
}

// NewTFIDFVectorizer builds a vectorizer from fitted parameters. Every
// vocabulary index must address a slot of the IDF table.
func NewTFIDFVectorizer(vocabulary map[string]int, idf []float32, lowercase bool) (*TFIDFVectorizer, error) {
	for term, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, fmt.Errorf("vocabulary term %q has index %d outside idf table of %d", term, idx, len(idf))
		}
	}
	vocab := make(map[string]int, len(vocabulary))
	for term, idx := range vocabulary {
		vocab[term] = idx
	}
	weights := make([]float32, len(idf))
	copy(weights, idf)
	return &TFIDFVectorizer{vocabulary: vocab, idf: weights, lowercase: lowercase}, nil
}

// Dim returns the vector dimensionality.
func (v *TFIDFVectorizer) Dim() int {
	return len(v.idf)
}

// Transform vectorizes a single string. Terms outside the trained vocabulary
// contribute nothing; a fully unknown string yields the zero vector.
func (v *TFIDFVectorizer) Transform(text string) []float32 {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	vec := make([]float32, len(v.idf))
	for _, token := range tokenPattern.FindAllString(text, -1) {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	return l2Normalize(vec)
}

// TransformAll vectorizes an ordered batch; row i of the output corresponds
// to texts[i].
func (v *TFIDFVectorizer) TransformAll(texts []string) [][]float32 {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = v.Transform(t)
	}
	return out
}

func l2Normalize(vec []float32) []float32 {
	var sum float64
	for _, x := range vec {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return vec
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// LoadVectorizer deserializes a trained TF-IDF vectorizer artifact. A missing
// file is a fatal configuration error wrapping ErrArtifactMissing.
func LoadVectorizer(path string) (*TFIDFVectorizer, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ArtifactError{Kind: "vectorizer", Path: path, Err: ErrArtifactMissing}
		}
		return nil, &ArtifactError{Kind: "vectorizer", Path: path, Err: err}
	}
	defer f.Close()
	var art tfidfArtifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, &ArtifactError{Kind: "vectorizer", Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return NewTFIDFVectorizer(art.Vocabulary, art.IDF, art.Lowercase)
}

// SaveVectorizer serializes the vectorizer to its artifact form. Fitting
// happens in an external training pipeline; this is only the codec.
func SaveVectorizer(path string, v *TFIDFVectorizer) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create vectorizer artifact: %w", err)
	}
	art := tfidfArtifact{Vocabulary: v.vocabulary, IDF: v.idf, Lowercase: v.lowercase}
	if err := gob.NewEncoder(f).Encode(art); err != nil {
		f.Close()
		return fmt.Errorf("encode vectorizer artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close vectorizer artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename vectorizer artifact: %w", err)
	}
	return nil
}
