package recommender

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFileMissing marks an absent dataset file. Recoverable: callers
	// keep running with an empty table and surface the condition on screen.
	ErrDataFileMissing = errors.New("dataset file missing")
	// ErrSchemaMismatch marks a dataset whose header lacks a required column.
	ErrSchemaMismatch = errors.New("dataset schema mismatch")
	// ErrArtifactMissing marks an absent model artifact. Fatal: no
	// recommendation is possible without both artifacts.
	ErrArtifactMissing = errors.New("model artifact missing")
	// ErrNoMatch is returned when filtering yields zero rows. Expected,
	// reported to the user as a warning.
	ErrNoMatch = errors.New("no restaurants match the criteria")
)

// ArtifactError describes a failure to load one of the trained model artifacts.
type ArtifactError struct {
	Kind string // "vectorizer" or "index"
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("load %s artifact %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
