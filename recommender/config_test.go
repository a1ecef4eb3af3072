package recommender

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataPath != "data/zomato_pune.csv" {
		t.Errorf("data path = %q", cfg.DataPath)
	}
	if cfg.VectorizerPath != "models/tfidf_vectorizer.gob" || cfg.IndexPath != "models/knn_recommender.gob" {
		t.Errorf("artifact paths = %q, %q", cfg.VectorizerPath, cfg.IndexPath)
	}
	if cfg.Neighbors != 6 {
		t.Errorf("neighbors = %d, want 6", cfg.Neighbors)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := Config{DataPath: "other/data.csv", Neighbors: 4}
	if err := SaveConfig(path, in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.DataPath != "other/data.csv" || out.Neighbors != 4 {
		t.Errorf("loaded config = %+v", out)
	}
	// Defaults fill the fields the caller left empty.
	if out.VectorizerPath != "models/tfidf_vectorizer.gob" {
		t.Errorf("vectorizer path = %q", out.VectorizerPath)
	}
}
