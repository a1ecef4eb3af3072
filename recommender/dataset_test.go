package recommender

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureCSV = `Restaurant_Name,Cuisines,Locality,Detail_address,Ratings_out_of_5,Number of votes
Spice Symphony,"North Indian, Mughlai",Koregaon Park,"Lane 5, Koregaon Park, Pune",4.3,1204
Pasta Republic,"Italian, Pizza",Koregaon Park,"North Main Road, Koregaon Park, Pune",4.1,845
Green Bowl,"Healthy Food, Salad",Koregaon Park,"Lane 7, Koregaon Park, Pune",3.9,310
Dragon House,"Chinese, Thai",Baner,"Baner Road, Pune",4.0,978
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restaurants.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadDataset(t *testing.T) {
	table, err := LoadDataset(writeDataset(t, fixtureCSV))
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if table.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", table.Len())
	}

	rec := table.Record(0)
	if rec.Name != "Spice Symphony" {
		t.Errorf("name = %q", rec.Name)
	}
	if rec.Cuisines != "North Indian, Mughlai" {
		t.Errorf("cuisines = %q", rec.Cuisines)
	}
	if rec.Locality != "Koregaon Park" {
		t.Errorf("locality = %q", rec.Locality)
	}
	if rec.Rating != 4.3 {
		t.Errorf("rating = %v", rec.Rating)
	}
	if rec.Votes != 1204 {
		t.Errorf("votes = %d", rec.Votes)
	}
	if rec.CombinedText != "Spice Symphony North Indian, Mughlai Koregaon Park" {
		t.Errorf("combined text = %q", rec.CombinedText)
	}
}

func TestLoadDatasetMissingFileIsRecoverable(t *testing.T) {
	table, err := LoadDataset(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrDataFileMissing) {
		t.Fatalf("expected ErrDataFileMissing, got %v", err)
	}
	if table == nil || table.Len() != 0 {
		t.Fatalf("expected empty table alongside the error")
	}
}

func TestLoadDatasetMissingColumn(t *testing.T) {
	content := `Restaurant_Name,Locality,Detail_address,Ratings_out_of_5,Number of votes
Spice Symphony,Koregaon Park,"Lane 5, Pune",4.3,1204
`
	_, err := LoadDataset(writeDataset(t, content))
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "Cuisines") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestLoadDatasetHeaderIsCaseInsensitive(t *testing.T) {
	content := "\ufeff" + `restaurant_name,CUISINES,locality,detail_address,ratings_out_of_5,number of votes
Green Bowl,Salad,Aundh,"DP Road, Pune",3.9,310
`
	table, err := LoadDataset(writeDataset(t, content))
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if table.Len() != 1 || table.Record(0).Name != "Green Bowl" {
		t.Fatalf("unexpected table: len=%d", table.Len())
	}
}

func TestLoadDatasetMalformedNumbersStayZero(t *testing.T) {
	content := `Restaurant_Name,Cuisines,Locality,Detail_address,Ratings_out_of_5,Number of votes
Dragon House,Chinese,Baner,"Baner Road, Pune",NEW,-
`
	table, err := LoadDataset(writeDataset(t, content))
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	rec := table.Record(0)
	if rec.Rating != 0 || rec.Votes != 0 {
		t.Errorf("malformed numerics parsed to rating=%v votes=%d", rec.Rating, rec.Votes)
	}
	if rec.Name != "Dragon House" {
		t.Errorf("row should be kept, got name %q", rec.Name)
	}
}
