package recommender

import "testing"

func TestCombinedTextJoinsWithSingleSpaces(t *testing.T) {
	rec := Restaurant{Name: "Spice  Symphony", Cuisines: "North Indian, Mughlai", Locality: " Koregaon Park "}
	got := CombinedText(rec)
	want := "Spice Symphony North Indian, Mughlai Koregaon Park"
	if got != want {
		t.Errorf("combined text = %q, want %q", got, want)
	}
}

func TestCombinedTextSkipsEmptyFields(t *testing.T) {
	rec := Restaurant{Name: "Green Bowl", Cuisines: "", Locality: "Aundh"}
	if got := CombinedText(rec); got != "Green Bowl Aundh" {
		t.Errorf("combined text = %q", got)
	}
}

func TestNormalizeTextAppliesNFKC(t *testing.T) {
	// Full-width characters fold to their ASCII forms under NFKC.
	if got := NormalizeText("Ｃａｆｅ　Ｖｅｒｄｅ"); got != "Cafe Verde" {
		t.Errorf("normalized = %q", got)
	}
}

func TestBuildFeatureMatrixRowOrder(t *testing.T) {
	table := fixtureTable()
	vectorizer := fixtureVectorizer(t, fixtureRecords())
	matrix := BuildFeatureMatrix(table, vectorizer)

	if len(matrix) != table.Len() {
		t.Fatalf("matrix has %d rows, table has %d", len(matrix), table.Len())
	}
	for i := 0; i < table.Len(); i++ {
		want := vectorizer.Transform(table.Record(i).CombinedText)
		for j := range want {
			if matrix[i][j] != want[j] {
				t.Fatalf("row %d component %d mismatch", i, j)
			}
		}
	}
}
