package recommender

import "strings"

// CombinedText derives the search string for one record: name, cuisines and
// locality joined with single spaces, NFKC-normalized.
func CombinedText(rec Restaurant) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Name, rec.Cuisines, rec.Locality} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return NormalizeText(strings.Join(parts, " "))
}

// BuildFeatureMatrix transforms the whole table in one batch. Row i of the
// returned matrix corresponds to row i of the table; later filtering must
// carry original indices rather than re-vectorize, so this mapping never
// drifts.
func BuildFeatureMatrix(table *Table, vectorizer Vectorizer) [][]float32 {
	texts := make([]string, table.Len())
	for i := 0; i < table.Len(); i++ {
		texts[i] = table.Record(i).CombinedText
	}
	return vectorizer.TransformAll(texts)
}
