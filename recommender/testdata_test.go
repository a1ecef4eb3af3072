package recommender

import (
	"strings"
	"testing"
)

// fixtureRecords returns ten distinct restaurants, three of them in
// Koregaon Park.
func fixtureRecords() []Restaurant {
	records := []Restaurant{
		{Name: "Spice Symphony", Cuisines: "North Indian, Mughlai", Locality: "Koregaon Park", Address: "Lane 5, Koregaon Park, Pune", Rating: 4.3, Votes: 1204},
		{Name: "Pasta Republic", Cuisines: "Italian, Pizza", Locality: "Koregaon Park", Address: "North Main Road, Koregaon Park, Pune", Rating: 4.1, Votes: 845},
		{Name: "Green Bowl", Cuisines: "Healthy Food, Salad", Locality: "Koregaon Park", Address: "Lane 7, Koregaon Park, Pune", Rating: 3.9, Votes: 310},
		{Name: "Dragon House", Cuisines: "Chinese, Thai", Locality: "Baner", Address: "Baner Road, Pune", Rating: 4.0, Votes: 978},
		{Name: "Burger Barn", Cuisines: "American, Fast Food", Locality: "Baner", Address: "Balewadi High Street, Baner, Pune", Rating: 3.8, Votes: 654},
		{Name: "Tandoor Tales", Cuisines: "North Indian, Biryani", Locality: "Viman Nagar", Address: "Phoenix Road, Viman Nagar, Pune", Rating: 4.2, Votes: 1530},
		{Name: "Sushi Station", Cuisines: "Japanese, Sushi", Locality: "Kalyani Nagar", Address: "East Avenue, Kalyani Nagar, Pune", Rating: 4.4, Votes: 420},
		{Name: "Cafe Verde", Cuisines: "Cafe, Continental", Locality: "Aundh", Address: "DP Road, Aundh, Pune", Rating: 3.7, Votes: 289},
		{Name: "Chaat Corner", Cuisines: "Street Food, South Indian", Locality: "Shivajinagar", Address: "FC Road, Shivajinagar, Pune", Rating: 4.0, Votes: 2011},
		{Name: "Royal Biryani", Cuisines: "Biryani, Mughlai", Locality: "Hadapsar", Address: "Magarpatta Road, Hadapsar, Pune", Rating: 4.1, Votes: 1765},
	}
	for i := range records {
		records[i].CombinedText = CombinedText(records[i])
	}
	return records
}

func fixtureTable() *Table {
	return NewTable(fixtureRecords())
}

// fixtureVectorizer builds a TF-IDF vectorizer whose vocabulary covers every
// token of the fixture corpus, with unit IDF weights.
func fixtureVectorizer(t *testing.T, records []Restaurant) *TFIDFVectorizer {
	t.Helper()
	vocabulary := make(map[string]int)
	for _, rec := range records {
		for _, token := range tokenPattern.FindAllString(strings.ToLower(rec.CombinedText), -1) {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}
	}
	idf := make([]float32, len(vocabulary))
	for i := range idf {
		idf[i] = 1
	}
	v, err := NewTFIDFVectorizer(vocabulary, idf, true)
	if err != nil {
		t.Fatalf("build vectorizer: %v", err)
	}
	return v
}
