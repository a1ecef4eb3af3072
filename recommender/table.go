package recommender

import (
	"sort"
	"strings"
)

// Table is the ordered, immutable sequence of restaurant records loaded at
// startup. Filtering produces a derived View; the table itself never changes.
type Table struct {
	records []Restaurant
}

// NewTable wraps the given records. The slice is copied so later mutation by
// the caller cannot reach the table.
func NewTable(records []Restaurant) *Table {
	out := make([]Restaurant, len(records))
	copy(out, records)
	return &Table{records: out}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the row at the given original index.
func (t *Table) Record(i int) Restaurant {
	return t.records[i]
}

// View is an original-order subsequence of a table. It carries original row
// indices so vector-matrix correspondence survives filtering.
type View struct {
	table   *Table
	indices []int
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.indices)
}

// Index returns the original table row index of view position i.
func (v View) Index(i int) int {
	return v.indices[i]
}

// Record returns the record at view position i.
func (v View) Record(i int) Restaurant {
	return v.table.Record(v.indices[i])
}

// Filter narrows the table by the given criteria and returns a view over the
// surviving rows, original order preserved.
//
// Locality is an exact match, cuisine a case-insensitive substring match over
// the comma-joined cuisines field. The wildcard Any disables a dimension. A
// row with an empty locality or cuisines field never matches a concrete
// criterion.
func (t *Table) Filter(criteria FilterCriteria) View {
	indices := make([]int, 0, len(t.records))
	cuisine := strings.ToLower(strings.TrimSpace(criteria.Cuisine))
	for i, rec := range t.records {
		if criteria.Locality != Any && criteria.Locality != "" {
			if rec.Locality == "" || rec.Locality != criteria.Locality {
				continue
			}
		}
		if criteria.Cuisine != Any && criteria.Cuisine != "" {
			if rec.Cuisines == "" || !strings.Contains(strings.ToLower(rec.Cuisines), cuisine) {
				continue
			}
		}
		indices = append(indices, i)
	}
	return View{table: t, indices: indices}
}

// Localities returns the sorted unique non-empty locality values, the option
// set for the locality selector.
func (t *Table) Localities() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range t.records {
		loc := strings.TrimSpace(rec.Locality)
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// CuisineOptions returns the sorted unique cuisine tokens obtained by
// splitting each non-empty cuisines field on ", ".
func (t *Table) CuisineOptions() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range t.records {
		if strings.TrimSpace(rec.Cuisines) == "" {
			continue
		}
		for _, token := range strings.Split(rec.Cuisines, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}
