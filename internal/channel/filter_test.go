package channel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tsn() Channel {
	return Channel{
		ID:            1,
		Name:          "TSN",
		Number:        "502",
		Category:      "Sports",
		Bundles:       "Bundle 1,Bundle 3",
		IsAlaCarte:    true,
		AlaCartePrice: 5,
	}
}

func sampleList() []Channel {
	return []Channel{
		tsn(),
		{ID: 2, Name: "CNN", Number: "1500", Category: "News", Bundles: "Bundle 2"},
		{ID: 3, Name: "CTV News Channel", Number: "501", Category: "News", Bundles: "Bundle 1,Bundle 2,Bundle 3"},
		{ID: 4, Name: "HBO", Number: "1950", Category: "Movies", Bundles: ""},
		{ID: 5, Name: "Sportsnet One", Number: "410", Category: "Sports", Bundles: "bundle 2"},
	}
}

func ids(list []Channel) []int {
	out := make([]int, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterScenarioTSN(t *testing.T) {
	list := []Channel{tsn()}

	got := Filter(list, Criteria{Query: "tsn", Bundle: BundleAll, Category: All})
	if len(got) != 1 {
		t.Fatalf("query tsn: want TSN included, got %v", got)
	}

	got = Filter(list, Criteria{Query: "tsn", Bundle: Bundle2, Category: All})
	if len(got) != 0 {
		t.Fatalf("bundle 2: want TSN excluded, got %v", got)
	}
}

func TestFilterCases(t *testing.T) {
	tests := []struct {
		name string
		cr   Criteria
		want []int
	}{
		{"default matches all", DefaultCriteria(), []int{1, 2, 3, 4, 5}},
		{"zero value matches all", Criteria{}, []int{1, 2, 3, 4, 5}},
		{"whitespace query matches all", Criteria{Query: "   ", Bundle: BundleAll, Category: All}, []int{1, 2, 3, 4, 5}},
		{"case-insensitive name", Criteria{Query: "cNn", Bundle: BundleAll, Category: All}, []int{2}},
		{"query is trimmed", Criteria{Query: "  hbo \t", Bundle: BundleAll, Category: All}, []int{4}},
		{"number substring", Criteria{Query: "15", Bundle: BundleAll, Category: All}, []int{2}},
		{"number digits shared", Criteria{Query: "50", Bundle: BundleAll, Category: All}, []int{1, 2, 3, 4}},
		{"name substring spans words", Criteria{Query: "news ch", Bundle: BundleAll, Category: All}, []int{3}},
		{"bundle substring", Criteria{Bundle: Bundle2, Category: All}, []int{2, 3}},
		{"category exact", Criteria{Bundle: BundleAll, Category: "News"}, []int{2, 3}},
		{"category is not substring", Criteria{Bundle: BundleAll, Category: "New"}, []int{}},
		{"category is case-sensitive", Criteria{Bundle: BundleAll, Category: "news"}, []int{}},
		{"all three", Criteria{Query: "c", Bundle: Bundle3, Category: "News"}, []int{3}},
		{"no match", Criteria{Query: "zzz", Bundle: BundleAll, Category: All}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleList(), tt.cr))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%+v) mismatch (-want +got):\n%s", tt.cr, diff)
			}
		})
	}
}

func TestFilterLowercaseBundleTextDoesNotMatch(t *testing.T) {
	// Stored text "bundle 1" is not the literal "Bundle 1".
	c := Channel{ID: 9, Name: "X", Bundles: "bundle 1"}
	if got := Filter([]Channel{c}, Criteria{Bundle: Bundle1, Category: All}); len(got) != 0 {
		t.Fatalf("lower-case bundle text must not match Bundle 1, got %v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	criteria := []Criteria{
		DefaultCriteria(),
		{Query: "n", Bundle: BundleAll, Category: All},
		{Query: "5", Bundle: Bundle1, Category: All},
		{Query: "", Bundle: Bundle2, Category: "News"},
		{Query: "sports", Bundle: Bundle3, Category: "Sports"},
	}
	for _, cr := range criteria {
		once := Filter(sampleList(), cr)
		twice := Filter(once, cr)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("Filter not idempotent for %+v (-once +twice):\n%s", cr, diff)
		}
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	list := sampleList()
	before := append([]Channel(nil), list...)
	got := Filter(list, Criteria{Query: "n", Bundle: BundleAll, Category: All})
	if diff := cmp.Diff([]int{1, 2, 3, 5}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, list); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

func TestCategories(t *testing.T) {
	list := []Channel{
		{ID: 1, Category: "Sports"},
		{ID: 2, Category: "News"},
		{ID: 3, Category: ""},
		{ID: 4, Category: "News"},
		{ID: 5, Category: "Kids"},
	}
	want := []string{"All", "Kids", "News", "Sports"}
	if diff := cmp.Diff(want, Categories(list)); diff != "" {
		t.Fatalf("Categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"All"}, Categories(nil)); diff != "" {
		t.Fatalf("empty list mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		count   int
		loading bool
		want    string
	}{
		{0, true, "Connecting to Database..."},
		{5, true, "Connecting to Database..."},
		{0, false, "Showing 0 channels"},
		{1, false, "Showing 1 channel"},
		{2, false, "Showing 2 channels"},
		{120, false, "Showing 120 channels"},
	}
	for _, tt := range tests {
		if got := Summary(tt.count, tt.loading); got != tt.want {
			t.Fatalf("Summary(%d, %v) = %q, want %q", tt.count, tt.loading, got, tt.want)
		}
	}
}

func TestParseBundle(t *testing.T) {
	for _, b := range Bundles {
		got, err := ParseBundle(string(b))
		if err != nil || got != b {
			t.Fatalf("ParseBundle(%q) = %q, %v", b, got, err)
		}
	}
	if got, err := ParseBundle(""); err != nil || got != BundleAll {
		t.Fatalf("ParseBundle(\"\") = %q, %v; want All", got, err)
	}
	if _, err := ParseBundle("bundle 1"); err == nil {
		t.Fatal("expected error for lower-case bundle name")
	}
}
