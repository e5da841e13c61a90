package fuzzy

import "testing"

func skillSearcher() *Searcher {
	return NewSearcher(DefaultTolerance,
		Key{Name: "name", Weight: 0.7},
		Key{Name: "category", Weight: 0.3},
	)
}

func skillDocs() [][]string {
	return [][]string{
		{"Python", "Backend Development"},
		{"Communication", "Soft Skills"},
		{"Data Analysis", "Analytics"},
		{"Agile Methodologies", "Management"},
	}
}

func TestSearchExactNameRanksFirst(t *testing.T) {
	s := skillSearcher()
	results := s.Search("python", skillDocs())
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Index != 0 {
		t.Fatalf("expected Python first, got index %d", results[0].Index)
	}
	if results[0].Score >= 0.2 {
		t.Fatalf("exact match should be high confidence, got score %f", results[0].Score)
	}
}

func TestSearchNearMissWithinConfidence(t *testing.T) {
	s := skillSearcher()
	results := s.Search("communications", skillDocs())
	if len(results) == 0 {
		t.Fatal("expected a match for near-exact query")
	}
	if results[0].Index != 1 {
		t.Fatalf("expected Communication, got index %d", results[0].Index)
	}
	if results[0].Score >= 0.2 {
		t.Fatalf("one trailing letter should stay under the confidence cutoff, got %f", results[0].Score)
	}
}

func TestSearchWordWithinField(t *testing.T) {
	s := skillSearcher()
	results := s.Search("analysis", skillDocs())
	if len(results) == 0 {
		t.Fatal("expected a match on the second word of a field")
	}
	if results[0].Index != 2 {
		t.Fatalf("expected Data Analysis, got index %d", results[0].Index)
	}
}

func TestSearchCategoryOnlyMatch(t *testing.T) {
	s := skillSearcher()
	results := s.Search("management", skillDocs())
	found := false
	for _, r := range results {
		if r.Index == 3 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a category-weighted match for Agile Methodologies")
	}
}

func TestSearchUnrelatedQuery(t *testing.T) {
	s := skillSearcher()
	if results := s.Search("zzzzzzzz", skillDocs()); len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := skillSearcher()
	if results := s.Search("   ", skillDocs()); results != nil {
		t.Fatalf("expected nil for blank query, got %v", results)
	}
}

func TestResultsSortedAscending(t *testing.T) {
	s := skillSearcher()
	results := s.Search("data", skillDocs())
	for i := 1; i < len(results); i++ {
		if results[i].Score < results[i-1].Score {
			t.Fatalf("results not sorted ascending at %d", i)
		}
	}
}
