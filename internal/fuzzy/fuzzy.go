// Package fuzzy ranks candidate documents against a single query token
// using a weighted multi-field edit-distance score. Scores ascend from
// zero, so lower is better and an exact field hit lands near zero.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// DefaultTolerance is the widest score a searcher will return. Call
// sites layer their own tighter confidence cutoffs on top.
const DefaultTolerance = 0.3

// minFieldScore keeps an exact field hit from collapsing the weighted
// product to exactly zero.
const minFieldScore = 0.001

// Key names one searchable field and its contribution to the combined
// score. Weights across a searcher's keys should sum to 1.
type Key struct {
	Name   string
	Weight float64
}

// Result references a document by its index in the searched slice.
type Result struct {
	Index int
	Score float64
}

type Searcher struct {
	keys      []Key
	tolerance float64
}

// NewSearcher builds a searcher over the given keys. A non-positive
// tolerance falls back to DefaultTolerance.
func NewSearcher(tolerance float64, keys ...Key) *Searcher {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Searcher{keys: keys, tolerance: tolerance}
}

// Search scores every document against the query and returns the ones
// within tolerance, best first. A document supplies one value per key,
// in key order; empty or missing values never match.
func (s *Searcher) Search(query string, docs [][]string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Result
	for i, doc := range docs {
		score := s.score(query, doc)
		if score <= s.tolerance {
			out = append(out, Result{Index: i, Score: score})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score < out[b].Score })
	return out
}

// score is the product of per-field scores raised to their weights. A
// field that does not match scores near 1 and leaves the product alone,
// so one strong field is enough to accept a document.
func (s *Searcher) score(query string, doc []string) float64 {
	combined := 1.0
	for k, key := range s.keys {
		if k >= len(doc) {
			break
		}
		combined *= math.Pow(fieldScore(query, doc[k]), key.Weight)
	}
	return combined
}

// fieldScore is the best normalized edit distance between the query and
// the field, taken whole or split into words. 0 = exact, 1 = unrelated.
func fieldScore(query, field string) float64 {
	field = strings.ToLower(field)
	if field == "" {
		return 1
	}
	best := normalizedDistance(query, field)
	for _, tok := range splitWords(field) {
		if d := normalizedDistance(query, tok); d < best {
			best = d
		}
	}
	if best < minFieldScore {
		best = minFieldScore
	}
	return best
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
}

func normalizedDistance(a, b string) float64 {
	n := len([]rune(a))
	if m := len([]rune(b)); m > n {
		n = m
	}
	if n == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(n)
}
