package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/labtrack/labtrack-backend/internal/fuzzy"
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// highConfidence is the score cutoff under which a fuzzy hit is taken
// as a definite skill mention.
const highConfidence = 0.2

var keywordPattern = regexp.MustCompile(`\b[\w-]{3,}\b`)

// stopWords holds common English words plus domain-generic terms that
// pollute every document and never denote a specific competency.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		"and", "the", "is", "in", "it", "a", "of", "for", "on", "with", "as", "at",
		"by", "to", "from", "an", "that", "this", "we", "are", "be", "will", "was",
		"were", "has", "have", "had", "do", "does", "did", "but", "if", "or", "so",
		"then", "about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "up", "down", "out", "off", "over", "under",
		"again", "further", "once", "here", "there", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
		"no", "nor", "not", "only", "own", "same", "than", "too", "very", "s", "t",
		"can", "just", "don", "should", "now", "d", "ll", "m", "o", "re", "ve", "y",
		"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
		"ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren", "won",
		"wouldn",
		"experience", "requirements", "responsibilities", "skills", "qualifications",
		"education", "work", "team", "project", "client", "role", "position",
		"company", "develop", "manage", "design", "implement", "test", "ensure",
		"provide", "support", "ability", "knowledge",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// ExtractionService resolves free text to internal skill records via
// fuzzy keyword matching. Heuristic keyword overlap only: synonyms and
// jargon absent from the skill corpus never match.
type ExtractionService interface {
	ExtractSkills(text string) []types.Skill
	AnalyzeJobDescription(text string, personID int) (types.GapAnalysisResult, error)
}

type extractionService struct {
	store *store.Store
	gaps  GapService
	log   *logger.Logger
}

func NewExtractionService(st *store.Store, gaps GapService, baseLog *logger.Logger) ExtractionService {
	return &extractionService{
		store: st,
		gaps:  gaps,
		log:   baseLog.With("service", "ExtractionService"),
	}
}

// ExtractSkills pulls the skills mentioned in a plan or other prose,
// sorted by name. Empty text yields an empty result, not an error.
func (es *extractionService) ExtractSkills(text string) []types.Skill {
	found := es.resolveKeywords(text)
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found
}

// AnalyzeJobDescription treats the skills extracted from the text as
// the required set and runs gap analysis against the person. Extraction
// order is preserved so the caller sees gaps in document order.
func (es *extractionService) AnalyzeJobDescription(text string, personID int) (types.GapAnalysisResult, error) {
	person, ok := es.store.Person(personID)
	if !ok {
		return types.GapAnalysisResult{}, fmt.Errorf("person %d not found", personID)
	}
	required := es.resolveKeywords(text)
	es.log.Info("Job description analyzed", "person_id", personID, "required_skills", len(required))
	return es.gaps.Analyze(person.SkillIDSet(), required), nil
}

// resolveKeywords tokenizes, strips stop-words, and keeps the best
// high-confidence fuzzy hit per skill id, first keyword winning ties.
func (es *extractionService) resolveKeywords(text string) []types.Skill {
	keywords := extractKeywords(text)
	if len(keywords) == 0 {
		return nil
	}

	skills := es.store.Skills()
	docs := make([][]string, len(skills))
	for i, s := range skills {
		docs[i] = []string{s.Name, s.Category}
	}
	searcher := fuzzy.NewSearcher(fuzzy.DefaultTolerance,
		fuzzy.Key{Name: "name", Weight: 0.7},
		fuzzy.Key{Name: "category", Weight: 0.3},
	)

	best := make(map[int]float64)
	var order []int
	for _, kw := range keywords {
		results := searcher.Search(kw, docs)
		if len(results) == 0 || results[0].Score >= highConfidence {
			continue
		}
		hit := skills[results[0].Index]
		score, seen := best[hit.ID]
		if !seen {
			best[hit.ID] = results[0].Score
			order = append(order, hit.ID)
		} else if results[0].Score < score {
			best[hit.ID] = results[0].Score
		}
	}

	out := make([]types.Skill, 0, len(order))
	for _, id := range order {
		for _, s := range skills {
			if s.ID == id {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// extractKeywords lower-cases the text and returns the deduplicated
// word tokens of length three or more, in first-occurrence order.
func extractKeywords(text string) []string {
	tokens := keywordPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, tok := range tokens {
		if seen[tok] || stopWords[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}
