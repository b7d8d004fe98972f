package analyze

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adelorme/cvmatch/internal/config"
)

// SkillExtractor finds vocabulary skills in the normalized text. Synonym
// mentions count toward the canonical name, and the mention count drives
// the extraction confidence.
type SkillExtractor struct {
	entries         []skillTerms
	confidenceFloor float64
	mentionCeiling  int
}

type skillTerms struct {
	name  string
	terms []string
}

func NewSkillExtractor(cfg *config.Extraction) *SkillExtractor {
	entries := make([]skillTerms, 0, len(cfg.Skills))
	for _, entry := range cfg.Skills {
		terms := make([]string, 0, 1+len(entry.Synonyms))
		terms = append(terms, Normalize(entry.Name))
		for _, syn := range entry.Synonyms {
			terms = append(terms, Normalize(syn))
		}
		entries = append(entries, skillTerms{name: Normalize(entry.Name), terms: terms})
	}

	return &SkillExtractor{
		entries:         entries,
		confidenceFloor: cfg.ConfidenceFloor,
		mentionCeiling:  cfg.MentionCeiling,
	}
}

func (e *SkillExtractor) Name() string { return "skills" }

func (e *SkillExtractor) Extract(doc *Document) {
	for _, entry := range e.entries {
		mentions := 0
		for _, term := range entry.terms {
			mentions += countMentions(doc.Normalized, term)
		}
		if mentions == 0 {
			continue
		}

		doc.Skills = append(doc.Skills, SkillMatch{
			Name:       entry.name,
			Mentions:   mentions,
			Confidence: e.confidence(mentions),
		})
	}

	sort.Slice(doc.Skills, func(i, j int) bool {
		return doc.Skills[i].Name < doc.Skills[j].Name
	})
}

// confidence maps a mention count to [floor, 1.0], saturating at the
// mention ceiling. One mention scores the floor; each further mention adds
// an equal step until the ceiling.
func (e *SkillExtractor) confidence(mentions int) float64 {
	if mentions < 1 {
		return 0
	}
	step := (1.0 - e.confidenceFloor) / float64(e.mentionCeiling-1)
	n := mentions - 1
	if n > e.mentionCeiling-1 {
		n = e.mentionCeiling - 1
	}
	return e.confidenceFloor + step*float64(n)
}

// countMentions counts occurrences of term in text that sit on word
// boundaries. A plain \b regexp cannot handle terms like "c++" or ".net",
// so the boundary check is done on the runes around each occurrence.
func countMentions(text, term string) int {
	if term == "" {
		return 0
	}

	count := 0
	for i := 0; i <= len(text)-len(term); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(term)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			i = end
		} else {
			i = start + 1
		}
	}
	return count
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
