package analyze

import (
	"sort"

	"github.com/adelorme/cvmatch/internal/config"
)

// LanguageExtractor finds spoken languages from the configured list.
type LanguageExtractor struct {
	languages []string
}

func NewLanguageExtractor(cfg *config.Extraction) *LanguageExtractor {
	langs := make([]string, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		langs = append(langs, Normalize(l))
	}
	return &LanguageExtractor{languages: langs}
}

func (e *LanguageExtractor) Name() string { return "languages" }

func (e *LanguageExtractor) Extract(doc *Document) {
	for _, lang := range e.languages {
		if countMentions(doc.Normalized, lang) > 0 {
			doc.Languages = append(doc.Languages, lang)
		}
	}
	sort.Strings(doc.Languages)
}
