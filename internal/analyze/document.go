package analyze

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/config"
)

// Input validation failures. They are returned unwrapped so callers can
// match them with errors.Is.
var (
	ErrInputEmpty    = errors.New("document text is empty")
	ErrInputTooShort = errors.New("document text is too short to analyze")
	ErrInputTooLarge = errors.New("document text exceeds the size limit")
)

// Kind tells the extractors whether they are reading a candidate resume or
// a job posting. A few rules differ between the two, like minimum-experience
// requirements which only make sense in postings.
type Kind int

const (
	KindResume Kind = iota
	KindPosting
)

func (k Kind) String() string {
	if k == KindPosting {
		return "posting"
	}
	return "resume"
}

// Document is the structured view of one text produced by the extraction
// pipeline. All string fields are normalized.
type Document struct {
	Kind       Kind
	Text       string
	Normalized string

	Skills     []SkillMatch
	Experience Experience
	Education  Education
	Languages  []string
	SoftSkills []string
}

// SkillMatch is one vocabulary skill found in the text, with its mention
// count and the extraction confidence derived from it.
type SkillMatch struct {
	Name       string
	Mentions   int
	Confidence float64
}

// SkillSet returns the matched skill names as a set.
func (d *Document) SkillSet() map[string]bool {
	set := make(map[string]bool, len(d.Skills))
	for _, s := range d.Skills {
		set[s.Name] = true
	}
	return set
}

// Experience holds the career-length estimates for a document.
type Experience struct {
	// Years is the reconciled estimate of total experience.
	Years float64
	// MinimumYears is the explicit requirement stated by a posting,
	// zero when absent.
	MinimumYears float64
	Seniority    Seniority
}

// Education holds the highest degree level and the certifications found.
type Education struct {
	// Level is the ordinal degree level, 0 when no degree was recognized.
	Level          int
	Degrees        []string
	Certifications []string
}

// Seniority is a career-level keyword found in the text.
type Seniority string

const (
	SeniorityNone      Seniority = "unknown"
	SeniorityJunior    Seniority = "junior"
	SeniorityConfirmed Seniority = "confirmed"
	SenioritySenior    Seniority = "senior"
	SeniorityExpert    Seniority = "expert"
	SeniorityLead      Seniority = "lead"
	SeniorityManager   Seniority = "manager"
)

// Rank orders seniority levels so the extractor can keep the highest one
// when several keywords appear.
func (s Seniority) Rank() int {
	switch s {
	case SeniorityJunior:
		return 1
	case SeniorityConfirmed:
		return 2
	case SenioritySenior:
		return 3
	case SeniorityExpert, SeniorityLead, SeniorityManager:
		return 4
	default:
		return 0
	}
}

// Extractor is one step of the analysis pipeline. Extractors read the
// normalized text and fill in their slice of the document. They never fail;
// text they cannot parse simply leaves their fields at zero values.
type Extractor interface {
	Name() string
	Extract(doc *Document)
}

// Analyzer validates raw text and runs the extraction pipeline over it.
type Analyzer struct {
	input      *config.Input
	extractors []Extractor
	logger     *zap.Logger
}

// NewAnalyzer builds the full pipeline from the configured vocabularies.
func NewAnalyzer(cfg *config.Config, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		input: cfg.Input,
		extractors: []Extractor{
			NewSkillExtractor(cfg.Extraction),
			NewExperienceExtractor(),
			NewEducationExtractor(cfg.Extraction),
			NewLanguageExtractor(cfg.Extraction),
			NewSoftSkillExtractor(cfg.Extraction),
		},
		logger: logger,
	}
}

// Analyze validates the text and produces a structured document. Extraction
// itself never fails; only input validation can return an error.
func (a *Analyzer) Analyze(kind Kind, text string) (*Document, error) {
	if err := a.validate(text); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", kind, err)
	}

	doc := &Document{
		Kind:       kind,
		Text:       text,
		Normalized: Normalize(text),
	}

	for _, ex := range a.extractors {
		ex.Extract(doc)
		a.logger.Debug("extraction step done",
			zap.String("kind", kind.String()),
			zap.String("extractor", ex.Name()),
		)
	}

	a.logger.Info("document analyzed",
		zap.String("kind", kind.String()),
		zap.Int("skills", len(doc.Skills)),
		zap.Float64("experience_years", doc.Experience.Years),
		zap.Int("education_level", doc.Education.Level),
	)

	return doc, nil
}

func (a *Analyzer) validate(text string) error {
	if len(text) > a.input.MaxBytes {
		return ErrInputTooLarge
	}

	trimmed := Normalize(text)
	if trimmed == "" {
		return ErrInputEmpty
	}
	if len(trimmed) < a.input.MinLength {
		return ErrInputTooShort
	}

	return nil
}
