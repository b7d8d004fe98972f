package config

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/multierr"
)

// WeightTolerance is the allowed deviation of the criterion weight sum from 1.0.
const WeightTolerance = 1e-6

// Criterion names, used as sub-score keys in results and reports.
const (
	CriterionSkills     = "competences"
	CriterionExperience = "experience"
	CriterionEducation  = "formation"
	CriterionLanguages  = "langues"
	CriterionSoftSkills = "soft_skills"
)

// Config is the immutable configuration consumed by the whole engine. It is
// built once at process start, validated, and never mutated afterwards.
type Config struct {
	Scoring    *Scoring    `mapstructure:"scoring"`
	Extraction *Extraction `mapstructure:"extraction"`
	Embedding  *Embedding  `mapstructure:"embedding"`
	Input      *Input      `mapstructure:"input"`
}

// Scoring groups the weighting formula, the level thresholds and the bonus
// rules applied on top of the raw sub-scores.
type Scoring struct {
	Weights Weights `mapstructure:"weights"`
	Levels  Levels  `mapstructure:"levels"`

	// ExactShare and SemanticShare split the skill sub-score between exact
	// requirement satisfaction and semantic similarity. They must sum to 1.0.
	ExactShare    float64 `mapstructure:"exact-share"`
	SemanticShare float64 `mapstructure:"semantic-share"`

	// CriterionFloor is the sub-score below which a recommendation is emitted.
	CriterionFloor float64 `mapstructure:"criterion-floor"`

	// CertificationBonus is added to the education sub-score once per
	// certification required by the posting and held by the candidate,
	// capped at CertificationCeiling.
	CertificationBonus  float64 `mapstructure:"certification-bonus"`
	CertificationCeiling float64 `mapstructure:"certification-ceiling"`

	// LanguageBonus is added per extra language beyond the posting's
	// requirements, capped at LanguageBonusCap.
	LanguageBonus    float64 `mapstructure:"language-bonus"`
	LanguageBonusCap float64 `mapstructure:"language-bonus-cap"`

	// SeniorityUplift maps a seniority level name to the multiplicative
	// percentage uplift applied once to the experience sub-score.
	SeniorityUplift map[string]float64 `mapstructure:"seniority-uplift"`
}

// Weights holds the relative importance of each criterion. The five weights
// must sum to exactly 1.0 within WeightTolerance.
type Weights struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Education  float64 `mapstructure:"education"`
	Languages  float64 `mapstructure:"languages"`
	SoftSkills float64 `mapstructure:"soft-skills"`
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Languages + w.SoftSkills
}

// ByCriterion returns the weights keyed by criterion name.
func (w Weights) ByCriterion() map[string]float64 {
	return map[string]float64{
		CriterionSkills:     w.Skills,
		CriterionExperience: w.Experience,
		CriterionEducation:  w.Education,
		CriterionLanguages:  w.Languages,
		CriterionSoftSkills: w.SoftSkills,
	}
}

// Levels holds the final-score thresholds separating the match levels.
// They must be strictly decreasing.
type Levels struct {
	Excellent float64 `mapstructure:"excellent"`
	Good      float64 `mapstructure:"good"`
	Average   float64 `mapstructure:"average"`
	Weak      float64 `mapstructure:"weak"`
}

// Extraction groups the vocabularies and the mention-confidence scale used
// by the rule-based extractors.
type Extraction struct {
	// ConfidenceFloor is the confidence assigned to a single mention.
	ConfidenceFloor float64 `mapstructure:"confidence-floor"`
	// MentionCeiling is the mention count at which confidence saturates at 1.0.
	MentionCeiling int `mapstructure:"mention-ceiling"`

	Skills         []SkillEntry    `mapstructure:"skills"`
	SoftSkills     []string        `mapstructure:"soft-skills"`
	Languages      []string        `mapstructure:"languages"`
	Degrees        []DegreeEntry   `mapstructure:"degrees"`
	Certifications []Certification `mapstructure:"certifications"`
}

// SkillEntry is one canonical skill with optional synonyms. Synonym mentions
// are merged into the canonical name.
type SkillEntry struct {
	Name     string   `mapstructure:"name"`
	Synonyms []string `mapstructure:"synonyms"`
}

// DegreeEntry maps a degree keyword to its ordinal education level (1-5).
type DegreeEntry struct {
	Keyword string `mapstructure:"keyword"`
	Level   int    `mapstructure:"level"`
}

// Certification is one recognized certification keyword and its domain.
type Certification struct {
	Name   string `mapstructure:"name"`
	Domain string `mapstructure:"domain"`
}

// Embedding configures the sentence-embedding provider.
type Embedding struct {
	Provider   string        `mapstructure:"provider"`
	Model      string        `mapstructure:"model"`
	APIKeyFile string        `mapstructure:"api-key-file"`
	Dimension  int           `mapstructure:"dimension"`
	MaxRetries int           `mapstructure:"max-retries"`
	Backoff    time.Duration `mapstructure:"backoff"`
}

// Input bounds the accepted document texts.
type Input struct {
	MinLength int `mapstructure:"min-length"`
	MaxBytes  int `mapstructure:"max-bytes"`
}

// Default returns the built-in configuration, including the reference
// vocabularies. Callers may overlay it with values from a config file.
func Default() *Config {
	return &Config{
		Scoring: &Scoring{
			Weights: Weights{
				Skills:     0.45,
				Experience: 0.25,
				Education:  0.15,
				Languages:  0.10,
				SoftSkills: 0.05,
			},
			Levels: Levels{
				Excellent: 85,
				Good:      70,
				Average:   50,
				Weak:      30,
			},
			ExactShare:           0.7,
			SemanticShare:        0.3,
			CriterionFloor:       60,
			CertificationBonus:   5,
			CertificationCeiling: 15,
			LanguageBonus:        5,
			LanguageBonusCap:     10,
			SeniorityUplift: map[string]float64{
				"junior":    0,
				"confirmed": 0.04,
				"senior":    0.08,
				"expert":    0.12,
				"lead":      0.12,
				"manager":   0.12,
			},
		},
		Extraction: &Extraction{
			ConfidenceFloor: 0.6,
			MentionCeiling:  5,
			Skills:          defaultSkills(),
			SoftSkills:      defaultSoftSkills(),
			Languages:       defaultLanguages(),
			Degrees:         defaultDegrees(),
			Certifications:  defaultCertifications(),
		},
		Embedding: &Embedding{
			Provider:   "gemini",
			Model:      "gemini-embedding-001",
			Dimension:  768,
			MaxRetries: 3,
			Backoff:    500 * time.Millisecond,
		},
		Input: &Input{
			MinLength: 20,
			MaxBytes:  10 << 20,
		},
	}
}

// Validate checks the whole configuration and returns every problem found.
// A non-nil error is fatal at startup.
func (c *Config) Validate() error {
	var errs error

	if c.Scoring == nil || c.Extraction == nil || c.Embedding == nil || c.Input == nil {
		return fmt.Errorf("configuration sections are incomplete")
	}

	errs = multierr.Append(errs, c.Scoring.validate())
	errs = multierr.Append(errs, c.Extraction.validate())
	errs = multierr.Append(errs, c.Embedding.validate())
	errs = multierr.Append(errs, c.Input.validate())

	return errs
}

func (s *Scoring) validate() error {
	var errs error

	if math.Abs(s.Weights.Sum()-1.0) > WeightTolerance {
		errs = multierr.Append(errs, fmt.Errorf("criterion weights must sum to 1.0, got %.6f", s.Weights.Sum()))
	}
	for name, w := range s.Weights.ByCriterion() {
		if w < 0 {
			errs = multierr.Append(errs, fmt.Errorf("weight %s must not be negative, got %.3f", name, w))
		}
	}

	lv := s.Levels
	if !(lv.Excellent > lv.Good && lv.Good > lv.Average && lv.Average > lv.Weak && lv.Weak > 0) {
		errs = multierr.Append(errs, fmt.Errorf(
			"level thresholds must be strictly decreasing and positive: excellent=%.1f good=%.1f average=%.1f weak=%.1f",
			lv.Excellent, lv.Good, lv.Average, lv.Weak))
	}

	if math.Abs(s.ExactShare+s.SemanticShare-1.0) > WeightTolerance {
		errs = multierr.Append(errs, fmt.Errorf("exact-share and semantic-share must sum to 1.0, got %.6f", s.ExactShare+s.SemanticShare))
	}

	if s.CertificationBonus < 0 || s.CertificationCeiling < 0 {
		errs = multierr.Append(errs, fmt.Errorf("certification bonus and ceiling must not be negative"))
	}
	if s.LanguageBonus < 0 || s.LanguageBonusCap < 0 {
		errs = multierr.Append(errs, fmt.Errorf("language bonus and cap must not be negative"))
	}
	for level, pct := range s.SeniorityUplift {
		if pct < 0 {
			errs = multierr.Append(errs, fmt.Errorf("seniority uplift for %q must not be negative", level))
		}
	}

	return errs
}

func (e *Extraction) validate() error {
	var errs error

	if e.ConfidenceFloor <= 0 || e.ConfidenceFloor >= 1 {
		errs = multierr.Append(errs, fmt.Errorf("confidence-floor must be in (0,1), got %.2f", e.ConfidenceFloor))
	}
	if e.MentionCeiling < 2 {
		errs = multierr.Append(errs, fmt.Errorf("mention-ceiling must be at least 2, got %d", e.MentionCeiling))
	}
	if len(e.Skills) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("skill vocabulary must not be empty"))
	}
	for _, entry := range e.Skills {
		if entry.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("skill vocabulary contains an entry without a name"))
			break
		}
	}
	for _, degree := range e.Degrees {
		if degree.Level < 1 || degree.Level > 5 {
			errs = multierr.Append(errs, fmt.Errorf("degree %q has level %d outside 1-5", degree.Keyword, degree.Level))
		}
	}

	return errs
}

func (e *Embedding) validate() error {
	var errs error

	if e.Model == "" {
		errs = multierr.Append(errs, fmt.Errorf("embedding model is required"))
	}
	if e.Dimension <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("embedding dimension must be positive, got %d", e.Dimension))
	}
	if e.MaxRetries < 1 {
		errs = multierr.Append(errs, fmt.Errorf("embedding max-retries must be at least 1, got %d", e.MaxRetries))
	}
	if e.Backoff < 0 {
		errs = multierr.Append(errs, fmt.Errorf("embedding backoff must not be negative"))
	}

	return errs
}

func (i *Input) validate() error {
	var errs error

	if i.MinLength < 1 {
		errs = multierr.Append(errs, fmt.Errorf("input min-length must be at least 1, got %d", i.MinLength))
	}
	if i.MaxBytes < i.MinLength {
		errs = multierr.Append(errs, fmt.Errorf("input max-bytes must be at least min-length"))
	}

	return errs
}
