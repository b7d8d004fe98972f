package match

import (
	"encoding/json"
	"time"

	"github.com/adelorme/cvmatch/internal/config"
)

// Level classifies the final score.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelAverage   Level = "average"
	LevelWeak      Level = "weak"
	LevelPoor      Level = "poor"
)

// Color returns the display color hint associated with the level.
func (l Level) Color() string {
	switch l {
	case LevelExcellent:
		return "#28a745"
	case LevelGood:
		return "#17a2b8"
	case LevelAverage:
		return "#ffc107"
	case LevelWeak:
		return "#fd7e14"
	default:
		return "#dc3545"
	}
}

// LevelFor maps a final score to its level using the configured thresholds.
func LevelFor(lv config.Levels, score float64) Level {
	switch {
	case score >= lv.Excellent:
		return LevelExcellent
	case score >= lv.Good:
		return LevelGood
	case score >= lv.Average:
		return LevelAverage
	case score >= lv.Weak:
		return LevelWeak
	default:
		return LevelPoor
	}
}

// SubScore is the scored outcome of one criterion, with the evidence that
// produced it. Matched, Missing and Extra are relative to the posting's
// requirements; criteria without set semantics leave them empty and carry
// a Detail line instead.
type SubScore struct {
	Criterion string   `json:"criterion"`
	Score     float64  `json:"score"`
	Weight    float64  `json:"weight"`
	Matched   []string `json:"matched,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	Extra     []string `json:"extra,omitempty"`
	Detail    string   `json:"detail,omitempty"`
}

// Weighted returns the sub-score's contribution to the final score.
func (s SubScore) Weighted() float64 {
	return s.Score * s.Weight
}

// Result is the full outcome of one resume/posting comparison. It is
// immutable once produced and never persisted by the engine.
type Result struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FinalScore float64 `json:"final_score"`
	Level      Level   `json:"level"`
	ColorHint  string  `json:"color_hint"`

	// SubScores is ordered by weight, highest first.
	SubScores []SubScore `json:"-"`

	// SemanticSimilarity is the renormalized cosine similarity of the two
	// document embeddings, in [0,1].
	SemanticSimilarity float64 `json:"semantic_similarity"`

	// Confidence reflects how much of the result rests on actually
	// extracted evidence rather than on defaults, in [0,1].
	Confidence float64 `json:"confidence"`

	Recommendations []string `json:"recommendations"`
}

// SubScore returns the sub-score of the named criterion, or a zero value.
func (r *Result) SubScore(criterion string) (SubScore, bool) {
	for _, s := range r.SubScores {
		if s.Criterion == criterion {
			return s, true
		}
	}
	return SubScore{}, false
}

// MarshalJSON renders sub-scores as a mapping keyed by criterion name,
// which is the shape downstream consumers expect.
func (r *Result) MarshalJSON() ([]byte, error) {
	type alias Result

	subs := make(map[string]SubScore, len(r.SubScores))
	for _, s := range r.SubScores {
		subs[s.Criterion] = s
	}

	return json.Marshal(struct {
		*alias
		SubScores map[string]SubScore `json:"sub_scores"`
	}{
		alias:     (*alias)(r),
		SubScores: subs,
	})
}
