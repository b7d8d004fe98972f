package match

import (
	"fmt"
	"math"

	"github.com/adelorme/cvmatch/internal/analyze"
	"github.com/adelorme/cvmatch/internal/config"
)

// extraSkillDisplayCap bounds the number of extra candidate skills carried
// as evidence, so a keyword-stuffed resume does not flood the report.
const extraSkillDisplayCap = 10

// scorer computes the five criterion sub-scores from two analyzed
// documents. All rules are pure; the only external input is the semantic
// similarity computed from the embeddings.
type scorer struct {
	cfg *config.Scoring
}

// skills blends exact requirement satisfaction with semantic similarity.
// The exact share dominates: understating a hard requirement is a bigger
// risk than missing a paraphrase.
func (s *scorer) skills(resume, posting *analyze.Document, semantic float64) SubScore {
	required := posting.SkillSet()
	candidate := resume.SkillSet()

	exact := Jaccard(required, candidate) * 100
	score := exact*s.cfg.ExactShare + semantic*100*s.cfg.SemanticShare

	extra := difference(candidate, required)
	if len(extra) > extraSkillDisplayCap {
		extra = extra[:extraSkillDisplayCap]
	}

	return SubScore{
		Criterion: config.CriterionSkills,
		Score:     clampScore(score),
		Weight:    s.cfg.Weights.Skills,
		Matched:   intersection(required, candidate),
		Missing:   difference(required, candidate),
		Extra:     extra,
	}
}

// experience scores the candidate's years against the posting's requirement
// on a piecewise ramp, then applies the seniority uplift.
func (s *scorer) experience(resume, posting *analyze.Document) SubScore {
	candYears := resume.Experience.Years

	reqMin := posting.Experience.MinimumYears
	if reqMin == 0 {
		reqMin = posting.Experience.Years
	}
	reqMax := reqMin + 5

	score := experienceRamp(candYears, reqMin, reqMax)

	if uplift, ok := s.cfg.SeniorityUplift[string(resume.Experience.Seniority)]; ok {
		score *= 1 + uplift
	}

	detail := fmt.Sprintf("%.1f ans d'expérience, aucune exigence dans l'offre", candYears)
	if reqMin > 0 {
		detail = fmt.Sprintf("%.1f ans d'expérience, %.0f-%.0f ans requis", candYears, reqMin, reqMax)
	}

	return SubScore{
		Criterion: config.CriterionExperience,
		Score:     clampScore(score),
		Weight:    s.cfg.Weights.Experience,
		Detail:    detail,
	}
}

// experienceRamp maps candidate years onto [0,100] against a required
// window. No requirement means a full score; between the minimum and its
// half the score degrades smoothly instead of falling off a cliff.
func experienceRamp(cand, reqMin, reqMax float64) float64 {
	if reqMin <= 0 {
		return 100
	}

	half := reqMin / 2
	switch {
	case cand >= reqMax:
		return 100
	case cand >= reqMin:
		return 80 + (cand-reqMin)*20/(reqMax-reqMin)
	case cand >= half:
		return 50 + (cand-half)*30/half
	default:
		return cand * 50 / half
	}
}

// education compares ordinal degree levels, with one level below the
// requirement still scoring well. Certifications required by the posting
// and held by the candidate add a capped bonus.
func (s *scorer) education(resume, posting *analyze.Document) SubScore {
	cand := resume.Education.Level
	req := posting.Education.Level

	var score float64
	switch {
	case req == 0:
		score = 100
	case cand >= req:
		score = 100
	case cand == req-1:
		score = 80
	default:
		score = float64(cand) / float64(req) * 70
	}

	candCerts := toSet(resume.Education.Certifications)
	reqCerts := toSet(posting.Education.Certifications)
	matched := intersection(reqCerts, candCerts)

	bonus := math.Min(float64(len(matched))*s.cfg.CertificationBonus, s.cfg.CertificationCeiling)
	score += bonus

	return SubScore{
		Criterion: config.CriterionEducation,
		Score:     clampScore(score),
		Weight:    s.cfg.Weights.Education,
		Matched:   matched,
		Missing:   difference(reqCerts, candCerts),
		Detail:    fmt.Sprintf("niveau %d obtenu, niveau %d requis", cand, req),
	}
}

// languages scores coverage of the required languages, with a capped bonus
// for extra ones. A posting without language requirements scores full.
func (s *scorer) languages(resume, posting *analyze.Document) SubScore {
	required := toSet(posting.Languages)
	candidate := toSet(resume.Languages)

	sub := SubScore{
		Criterion: config.CriterionLanguages,
		Weight:    s.cfg.Weights.Languages,
		Matched:   intersection(required, candidate),
		Missing:   difference(required, candidate),
		Extra:     difference(candidate, required),
	}

	if len(required) == 0 {
		sub.Score = 100
		sub.Detail = "aucune exigence linguistique dans l'offre"
		return sub
	}

	coverage := float64(len(sub.Matched)) / float64(len(required)) * 100
	bonus := math.Min(float64(len(sub.Extra))*s.cfg.LanguageBonus, s.cfg.LanguageBonusCap)

	sub.Score = clampScore(coverage + bonus)
	sub.Detail = fmt.Sprintf("%d/%d langue(s) requise(s) maîtrisée(s)", len(sub.Matched), len(required))
	return sub
}

// softSkills scores plain coverage of the posting's behavioral skills.
func (s *scorer) softSkills(resume, posting *analyze.Document) SubScore {
	required := toSet(posting.SoftSkills)
	candidate := toSet(resume.SoftSkills)

	sub := SubScore{
		Criterion: config.CriterionSoftSkills,
		Weight:    s.cfg.Weights.SoftSkills,
		Matched:   intersection(required, candidate),
		Missing:   difference(required, candidate),
	}

	if len(required) == 0 {
		sub.Score = 100
		sub.Detail = "aucune soft skill spécifiée dans l'offre"
		return sub
	}

	sub.Score = clampScore(float64(len(sub.Matched)) / float64(len(required)) * 100)
	return sub
}

// clampScore bounds a score to [0,100] and rounds it to two decimals.
func clampScore(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}
