package match

import (
	"github.com/adelorme/cvmatch/internal/analyze"
	"github.com/adelorme/cvmatch/internal/config"
)

// Confidence floors for criteria whose extraction found nothing. The score
// still degrades gracefully in that case, and the composite confidence is
// how that degradation stays visible in the result.
const (
	skillConfidenceFloor    = 0.3
	numericConfidenceFloor  = 0.4
	coverageConfidenceFloor = 0.5
)

// documentConfidence aggregates per-criterion extraction confidence for one
// document, weighted like the final score so uncertainty on heavy criteria
// counts more.
func documentConfidence(doc *analyze.Document, w config.Weights) float64 {
	skills := skillConfidenceFloor
	if len(doc.Skills) > 0 {
		sum := 0.0
		for _, s := range doc.Skills {
			sum += s.Confidence
		}
		skills = sum / float64(len(doc.Skills))
	}

	experience := numericConfidenceFloor
	if doc.Experience.Years > 0 || doc.Experience.MinimumYears > 0 {
		experience = 1.0
	}

	education := numericConfidenceFloor
	if doc.Education.Level > 0 {
		education = 1.0
	}

	languages := coverageConfidenceFloor
	if len(doc.Languages) > 0 {
		languages = 1.0
	}

	softSkills := coverageConfidenceFloor
	if len(doc.SoftSkills) > 0 {
		softSkills = 1.0
	}

	return skills*w.Skills +
		experience*w.Experience +
		education*w.Education +
		languages*w.Languages +
		softSkills*w.SoftSkills
}

// matchConfidence combines the extraction confidence of both documents.
// A hollow posting caps the confidence just like a hollow resume does.
func matchConfidence(resume, posting *analyze.Document, w config.Weights) float64 {
	return (documentConfidence(resume, w) + documentConfidence(posting, w)) / 2
}
