package analyze

import (
	"sort"

	"github.com/adelorme/cvmatch/internal/config"
)

// SoftSkillExtractor finds behavioral skills from the configured list.
type SoftSkillExtractor struct {
	skills []string
}

func NewSoftSkillExtractor(cfg *config.Extraction) *SoftSkillExtractor {
	skills := make([]string, 0, len(cfg.SoftSkills))
	for _, s := range cfg.SoftSkills {
		skills = append(skills, Normalize(s))
	}
	return &SoftSkillExtractor{skills: skills}
}

func (e *SoftSkillExtractor) Name() string { return "soft skills" }

func (e *SoftSkillExtractor) Extract(doc *Document) {
	for _, skill := range e.skills {
		if countMentions(doc.Normalized, skill) > 0 {
			doc.SoftSkills = append(doc.SoftSkills, skill)
		}
	}
	sort.Strings(doc.SoftSkills)
}
