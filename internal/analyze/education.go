package analyze

import (
	"sort"

	"github.com/adelorme/cvmatch/internal/config"
)

// EducationExtractor finds degree keywords and certifications. When several
// degrees appear the highest ordinal level is kept, so a resume listing both
// a licence and a master ends up at the master level.
type EducationExtractor struct {
	degrees        []config.DegreeEntry
	certifications []config.Certification
}

func NewEducationExtractor(cfg *config.Extraction) *EducationExtractor {
	degrees := make([]config.DegreeEntry, 0, len(cfg.Degrees))
	for _, d := range cfg.Degrees {
		degrees = append(degrees, config.DegreeEntry{Keyword: Normalize(d.Keyword), Level: d.Level})
	}

	certs := make([]config.Certification, 0, len(cfg.Certifications))
	for _, c := range cfg.Certifications {
		certs = append(certs, config.Certification{Name: Normalize(c.Name), Domain: c.Domain})
	}

	return &EducationExtractor{degrees: degrees, certifications: certs}
}

func (e *EducationExtractor) Name() string { return "education" }

func (e *EducationExtractor) Extract(doc *Document) {
	var edu Education

	for _, d := range e.degrees {
		if countMentions(doc.Normalized, d.Keyword) == 0 {
			continue
		}
		edu.Degrees = append(edu.Degrees, d.Keyword)
		if d.Level > edu.Level {
			edu.Level = d.Level
		}
	}

	for _, c := range e.certifications {
		if countMentions(doc.Normalized, c.Name) > 0 {
			edu.Certifications = append(edu.Certifications, c.Name)
		}
	}

	sort.Strings(edu.Degrees)
	sort.Strings(edu.Certifications)

	doc.Education = edu
}
