package analyze

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

var (
	// "5 ans d'experience", "3 years experience", "10 ans d'exp"
	explicitYearsRe = regexp.MustCompile(`(\d{1,2})\s*(?:\+\s*)?(?:ans?|annees?|years?)\s*(?:d['’]\s*)?(?:experience|exp)`)

	// "3 ans minimum", "minimum 3 ans", "au moins 5 ans"
	minimumYearsRe = regexp.MustCompile(`(\d{1,2})\s*(?:ans?|annees?|years?)(?:\s*(?:d['’]\s*)?experience)?\s*(?:minimum|requis)|(?:minimum|au moins)\s*(?:de\s*)?(\d{1,2})\s*(?:ans?|annees?|years?)`)

	// "2018-2022", "2019 - present", "2020-aujourd'hui"
	dateRangeRe = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|present|aujourd['’]hui|actuel(?:lement)?|now|current)`)
)

var seniorityKeywords = []struct {
	term  string
	level Seniority
}{
	{"junior", SeniorityJunior},
	{"debutant", SeniorityJunior},
	{"confirme", SeniorityConfirmed},
	{"confirmee", SeniorityConfirmed},
	{"senior", SenioritySenior},
	{"expert", SeniorityExpert},
	{"lead", SeniorityLead},
	{"principal", SeniorityLead},
	{"manager", SeniorityManager},
	{"chef de projet", SeniorityManager},
}

// ExperienceExtractor estimates career length from two independent rules
// and reconciles them. Explicit statements like "5 ans d'experience" are
// taken at face value; date ranges are merged as intervals so overlapping
// positions are not double counted. When both rules produce an estimate,
// the larger one wins. Text with neither yields zero, never an error.
type ExperienceExtractor struct {
	// nowYear is swapped in tests to keep open-ended ranges deterministic.
	nowYear func() int
}

func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{nowYear: func() int { return time.Now().Year() }}
}

func (e *ExperienceExtractor) Name() string { return "experience" }

func (e *ExperienceExtractor) Extract(doc *Document) {
	text := doc.Normalized

	explicit := e.explicitYears(text)
	ranged := e.rangedYears(text)

	years := explicit
	if ranged > years {
		years = ranged
	}

	doc.Experience = Experience{
		Years:        years,
		MinimumYears: e.minimumYears(text),
		Seniority:    detectSeniority(text),
	}
}

// explicitYears returns the largest explicitly stated experience figure.
func (e *ExperienceExtractor) explicitYears(text string) float64 {
	best := 0.0
	for _, m := range explicitYearsRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && float64(n) > best {
			best = float64(n)
		}
	}
	return best
}

// minimumYears returns the largest stated minimum requirement, zero when
// none is present. Only postings normally carry one.
func (e *ExperienceExtractor) minimumYears(text string) float64 {
	best := 0.0
	for _, m := range minimumYearsRe.FindAllStringSubmatch(text, -1) {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if n, err := strconv.Atoi(digits); err == nil && float64(n) > best {
			best = float64(n)
		}
	}
	return best
}

// rangedYears sums the merged date ranges found in the text. Ranges ending
// in "present" or a synonym run to the current year. Invalid ranges are
// skipped.
func (e *ExperienceExtractor) rangedYears(text string) float64 {
	now := e.nowYear()

	type span struct{ start, end int }
	var spans []span

	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		end := now
		if n, err := strconv.Atoi(m[2]); err == nil {
			end = n
		}

		if start > end || end > now || start < 1900 {
			continue
		}
		spans = append(spans, span{start, end})
	}

	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	total += cur.end - cur.start

	return float64(total)
}

// detectSeniority keeps the highest ranked seniority keyword in the text.
func detectSeniority(text string) Seniority {
	best := SeniorityNone
	for _, kw := range seniorityKeywords {
		if countMentions(text, kw.term) == 0 {
			continue
		}
		if kw.level.Rank() > best.Rank() {
			best = kw.level
		}
	}
	return best
}
