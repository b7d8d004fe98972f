package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/config"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(config.Default(), zap.NewNop())
}

func TestAnalyzeRejectsEmptyInput(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := a.Analyze(KindResume, text)
		assert.ErrorIs(t, err, ErrInputEmpty, "text=%q", text)
	}
}

func TestAnalyzeRejectsTooShortInput(t *testing.T) {
	a := newTestAnalyzer(t)

	_, err := a.Analyze(KindResume, "dev python")
	assert.ErrorIs(t, err, ErrInputTooShort)
}

func TestAnalyzeRejectsOversizedInput(t *testing.T) {
	cfg := config.Default()
	cfg.Input.MaxBytes = 100
	a := NewAnalyzer(cfg, zap.NewNop())

	_, err := a.Analyze(KindPosting, strings.Repeat("x", 101))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestAnalyzeResume(t *testing.T) {
	a := newTestAnalyzer(t)

	doc, err := a.Analyze(KindResume, `
		Data engineer senior, 6 ans d'expérience.
		Compétences : Python, Spark, SQL, Docker.
		Master en informatique, certifié AWS Certified.
		Langues : français, anglais courant.
		Rigueur et travail d'équipe.
	`)
	require.NoError(t, err)

	assert.Equal(t, KindResume, doc.Kind)

	skills := doc.SkillSet()
	for _, want := range []string{"python", "spark", "sql", "docker"} {
		assert.True(t, skills[want], "missing skill %q", want)
	}

	assert.InDelta(t, 6, doc.Experience.Years, 1e-9)
	assert.Equal(t, SenioritySenior, doc.Experience.Seniority)
	assert.Equal(t, 4, doc.Education.Level)
	assert.Equal(t, []string{"aws certified"}, doc.Education.Certifications)
	assert.Equal(t, []string{"anglais", "francais"}, doc.Languages)
	assert.Contains(t, doc.SoftSkills, "rigueur")
	assert.Contains(t, doc.SoftSkills, "travail d'equipe")
}

func TestAnalyzePostingMinimum(t *testing.T) {
	a := newTestAnalyzer(t)

	doc, err := a.Analyze(KindPosting, "Recherche développeur Java, 3 ans minimum, niveau licence.")
	require.NoError(t, err)

	assert.InDelta(t, 3, doc.Experience.MinimumYears, 1e-9)
	assert.Equal(t, 3, doc.Education.Level)
	assert.True(t, doc.SkillSet()["java"])
}

func TestAnalyzeUnparseableExperienceIsZero(t *testing.T) {
	a := newTestAnalyzer(t)

	doc, err := a.Analyze(KindResume, "Passionné d'informatique et de finance de marché.")
	require.NoError(t, err)

	assert.Zero(t, doc.Experience.Years)
	assert.Equal(t, SeniorityNone, doc.Experience.Seniority)
}
