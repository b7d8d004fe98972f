package match

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/analyze"
	"github.com/adelorme/cvmatch/internal/config"
)

type stubProvider struct {
	vectors [][]float64
	err     error
	calls   int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.vectors, nil
}

func newTestEngine(t *testing.T, provider *stubProvider) *Engine {
	t.Helper()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	return NewEngine(cfg, analyze.NewAnalyzer(cfg, zap.NewNop()), provider, zap.NewNop())
}

func identicalVectors() *stubProvider {
	return &stubProvider{vectors: [][]float64{{1, 0}, {1, 0}}}
}

const (
	projectResume = "Chef de projet avec 5 ans d'expérience en gestion de projet bancaire, " +
		"certifié PMP, diplômé d'un master en finance. Français et anglais courant. Rigueur et leadership."
	projectPosting = "Recherche chef de projet pour notre banque, 3 ans minimum d'expérience, " +
		"certification PMP souhaitée, niveau master requis. Anglais courant exigé. Leadership attendu."
)

func TestScoreProjectManagerMatch(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	result, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	assert.Equal(t, LevelExcellent, result.Level)
	assert.Equal(t, "#28a745", result.ColorHint)
	assert.GreaterOrEqual(t, result.FinalScore, 85.0)

	// Both sides state no vocabulary skill, which counts as a perfect
	// exact match, and the stub embeddings are identical.
	skills, ok := result.SubScore(config.CriterionSkills)
	require.True(t, ok)
	assert.InDelta(t, 100, skills.Score, 1e-9)

	// 5 years against a 3-8 window, uplifted for the management level.
	exp, ok := result.SubScore(config.CriterionExperience)
	require.True(t, ok)
	assert.InDelta(t, 98.56, exp.Score, 0.01)

	// Master on both sides plus the shared PMP certification.
	edu, ok := result.SubScore(config.CriterionEducation)
	require.True(t, ok)
	assert.InDelta(t, 100, edu.Score, 1e-9)
	assert.Equal(t, []string{"pmp"}, edu.Matched)

	langs, ok := result.SubScore(config.CriterionLanguages)
	require.True(t, ok)
	assert.InDelta(t, 100, langs.Score, 1e-9)
	assert.Equal(t, []string{"anglais"}, langs.Matched)

	// A match this strong carries only the overall recommendation.
	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Excellente correspondance")
}

func TestScoreSkillGapEvidence(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	result, err := engine.Score(context.Background(),
		"Développeur avec expertise Python, SQL et Java depuis plusieurs années.",
		"Recherche développeur maîtrisant Python et SQL au quotidien.",
	)
	require.NoError(t, err)

	skills, ok := result.SubScore(config.CriterionSkills)
	require.True(t, ok)

	// Jaccard {python,sql} vs {python,sql,java} is 2/3, blended 70/30
	// with a perfect semantic similarity.
	assert.InDelta(t, 76.67, skills.Score, 0.01)
	assert.Equal(t, []string{"python", "sql"}, skills.Matched)
	assert.Empty(t, skills.Missing)
	assert.Equal(t, []string{"java"}, skills.Extra)
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	first, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)
	second, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.FinalScore, second.FinalScore)
	assert.Equal(t, first.SubScores, second.SubScores)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestScoreFinalIsWeightedSum(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	result, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	sum := 0.0
	for _, sub := range result.SubScores {
		sum += sub.Weighted()
	}
	assert.InDelta(t, sum, result.FinalScore, 0.01)

	// Sub-scores come ordered by weight, highest impact first.
	for i := 1; i < len(result.SubScores); i++ {
		assert.GreaterOrEqual(t, result.SubScores[i-1].Weight, result.SubScores[i].Weight)
	}
}

func TestScoreRejectsInvalidInput(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	_, err := engine.Score(context.Background(), "", projectPosting)
	assert.ErrorIs(t, err, analyze.ErrInputEmpty)

	_, err = engine.Score(context.Background(), projectResume, "trop court")
	assert.ErrorIs(t, err, analyze.ErrInputTooShort)
}

func TestScorePropagatesProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	engine := newTestEngine(t, provider)

	_, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestScoreZeroVectorsAreNeutral(t *testing.T) {
	provider := &stubProvider{vectors: [][]float64{{0, 0}, {0, 0}}}
	engine := newTestEngine(t, provider)

	result, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.SemanticSimilarity, 1e-9)
}

func TestScoreWeakMatchRecommendations(t *testing.T) {
	engine := newTestEngine(t, &stubProvider{vectors: [][]float64{{1, 0}, {0, 1}}})

	result, err := engine.Score(context.Background(),
		"Jeune diplômé d'une licence, stage de découverte en communication digitale.",
		"Recherche expert senior, 10 ans d'expérience minimum, maîtrise de Python, Spark, Kafka et AWS, doctorat souhaité, anglais et allemand courants.",
	)
	require.NoError(t, err)

	assert.Less(t, result.FinalScore, 70.0)
	require.Greater(t, len(result.Recommendations), 1)

	// Per-criterion lines follow the weight order, so the skill gap
	// comes right after the overall assessment.
	assert.Contains(t, result.Recommendations[1], "manquante(s)")
}

func TestResultJSONShape(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	result, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded struct {
		FinalScore float64                    `json:"final_score"`
		Level      string                     `json:"level"`
		ColorHint  string                     `json:"color_hint"`
		SubScores  map[string]json.RawMessage `json:"sub_scores"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, result.FinalScore, decoded.FinalScore)
	assert.Equal(t, string(result.Level), decoded.Level)
	for _, name := range []string{
		config.CriterionSkills,
		config.CriterionExperience,
		config.CriterionEducation,
		config.CriterionLanguages,
		config.CriterionSoftSkills,
	} {
		assert.Contains(t, decoded.SubScores, name)
	}
}

func TestConfidenceReflectsExtractionQuality(t *testing.T) {
	engine := newTestEngine(t, identicalVectors())

	rich, err := engine.Score(context.Background(), projectResume, projectPosting)
	require.NoError(t, err)

	sparse, err := engine.Score(context.Background(),
		"Personne motivée cherchant un nouveau défi professionnel.",
		"Poste à pourvoir rapidement dans notre entreprise en croissance.",
	)
	require.NoError(t, err)

	assert.Greater(t, rich.Confidence, sparse.Confidence)
	assert.LessOrEqual(t, rich.Confidence, 1.0)
	assert.Greater(t, sparse.Confidence, 0.0)
}
