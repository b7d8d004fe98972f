package match

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adelorme/cvmatch/internal/analyze"
	"github.com/adelorme/cvmatch/internal/config"
	"github.com/adelorme/cvmatch/internal/embedding"
	"github.com/adelorme/cvmatch/internal/util"
)

// Engine orchestrates one resume/posting comparison: both texts are
// analyzed, embedded, scored per criterion, and merged through the weighted
// formula into an explainable result.
type Engine struct {
	cfg      *config.Config
	analyzer *analyze.Analyzer
	provider embedding.Provider
	scorer   scorer
	logger   *zap.Logger
}

func NewEngine(cfg *config.Config, analyzer *analyze.Analyzer, provider embedding.Provider, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		analyzer: analyzer,
		provider: provider,
		scorer:   scorer{cfg: cfg.Scoring},
		logger:   logger,
	}
}

// Score compares a resume against a posting. Input validation errors
// surface as-is; once both documents are analyzed and embedded the
// computation is pure and cannot fail.
func (e *Engine) Score(ctx context.Context, resumeText, postingText string) (*Result, error) {
	started := time.Now()

	var resume, posting *analyze.Document

	var g errgroup.Group
	g.Go(func() error {
		var err error
		resume, err = e.analyzer.Analyze(analyze.KindResume, resumeText)
		return err
	})
	g.Go(func() error {
		var err error
		posting, err = e.analyzer.Analyze(analyze.KindPosting, postingText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("documents analyzed",
		zap.String("resume_excerpt", util.TruncateForLog(resume.Normalized, 120)),
		zap.String("posting_excerpt", util.TruncateForLog(posting.Normalized, 120)),
	)

	vectors, err := e.provider.Embed(ctx, []string{resume.Normalized, posting.Normalized})
	if err != nil {
		return nil, fmt.Errorf("embed documents: %w", err)
	}
	semantic := SemanticSimilarity(vectors[0], vectors[1])

	subs := []SubScore{
		e.scorer.skills(resume, posting, semantic),
		e.scorer.experience(resume, posting),
		e.scorer.education(resume, posting),
		e.scorer.languages(resume, posting),
		e.scorer.softSkills(resume, posting),
	}
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].Weight != subs[j].Weight {
			return subs[i].Weight > subs[j].Weight
		}
		return subs[i].Criterion < subs[j].Criterion
	})

	final := 0.0
	for _, sub := range subs {
		final += sub.Weighted()
	}
	final = math.Round(final*100) / 100

	level := LevelFor(e.cfg.Scoring.Levels, final)

	result := &Result{
		ID:                 uuid.NewString(),
		CreatedAt:          time.Now().UTC(),
		FinalScore:         final,
		Level:              level,
		ColorHint:          level.Color(),
		SubScores:          subs,
		SemanticSimilarity: semantic,
		Confidence:         matchConfidence(resume, posting, e.cfg.Scoring.Weights),
		Recommendations:    recommendations(level, subs, e.cfg.Scoring.CriterionFloor),
	}

	e.logger.Info("match scored",
		zap.String("id", result.ID),
		zap.Float64("final_score", final),
		zap.String("level", string(level)),
		zap.Float64("confidence", result.Confidence),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result, nil
}
