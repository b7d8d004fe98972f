package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/adelorme/cvmatch/internal/match"
)

const rule = "============================================================"

// Generator turns a match result into a readable report. It is a thin
// consumer of the scoring output: every figure in the report comes from the
// result, nothing is recomputed here.
type Generator struct {
	logger *zap.Logger
}

func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// Report is the assembled analysis, ready for text or JSON rendering.
type Report struct {
	Summary string        `json:"summary"`
	Result  *match.Result `json:"result"`
}

func (g *Generator) Generate(result *match.Result) *Report {
	report := &Report{
		Summary: executiveSummary(result),
		Result:  result,
	}

	g.logger.Debug("report generated",
		zap.String("id", result.ID),
		zap.Float64("final_score", result.FinalScore),
	)

	return report
}

// executiveSummary states the outcome in one short paragraph.
func executiveSummary(result *match.Result) string {
	base := fmt.Sprintf(
		"Le candidat présente une correspondance %s avec le poste (score %.1f/100).",
		levelLabel(result.Level), result.FinalScore,
	)

	switch result.Level {
	case match.LevelExcellent:
		return base + " Le profil répond à l'ensemble des critères essentiels."
	case match.LevelGood:
		return base + " La plupart des critères sont satisfaits, avec quelques axes d'amélioration."
	case match.LevelAverage:
		return base + " Certaines compétences clés manquent et demandent une évaluation approfondie."
	default:
		return base + " Le profil présente des lacunes significatives face aux critères essentiels."
	}
}

func levelLabel(level match.Level) string {
	switch level {
	case match.LevelExcellent:
		return "excellente"
	case match.LevelGood:
		return "bonne"
	case match.LevelAverage:
		return "moyenne"
	case match.LevelWeak:
		return "faible"
	default:
		return "très faible"
	}
}

// Text renders the full plain-text report.
func (r *Report) Text() string {
	res := r.Result

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(rule)
	line("RAPPORT D'ANALYSE DE CORRESPONDANCE CV / OFFRE")
	line(rule)
	line("Analyse : %s", res.ID)
	line("Date    : %s", res.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	line("")
	line("SYNTHÈSE")
	line("%s", r.Summary)
	line("")
	line("SCORE GLOBAL : %.1f/100 (%s)", res.FinalScore, levelLabel(res.Level))
	line("Similarité sémantique : %.2f", res.SemanticSimilarity)
	line("Confiance de l'analyse : %.2f", res.Confidence)
	line("")
	line("DÉTAIL PAR CRITÈRE")

	for _, sub := range res.SubScores {
		line("- %s : %.1f/100 (poids %.0f%%, contribution %.1f)",
			sub.Criterion, sub.Score, sub.Weight*100, sub.Weighted())
		if sub.Detail != "" {
			line("    %s", sub.Detail)
		}
		if len(sub.Matched) > 0 {
			line("    correspondances : %s", strings.Join(sub.Matched, ", "))
		}
		if len(sub.Missing) > 0 {
			line("    manquantes : %s", strings.Join(sub.Missing, ", "))
		}
		if len(sub.Extra) > 0 {
			line("    additionnelles : %s", strings.Join(sub.Extra, ", "))
		}
	}

	line("")
	line("RECOMMANDATIONS")
	for i, rec := range res.Recommendations {
		line("%d. %s", i+1, rec)
	}
	line(rule)

	return b.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
