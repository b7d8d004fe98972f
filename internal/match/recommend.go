package match

import (
	"fmt"
	"strings"

	"github.com/adelorme/cvmatch/internal/config"
)

// listedGapCap bounds how many missing items are spelled out in one
// recommendation line.
const listedGapCap = 5

var overallRecommendation = map[Level]string{
	LevelExcellent: "Excellente correspondance : le candidat répond aux critères principaux du poste.",
	LevelGood:      "Bonne correspondance : le candidat est qualifié pour le poste.",
	LevelAverage:   "Correspondance moyenne : certaines lacunes sont à combler.",
	LevelWeak:      "Correspondance faible : le profil est peu adapté au poste.",
	LevelPoor:      "Correspondance très faible : le profil ne correspond pas au poste.",
}

// recommendations produces the deterministic advice lines: one overall line
// for the level, then one line per criterion scoring below the floor.
// Callers pass sub-scores already ordered by weight, so the highest impact
// gaps come first.
func recommendations(level Level, subs []SubScore, floor float64) []string {
	recs := []string{overallRecommendation[level]}

	for _, sub := range subs {
		if sub.Score >= floor {
			continue
		}
		if line := criterionRecommendation(sub); line != "" {
			recs = append(recs, line)
		}
	}

	return recs
}

func criterionRecommendation(sub SubScore) string {
	switch sub.Criterion {
	case config.CriterionSkills:
		if len(sub.Missing) == 0 {
			return "Compétences techniques éloignées du besoin exprimé ; approfondir lors d'un entretien."
		}
		return fmt.Sprintf("%d compétence(s) requise(s) manquante(s) : %s. Formation recommandée.",
			len(sub.Missing), joinCapped(sub.Missing))

	case config.CriterionExperience:
		return fmt.Sprintf("Expérience insuffisante (%s). À considérer comme profil junior.", sub.Detail)

	case config.CriterionEducation:
		return "Niveau de formation en dessous des attentes ; évaluer les compétences acquises sur le terrain."

	case config.CriterionLanguages:
		if len(sub.Missing) == 0 {
			return "Exigences linguistiques partiellement couvertes."
		}
		return fmt.Sprintf("Langue(s) requise(s) non identifiée(s) dans le CV : %s.", joinCapped(sub.Missing))

	case config.CriterionSoftSkills:
		if len(sub.Missing) == 0 {
			return "Soft skills attendues peu visibles dans le CV."
		}
		return fmt.Sprintf("Soft skill(s) attendue(s) absente(s) du CV : %s.", joinCapped(sub.Missing))
	}

	return ""
}

func joinCapped(items []string) string {
	if len(items) > listedGapCap {
		return strings.Join(items[:listedGapCap], ", ") + ", ..."
	}
	return strings.Join(items, ", ")
}
