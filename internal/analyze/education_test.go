package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adelorme/cvmatch/internal/config"
)

func extractEducation(t *testing.T, text string) Education {
	t.Helper()

	ex := NewEducationExtractor(config.Default().Extraction)
	doc := &Document{Normalized: Normalize(text)}
	ex.Extract(doc)
	return doc.Education
}

func TestEducationLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"bac", "titulaire du bac scientifique", 1},
		{"bts", "BTS comptabilité obtenu en 2019", 2},
		{"licence", "licence d'économie", 3},
		{"master", "master en finance de marché", 4},
		{"engineer", "diplôme d'ingénieur en informatique", 4},
		{"phd", "doctorat en mathématiques appliquées", 5},
		{"none", "autodidacte motivé et rigoureux", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractEducation(t, tt.text).Level)
		})
	}
}

func TestEducationHighestDegreeWins(t *testing.T) {
	edu := extractEducation(t, "Licence de mathématiques puis master en data science")

	assert.Equal(t, 4, edu.Level)
	assert.Equal(t, []string{"licence", "master"}, edu.Degrees)
}

func TestEducationBacPlusNotation(t *testing.T) {
	assert.Equal(t, 4, extractEducation(t, "formation bac+5 exigée").Level)
	assert.Equal(t, 2, extractEducation(t, "niveau bac+2 souhaité").Level)
}

func TestEducationCertifications(t *testing.T) {
	edu := extractEducation(t, "Certifié PMP et ITIL, préparation AWS Certified Solutions Architect")

	assert.Equal(t, []string{"aws certified", "itil", "pmp"}, edu.Certifications)
}

func TestEducationNoCertifications(t *testing.T) {
	edu := extractEducation(t, "master en histoire de l'art")
	assert.Empty(t, edu.Certifications)
}
