package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"length mismatch", []float64{1, 0}, []float64{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineIsSymmetric(t *testing.T) {
	a := []float64{0.3, -0.5, 0.8}
	b := []float64{-0.1, 0.9, 0.4}

	assert.Equal(t, Cosine(a, b), Cosine(b, a))
}

func TestSemanticSimilarityRenormalizes(t *testing.T) {
	assert.InDelta(t, 1.0, SemanticSimilarity([]float64{1, 0}, []float64{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, SemanticSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)

	// A zero vector yields a neutral 0.5 instead of failing.
	assert.InDelta(t, 0.5, SemanticSimilarity([]float64{0, 0}, []float64{1, 0}), 1e-9)
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"python", "sql"}, []string{"python", "sql"}, 1},
		{"both empty", nil, nil, 1},
		{"one empty", []string{"python"}, nil, 0},
		{"required subset of candidate", []string{"python", "sql"}, []string{"python", "sql", "java"}, 2.0 / 3.0},
		{"disjoint", []string{"python"}, []string{"java"}, 0},
		{"partial", []string{"python", "sql", "spark"}, []string{"python", "java"}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(toSet(tt.a), toSet(tt.b)), 1e-9)
		})
	}
}

func TestSetHelpers(t *testing.T) {
	a := toSet([]string{"python", "sql", "java"})
	b := toSet([]string{"sql", "go"})

	assert.Equal(t, []string{"sql"}, intersection(a, b))
	assert.Equal(t, []string{"java", "python"}, difference(a, b))
	assert.Equal(t, []string{"go"}, difference(b, a))
}
