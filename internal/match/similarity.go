package match

import (
	"math"
	"sort"
)

// Cosine returns the cosine similarity of two vectors in [-1,1]. Mismatched
// lengths and zero vectors yield 0 rather than an error, so a degenerate
// embedding degrades the semantic share instead of failing the whole score.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SemanticSimilarity renormalizes cosine similarity from [-1,1] to [0,1].
func SemanticSimilarity(a, b []float64) float64 {
	return (Cosine(a, b) + 1) / 2
}

// Jaccard returns |A∩B| / |A∪B|. Two empty sets count as a perfect match,
// since neither side states a requirement; an empty set against a non-empty
// one counts as zero.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	inter := 0
	for k := range a {
		if b[k] {
			inter++
		}
	}
	union := len(a) + len(b) - inter

	return float64(inter) / float64(union)
}

// intersection returns the sorted elements present in both sets.
func intersection(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// difference returns the sorted elements of a absent from b.
func difference(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
