package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "Python SQL",
			want: "python sql",
		},
		{
			name: "strips diacritics",
			in:   "Compétences évaluées à Paris",
			want: "competences evaluees a paris",
		},
		{
			name: "collapses whitespace",
			in:   "machine   learning\n\t deep  learning",
			want: "machine learning deep learning",
		},
		{
			name: "drops control characters",
			in:   "data\x00\x08 science",
			want: "data science",
		},
		{
			name: "trims",
			in:   "  agile  ",
			want: "agile",
		},
		{
			name: "keeps symbols",
			in:   "C++ et C# sur .NET",
			want: "c++ et c# sur .net",
		},
		{
			name: "empty",
			in:   "   \n ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
