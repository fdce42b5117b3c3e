package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	e := NewEmbedder()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "lowercases and drops stop words", in: "The Python and Go developer", want: []string{"python", "developer"}},
		{name: "single characters dropped", in: "C R x Rust", want: []string{"rust"}},
		{name: "punctuation splits tokens", in: "node.js, c++ scikit-learn", want: []string{"node", "js", "scikit", "learn"}},
		{name: "digits and underscores kept", in: "ec2 s3 snake_case", want: []string{"ec2", "s3", "snake_case"}},
		{name: "only stop words", in: "the and of", want: nil},
		{name: "empty", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareSmoothedIDF(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"python docker", "python aws"}))
	assert.Equal(t, 3, e.Dimension())
	assert.Equal(t, map[string]int{"aws": 0, "docker": 1, "python": 2}, e.vocabulary)
	assert.InDelta(t, math.Log(3.0/2.0)+1, e.idf[0], 1e-12)
	assert.InDelta(t, math.Log(3.0/2.0)+1, e.idf[1], 1e-12)
	assert.InDelta(t, 1.0, e.idf[2], 1e-12)
}

func TestPrepareEmptyVocabulary(t *testing.T) {
	e := NewEmbedder()
	err := e.Prepare([]string{"the and of", "is an at"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = e.Embed("anything")
	assert.Error(t, err)
}

func TestPrepareEmptyCorpus(t *testing.T) {
	assert.Error(t, NewEmbedder().Prepare(nil))
}

func TestEmbedRawCountsNormalized(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"python python docker", "python aws"}))

	vec, err := e.Embed("python python docker")
	require.NoError(t, err)

	idfDocker := math.Log(3.0/2.0) + 1
	raw := []float64{0, idfDocker, 2}
	norm := math.Sqrt(raw[1]*raw[1] + raw[2]*raw[2])
	assert.InDelta(t, 0.0, vec[0], 1e-12)
	assert.InDelta(t, raw[1]/norm, vec[1], 1e-12)
	assert.InDelta(t, raw[2]/norm, vec[2], 1e-12)

	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestEmbedUnknownTermsZeroVector(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"python", "java"}))
	vec, err := e.Embed("the kubernetes")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, vec)
}

func TestEmbedNotPrepared(t *testing.T) {
	_, err := NewEmbedder().Embed("python")
	assert.Error(t, err)
}
