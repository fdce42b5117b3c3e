// Package similarity scores how close a resume is to a job description.
package similarity

import (
	"log/slog"
	"math"
	"strconv"

	"radar/internal/domain"
	"radar/internal/embedding/tfidf"
)

// Thresholds are the lower bounds of the high and medium score bands.
type Thresholds struct {
	High   float64 `yaml:"high" validate:"gtefield=Medium,lte=100"`
	Medium float64 `yaml:"medium" validate:"gte=0"`
}

// DefaultThresholds returns the 70/40 banding.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 70, Medium: 40}
}

// Scorer vectorizes both documents within a two-document corpus and
// returns their cosine similarity as a percentage.
type Scorer struct {
	newEmbedder func() domain.Embedder
}

// NewScorer returns a Scorer backed by a fresh TF-IDF embedder per call.
func NewScorer() *Scorer {
	return &Scorer{newEmbedder: func() domain.Embedder { return tfidf.NewEmbedder() }}
}

// Score returns the match percentage in [0, 100] rounded to one decimal.
// Documents without any surviving term score 0.
func (s *Scorer) Score(resume, job string) float64 {
	emb := s.newEmbedder()
	if err := emb.Prepare([]string{resume, job}); err != nil {
		slog.Debug("similarity: empty vocabulary", "embedder", emb.Name(), "err", err)
		return 0
	}
	rv, err := emb.Embed(resume)
	if err != nil {
		slog.Debug("similarity: embed resume", "err", err)
		return 0
	}
	jv, err := emb.Embed(job)
	if err != nil {
		slog.Debug("similarity: embed job", "err", err)
		return 0
	}
	return Round1(Cosine(rv, jv) * 100)
}

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// A zero vector on either side yields 0.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	c := dot / (math.Sqrt(na) * math.Sqrt(nb))
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}

// Round1 rounds x to one decimal place. Ties are decided on the exact
// binary value of x, so 30.45 (stored just below) rounds to 30.4.
func Round1(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// BandFor classifies score against the given thresholds.
func BandFor(score float64, t Thresholds) domain.Band {
	switch {
	case score >= t.High:
		return domain.BandHigh
	case score >= t.Medium:
		return domain.BandMedium
	default:
		return domain.BandLow
	}
}
