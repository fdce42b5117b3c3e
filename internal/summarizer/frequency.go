package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"radar/internal/embedding/tfidf"
)

// FrequencySummarizer ranks the lines of a posting by word frequency
// (stop words filtered) and keeps the best ones in their original order.
type FrequencySummarizer struct {
	tokenPattern *regexp.Regexp
	splitter     *regexp.Regexp
}

// NewFrequencySummarizer creates a frequency-based highlight extractor.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}_]{2,}`),
		splitter:     regexp.MustCompile(`[^.!?\n]+[.!?]?`),
	}
}

// Summarize returns up to maxSentences highlights joined by newlines.
// Bullet markers are stripped from each highlight.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	sentences := s.sentences(text)
	if len(sentences) == 0 {
		return "", nil
	}

	freq := map[string]float64{}
	tokens := make([][]string, len(sentences))
	for i, sent := range sentences {
		tokens[i] = s.tokens(sent)
		for _, tok := range tokens[i] {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		maxF = math.Max(maxF, v)
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, toks := range tokens {
		score := 0.0
		for _, tok := range toks {
			score += freq[tok]
		}
		// Damp long lines so they do not win on length alone.
		if l := float64(len(toks)); l > 0 {
			score /= math.Sqrt(l)
		}
		scores[i] = pair{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := range selected {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = sentences[idx]
	}
	return strings.Join(out, "\n"), nil
}

func (s *FrequencySummarizer) sentences(text string) []string {
	var out []string
	for _, raw := range s.splitter.FindAllString(text, -1) {
		sent := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "•-*·"))
		if sent != "" {
			out = append(out, sent)
		}
	}
	return out
}

func (s *FrequencySummarizer) tokens(text string) []string {
	raw := s.tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if !tfidf.IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}
