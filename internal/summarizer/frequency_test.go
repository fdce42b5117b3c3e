package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const posting = `Software Engineering Intern - Summer 2024
Requirements:
• Strong programming skills in Python or Java
• Experience with Python web frameworks and Python tooling
• Knowledge of AWS cloud services (EC2, S3)
• Excellent communication skills`

func TestSummarizeKeepsOriginalOrder(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize(posting, 2)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.False(t, strings.HasPrefix(l, "•"), l)
		assert.Contains(t, posting, l)
	}
	assert.Less(t, strings.Index(posting, lines[0]), strings.Index(posting, lines[1]))
}

func TestSummarizeFavoursRepeatedTerms(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize(posting, 1)
	require.NoError(t, err)
	assert.Contains(t, out, "Python")
}

func TestSummarizeMoreThanAvailable(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("Go developer. Rust developer!", 10)
	require.NoError(t, err)
	assert.Equal(t, "Go developer.\nRust developer!", out)
}

func TestSummarizeEmpty(t *testing.T) {
	out, err := NewFrequencySummarizer().Summarize("  \n • \n", 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}
