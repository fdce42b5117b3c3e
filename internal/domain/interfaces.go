package domain

import "errors"

// ErrEmptyInput is returned when the resume or the job description is empty.
var ErrEmptyInput = errors.New("please supply both a resume and a job description")

// Document is a piece of raw text handed to the analysis core.
type Document struct {
	Path    string
	Content string
}

// SkillSet maps a taxonomy category to the keywords found for it.
// An absent category means no keyword of that category was found.
type SkillSet map[string][]string

// Band classifies a match score for presentation.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// AnalysisResult is the outcome of comparing one resume against one job.
type AnalysisResult struct {
	ID            string   `json:"id"`
	MatchScore    float64  `json:"match_score"`
	Band          Band     `json:"band"`
	ResumeSkills  SkillSet `json:"resume_skills"`
	JobSkills     SkillSet `json:"job_skills"`
	MissingSkills SkillSet `json:"missing_skills"`
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Scorer computes a similarity percentage between two documents.
type Scorer interface {
	Score(resume, job string) float64
}

// SkillMatcher extracts categorized skills and diffs two skill sets.
type SkillMatcher interface {
	Extract(text string) SkillSet
	Compare(resume, job SkillSet) SkillSet
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Analyzer defines the operation exposed by the application core.
type Analyzer interface {
	Analyze(resume, job string) (AnalysisResult, error)
}
