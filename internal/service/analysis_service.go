package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"radar/internal/domain"
	"radar/internal/loader"
	"radar/internal/similarity"
	"radar/internal/skills"
)

// AnalysisService composes the similarity scorer and the skill matcher.
// It holds no per-request state and is safe for concurrent use.
type AnalysisService struct {
	scorer     domain.Scorer
	matcher    *skills.Matcher
	thresholds similarity.Thresholds
	newID      func() string
}

// NewAnalysisService wires a scorer and a matcher.
func NewAnalysisService(scorer domain.Scorer, matcher *skills.Matcher, thresholds similarity.Thresholds) *AnalysisService {
	return &AnalysisService{
		scorer:     scorer,
		matcher:    matcher,
		thresholds: thresholds,
		newID:      func() string { return uuid.NewString() },
	}
}

// Matcher exposes the skill matcher used by the service.
func (s *AnalysisService) Matcher() *skills.Matcher { return s.matcher }

// Analyze scores resume against job and computes the skill gap.
// Empty input yields domain.ErrEmptyInput and no result. Whitespace-only
// input is scored like any other text and ends up at 0 with no skills.
func (s *AnalysisService) Analyze(resume, job string) (domain.AnalysisResult, error) {
	switch {
	case resume == "":
		return domain.AnalysisResult{}, fmt.Errorf("resume: %w", domain.ErrEmptyInput)
	case job == "":
		return domain.AnalysisResult{}, fmt.Errorf("job description: %w", domain.ErrEmptyInput)
	}

	score := s.scorer.Score(resume, job)
	resumeSkills := s.matcher.Extract(resume)
	jobSkills := s.matcher.Extract(job)
	res := domain.AnalysisResult{
		ID:            s.newID(),
		MatchScore:    score,
		Band:          similarity.BandFor(score, s.thresholds),
		ResumeSkills:  resumeSkills,
		JobSkills:     jobSkills,
		MissingSkills: s.matcher.Compare(resumeSkills, jobSkills),
	}
	slog.Debug("analysis complete",
		"id", res.ID,
		"score", res.MatchScore,
		"band", res.Band,
		"missing_categories", len(res.MissingSkills),
	)
	return res, nil
}

// AnalyzeFiles loads both documents from disk and analyzes them.
func (s *AnalysisService) AnalyzeFiles(resumePath, jobPath string) (domain.AnalysisResult, error) {
	resume, err := loader.Load(resumePath)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	job, err := loader.Load(jobPath)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return s.Analyze(resume.Content, job.Content)
}
