package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"radar/internal/domain"
	"radar/internal/skills"
)

func TestNextActionFollowsTaxonomyOrder(t *testing.T) {
	m := skills.NewMatcher(skills.DefaultTaxonomy())
	missing := domain.SkillSet{
		"Tools":          {"jira"},
		"Cloud & DevOps": {"aws", "kubernetes"},
		"Databases":      {"mongodb"},
	}
	got, ok := NextAction(missing, m)
	assert.True(t, ok)
	assert.Equal(t, "mongodb", got)

	_, ok = NextAction(domain.SkillSet{}, m)
	assert.False(t, ok)
}

func TestBuildReport(t *testing.T) {
	m := skills.NewMatcher(skills.DefaultTaxonomy())
	res := domain.AnalysisResult{
		MatchScore: 42.5,
		MissingSkills: domain.SkillSet{
			"Cloud & DevOps":        {"aws", "kubernetes"},
			"Programming Languages": {"java"},
		},
	}
	want := "# Internship Radar Analysis\n" +
		"## Match Score: 42.5%\n" +
		"## Missing Skills:\n" +
		"- Programming Languages: java\n" +
		"- Cloud & DevOps: aws, kubernetes\n" +
		"## Action Plan:\n" +
		"1. Focus on learning: java\n" +
		"2. Update resume with suggested bullet points\n" +
		"3. Practice interview questions on these topics\n" +
		"---\n" +
		"*Generated by Internship Radar - Your AI Career Assistant*\n"
	assert.Equal(t, want, BuildReport(res, m))
}

func TestBuildReportNothingMissing(t *testing.T) {
	m := skills.NewMatcher(skills.DefaultTaxonomy())
	out := BuildReport(domain.AnalysisResult{MatchScore: 100}, m)
	assert.Contains(t, out, "## Match Score: 100.0%\n")
	assert.Contains(t, out, "- none\n")
	assert.Contains(t, out, "1. Focus on learning: No missing skills!\n")
}

func TestDisplaySkill(t *testing.T) {
	assert.Equal(t, "Google Cloud", DisplaySkill("google cloud"))
	assert.Equal(t, "Python", DisplaySkill("python"))
	assert.Equal(t, "C++", DisplaySkill("c++"))
}

func TestBandMessage(t *testing.T) {
	assert.Contains(t, BandMessage(domain.BandHigh), "Great match")
	assert.Contains(t, BandMessage(domain.BandMedium), "Moderate")
	assert.Contains(t, BandMessage(domain.BandLow), "Needs improvement")
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "internship_analysis_01234567.txt", ReportFileName(domain.AnalysisResult{ID: "0123456789abcdef"}))
	assert.Equal(t, "internship_analysis.txt", ReportFileName(domain.AnalysisResult{}))
}

func TestLearningPlanMentionsSkill(t *testing.T) {
	plan := LearningPlan("kubernetes")
	assert.Len(t, plan, 3)
	assert.Contains(t, plan[2], "Learning Kubernetes through hands-on projects")
}
