package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"radar/internal/domain"
	"radar/internal/skills"
)

const noMissingSkills = "No missing skills!"

// BulletSuggestions are resume bullet templates offered when skills are missing.
var BulletSuggestions = []string{
	"Developed applications using [SKILL] to improve [OUTCOME]",
	"Implemented [SKILL] in projects resulting in [METRIC] improvement",
	"Applied [SKILL] to solve [PROBLEM] with [RESULT]",
	"Utilized [SKILL] to build [PROJECT] that [ACHIEVEMENT]",
}

// GeneralTips are shown regardless of the analysis outcome.
var GeneralTips = []string{
	`Quantify achievements: instead of "Built an app", say "Built an app used by 100+ users"`,
	`Use action verbs: "Developed", "Implemented", "Optimized", "Led"`,
	"Tailor for each application: adjust keywords based on the job description",
	"Show projects: GitHub links beat course lists",
}

var titleCaser = cases.Title(language.English)

// DisplaySkill renders a keyword for display, e.g. "google cloud" -> "Google Cloud".
func DisplaySkill(kw string) string {
	return titleCaser.String(kw)
}

// BandMessage is the verdict shown next to the score.
func BandMessage(b domain.Band) string {
	switch b {
	case domain.BandHigh:
		return "Great match! You have most required skills."
	case domain.BandMedium:
		return "Moderate match. Consider adding some missing skills."
	default:
		return "Needs improvement. Focus on learning missing skills."
	}
}

// NextAction returns the first missing skill in taxonomy order, and false
// when nothing is missing.
func NextAction(missing domain.SkillSet, m *skills.Matcher) (string, bool) {
	var next string
	m.Ordered(missing, func(_ string, keywords []string) {
		if next == "" && len(keywords) > 0 {
			next = keywords[0]
		}
	})
	return next, next != ""
}

// LearningPlan returns the weekly steps suggested for skill.
func LearningPlan(skill string) []string {
	name := DisplaySkill(skill)
	return []string{
		"Complete a tutorial on freeCodeCamp or Codecademy",
		"Build a small project (e.g., a to-do app)",
		fmt.Sprintf("Add it to your resume as: \"Learning %s through hands-on projects\"", name),
	}
}

// BuildReport renders the plain-text export of an analysis.
func BuildReport(res domain.AnalysisResult, m *skills.Matcher) string {
	var sb strings.Builder
	sb.WriteString("# Internship Radar Analysis\n")
	fmt.Fprintf(&sb, "## Match Score: %.1f%%\n", res.MatchScore)
	sb.WriteString("## Missing Skills:\n")
	if len(res.MissingSkills) == 0 {
		sb.WriteString("- none\n")
	}
	m.Ordered(res.MissingSkills, func(category string, keywords []string) {
		fmt.Fprintf(&sb, "- %s: %s\n", category, strings.Join(keywords, ", "))
	})
	sb.WriteString("## Action Plan:\n")
	focus, ok := NextAction(res.MissingSkills, m)
	if !ok {
		focus = noMissingSkills
	}
	fmt.Fprintf(&sb, "1. Focus on learning: %s\n", focus)
	sb.WriteString("2. Update resume with suggested bullet points\n")
	sb.WriteString("3. Practice interview questions on these topics\n")
	sb.WriteString("---\n")
	sb.WriteString("*Generated by Internship Radar - Your AI Career Assistant*\n")
	return sb.String()
}

// Report renders the export for a result produced by this service.
func (s *AnalysisService) Report(res domain.AnalysisResult) string {
	return BuildReport(res, s.matcher)
}

// ReportFileName is the default export file name for res.
func ReportFileName(res domain.AnalysisResult) string {
	if len(res.ID) >= 8 {
		return fmt.Sprintf("internship_analysis_%s.txt", res.ID[:8])
	}
	return "internship_analysis.txt"
}
