package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"radar/internal/domain"
	"radar/internal/service"
	"radar/internal/skills"
)

// AnalysisPort is the TUI-facing subset of the analysis service.
type AnalysisPort interface {
	Analyze(resume, job string) (domain.AnalysisResult, error)
	Report(res domain.AnalysisResult) string
	Matcher() *skills.Matcher
}

// Options tune the optional parts of the UI.
type Options struct {
	Summarizer   domain.Summarizer
	MaxSentences int
	ExportDir    string
}

type focusField int

const (
	focusResume focusField = iota
	focusJob
)

const (
	tabSkills = iota
	tabMissing
	tabRecommendations
	tabCount
)

var tabTitles = [tabCount]string{"Your Skills", "Missing Skills", "Recommendations"}

// analysisMsg carries the outcome of an asynchronous analysis.
type analysisMsg struct {
	result     domain.AnalysisResult
	highlights string
	err        error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service    AnalysisPort
	opts       Options
	resume     textarea.Model
	job        textarea.Model
	viewport   viewport.Model
	focus      focusField
	tab        int
	result     *domain.AnalysisResult
	highlights string
	status     string
	busy       bool
	ready      bool
}

// New creates a new TUI model instance.
func New(svc AnalysisPort, opts Options) Model {
	resume := newTextArea("Paste your resume text here...")
	job := newTextArea("Paste the job description here...")
	resume.Focus()
	return Model{
		service:  svc,
		opts:     opts,
		resume:   resume,
		job:      job,
		viewport: viewport.New(0, 0),
		status:   "Paste both texts, then press ctrl+s. ctrl+l loads sample data.",
	}
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	return ta
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		return m, nil
	case analysisMsg:
		m.busy = false
		if msg.err != nil {
			m.result = nil
			if errors.Is(msg.err, domain.ErrEmptyInput) {
				m.status = "Please paste both your resume and a job description!"
			} else {
				m.status = "Error: " + msg.err.Error()
			}
		} else {
			res := msg.result
			m.result = &res
			m.highlights = msg.highlights
			m.tab = tabSkills
			m.status = fmt.Sprintf("%.1f%% match. %s", res.MatchScore, service.BandMessage(res.Band))
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "ctrl+s":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = "Analyzing your resume..."
			return m, m.analyze(m.resume.Value(), m.job.Value())
		case "ctrl+l":
			m.resume.SetValue(SampleResume)
			m.job.SetValue(SampleJob)
			m.status = "Sample data loaded. Press ctrl+s to analyze."
			return m, nil
		case "ctrl+e":
			m.status = m.export()
			return m, nil
		case "ctrl+right":
			m.tab = (m.tab + 1) % tabCount
			m.refresh()
			return m, nil
		case "ctrl+left":
			m.tab = (m.tab - 1 + tabCount) % tabCount
			m.refresh()
			return m, nil
		case "pgdown":
			m.viewport.ViewDown()
			return m, nil
		case "pgup":
			m.viewport.ViewUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.focus == focusResume {
		m.resume, cmd = m.resume.Update(msg)
	} else {
		m.job, cmd = m.job.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusResume {
		m.focus = focusJob
		m.resume.Blur()
		return m.job.Focus()
	}
	m.focus = focusResume
	m.job.Blur()
	return m.resume.Focus()
}

func (m Model) analyze(resume, job string) tea.Cmd {
	svc, sum, maxSentences := m.service, m.opts.Summarizer, m.opts.MaxSentences
	return func() tea.Msg {
		res, err := svc.Analyze(resume, job)
		if err != nil {
			return analysisMsg{err: err}
		}
		var highlights string
		if sum != nil {
			if highlights, err = sum.Summarize(job, maxSentences); err != nil {
				slog.Warn("job highlights failed", "err", err)
				highlights = ""
			}
		}
		return analysisMsg{result: res, highlights: highlights}
	}
}

func (m Model) export() string {
	if m.result == nil {
		return "Nothing to export yet. Press ctrl+s to analyze first."
	}
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, service.ReportFileName(*m.result))
	if err := os.WriteFile(path, []byte(m.service.Report(*m.result)), 0o644); err != nil {
		slog.Error("export failed", "path", path, "err", err)
		return "Export failed: " + err.Error()
	}
	slog.Info("report exported", "path", path)
	return "Saved analysis to " + path
}

func (m *Model) resize(width, height int) {
	fw, fh := inputBoxStyle.GetFrameSize()
	half := max(20, width/2-fw)
	m.resume.SetWidth(half)
	m.job.SetWidth(half)

	rw, rh := resultBoxStyle.GetFrameSize()
	const headerLines, labelLines, tabLines, footerLines = 1, 1, 1, 2
	reserved := headerLines + labelLines + m.resume.Height() + fh + tabLines + footerLines
	m.viewport.Width = max(20, width-rw)
	m.viewport.Height = max(3, height-reserved-rh)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Internship Radar")
	left := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render("Your Resume"), m.box(m.resume.View(), m.focus == focusResume))
	right := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render("Job Description"), m.box(m.job.View(), m.focus == focusJob))
	inputs := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	results := resultBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	help := helpStyle.Render("tab switch box • ctrl+s analyze • ctrl+l sample • ctrl+←/→ tabs • ctrl+e export • ctrl+c quit")
	return strings.Join([]string{header, inputs, m.renderTabs(), results, status, help}, "\n")
}

func (m Model) box(content string, focused bool) string {
	if focused {
		return focusedBoxStyle.Render(content)
	}
	return inputBoxStyle.Render(content)
}

func (m Model) renderTabs() string {
	parts := make([]string, tabCount)
	for i, title := range tabTitles {
		if i == m.tab {
			parts[i] = activeTabStyle.Render(title)
		} else {
			parts[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderResults() string {
	if m.result == nil {
		return "No analysis yet."
	}
	res := *m.result
	score := scoreStyle(res.Band).Render(fmt.Sprintf("%.1f%% Match", res.MatchScore))
	var body string
	switch m.tab {
	case tabSkills:
		body = m.renderSkills(res.ResumeSkills, skillChipStyle, "No known skills found in your resume.")
	case tabMissing:
		body = m.renderSkills(res.MissingSkills, missingChipStyle, "Perfect! No missing skills found!")
	default:
		body = m.renderRecommendations(res)
	}
	return score + "\n" + service.BandMessage(res.Band) + "\n\n" + body
}

func (m Model) renderSkills(set domain.SkillSet, chip lipgloss.Style, empty string) string {
	if len(set) == 0 {
		return empty
	}
	var sb strings.Builder
	m.service.Matcher().Ordered(set, func(category string, keywords []string) {
		sb.WriteString(categoryStyle.Render(category + ":"))
		sb.WriteString("\n")
		chips := make([]string, len(keywords))
		for i, kw := range keywords {
			chips[i] = chip.Render(service.DisplaySkill(kw))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		sb.WriteString("\n")
	})
	return sb.String()
}

func (m Model) renderRecommendations(res domain.AnalysisResult) string {
	var sb strings.Builder
	if m.highlights != "" {
		sb.WriteString(categoryStyle.Render("Job highlights"))
		sb.WriteString("\n")
		for _, line := range strings.Split(m.highlights, "\n") {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
	}
	if skill, ok := service.NextAction(res.MissingSkills, m.service.Matcher()); ok {
		sb.WriteString(categoryStyle.Render("What to learn this week: " + service.DisplaySkill(skill)))
		sb.WriteString("\n")
		for _, step := range service.LearningPlan(skill) {
			sb.WriteString("  - " + step + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(categoryStyle.Render("Resume bullet suggestions"))
		sb.WriteString("\n")
		for i, s := range service.BulletSuggestions[:3] {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, s)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(categoryStyle.Render("General tips"))
	sb.WriteString("\n")
	for _, tip := range service.GeneralTips {
		sb.WriteString("  - " + tip + "\n")
	}
	return sb.String()
}
