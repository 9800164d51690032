package render

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/revmark/internal/model"
)

// Color palette.
var (
	colorRed    = lipgloss.Color("#ff5555")
	colorOrange = lipgloss.Color("#ffb86c")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorBlue   = lipgloss.Color("#8be9fd")
	colorDim    = lipgloss.Color("#6272a4")
	colorPurple = lipgloss.Color("#bd93f9")
)

var severityStyles = map[model.Severity]lipgloss.Style{
	model.SeverityCritical: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	model.SeverityHigh:     lipgloss.NewStyle().Foreground(colorOrange).Bold(true),
	model.SeverityMedium:   lipgloss.NewStyle().Foreground(colorYellow),
	model.SeverityLow:      lipgloss.NewStyle().Foreground(colorBlue),
	model.SeverityInfo:     lipgloss.NewStyle().Foreground(colorDim),
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(colorPurple).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorDim)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	deletedStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// TextWriter outputs a human-readable report for terminals.
type TextWriter struct {
	opts Options
}

func (t *TextWriter) Write(w io.Writer, doc *model.Document) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n", t.paint(headerStyle, doc.Title))
	ew.printf("%s %s @ %s\n", t.paint(labelStyle, "Repository:"), doc.Repository, doc.Branch)
	ew.printf("%s %s (%s), %s\n", t.paint(labelStyle, "Reviewed by:"), doc.Provider, doc.Model, doc.Timestamp)
	ew.println(strings.Repeat("─", 60))

	if doc.Summary != "" {
		for _, line := range wrapText(doc.Summary, 72) {
			ew.printf("%s\n", line)
		}
		ew.println(strings.Repeat("─", 60))
	}

	ew.printf("Issues: %s\n", doc.IssueSummary())

	for _, sev := range model.Severities {
		issues := issuesAt(doc, sev)
		if len(issues) == 0 {
			continue
		}

		ew.printf("\n%s\n", t.paint(severityStyles[sev], strings.ToUpper(sev.String())))
		ew.println(strings.Repeat("─", 40))

		for _, iss := range issues {
			ew.printf("\n  %s  %s  [%s]\n", iss.Location(), iss.Title, iss.Category)
			for _, line := range wrapText(iss.Description, 70) {
				ew.printf("    %s\n", line)
			}
			if iss.Suggestion != "" {
				ew.println("  Suggestion:")
				for _, line := range wrapText(iss.Suggestion, 70) {
					ew.printf("    %s\n", line)
				}
			}
			if iss.AgentPrompt != "" {
				ew.println("  Agent prompt:")
				for _, line := range strings.Split(iss.AgentPrompt, "\n") {
					ew.printf("    %s\n", line)
				}
			}
		}
	}

	if doc.DiffContent != "" {
		ew.printf("\n%s\n", t.paint(headerStyle, "Diff"))
		for _, line := range strings.Split(doc.DiffContent, "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				ew.printf("%s\n", t.paint(addedStyle, line))
			case strings.HasPrefix(line, "-"):
				ew.printf("%s\n", t.paint(deletedStyle, line))
			default:
				ew.printf("%s\n", line)
			}
		}
	}

	for _, name := range sortedBlockNames(doc.CodeBlocks) {
		ew.printf("\n%s %s\n", t.paint(headerStyle, "Code:"), name)
		source := doc.CodeBlocks[name]
		if t.opts.Color {
			for _, hl := range HighlightLines(name, t.highlightStyle(), strings.Split(source, "\n")) {
				ew.printf("  %s\n", hl.Render())
			}
		} else {
			for _, line := range strings.Split(source, "\n") {
				ew.printf("  %s\n", line)
			}
		}
	}

	return ew.err
}

func (t *TextWriter) paint(st lipgloss.Style, s string) string {
	if !t.opts.Color {
		return s
	}
	return st.Render(s)
}

func (t *TextWriter) highlightStyle() string {
	if t.opts.HighlightStyle != "" {
		return t.opts.HighlightStyle
	}
	return "dracula"
}

// issuesAt filters the pre-sorted issue list for one severity,
// preserving order.
func issuesAt(doc *model.Document, sev model.Severity) []model.Issue {
	var out []model.Issue
	for _, iss := range doc.Issues {
		if iss.Severity == sev {
			out = append(out, iss)
		}
	}
	return out
}

func sortedBlockNames(blocks map[string]string) []string {
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
