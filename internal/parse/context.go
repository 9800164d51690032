package parse

import (
	"regexp"
	"strings"

	"github.com/sprite-ai/revmark/internal/model"
)

const (
	windowBefore = 200
	windowAfter  = 1000

	maxDescription = 300
	maxSuggestion  = 400

	defaultSuggestion = "Review and address this issue"
)

var (
	suggestionRe  = regexp.MustCompile(`(?is)(?:suggestion|fix|solution|recommendation)s?\**\s*:\s*(.+?)(?:\n\s*\n|\n#|\n\*\*|$)`)
	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z0-9+]*[^\n]*\n(.*?)```")
	agentLabelRe  = regexp.MustCompile(`(?im)^.*(?:agent\s+prompt|🤖).*$`)
	contextTaskRe = regexp.MustCompile(`(?im)^\s*\**context\**\s*:\s*(.+?)\s*\n\s*\**task\**\s*:\s*(.+?)\s*$`)
)

// enrich mines the text window around a candidate for the secondary
// issue fields: description, suggestion, agent prompt, and category.
func enrich(doc string, c candidate) model.Issue {
	start := c.offset - windowBefore
	if start < 0 {
		start = 0
	}
	end := c.offset + windowAfter
	if end > len(doc) {
		end = len(doc)
	}
	window := doc[start:end]

	// Text after the match itself, still inside the window.
	after := ""
	if c.end < end {
		after = doc[c.end:end]
	}

	issue := model.Issue{
		Line:        c.line,
		Column:      c.column,
		Severity:    c.severity,
		Title:       c.title,
		File:        c.file,
		Description: extractDescription(after),
		Suggestion:  extractSuggestion(window),
		AgentPrompt: extractAgentPrompt(window),
		Category:    inferCategory(window + " " + c.title),
	}
	return issue
}

// extractDescription joins the first 1-4 non-empty lines following the
// match that are not headings or bold-labelled lines.
func extractDescription(after string) string {
	var picked []string
	for _, line := range strings.Split(after, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(picked) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "**") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			break
		}
		picked = append(picked, line)
		if len(picked) == 4 {
			break
		}
	}
	return truncate(Clean(strings.Join(picked, " ")), maxDescription)
}

// extractSuggestion finds the first Suggestion/Fix/Solution/
// Recommendation label in the window.
func extractSuggestion(window string) string {
	m := suggestionRe.FindStringSubmatch(window)
	if m == nil {
		return defaultSuggestion
	}
	s := truncate(Clean(m[1]), maxSuggestion)
	if s == "" {
		return defaultSuggestion
	}
	return s
}

// extractAgentPrompt looks for a machine-actionable instruction: a
// fenced block under an "Agent Prompt" (or robot emoji) label, or a
// two-line Context:/Task: pair. Returns "" when no prompt is present.
func extractAgentPrompt(window string) string {
	if loc := agentLabelRe.FindStringIndex(window); loc != nil {
		rest := window[loc[1]:]
		if m := fencedBlockRe.FindStringSubmatch(rest); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	if m := contextTaskRe.FindStringSubmatch(window); m != nil {
		return "Context: " + m[1] + "\nTask: " + m[2]
	}

	return ""
}
