package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sprite-ai/revmark/internal/model"
)

// The fallback scanner only runs when the primary strategies matched
// nothing at all. It slices the document into heading-delimited
// sections and emits one issue per "line N" mention inside any section
// that carries a severity signal. Field extraction here is deliberately
// coarse; anything it cannot recover is replaced with placeholder text
// instead of aborting the parse.

var (
	sectionHeadRe  = regexp.MustCompile(`(?m)^##\s`)
	lineMentionRe  = regexp.MustCompile(`(?i)\bline\s+(\d+)`)
	titleLineRe    = regexp.MustCompile(`(?m)^(?:#{1,6}\s*.+|\*\*.+\*\*.*)$`)
	labelledFixRe  = regexp.MustCompile(`(?is)(?:suggestion|fix|solution)s?\**\s*:\s*(.+?)(?:\n\s*\n|\n#|\n\*\*|$)`)
	fallbackFiller = "Issue found in code review"
)

// fallbackIssues performs section-based recovery over the whole
// document.
func fallbackIssues(doc string) []model.Issue {
	var issues []model.Issue
	for _, section := range splitSections(doc) {
		if !hasSeveritySignal(section) {
			continue
		}

		severity := inferSeverity(section)
		category := inferCategory(section)
		suggestion := sectionSuggestion(section)

		for _, m := range lineMentionRe.FindAllStringSubmatch(section, -1) {
			line, err := strconv.Atoi(m[1])
			if err != nil || line < 1 {
				continue
			}
			issues = append(issues, model.Issue{
				Line:        line,
				Severity:    severity,
				Category:    category,
				Title:       sectionTitle(section, line),
				Description: sectionDescription(section),
				Suggestion:  suggestion,
			})
		}
	}
	return issues
}

// splitSections cuts the document at every "## " heading. The text
// before the first heading is a section of its own.
func splitSections(doc string) []string {
	starts := sectionHeadRe.FindAllStringIndex(doc, -1)
	if len(starts) == 0 {
		return []string{doc}
	}

	var sections []string
	prev := 0
	for _, loc := range starts {
		if loc[0] > prev {
			sections = append(sections, doc[prev:loc[0]])
		}
		prev = loc[0]
	}
	sections = append(sections, doc[prev:])
	return sections
}

func sectionTitle(section string, line int) string {
	if m := titleLineRe.FindString(section); m != "" {
		if title := Clean(m); title != "" {
			return title
		}
	}
	return fmt.Sprintf("Issue at line %d", line)
}

func sectionDescription(section string) string {
	var picked []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "**") {
			continue
		}
		picked = append(picked, line)
		if len(picked) == 2 {
			break
		}
	}
	desc := truncate(Clean(strings.Join(picked, " ")), maxDescription)
	if desc == "" {
		return fallbackFiller
	}
	return desc
}

func sectionSuggestion(section string) string {
	if m := labelledFixRe.FindStringSubmatch(section); m != nil {
		if s := truncate(Clean(m[1]), maxSuggestion); s != "" {
			return s
		}
	}
	return defaultSuggestion
}
