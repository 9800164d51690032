package parse

import (
	"regexp"
	"strings"
)

const (
	maxSummary           = 500
	maxFallbackParagraph = 300
)

// Summary headings are tried in this order; the first present wins.
var summaryHeadings = []*regexp.Regexp{
	summaryHeadingRe("Summary"),
	summaryHeadingRe("Review Summary"),
	summaryHeadingRe("Overview"),
}

// summaryHeadingRe builds a pattern matching "## <emoji>? <name>"
// capturing the body up to the next heading or bold-label line.
func summaryHeadingRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)#{2,6}\s*(?:[\p{So}\p{Sk}\x{FE0F}]+\s*)?` +
		regexp.QuoteMeta(name) + `\s*\n+(.*?)(?:\n#|\n\*\*[^\n]*:|$)`)
}

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// extractSummary recovers a short synopsis. When no summary-like
// heading exists, the second top-level paragraph stands in.
func extractSummary(doc string) string {
	for _, re := range summaryHeadings {
		if m := re.FindStringSubmatch(doc); m != nil {
			if s := truncate(Clean(m[1]), maxSummary); s != "" {
				return s
			}
		}
	}

	paragraphs := blankLineRe.Split(doc, -1)
	var nonEmpty []string
	for _, p := range paragraphs {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) < 2 {
		return ""
	}
	return truncate(Clean(truncate(nonEmpty[1], maxFallbackParagraph)), maxSummary)
}
