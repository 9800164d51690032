package parse

import (
	"regexp"
	"strconv"

	"github.com/sprite-ai/revmark/internal/model"
)

// The primary matcher runs four regex strategies over the whole
// document, in a fixed order, collecting every non-overlapping match.
// Each strategy has its own match struct naming exactly the fields its
// pattern captures; normalizeCandidate maps all of them onto the one
// canonical candidate shape. A match whose severity token cannot be
// normalized is dropped without comment, per the engine's best-effort
// contract.
//
// The same textual announcement can legitimately match two strategies;
// the resulting duplicate issues are kept. Downstream consumers are
// told not to assume uniqueness.

// candidate is a located issue before context enrichment.
type candidate struct {
	offset   int // rune-independent byte offset of the match start
	end      int // byte offset just past the match
	severity model.Severity
	title    string
	line     int
	column   int
	file     string
}

// Strategy 1: **[SEVERITY] Title (Line N)** — bold-wrapped severity
// tag, brackets optional.
var boldTagRe = regexp.MustCompile(`(?i)\*\*\[?([^\s\[\]*]+)\]?\s+([^*(]+?)\s*\(line\s+(\d+)\)\*\*`)

type boldTagMatch struct {
	offset, end int
	rawSeverity string
	title       string
	rawLine     string
}

// Strategy 2: ### <emoji> SEVERITY - Title (file:N) — heading style
// with a file:line location and an optional column.
var headingStyleRe = regexp.MustCompile(`(?im)^#{2,4}\s*(?:[\p{So}\p{Sk}\x{FE0F}]+\s*)?([a-zA-Z]+)\s*[-–—:]\s*(.+?)\s*\(([^():\s]+):(\d+)(?::(\d+))?\)\s*$`)

type headingStyleMatch struct {
	offset, end int
	rawSeverity string
	title       string
	file        string
	rawLine     string
	rawColumn   string
}

// Strategy 3: <emoji> **Title (Line N)**: Description — the emoji
// itself is the severity token.
var emojiLedRe = regexp.MustCompile(`(?i)([\p{So}\x{FE0F}]+)\s*\*\*([^*(]+?)\s*\(line\s+(\d+)\)\*\*:?`)

type emojiLedMatch struct {
	offset, end int
	emoji       string
	title       string
	rawLine     string
}

// Strategy 4: **SEVERITY**: Title - Line N — label-then-dash style.
var labelDashRe = regexp.MustCompile(`(?i)\*\*([a-zA-Z]+)\*\*:\s*([^\n]+?)\s*[-–—]\s*line\s+(\d+)`)

type labelDashMatch struct {
	offset, end int
	rawSeverity string
	title       string
	rawLine     string
}

// matchPrimary runs all four strategies over doc and returns the
// normalized candidates in strategy order, then document order.
func matchPrimary(doc string) []candidate {
	var out []candidate

	for _, m := range boldTagRe.FindAllStringSubmatchIndex(doc, -1) {
		v := boldTagMatch{
			offset:      m[0],
			end:         m[1],
			rawSeverity: doc[m[2]:m[3]],
			title:       doc[m[4]:m[5]],
			rawLine:     doc[m[6]:m[7]],
		}
		if c, ok := normalizeCandidate(v.offset, v.end, v.rawSeverity, v.title, v.rawLine, "", ""); ok {
			out = append(out, c)
		}
	}

	for _, m := range headingStyleRe.FindAllStringSubmatchIndex(doc, -1) {
		v := headingStyleMatch{
			offset:      m[0],
			end:         m[1],
			rawSeverity: doc[m[2]:m[3]],
			title:       doc[m[4]:m[5]],
			file:        doc[m[6]:m[7]],
			rawLine:     doc[m[8]:m[9]],
		}
		if m[10] >= 0 {
			v.rawColumn = doc[m[10]:m[11]]
		}
		if c, ok := normalizeCandidate(v.offset, v.end, v.rawSeverity, v.title, v.rawLine, v.rawColumn, v.file); ok {
			out = append(out, c)
		}
	}

	for _, m := range emojiLedRe.FindAllStringSubmatchIndex(doc, -1) {
		v := emojiLedMatch{
			offset:  m[0],
			end:     m[1],
			emoji:   doc[m[2]:m[3]],
			title:   doc[m[4]:m[5]],
			rawLine: doc[m[6]:m[7]],
		}
		if c, ok := normalizeCandidate(v.offset, v.end, v.emoji, v.title, v.rawLine, "", ""); ok {
			out = append(out, c)
		}
	}

	for _, m := range labelDashRe.FindAllStringSubmatchIndex(doc, -1) {
		v := labelDashMatch{
			offset:      m[0],
			end:         m[1],
			rawSeverity: doc[m[2]:m[3]],
			title:       doc[m[4]:m[5]],
			rawLine:     doc[m[6]:m[7]],
		}
		if c, ok := normalizeCandidate(v.offset, v.end, v.rawSeverity, v.title, v.rawLine, "", ""); ok {
			out = append(out, c)
		}
	}

	return out
}

// normalizeCandidate maps any strategy's captures onto a candidate.
// It reports ok=false when the severity token is not recognizable or
// the line number does not resolve to a positive integer.
func normalizeCandidate(offset, end int, rawSeverity, title, rawLine, rawColumn, file string) (candidate, bool) {
	sev, ok := normalizeSeverity(rawSeverity)
	if !ok {
		return candidate{}, false
	}

	line, err := strconv.Atoi(rawLine)
	if err != nil || line < 1 {
		return candidate{}, false
	}

	column := 0
	if rawColumn != "" {
		column, _ = strconv.Atoi(rawColumn)
	}

	return candidate{
		offset:   offset,
		end:      end,
		severity: sev,
		title:    Clean(title),
		line:     line,
		column:   column,
		file:     file,
	}, true
}

// extractIssues runs the primary matcher and enriches every candidate
// with context mined from the surrounding window.
func extractIssues(doc string) []model.Issue {
	var issues []model.Issue
	for _, c := range matchPrimary(doc) {
		issues = append(issues, enrich(doc, c))
	}
	return issues
}
