// Package parse recovers structured review documents from free-form,
// AI-generated markdown reports. Nothing in here performs I/O except
// ParseFile's initial read; extraction itself never fails.
package parse

import (
	"regexp"
	"strings"
)

// Markup removal patterns, applied in order. Bold must run before
// italics so `**x**` does not leave stray asterisks behind.
var (
	boldRe    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe  = regexp.MustCompile(`\*([^*]+)\*`)
	inlineRe  = regexp.MustCompile("`([^`]*)`")
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	bulletRe  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
)

// Clean strips markdown formatting from a text fragment, leaving the
// human-readable content. It is idempotent and never fails.
func Clean(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = inlineRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// truncate caps s at max characters. Limits are applied after cleaning,
// so callers clean first. Counts runes, not bytes, so a cap never
// splits a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
