package parse

import (
	"regexp"
	"strings"
)

// fenceRe captures language tag, the rest of the info string (which may
// hold an inline filename comment), and the body of each fenced block.
var fenceRe = regexp.MustCompile("(?s)```([a-zA-Z0-9+#]*)[ \t]*([^\n]*)\n(.*?)```")

var infoFilenameRe = regexp.MustCompile(`(?://|#)\s*(\S+)`)

// langExt maps fence language tags to file extensions for synthesized
// code block names. Unknown languages fall back to txt.
var langExt = map[string]string{
	"js":         "js",
	"javascript": "js",
	"jsx":        "jsx",
	"ts":         "ts",
	"typescript": "ts",
	"tsx":        "tsx",
	"py":         "py",
	"python":     "py",
	"go":         "go",
	"golang":     "go",
	"java":       "java",
	"rb":         "rb",
	"ruby":       "rb",
	"rs":         "rs",
	"rust":       "rs",
	"c":          "c",
	"cpp":        "cpp",
	"c++":        "cpp",
	"cs":         "cs",
	"c#":         "cs",
	"php":        "php",
	"swift":      "swift",
	"kotlin":     "kt",
	"sh":         "sh",
	"bash":       "sh",
	"sql":        "sql",
	"html":       "html",
	"css":        "css",
	"json":       "json",
	"yaml":       "yml",
	"yml":        "yml",
	"toml":       "toml",
	"xml":        "xml",
}

// extractDiff returns the first diff-labelled fenced block, or failing
// that the first block with no language tag at all, or "".
func extractDiff(doc string) string {
	matches := fenceRe.FindAllStringSubmatch(doc, -1)

	for _, m := range matches {
		if strings.EqualFold(m[1], "diff") {
			return strings.TrimRight(m[3], "\n")
		}
	}
	for _, m := range matches {
		if m[1] == "" && strings.TrimSpace(m[2]) == "" {
			return strings.TrimRight(m[3], "\n")
		}
	}
	return ""
}

// extractCodeBlocks collects every language-tagged fenced block into
// the filename->source map. An inline filename comment on the fence
// line wins; otherwise the name is synthesized from the language, so a
// later block in the same language overwrites an earlier one.
func extractCodeBlocks(doc string, out map[string]string) {
	for _, m := range fenceRe.FindAllStringSubmatch(doc, -1) {
		lang := strings.ToLower(m[1])
		if lang == "" || lang == "diff" {
			continue
		}

		name := ""
		if fm := infoFilenameRe.FindStringSubmatch(m[2]); fm != nil {
			name = fm[1]
		}
		if name == "" {
			ext, ok := langExt[lang]
			if !ok {
				ext = "txt"
			}
			name = "code." + ext
		}

		out[name] = strings.TrimRight(m[3], "\n")
	}
}
