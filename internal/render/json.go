package render

import (
	"encoding/json"
	"io"

	"github.com/sprite-ai/revmark/internal/model"
)

// JSONWriter emits the document as machine-readable JSON. Enums are
// serialized as their string names so consumers never see raw ints.
type JSONWriter struct{}

type jsonIssue struct {
	Line        int    `json:"line"`
	Column      int    `json:"column,omitempty"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	AgentPrompt string `json:"agent_prompt,omitempty"`
	File        string `json:"file,omitempty"`
}

type jsonDocument struct {
	Title      string            `json:"title"`
	Timestamp  string            `json:"timestamp"`
	Branch     string            `json:"branch"`
	Repository string            `json:"repository"`
	Provider   string            `json:"provider"`
	Model      string            `json:"model"`
	Summary    string            `json:"summary"`
	Issues     []jsonIssue       `json:"issues"`
	CodeBlocks map[string]string `json:"code_blocks"`
	Diff       string            `json:"diff"`
}

func (j *JSONWriter) Write(w io.Writer, doc *model.Document) error {
	out := jsonDocument{
		Title:      doc.Title,
		Timestamp:  doc.Timestamp,
		Branch:     doc.Branch,
		Repository: doc.Repository,
		Provider:   doc.Provider,
		Model:      doc.Model,
		Summary:    doc.Summary,
		Issues:     []jsonIssue{},
		CodeBlocks: doc.CodeBlocks,
		Diff:       doc.DiffContent,
	}

	for _, iss := range doc.Issues {
		out.Issues = append(out.Issues, jsonIssue{
			Line:        iss.Line,
			Column:      iss.Column,
			Severity:    iss.Severity.String(),
			Category:    iss.Category.String(),
			Title:       iss.Title,
			Description: iss.Description,
			Suggestion:  iss.Suggestion,
			AgentPrompt: iss.AgentPrompt,
			File:        iss.File,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
