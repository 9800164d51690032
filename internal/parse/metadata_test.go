package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sprite-ai/revmark/internal/model"
)

func newDefaultDoc() *model.Document {
	return &model.Document{
		Title:      DefaultTitle,
		Branch:     DefaultBranch,
		Repository: DefaultRepository,
		Provider:   DefaultProvider,
		Model:      DefaultModel,
	}
}

func TestExtractMetadataBoldLabels(t *testing.T) {
	report := `# Security Review

**Generated:** 2025-06-01 10:22
**Branch:** feature/auth
**Repository:** acme/api
**AI Provider**: OpenAI
**Model**: gpt-4o
`
	doc := newDefaultDoc()
	extractMetadata(report, doc)

	assert.Equal(t, "Security Review", doc.Title)
	assert.Equal(t, "2025-06-01 10:22", doc.Timestamp)
	assert.Equal(t, "feature/auth", doc.Branch)
	assert.Equal(t, "acme/api", doc.Repository)
	assert.Equal(t, "OpenAI", doc.Provider)
	assert.Equal(t, "gpt-4o", doc.Model)
}

func TestExtractMetadataPlainLabels(t *testing.T) {
	report := `Date: 2025-06-01
Branch: main-hotfix
Repo: acme/worker
Provider: Anthropic
Model: claude-sonnet
`
	doc := newDefaultDoc()
	extractMetadata(report, doc)

	assert.Equal(t, "2025-06-01", doc.Timestamp)
	assert.Equal(t, "main-hotfix", doc.Branch)
	assert.Equal(t, "acme/worker", doc.Repository)
	assert.Equal(t, "Anthropic", doc.Provider)
	assert.Equal(t, "claude-sonnet", doc.Model)
}

func TestExtractMetadataFieldsIndependent(t *testing.T) {
	// Only the branch is present; everything else keeps its default.
	doc := newDefaultDoc()
	extractMetadata("Branch: solo-branch\n", doc)

	assert.Equal(t, "solo-branch", doc.Branch)
	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, DefaultRepository, doc.Repository)
	assert.Equal(t, DefaultProvider, doc.Provider)
	assert.Equal(t, DefaultModel, doc.Model)
}

func TestExtractMetadataFirstPatternWins(t *testing.T) {
	// Bold-labelled lines outrank plain ones regardless of position.
	report := "Branch: plain-first\n**Branch:** bold-later\n"
	doc := newDefaultDoc()
	extractMetadata(report, doc)

	assert.Equal(t, "bold-later", doc.Branch)
}

func TestExtractMetadataTitleFromHeading(t *testing.T) {
	doc := newDefaultDoc()
	extractMetadata("## Not a title\n# Actual **Title**\n", doc)
	assert.Equal(t, "Actual Title", doc.Title)
}
