// Package diff parses the unified diff embedded in a review report
// into a structured, per-file representation.
package diff

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// File represents a single file in a diff with its parsed fragments.
type File struct {
	OldName      string
	NewName      string
	IsNew        bool
	IsDeleted    bool
	IsRenamed    bool
	IsBinary     bool
	Fragments    []*gitdiff.TextFragment
	AddedLines   int
	DeletedLines int
}

// Name returns the display name for the file.
func (f *File) Name() string {
	if f.IsRenamed {
		return fmt.Sprintf("%s → %s", f.OldName, f.NewName)
	}
	if f.IsNew {
		return f.NewName
	}
	if f.IsDeleted {
		return f.OldName
	}
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}

// DiffSet holds the parsed diff for all files.
type DiffSet struct {
	Files []*File
	Raw   string // the raw unified diff text
}

// Stats returns aggregate statistics.
func (ds *DiffSet) Stats() (files, added, deleted int) {
	files = len(ds.Files)
	for _, f := range ds.Files {
		added += f.AddedLines
		deleted += f.DeletedLines
	}
	return
}

// Parse reads the diff content recovered from a report. Reports embed
// anything from full git diffs to bare hunk fragments; fragments that
// go-gitdiff cannot interpret yield an error the caller may treat as
// "present but unverifiable".
func Parse(raw string) (*DiffSet, error) {
	parsed, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	ds := &DiffSet{Raw: raw}
	for _, f := range parsed {
		df := &File{
			IsNew:     f.IsNew,
			IsDeleted: f.IsDelete,
			IsRenamed: f.IsRename,
			IsBinary:  f.IsBinary,
		}

		if f.OldName != "" {
			df.OldName = f.OldName
		}
		if f.NewName != "" {
			df.NewName = f.NewName
		}

		for _, frag := range f.TextFragments {
			df.Fragments = append(df.Fragments, frag)
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					df.AddedLines++
				case gitdiff.OpDelete:
					df.DeletedLines++
				}
			}
		}

		ds.Files = append(ds.Files, df)
	}

	return ds, nil
}

// Summary renders a one-line stat like "2 file(s), +10 -3", or a note
// that the diff carried no parseable files.
func (ds *DiffSet) Summary() string {
	files, added, deleted := ds.Stats()
	if files == 0 {
		return "no parseable files in diff"
	}
	return fmt.Sprintf("%d file(s), +%d -%d", files, added, deleted)
}
