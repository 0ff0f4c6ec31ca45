package pathspec

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	godiff "github.com/sourcegraph/go-diff/diff"
)

const fileHeaderPrefix = "diff --git "

type lineKind int

const (
	bodyLine lineKind = iota
	fileHeaderLine
)

type sectionState int

const (
	inScopeSection sectionState = iota
	outOfScopeSection
)

// classifyLine tells file headers from body lines. For a header it also
// returns the post-image path, or "" when the header cannot be parsed.
func classifyLine(line string) (lineKind, string) {
	rest, ok := strings.CutPrefix(line, fileHeaderPrefix)
	if !ok {
		return bodyLine, ""
	}
	return fileHeaderLine, postImagePath(rest)
}

// postImagePath extracts the b/ side of `a/<old> b/<new>`, including the
// quoted form git uses for paths with special characters.
func postImagePath(header string) string {
	header = strings.TrimRight(header, "\r")

	if strings.HasSuffix(header, `"`) {
		if idx := strings.LastIndex(header, ` "b/`); idx >= 0 {
			return strings.TrimSuffix(header[idx+len(` "b/`):], `"`)
		}
		return ""
	}

	if idx := strings.LastIndex(header, " b/"); idx >= 0 {
		return header[idx+len(" b/"):]
	}
	return ""
}

// scopeOf decides the state for a section whose post-image path is path
func (x *Spec) scopeOf(path string) sectionState {
	if path == "" {
		return inScopeSection
	}
	if IsIgnoredInfraPath(path) || !x.IsIncluded(path) {
		return outOfScopeSection
	}
	return inScopeSection
}

// FilterDiff drops whole file sections of a unified git diff that are out
// of scope. Kept lines are returned verbatim. Lines before the first file
// header are kept. A nil Spec still drops ignored infra paths. A trailing
// newline of the input is kept whenever any line is.
func (x *Spec) FilterDiff(diffText string) string {
	body, trailing := strings.CutSuffix(diffText, "\n")
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))

	state := inScopeSection
	for _, line := range lines {
		kind, path := classifyLine(line)
		if kind == fileHeaderLine {
			state = x.scopeOf(path)
		}

		switch state {
		case inScopeSection:
			kept = append(kept, line)
		case outOfScopeSection:
			// dropped until the next file header
		}
	}

	out := strings.Join(kept, "\n")
	if trailing && len(kept) > 0 {
		out += "\n"
	}
	return out
}

// Section is one file of a diff. Path is the post-image path, empty for
// the preamble before the first file header.
type Section struct {
	Path  string
	Lines []string
}

// Document is a diff split into per-file sections
type Document struct {
	Sections []Section
}

// ParseDocument splits a unified git diff into sections
func ParseDocument(diffText string) *Document {
	doc := &Document{}
	if diffText == "" {
		return doc
	}

	var current *Section
	for _, line := range strings.Split(diffText, "\n") {
		kind, path := classifyLine(line)
		if kind == fileHeaderLine || current == nil {
			doc.Sections = append(doc.Sections, Section{Path: path})
			current = &doc.Sections[len(doc.Sections)-1]
		}
		current.Lines = append(current.Lines, line)
	}
	return doc
}

// Paths returns the post-image path of every file section in order
func (x *Document) Paths() []string {
	var paths []string
	for _, s := range x.Sections {
		if s.Path != "" {
			paths = append(paths, s.Path)
		}
	}
	return paths
}

// String renders the document back into diff text
func (x *Document) String() string {
	var lines []string
	for _, s := range x.Sections {
		lines = append(lines, s.Lines...)
	}
	return strings.Join(lines, "\n")
}

// DiffStat summarizes a diff
type DiffStat struct {
	Files   int
	Added   int
	Deleted int
}

// Stat counts files and changed lines of a unified diff
func Stat(diffText string) (*DiffStat, error) {
	if strings.TrimSpace(diffText) == "" {
		return &DiffStat{}, nil
	}

	files, err := godiff.ParseMultiFileDiff([]byte(diffText))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse diff")
	}

	stat := &DiffStat{Files: len(files)}
	for _, f := range files {
		s := f.Stat()
		stat.Added += int(s.Added + s.Changed)
		stat.Deleted += int(s.Deleted + s.Changed)
	}
	return stat, nil
}
