// Package pathspec decides which files of a repository belong to a release.
package pathspec

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// ignoredInfraPaths are path fragments that never scope a release. Entries
// and diff sections containing any of them are dropped.
var ignoredInfraPaths = []string{
	".github",
	"build",
	"Cargo.lock",
	"coverage",
	"dist",
	"target",
	"node_modules",
	"package-lock.json",
	"yarn.lock",
}

// IsIgnoredInfraPath reports whether path contains an ignored infra fragment
func IsIgnoredInfraPath(path string) bool {
	for _, frag := range ignoredInfraPaths {
		if strings.Contains(path, frag) {
			return true
		}
	}
	return false
}

// Spec is a compiled set of include and exclude globs. Exclusion wins over
// inclusion, and an empty include set matches everything not excluded.
//
// A nil *Spec means no scoping: every method treats it as "everything is
// in scope".
type Spec struct {
	included []string
	excluded []string
}

// New builds a Spec from include and exclude globs after dropping entries
// that reference ignored infra paths. It returns nil when nothing remains.
func New(included, excluded []string) (*Spec, error) {
	spec := &Spec{}
	for _, p := range included {
		if p == "" || IsIgnoredInfraPath(p) {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, goerr.New("invalid path pattern", goerr.V("pattern", p))
		}
		spec.included = append(spec.included, p)
	}
	for _, p := range excluded {
		if p == "" || IsIgnoredInfraPath(p) {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, goerr.New("invalid path pattern", goerr.V("pattern", p))
		}
		spec.excluded = append(spec.excluded, p)
	}

	if len(spec.included) == 0 && len(spec.excluded) == 0 {
		return nil, nil
	}
	return spec, nil
}

// FromInput builds a Spec from a comma or newline separated list. Entries
// prefixed with "!" are exclusions.
func FromInput(raw string) (*Spec, error) {
	entries := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var included, excluded []string
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(e, "!"); ok {
			excluded = append(excluded, rest)
		} else {
			included = append(included, e)
		}
	}
	return New(included, excluded)
}

// FromWorkflow builds a Spec from on.push.paths and on.push.paths-ignore
func FromWorkflow(cfg *model.WorkflowConfig) (*Spec, error) {
	var included, excluded []string
	for _, p := range cfg.PushPaths() {
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			excluded = append(excluded, rest)
		} else {
			included = append(included, p)
		}
	}
	excluded = append(excluded, cfg.PushPathsIgnore()...)

	spec, err := New(included, excluded)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build path spec from workflow")
	}
	return spec, nil
}

// Included returns the include globs
func (x *Spec) Included() []string {
	if x == nil {
		return nil
	}
	return x.included
}

// Excluded returns the exclude globs
func (x *Spec) Excluded() []string {
	if x == nil {
		return nil
	}
	return x.excluded
}

// IsIncluded reports whether path is in scope
func (x *Spec) IsIncluded(path string) bool {
	if x == nil {
		return true
	}
	if len(x.included) > 0 && !matchAny(x.included, path) {
		return false
	}
	return !matchAny(x.excluded, path)
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		// Patterns are validated in New, so Match cannot fail here
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

const globMeta = "*[]?!+{}"

// SanitizedIncludedPrefixes turns include globs into literal path prefixes
// for the commit listing API, which does not understand globs. Each prefix is
// the run of path segments before the first segment holding a glob
// metacharacter. A pattern without such a prefix yields "", the repository
// root, which makes every other prefix redundant.
func (x *Spec) SanitizedIncludedPrefixes() []string {
	if x == nil {
		return nil
	}

	seen := map[string]struct{}{}
	var prefixes []string
	for _, p := range x.included {
		prefix := literalPrefix(p)
		if prefix == "" {
			return []string{""}
		}
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

func literalPrefix(pattern string) string {
	var segments []string
	for _, seg := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if seg == "" {
			continue
		}
		if strings.ContainsAny(seg, globMeta) {
			break
		}
		segments = append(segments, seg)
	}
	return strings.Join(segments, "/")
}
