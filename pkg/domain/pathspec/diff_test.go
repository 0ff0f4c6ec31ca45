package pathspec_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
)

const webSection = `diff --git a/apps/web/x.ts b/apps/web/x.ts
index 1111111..2222222 100644
--- a/apps/web/x.ts
+++ b/apps/web/x.ts
@@ -1,2 +1,2 @@
 export const a = 1;
-export const b = 2;
+export const b = 3;`

const apiSection = `diff --git a/apps/api/y.ts b/apps/api/y.ts
index 3333333..4444444 100644
--- a/apps/api/y.ts
+++ b/apps/api/y.ts
@@ -1 +1,2 @@
 export const c = 1;
+export const d = 2;`

const lockSection = `diff --git a/yarn.lock b/yarn.lock
index 5555555..6666666 100644
--- a/yarn.lock
+++ b/yarn.lock
@@ -1 +1 @@
-old
+new`

func joinSections(sections ...string) string {
	return strings.Join(sections, "\n") + "\n"
}

func countHeaders(diff string) int {
	return strings.Count("\n"+diff, "\ndiff --git ")
}

func TestFilterDiff_KeepsOnlyIncludedSection(t *testing.T) {
	spec, err := pathspec.New([]string{"apps/web/*"}, nil)
	gt.NoError(t, err)

	got := spec.FilterDiff(joinSections(webSection, apiSection))
	gt.Equal(t, got, webSection+"\n")
	gt.String(t, got).NotContains("apps/api")
	gt.String(t, got).NotContains("export const d")
}

func TestFilterDiff_DropsInfraWithoutSpec(t *testing.T) {
	var spec *pathspec.Spec
	got := spec.FilterDiff(joinSections(lockSection, webSection))
	gt.Equal(t, got, webSection+"\n")
}

func TestFilterDiff_TrailingNewline(t *testing.T) {
	spec, err := pathspec.New([]string{"apps/web/*"}, nil)
	gt.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "last section dropped", in: joinSections(webSection, apiSection), want: webSection + "\n"},
		{name: "first section dropped", in: joinSections(apiSection, webSection), want: webSection + "\n"},
		{name: "no trailing newline in input", in: webSection + "\n" + apiSection, want: webSection},
		{name: "everything dropped", in: joinSections(apiSection), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spec.FilterDiff(tt.in)
			gt.Equal(t, got, tt.want)
			gt.Equal(t, spec.FilterDiff(got), got)
		})
	}
}

func TestFilterDiff_NoOpWhenAllInScope(t *testing.T) {
	spec, err := pathspec.New([]string{"apps/**"}, []string{"docs/**"})
	gt.NoError(t, err)

	inputs := []string{
		"",
		webSection,
		joinSections(webSection, apiSection),
		"preamble line\n" + joinSections(apiSection),
		strings.ReplaceAll(joinSections(webSection, apiSection), "\n", "\r\n"),
	}
	for _, in := range inputs {
		gt.Equal(t, spec.FilterDiff(in), in)
		gt.Equal(t, spec.FilterDiff(spec.FilterDiff(in)), in)
	}
}

func TestFilterDiff_HeaderCount(t *testing.T) {
	spec, err := pathspec.New([]string{"apps/web/**"}, []string{"apps/web/**/*.md"})
	gt.NoError(t, err)

	section := func(path string) string {
		return "diff --git a/" + path + " b/" + path + "\n@@ -1 +1 @@\n-" + path + " old\n+" + path + " new"
	}
	paths := []string{
		"apps/web/a.ts",      // in
		"apps/web/README.md", // out
		"apps/api/b.ts",      // out
		"apps/web/lib/c.ts",  // in
		"dist/app.js",        // out
	}

	var sections []string
	for _, p := range paths {
		sections = append(sections, section(p))
	}
	got := spec.FilterDiff(joinSections(sections...))

	gt.Equal(t, countHeaders(got), 2)
	for _, dropped := range []string{"apps/web/README.md", "apps/api/b.ts", "dist/app.js"} {
		gt.String(t, got).NotContains(dropped)
	}
	gt.String(t, got).Contains("+apps/web/lib/c.ts new")
}

func TestFilterDiff_Renames(t *testing.T) {
	spec, err := pathspec.New([]string{"apps/web/**"}, nil)
	gt.NoError(t, err)

	diff := joinSections(
		"diff --git a/apps/api/old.ts b/apps/web/new.ts\nsimilarity index 100%\nrename from apps/api/old.ts\nrename to apps/web/new.ts",
		"diff --git a/apps/web/gone.ts b/apps/api/moved.ts\nsimilarity index 100%\nrename from apps/web/gone.ts\nrename to apps/api/moved.ts",
	)
	got := spec.FilterDiff(diff)
	gt.String(t, got).Contains("rename to apps/web/new.ts")
	gt.String(t, got).NotContains("apps/api/moved.ts")
}

func TestFilterDiff_PathContainingBSlash(t *testing.T) {
	spec, err := pathspec.New([]string{"lib/b/**"}, nil)
	gt.NoError(t, err)

	diff := "diff --git a/lib/b/x.go b/lib/b/x.go\n@@ -1 +1 @@\n-a\n+b"
	gt.Equal(t, spec.FilterDiff(diff), diff)
}

func TestFilterDiff_QuotedPath(t *testing.T) {
	spec, err := pathspec.New([]string{"docs/**"}, nil)
	gt.NoError(t, err)

	diff := joinSections(
		"diff --git \"a/docs/my file.md\" \"b/docs/my file.md\"\n@@ -1 +1 @@\n-a\n+b",
		"diff --git \"a/src/my file.go\" \"b/src/my file.go\"\n@@ -1 +1 @@\n-a\n+b",
	)
	got := spec.FilterDiff(diff)
	gt.String(t, got).Contains("docs/my file.md")
	gt.String(t, got).NotContains("src/my file.go")
}

func TestParseDocument(t *testing.T) {
	doc := pathspec.ParseDocument("preamble\n" + joinSections(webSection, apiSection))
	gt.Equal(t, len(doc.Sections), 3)
	gt.Equal(t, doc.Sections[0].Path, "")
	gt.Equal(t, doc.Paths(), []string{"apps/web/x.ts", "apps/api/y.ts"})
	gt.Equal(t, doc.String(), "preamble\n"+joinSections(webSection, apiSection))

	gt.Equal(t, len(pathspec.ParseDocument("").Sections), 0)
}

func TestStat(t *testing.T) {
	stat, err := pathspec.Stat(joinSections(webSection, apiSection))
	gt.NoError(t, err)
	gt.Equal(t, stat.Files, 2)
	gt.Equal(t, stat.Added, 2)
	gt.Equal(t, stat.Deleted, 1)

	empty, err := pathspec.Stat("  \n")
	gt.NoError(t, err)
	gt.Equal(t, *empty, pathspec.DiffStat{})
}
