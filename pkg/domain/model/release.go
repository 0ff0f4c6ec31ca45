package model

import (
	"fmt"
	"strings"
)

// DeltaRequest starts release delta resolution for a completed run
type DeltaRequest struct {
	Run        *Run
	Repository *Repository
}

// ReleaseDelta is the outcome of resolving a run. SkipReason is set, and
// Range is nil, when there is nothing to publish.
type ReleaseDelta struct {
	Run          *Run
	PreviousRun  *Run
	Repository   *Repository
	AppName      string
	Range        *RangeResult
	PullRequests []*PullRequest
	JiraKeys     []string
	Summary      *ReleaseSummary
	SkipReason   string
}

// Skipped reports whether resolution ended without a delta
func (x *ReleaseDelta) Skipped() bool {
	return x.SkipReason != ""
}

// CompareURL returns the GitHub compare page between the two runs
func (x *ReleaseDelta) CompareURL() string {
	if x.Repository == nil || x.PreviousRun == nil || x.Run == nil {
		return ""
	}
	base := x.Repository.HTMLURL
	if base == "" {
		base = "https://github.com/" + x.Repository.ID.String()
	}
	return fmt.Sprintf("%s/compare/%s...%s", strings.TrimSuffix(base, "/"), x.PreviousRun.HeadSHA, x.Run.HeadSHA)
}

// ReleaseSummary is the LLM generated summary of a release delta
type ReleaseSummary struct {
	Title      string            `json:"title"`
	Categories []SummaryCategory `json:"categories"`
}

// SummaryCategory groups summary items, e.g. features or fixes
type SummaryCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}
