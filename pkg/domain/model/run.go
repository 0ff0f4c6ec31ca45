package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// Conclusion is the final state of a workflow run. Empty while pending.
type Conclusion string

const (
	ConclusionNone      Conclusion = ""
	ConclusionSuccess   Conclusion = "success"
	ConclusionFailure   Conclusion = "failure"
	ConclusionCancelled Conclusion = "cancelled"
	ConclusionSkipped   Conclusion = "skipped"
	ConclusionTimedOut  Conclusion = "timed_out"
)

// Run is one attempt of a GitHub Actions workflow run
type Run struct {
	ID                 int64
	Attempt            int
	Repository         types.RepoID
	HeadSHA            string
	HeadBranch         string
	Event              string
	Path               string // Workflow file path, e.g. .github/workflows/deploy.yml
	CreatedAt          time.Time
	HeadCommitAt       time.Time
	Conclusion         Conclusion
	HTMLURL            string
	PreviousAttemptURL string
}

// IsSuccessful reports whether the run itself concluded with success
func (r *Run) IsSuccessful() bool {
	return r.Conclusion == ConclusionSuccess
}

// PreviousAttempt returns the attempt number of the retry that preceded r.
// The number is taken from the previous attempt URL when it ends in
// /attempts/<n>, otherwise Attempt-1 is assumed.
func (r *Run) PreviousAttempt() (int, bool) {
	if r.PreviousAttemptURL == "" {
		return 0, false
	}

	if idx := strings.LastIndex(r.PreviousAttemptURL, "/attempts/"); idx >= 0 {
		if n, err := strconv.Atoi(r.PreviousAttemptURL[idx+len("/attempts/"):]); err == nil && n > 0 {
			return n, true
		}
	}

	if r.Attempt <= 1 {
		return 0, false
	}
	return r.Attempt - 1, true
}

// LogAttrs returns compact attributes for structured logging
func (r *Run) LogAttrs() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"attempt":    r.Attempt,
		"repo":       r.Repository.String(),
		"head_sha":   r.HeadSHA,
		"branch":     r.HeadBranch,
		"path":       r.Path,
		"conclusion": string(r.Conclusion),
	}
}

// RunQuery filters the workflow run history listing
type RunQuery struct {
	Branch        string
	Event         string
	CreatedBefore time.Time
	PerPage       int
}
