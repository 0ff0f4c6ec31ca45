package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// MergeCommitPrefix marks merge commits created by GitHub pull request merges
const MergeCommitPrefix = "Merge pull request"

// Commit is a single commit in a range. Files is populated only when the
// commit was fetched for path scoping.
type Commit struct {
	SHA         string
	Message     string
	Files       []string
	CommittedAt time.Time
}

// IsMerge reports whether the commit was created by a pull request merge
func (x *Commit) IsMerge() bool {
	return IsMergeMessage(x.Message)
}

// IsMergeMessage reports whether msg starts with the pull request merge marker
func IsMergeMessage(msg string) bool {
	return strings.HasPrefix(msg, MergeCommitPrefix)
}

// CommitQuery filters the commit listing. Empty Path lists every commit
// in the window.
type CommitQuery struct {
	Path    string
	Since   time.Time
	Until   time.Time
	PerPage int
}

// CommitRange identifies the commits between two successful runs. SHAs are
// used by the local backend, the time window by the remote one.
type CommitRange struct {
	Repo   types.RepoID
	OldSHA string
	NewSHA string
	Since  time.Time
	Until  time.Time
}

// RangeResult is the scoped release delta handed to downstream consumers
type RangeResult struct {
	Backend        Backend
	From           string
	To             string
	Diff           string
	CommitMessages []string
	// Ordered is true when CommitMessages follows commit-time order (newest first)
	Ordered bool
}

// UniqueMessages returns msgs without duplicates, keeping first occurrence order
func UniqueMessages(msgs []string) []string {
	seen := make(map[string]struct{}, len(msgs))
	result := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		result = append(result, m)
	}
	return result
}
