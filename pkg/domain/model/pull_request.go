package model

import (
	"regexp"
	"sort"
	"strconv"
)

// PullRequest is a pull request correlated with a release delta
type PullRequest struct {
	Number  int
	Title   string
	Author  string
	HTMLURL string
}

var prNumberPattern = regexp.MustCompile(`#(\d+)`)

// ParsePullRequestNumber extracts the first #<digits> reference from a
// commit message. It returns 0 if none is found.
func ParsePullRequestNumber(msg string) int {
	m := prNumberPattern.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// PullRequestNumbers returns the distinct pull request numbers referenced by
// msgs in ascending order
func PullRequestNumbers(msgs []string) []int {
	seen := map[int]struct{}{}
	var numbers []int
	for _, msg := range msgs {
		n := ParsePullRequestNumber(msg)
		if n == 0 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

var anyJiraKeyPattern = regexp.MustCompile(`\b[A-Z][A-Z0-9]+-\d+\b`)

// ExtractJiraKeys returns the distinct Jira issue keys found in msgs, sorted.
// When project is set, only keys of that project are returned. Each message
// contributes its first key.
func ExtractJiraKeys(msgs []string, project string) []string {
	pattern := anyJiraKeyPattern
	if project != "" {
		pattern = regexp.MustCompile(`\b` + regexp.QuoteMeta(project) + `-\d+\b`)
	}

	seen := map[string]struct{}{}
	var keys []string
	for _, msg := range msgs {
		key := pattern.FindString(msg)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
