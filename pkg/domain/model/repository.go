package model

import "github.com/m-mizutani/shipnote/pkg/domain/types"

// Repository is the subset of repository metadata needed to resolve a delta
type Repository struct {
	ID            types.RepoID
	DefaultBranch string
	SizeKB        int
	HTMLURL       string
	CloneURL      string
}

// Backend names a RangeFetcher implementation
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

// RepositorySettings are per-repository overrides loaded from the settings file
type RepositorySettings struct {
	Name              string  `toml:"name"`
	Paths             string  `toml:"paths"`
	AppName           string  `toml:"app_name"`
	HistorySameBranch *bool   `toml:"history_same_branch"`
	ForceBackend      Backend `toml:"force_backend"`
}

// RepositorySettingsSet is an ordered list of overrides. The first entry
// whose Name matches wins.
type RepositorySettingsSet []RepositorySettings

// Lookup returns the overrides for repo, or zero settings if none exist
func (x RepositorySettingsSet) Lookup(repo types.RepoID) RepositorySettings {
	for _, s := range x {
		if s.Name == repo.String() {
			return s
		}
	}
	return RepositorySettings{Name: repo.String()}
}
