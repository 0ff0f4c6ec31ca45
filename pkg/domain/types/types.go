package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Version is the application version, overridden at build time
var Version = "dev"

// RepoID identifies a GitHub repository by owner and name
type RepoID struct {
	Owner string
	Name  string
}

// ParseRepoID parses "owner/name" into RepoID
func ParseRepoID(fullName string) (RepoID, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoID{}, goerr.New("invalid repository name, expected owner/name", goerr.V("name", fullName))
	}
	return RepoID{Owner: owner, Name: name}, nil
}

func (x RepoID) String() string {
	return x.Owner + "/" + x.Name
}

// IsZero reports whether the ID is unset
func (x RepoID) IsZero() bool {
	return x.Owner == "" && x.Name == ""
}
