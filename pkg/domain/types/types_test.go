package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

func TestParseRepoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.RepoID
		wantErr bool
	}{
		{name: "valid", input: "acme/web", want: types.RepoID{Owner: "acme", Name: "web"}},
		{name: "missing slash", input: "acme", wantErr: true},
		{name: "empty owner", input: "/web", wantErr: true},
		{name: "nested", input: "acme/web/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRepoID(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tt.want)
			gt.Equal(t, got.String(), tt.input)
		})
	}
}
