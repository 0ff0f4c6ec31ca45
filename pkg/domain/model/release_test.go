package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

func TestReleaseDelta_CompareURL(t *testing.T) {
	delta := &model.ReleaseDelta{
		Run:         &model.Run{HeadSHA: "bbb"},
		PreviousRun: &model.Run{HeadSHA: "aaa"},
		Repository:  &model.Repository{ID: types.RepoID{Owner: "acme", Name: "web"}},
	}
	gt.Equal(t, delta.CompareURL(), "https://github.com/acme/web/compare/aaa...bbb")

	delta.Repository.HTMLURL = "https://ghe.example.com/acme/web/"
	gt.Equal(t, delta.CompareURL(), "https://ghe.example.com/acme/web/compare/aaa...bbb")

	gt.Equal(t, (&model.ReleaseDelta{}).CompareURL(), "")
	gt.False(t, delta.Skipped())
}
