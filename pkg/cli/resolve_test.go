package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

func TestPrintDelta(t *testing.T) {
	color.NoColor = true
	repo := types.RepoID{Owner: "acme", Name: "web"}

	t.Run("resolved", func(t *testing.T) {
		delta := &model.ReleaseDelta{
			Run:         &model.Run{ID: 100, Attempt: 2, Repository: repo, HeadSHA: "bbb"},
			PreviousRun: &model.Run{ID: 99, HeadSHA: "aaa"},
			Repository:  &model.Repository{ID: repo},
			AppName:     "payments",
			Range: &model.RangeResult{
				Backend:        model.BackendLocal,
				From:           "aaa",
				To:             "bbb",
				Diff:           "diff --git a/x b/x\n+added\n-removed",
				CommitMessages: []string{"feat: refund (#7)\n\nbody"},
				Ordered:        true,
			},
			PullRequests: []*model.PullRequest{{Number: 7, Title: "Refund", Author: "octocat"}},
			JiraKeys:     []string{"PAY-1"},
		}

		var buf bytes.Buffer
		printDelta(&buf, delta, true)
		out := buf.String()

		gt.String(t, out).Contains("Run 100 (attempt 2) of acme/web")
		gt.String(t, out).Contains("Application: payments")
		gt.String(t, out).Contains("aaa...bbb via local backend")
		gt.String(t, out).Contains("https://github.com/acme/web/compare/aaa...bbb")
		gt.String(t, out).Contains("Commits (1, newest first)")
		gt.String(t, out).Contains("  - feat: refund (#7)\n")
		gt.String(t, out).Contains("#7 Refund (octocat)")
		gt.String(t, out).Contains("Issues: PAY-1")
		gt.String(t, out).Contains("+added")
	})

	t.Run("skipped", func(t *testing.T) {
		var buf bytes.Buffer
		printDelta(&buf, &model.ReleaseDelta{
			Run:        &model.Run{ID: 100, Attempt: 1, Repository: repo},
			SkipReason: "no previous successful run",
		}, false)

		gt.String(t, buf.String()).Contains("Skipped: no previous successful run")
	})
}

func TestFetchRun(t *testing.T) {
	repo := types.RepoID{Owner: "acme", Name: "web"}

	client := &mocks.GitHubClientMock{
		GetWorkflowRunFunc: func(ctx context.Context, repo types.RepoID, runID int64) (*model.Run, error) {
			return &model.Run{ID: runID, Attempt: 3}, nil
		},
		GetWorkflowRunAttemptFunc: func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
			if attempt > 3 {
				return nil, nil
			}
			return &model.Run{ID: runID, Attempt: attempt}, nil
		},
	}

	run, err := fetchRun(context.Background(), client, repo, 10, 0)
	gt.NoError(t, err)
	gt.Equal(t, run.Attempt, 3)

	run, err = fetchRun(context.Background(), client, repo, 10, 2)
	gt.NoError(t, err)
	gt.Equal(t, run.Attempt, 2)

	_, err = fetchRun(context.Background(), client, repo, 10, 5)
	gt.Error(t, err)
}
