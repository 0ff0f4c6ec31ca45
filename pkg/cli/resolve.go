package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/cli/config"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var (
		githubCfg config.GitHub
		deltaCfg  config.Delta
		geminiCfg config.Gemini
		slackCfg  config.Slack

		repoName string
		runID    int64
		attempt  int
		notify   bool
		showDiff bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository as owner/name",
			Required:    true,
			Destination: &repoName,
		},
		&cli.Int64Flag{
			Name:        "run-id",
			Usage:       "Workflow run ID",
			Required:    true,
			Destination: &runID,
		},
		&cli.IntFlag{
			Name:        "attempt",
			Usage:       "Run attempt. The latest attempt when 0",
			Destination: &attempt,
		},
		&cli.BoolFlag{
			Name:        "notify",
			Usage:       "Summarize and send the notification instead of printing only",
			Destination: &notify,
		},
		&cli.BoolFlag{
			Name:        "diff",
			Usage:       "Print the filtered diff",
			Destination: &showDiff,
		},
	}
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, deltaCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve the release delta of one workflow run",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := types.ParseRepoID(repoName)
			if err != nil {
				return err
			}

			client, cred, err := githubCfg.NewClient(ctx)
			if err != nil {
				return err
			}

			run, err := fetchRun(ctx, client, repo, runID, attempt)
			if err != nil {
				return err
			}

			releaseDeltaUC, err := newReleaseDelta(ctx, client, cred, &deltaCfg, &geminiCfg, &slackCfg)
			if err != nil {
				return err
			}

			delta, err := releaseDeltaUC.Resolve(ctx, &model.DeltaRequest{Run: run})
			if err != nil {
				return err
			}

			printDelta(color.Output, delta, showDiff)

			if notify && !delta.Skipped() {
				if err := releaseDeltaUC.Publish(ctx, delta); err != nil {
					return err
				}
				ctxlog.From(ctx).Info("Release delta published", "run_id", run.ID)
			}
			return nil
		},
	}
}

func fetchRun(ctx context.Context, client interfaces.GitHubClient, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
	var run *model.Run
	var err error
	if attempt > 0 {
		run, err = client.GetWorkflowRunAttempt(ctx, repo, runID, attempt)
	} else {
		run, err = client.GetWorkflowRun(ctx, repo, runID)
	}
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, goerr.New("workflow run not found",
			goerr.V("repo", repo.String()),
			goerr.V("run_id", runID),
			goerr.V("attempt", attempt),
		)
	}
	return run, nil
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.Bold)
	skipColor   = color.New(color.FgYellow)
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
)

// printDelta writes a human readable rendering of delta to w
func printDelta(w io.Writer, delta *model.ReleaseDelta, showDiff bool) {
	headerColor.Fprintf(w, "Run %d (attempt %d) of %s\n", delta.Run.ID, delta.Run.Attempt, delta.Run.Repository.String())

	if delta.Skipped() {
		skipColor.Fprintf(w, "Skipped: %s\n", delta.SkipReason)
		return
	}

	labelColor.Fprint(w, "Application: ")
	fmt.Fprintln(w, delta.AppName)
	labelColor.Fprint(w, "Previous run: ")
	fmt.Fprintf(w, "%d (%s)\n", delta.PreviousRun.ID, delta.PreviousRun.HeadSHA)
	labelColor.Fprint(w, "Range: ")
	fmt.Fprintf(w, "%s...%s via %s backend\n", delta.Range.From, delta.Range.To, delta.Range.Backend)
	if url := delta.CompareURL(); url != "" {
		labelColor.Fprint(w, "Compare: ")
		fmt.Fprintln(w, url)
	}

	order := "unordered"
	if delta.Range.Ordered {
		order = "newest first"
	}
	labelColor.Fprintf(w, "\nCommits (%d, %s)\n", len(delta.Range.CommitMessages), order)
	for _, msg := range delta.Range.CommitMessages {
		line, _, _ := strings.Cut(msg, "\n")
		fmt.Fprintf(w, "  - %s\n", line)
	}

	if len(delta.PullRequests) > 0 {
		labelColor.Fprintf(w, "\nPull requests (%d)\n", len(delta.PullRequests))
		for _, pr := range delta.PullRequests {
			fmt.Fprintf(w, "  #%d %s (%s)\n", pr.Number, pr.Title, pr.Author)
		}
	}

	if len(delta.JiraKeys) > 0 {
		labelColor.Fprint(w, "\nIssues: ")
		fmt.Fprintln(w, strings.Join(delta.JiraKeys, ", "))
	}

	if showDiff {
		labelColor.Fprintln(w, "\nDiff")
		for _, line := range strings.Split(delta.Range.Diff, "\n") {
			switch {
			case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
				addColor.Fprintln(w, line)
			case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
				delColor.Fprintln(w, line)
			default:
				fmt.Fprintln(w, line)
			}
		}
	}
}
