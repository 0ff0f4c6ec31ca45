package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/usecase"
)

func newLLMMock(response string, captured *[]gollem.Input) *mock.LLMClientMock {
	return &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
			return &mock.SessionMock{
				GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
					*captured = input
					return &gollem.Response{Texts: []string{response}}, nil
				},
			}, nil
		},
	}
}

func summaryDelta(diff string) *model.ReleaseDelta {
	return &model.ReleaseDelta{
		Run:         last(attemptChain(100, success)),
		PreviousRun: last(attemptChain(99, success)),
		AppName:     "payments",
		Range: &model.RangeResult{
			From:           "sha-99",
			To:             "sha-100",
			Diff:           diff,
			CommitMessages: []string{"feat: refund endpoint", "fix: rounding"},
		},
		PullRequests: []*model.PullRequest{{Number: 7, Title: "Refund endpoint"}},
	}
}

func TestSummarizer_Summarize(t *testing.T) {
	want := model.ReleaseSummary{
		Title: "Refunds and rounding",
		Categories: []model.SummaryCategory{
			{Name: "Features", Items: []string{"Refund endpoint"}},
			{Name: "Fixes", Items: []string{"Rounding of amounts"}},
		},
	}
	raw, err := json.Marshal(want)
	gt.NoError(t, err)

	var captured []gollem.Input
	s, err := usecase.NewSummarizer(newLLMMock(string(raw), &captured))
	gt.NoError(t, err)

	summary, err := s.Summarize(context.Background(), summaryDelta(compareDiff))
	gt.NoError(t, err)
	gt.Equal(t, *summary, want)

	gt.Equal(t, len(captured), 1)
	prompt, ok := captured[0].(gollem.Text)
	gt.True(t, ok)
	gt.String(t, string(prompt)).Contains("Application: payments")
	gt.String(t, string(prompt)).Contains("Repository: acme/web")
	gt.String(t, string(prompt)).Contains("- feat: refund endpoint")
	gt.String(t, string(prompt)).Contains("- #7 Refund endpoint")
	gt.String(t, string(prompt)).Contains("apps/payments/a.go")
}

func TestSummarizer_TruncatesLargeDiff(t *testing.T) {
	line := "+" + strings.Repeat("x", 99) + "\n"
	diff := "diff --git a/big.txt b/big.txt\n" + strings.Repeat(line, 1000)

	var captured []gollem.Input
	s, err := usecase.NewSummarizer(newLLMMock(`{"title":"big"}`, &captured))
	gt.NoError(t, err)

	_, err = s.Summarize(context.Background(), summaryDelta(diff))
	gt.NoError(t, err)

	prompt := string(captured[0].(gollem.Text))
	gt.String(t, prompt).Contains("...(truncated)")
	gt.True(t, len(prompt) < len(diff))
}

func TestSummarizer_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		var captured []gollem.Input
		s, err := usecase.NewSummarizer(newLLMMock("not json", &captured))
		gt.NoError(t, err)

		_, err = s.Summarize(context.Background(), summaryDelta(compareDiff))
		gt.Error(t, err)
	})

	t.Run("empty response", func(t *testing.T) {
		client := &mock.LLMClientMock{
			NewSessionFunc: func(ctx context.Context, opts ...gollem.SessionOption) (gollem.Session, error) {
				return &mock.SessionMock{
					GenerateFunc: func(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
						return &gollem.Response{}, nil
					},
				}, nil
			},
		}
		s, err := usecase.NewSummarizer(client)
		gt.NoError(t, err)

		_, err = s.Summarize(context.Background(), summaryDelta(compareDiff))
		gt.Error(t, err)
	})

	t.Run("unresolved delta", func(t *testing.T) {
		var captured []gollem.Input
		s, err := usecase.NewSummarizer(newLLMMock("{}", &captured))
		gt.NoError(t, err)

		_, err = s.Summarize(context.Background(), &model.ReleaseDelta{SkipReason: usecase.SkipNoPreviousRun})
		gt.Error(t, err)
		gt.Equal(t, len(captured), 0)
	})
}
