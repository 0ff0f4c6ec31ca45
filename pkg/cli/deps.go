package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/shipnote/pkg/cli/config"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/usecase"
)

// newReleaseDelta wires the release delta use case from configuration
func newReleaseDelta(ctx context.Context, client interfaces.GitHubClient, tokens interfaces.TokenProvider, deltaCfg *config.Delta, geminiCfg *config.Gemini, slackCfg *config.Slack) (interfaces.ReleaseDeltaUseCase, error) {
	logger := ctxlog.From(ctx)

	opts, err := deltaCfg.Options(tokens)
	if err != nil {
		return nil, err
	}

	summarizer, err := geminiCfg.Summarizer(ctx)
	if err != nil {
		return nil, err
	}
	if summarizer != nil {
		opts = append(opts, usecase.WithSummarizer(summarizer))
	} else {
		logger.Info("Gemini is not configured, release summaries are disabled")
	}

	opts = append(opts, usecase.WithNotifier(slackCfg.Notifier()))

	return usecase.NewReleaseDelta(client, opts...), nil
}
