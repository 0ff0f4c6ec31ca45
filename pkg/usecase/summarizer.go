package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

//go:embed prompts/release_summary_system.md
var summarySystemPrompt string

//go:embed prompts/release_summary_user.md
var summaryUserPromptTemplate string

// maxPromptDiffSize limits the diff embedded into the prompt
const maxPromptDiffSize = 60000

type summarizer struct {
	llmClient    gollem.LLMClient
	userTemplate *template.Template
}

// NewSummarizer creates a Summarizer backed by an LLM
func NewSummarizer(llmClient gollem.LLMClient) (interfaces.Summarizer, error) {
	tmpl, err := template.New("user").Parse(summaryUserPromptTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse user prompt template")
	}

	return &summarizer{
		llmClient:    llmClient,
		userTemplate: tmpl,
	}, nil
}

// Summarize asks the LLM for a categorized summary of the delta
func (uc *summarizer) Summarize(ctx context.Context, delta *model.ReleaseDelta) (*model.ReleaseSummary, error) {
	logger := ctxlog.From(ctx)

	if delta.Range == nil || delta.Run == nil {
		return nil, goerr.New("release delta is not resolved")
	}

	var buf bytes.Buffer
	if err := uc.userTemplate.Execute(&buf, map[string]any{
		"AppName":      delta.AppName,
		"Repository":   delta.Run.Repository.String(),
		"From":         delta.Range.From,
		"To":           delta.Range.To,
		"Messages":     delta.Range.CommitMessages,
		"PullRequests": delta.PullRequests,
		"Diff":         truncateText(delta.Range.Diff, maxPromptDiffSize),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute user prompt template")
	}
	userPrompt := buf.String()

	logger.Debug("Calling LLM for release summary", "prompt_length", len(userPrompt))

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionSystemPrompt(summarySystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.Generate(ctx, []gollem.Input{gollem.Text(userPrompt)})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate LLM content")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("no response from LLM")
	}

	var summary model.ReleaseSummary
	if err := json.Unmarshal([]byte(resp.Texts[0]), &summary); err != nil {
		logger.Error("Failed to parse LLM response", "error", err, "response", resp.Texts[0])
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	return &summary, nil
}

// truncateText cuts s to at most limit bytes on a line boundary when possible
func truncateText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "\n...(truncated)"
}
