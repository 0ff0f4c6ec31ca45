package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Gemini holds Gemini LLM configuration
type Gemini struct {
	ProjectID string
	Location  string
	Model     string
}

// Flags returns CLI flags for Gemini configuration
func (c *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-project-id",
			Usage:       "Google Cloud Project ID for Gemini. Summaries are disabled when empty",
			Destination: &c.ProjectID,
			Sources:     cli.EnvVars("SHIPNOTE_GEMINI_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Vertex AI location/region",
			Value:       "us-central1",
			Destination: &c.Location,
			Sources:     cli.EnvVars("SHIPNOTE_GEMINI_LOCATION"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model to use",
			Value:       "gemini-2.5-flash",
			Destination: &c.Model,
			Sources:     cli.EnvVars("SHIPNOTE_GEMINI_MODEL"),
		},
	}
}

// Summarizer builds the LLM summarizer, or returns nil when Gemini is not
// configured
func (c *Gemini) Summarizer(ctx context.Context) (interfaces.Summarizer, error) {
	if c.ProjectID == "" {
		return nil, nil
	}

	client, err := gemini.New(ctx, c.ProjectID, c.Location, gemini.WithModel(c.Model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client",
			goerr.V("project_id", c.ProjectID),
			goerr.V("location", c.Location),
		)
	}
	return usecase.NewSummarizer(client)
}
