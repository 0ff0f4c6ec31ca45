package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

func TestParseWorkflowConfig(t *testing.T) {
	t.Run("push mapping with paths", func(t *testing.T) {
		cfg, err := model.ParseWorkflowConfig([]byte(`
name: deploy
on:
  push:
    branches: [main]
    paths:
      - "apps/web/**"
      - "!apps/web/**/*.md"
    paths-ignore:
      - "docs/**"
env:
  SHIPNOTE_APP_NAME: Web
  SHIPNOTE_SUMMARY_ENABLED: true
  RETRIES: 3
jobs:
  deploy:
    runs-on: ubuntu-latest
`))
		gt.NoError(t, err)
		gt.Equal(t, cfg.Name, "deploy")
		gt.Equal(t, cfg.PushPaths(), []string{"apps/web/**", "!apps/web/**/*.md"})
		gt.Equal(t, cfg.PushPathsIgnore(), []string{"docs/**"})
		gt.Equal(t, cfg.AppName(), "Web")
		gt.Equal(t, cfg.Env["RETRIES"], "3")

		enabled, set := cfg.SummaryEnabled()
		gt.True(t, enabled)
		gt.True(t, set)
	})

	t.Run("push without body", func(t *testing.T) {
		cfg, err := model.ParseWorkflowConfig([]byte("on:\n  push:\n  workflow_dispatch:\n"))
		gt.NoError(t, err)
		gt.NotNil(t, cfg.On.Push)
		gt.Equal(t, len(cfg.PushPaths()), 0)
	})

	t.Run("scalar trigger", func(t *testing.T) {
		cfg, err := model.ParseWorkflowConfig([]byte("on: push\n"))
		gt.NoError(t, err)
		gt.NotNil(t, cfg.On.Push)
	})

	t.Run("list trigger", func(t *testing.T) {
		cfg, err := model.ParseWorkflowConfig([]byte("on: [pull_request, push]\n"))
		gt.NoError(t, err)
		gt.NotNil(t, cfg.On.Push)
	})

	t.Run("no push trigger", func(t *testing.T) {
		cfg, err := model.ParseWorkflowConfig([]byte("on: [workflow_dispatch]\n"))
		gt.NoError(t, err)
		gt.V(t, cfg.PushPaths()).Nil()
		gt.Equal(t, cfg.AppName(), "")

		_, set := cfg.SummaryEnabled()
		gt.False(t, set)
	})

	invalid := map[string]string{
		"not a mapping":       "- push\n",
		"broken yaml":         "on: [push\n",
		"push is a list":      "on:\n  push: [main]\n",
		"paths is a mapping":  "on:\n  push:\n    paths:\n      a: b\n",
		"env is a list":       "env: [a, b]\n",
		"nested trigger list": "on:\n  - [push]\n",
		"empty document":      "",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := model.ParseWorkflowConfig([]byte(doc))
			gt.Error(t, err)
		})
	}
}
