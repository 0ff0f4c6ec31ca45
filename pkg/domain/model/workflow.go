package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAppName sets the display name of the application in notifications
	EnvAppName = "SHIPNOTE_APP_NAME"
	// EnvSummaryEnabled opts a workflow into release delta processing
	EnvSummaryEnabled = "SHIPNOTE_SUMMARY_ENABLED"
)

// WorkflowConfig is the part of a GitHub Actions workflow file that
// controls release scoping
type WorkflowConfig struct {
	Name string            `yaml:"name"`
	On   *WorkflowTriggers `yaml:"on"`
	Env  WorkflowEnv       `yaml:"env"`
}

// WorkflowTriggers holds the triggers of a workflow. Only push is inspected.
type WorkflowTriggers struct {
	Push *PushTrigger
}

// PushTrigger is the `on.push` block
type PushTrigger struct {
	Paths       []string `yaml:"paths"`
	PathsIgnore []string `yaml:"paths-ignore"`
}

// WorkflowEnv is the workflow level env block. Scalar values of any YAML
// type are kept as their literal text.
type WorkflowEnv map[string]string

// ParseWorkflowConfig decodes a workflow file. Documents that are not a
// mapping, or whose `on` block has an unexpected shape, are rejected.
func ParseWorkflowConfig(data []byte) (*WorkflowConfig, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, goerr.Wrap(err, "failed to parse workflow YAML")
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, goerr.New("workflow document must be a mapping")
	}

	var cfg WorkflowConfig
	if err := root.Content[0].Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "invalid workflow structure")
	}
	return &cfg, nil
}

// UnmarshalYAML accepts the three forms of `on`: a single event name, a
// list of event names, or a mapping of event name to configuration.
func (x *WorkflowTriggers) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "push" {
			x.Push = &PushTrigger{}
		}
		return nil

	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return goerr.New("workflow trigger list must contain event names", goerr.V("line", item.Line))
			}
			if item.Value == "push" {
				x.Push = &PushTrigger{}
			}
		}
		return nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value != "push" {
				continue
			}

			var push PushTrigger
			switch {
			case value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null":
			case value.Kind == yaml.MappingNode:
				if err := value.Decode(&push); err != nil {
					return goerr.Wrap(err, "invalid on.push block", goerr.V("line", value.Line))
				}
			default:
				return goerr.New("on.push must be a mapping", goerr.V("line", value.Line))
			}
			x.Push = &push
		}
		return nil

	default:
		return goerr.New("unsupported workflow trigger format", goerr.V("line", node.Line))
	}
}

// UnmarshalYAML decodes the env block keeping scalar values as text
func (x *WorkflowEnv) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return goerr.New("env must be a mapping", goerr.V("line", node.Line))
	}

	env := make(WorkflowEnv, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return goerr.New("env value must be a scalar", goerr.V("key", key.Value), goerr.V("line", value.Line))
		}
		env[key.Value] = value.Value
	}
	*x = env
	return nil
}

// PushPaths returns on.push.paths, or nil when the workflow has no push trigger
func (x *WorkflowConfig) PushPaths() []string {
	if x == nil || x.On == nil || x.On.Push == nil {
		return nil
	}
	return x.On.Push.Paths
}

// PushPathsIgnore returns on.push.paths-ignore
func (x *WorkflowConfig) PushPathsIgnore() []string {
	if x == nil || x.On == nil || x.On.Push == nil {
		return nil
	}
	return x.On.Push.PathsIgnore
}

// AppName returns the display name configured in the env block
func (x *WorkflowConfig) AppName() string {
	if x == nil {
		return ""
	}
	return x.Env[EnvAppName]
}

// SummaryEnabled returns the opt-in flag and whether it was set at all
func (x *WorkflowConfig) SummaryEnabled() (enabled bool, set bool) {
	if x == nil {
		return false, false
	}
	v, ok := x.Env[EnvSummaryEnabled]
	if !ok {
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(v), "true"), true
}
