// Package anthropic provides a model-backed worker over the Anthropic
// Messages API. One Worker serves the full engine capability vocabulary by
// framing each capability with its own system prompt, so a single worker
// kind can fill any role in a team.
package anthropic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/agentcrew/core"
)

// capabilityPrompts frames each served capability. Capabilities without an
// entry report core.ErrNoCapability so the dispatcher can fall back.
var capabilityPrompts = map[string]string{
	core.CapabilityAnalyzeTask:   "You are the lead of a worker team. Break the given task into the concrete subtasks the team should perform. Be concise.",
	core.CapabilityResearch:      "You are a research assistant. Gather and summarize the key facts relevant to the given task.",
	core.CapabilityQuery:         "You are a research assistant. Answer the given question directly and concisely.",
	core.CapabilityAnalyze:       "You are an analyst. Evaluate the given task and any provided material, and state your findings.",
	core.CapabilityCreateContent: "You are a writer. Produce the requested content, building on any earlier worker outputs provided.",
	core.CapabilityGenerate:      "You are a writer. Produce the requested output, building on any earlier worker outputs provided.",
	core.CapabilityExecute:       "You are an executor. Describe precisely how you carry out the given task and report the outcome.",
	core.CapabilityReview:        "You are a reviewer. Assess the quality of the work described and list concrete improvements.",
	core.CapabilityProcess:       "Process the given task and report the result.",
}

// Options configures the Anthropic worker adapter.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Worker invokes Claude for every engine capability. It implements
// core.Worker.
type Worker struct {
	client *anthropic.Client
	kind   string
	opts   Options
}

// NewWorker creates an Anthropic-backed worker for the given kind using the
// official client.
func NewWorker(kind string, optFns ...func(o *Options)) *Worker {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Worker{client: &client, kind: kind, opts: opts}
}

// NewWorkerFromClient creates an Anthropic-backed worker from an existing client.
func NewWorkerFromClient(client *anthropic.Client, kind string, optFns ...func(o *Options)) *Worker {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Worker{client: client, kind: kind, opts: opts}
}

// Kind implements core.Worker.
func (w *Worker) Kind() string { return w.kind }

// Capabilities implements core.Worker.
func (w *Worker) Capabilities() []string {
	caps := make([]string, 0, len(capabilityPrompts))
	for name := range capabilityPrompts {
		caps = append(caps, name)
	}
	sort.Strings(caps)
	return caps
}

// Invoke implements core.Worker. The result is shaped per capability
// (content / research / analysis keyed maps) so team result compilation can
// extract the text directly.
func (w *Worker) Invoke(ctx context.Context, capability, task string, aux map[string]any) (any, error) {
	prompt, ok := capabilityPrompts[capability]
	if !ok {
		return nil, fmt.Errorf("anthropic worker %q capability %q: %w", w.kind, capability, core.ErrNoCapability)
	}

	params := anthropic.MessageNewParams{
		Model:       w.opts.Model,
		MaxTokens:   w.opts.MaxTokens,
		Temperature: anthropic.Float(w.opts.Temperature),
		System:      []anthropic.TextBlockParam{{Text: prompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage(task, aux))),
		},
	}

	resp, err := w.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	return shapeResult(capability, sb.String()), nil
}

// userMessage renders the task plus auxiliary pairs into one user turn.
func userMessage(task string, aux map[string]any) string {
	if len(aux) == 0 {
		return task
	}

	keys := make([]string, 0, len(aux))
	for k := range aux {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(task)
	sb.WriteString("\n\nContext:")
	for _, k := range keys {
		fmt.Fprintf(&sb, "\n- %s: %v", k, aux[k])
	}

	return sb.String()
}

// shapeResult keys the model text per capability family.
func shapeResult(capability, text string) any {
	switch capability {
	case core.CapabilityCreateContent, core.CapabilityGenerate:
		return map[string]any{"content": text}
	case core.CapabilityResearch, core.CapabilityQuery:
		return map[string]any{"research": text}
	case core.CapabilityAnalyzeTask, core.CapabilityAnalyze, core.CapabilityReview:
		return map[string]any{"analysis": text}
	default:
		return text
	}
}
