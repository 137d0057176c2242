// Package openai provides a model-backed worker over the OpenAI Chat
// Completions API, mirroring the Anthropic adapter: one worker serves the
// full engine capability vocabulary with per-capability prompt framing.
package openai

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/agentcrew/core"
	"github.com/openai/openai-go"
)

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

// Options configures the OpenAI worker adapter.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Worker invokes the Chat Completions API for every engine capability. It
// implements core.Worker.
type Worker struct {
	client *openai.Client
	kind   string
	opts   Options
}

// NewWorker creates an OpenAI-backed worker for the given kind using the
// official client.
func NewWorker(kind string, optFns ...func(o *Options)) *Worker {
	client := openai.NewClient()
	return NewWorkerFromClient(&client, kind, optFns...)
}

// NewWorkerFromClient creates an OpenAI-backed worker from an existing client.
func NewWorkerFromClient(client *openai.Client, kind string, optFns ...func(o *Options)) *Worker {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
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

// Invoke implements core.Worker.
func (w *Worker) Invoke(ctx context.Context, capability, task string, aux map[string]any) (any, error) {
	prompt, ok := capabilityPrompts[capability]
	if !ok {
		return nil, fmt.Errorf("openai worker %q capability %q: %w", w.kind, capability, core.ErrNoCapability)
	}

	params := openai.ChatCompletionNewParams{
		Model:               w.opts.Model,
		Temperature:         openai.Float(w.opts.Temperature),
		MaxCompletionTokens: openai.Int(w.opts.MaxCompletionTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(userMessage(task, aux)),
		},
	}

	resp, err := w.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai api returned no choices")
	}

	return shapeResult(capability, resp.Choices[0].Message.Content), nil
}

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
