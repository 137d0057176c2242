package team

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/internal/util"
)

// blockSeparator joins the per-worker result blocks of a compiled result.
const blockSeparator = "\n\n---\n\n"

// resultKeys are probed in order on structured worker results; the first
// present non-empty value becomes the block text.
var resultKeys = []string{"content", "research", "analysis"}

// compileResult renders the accumulated worker outputs into one labeled
// result string. Blocks appear in the first-write order of the output map so
// compiled results are reproducible across runs. When no worker produced a
// usable result the fallback references the original task.
func compileResult(state *core.SharedState) string {
	var blocks []string

	for _, kind := range state.OutputOrder() {
		out, ok := state.Output(kind)
		if !ok || !out.Success || out.Result == nil {
			continue
		}

		text := extractText(out.Result)
		if text == "" {
			continue
		}

		blocks = append(blocks, fmt.Sprintf("**%s**:\n%s", kind, text))
	}

	if len(blocks) == 0 {
		return fmt.Sprintf("Task completed: %s", state.Task)
	}

	return strings.Join(blocks, blockSeparator)
}

// extractText prefers the content, research and analysis fields of a
// structured result, in that order, falling back to the stringified result.
func extractText(result any) string {
	switch m := result.(type) {
	case map[string]any:
		for _, key := range resultKeys {
			if v, ok := m[key]; ok {
				if s := util.Stringify(v); s != "" {
					return s
				}
			}
		}
	case map[string]string:
		for _, key := range resultKeys {
			if s, ok := m[key]; ok && s != "" {
				return s
			}
		}
	}

	return util.Stringify(result)
}
