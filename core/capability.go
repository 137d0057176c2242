package core

// Capability names form the closed vocabulary a Worker may expose. The
// dispatcher resolves a plan action to one of these names and probes generic
// fallbacks (CapabilityGenerate, CapabilityProcess, CapabilityRun) when the
// preferred name is not implemented.
const (
	CapabilityAnalyzeTask   = "analyzeTask"
	CapabilityResearch      = "research"
	CapabilityQuery         = "query"
	CapabilityAnalyze       = "analyze"
	CapabilityCreateContent = "createContent"
	CapabilityGenerate      = "generate"
	CapabilityExecute       = "execute"
	CapabilityReview        = "review"
	CapabilityProcess       = "process"
	CapabilityRun           = "run"
)

// defaultCapabilities maps well-known worker kinds to their capability tags.
// Used to populate RoleDescriptor.Capabilities when a caller leaves the set
// empty.
var defaultCapabilities = map[string][]string{
	"coordinator":        {CapabilityAnalyzeTask, CapabilityProcess},
	"research_assistant": {CapabilityResearch, CapabilityQuery},
	"data_analyst":       {CapabilityAnalyze, CapabilityQuery},
	"content_creator":    {CapabilityCreateContent, CapabilityGenerate},
	"task_executor":      {CapabilityExecute, CapabilityRun},
	"quality_reviewer":   {CapabilityReview, CapabilityAnalyze},
	"daily_briefing":     {CapabilityGenerate, CapabilityProcess},
	"security_scanner":   {CapabilityAnalyze, CapabilityExecute},
	"status_monitor":     {CapabilityProcess},
}

// DefaultCapabilities returns the static capability tags for a worker kind,
// or a single generic process tag when the kind is unknown.
func DefaultCapabilities(workerKind string) []string {
	if caps, ok := defaultCapabilities[workerKind]; ok {
		out := make([]string, len(caps))
		copy(out, caps)
		return out
	}
	return []string{CapabilityProcess}
}
