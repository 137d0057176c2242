package manager

import "strings"

// routingRule pairs a template name with the keywords selecting it. Rules
// are tested in order against the lower-cased task text; the first keyword
// hit wins.
type routingRule struct {
	template string
	keywords []string
}

var routingRules = []routingRule{
	{template: TemplateResearch, keywords: []string{"research", "investigate", "find", "search"}},
	{template: TemplateDailyOps, keywords: []string{"brief", "daily", "status", "summary"}},
	{template: TemplateContent, keywords: []string{"content", "write", "create", "generate"}},
	{template: TemplateSecurity, keywords: []string{"security", "audit", "vulnerability", "threat"}},
}

// ClassifyTask picks the template name for a task by the fixed ordered
// keyword test. Tasks matching no rule fall through to the full_stack
// catch-all.
func ClassifyTask(task string) string {
	lowered := strings.ToLower(task)

	for _, rule := range routingRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.template
			}
		}
	}

	return TemplateFullStack
}
