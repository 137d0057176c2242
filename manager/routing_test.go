package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTask(t *testing.T) {
	tests := []struct {
		task string
		want string
	}{
		{"please research quantum computing", TemplateResearch},
		{"INVESTIGATE the outage", TemplateResearch},
		{"find prior art", TemplateResearch},
		{"search the archives", TemplateResearch},
		{"prepare the daily brief", TemplateDailyOps},
		{"status update for the board", TemplateDailyOps},
		{"summary of last week", TemplateDailyOps},
		{"write a blog post", TemplateContent},
		{"generate release notes", TemplateContent},
		{"audit our firewall for threats", TemplateSecurity},
		{"vulnerability sweep", TemplateSecurity},
		{"hello", TemplateFullStack},
		{"", TemplateFullStack},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTask(tt.task), tt.task)
	}
}

func TestClassifyTask_RuleOrderWins(t *testing.T) {
	// "research" is tested before "write": a task matching both routes to
	// the earlier rule.
	assert.Equal(t, TemplateResearch, ClassifyTask("research and write a report"))
}
