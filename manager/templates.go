package manager

import "github.com/hupe1980/agentcrew/core"

// Built-in template names. TemplateFullStack is the routing catch-all.
const (
	TemplateResearch  = "research"
	TemplateDailyOps  = "daily_ops"
	TemplateContent   = "content"
	TemplateSecurity  = "security"
	TemplateFullStack = "full_stack"
)

// BuiltinTemplates returns the default template catalog installed by New().
// Each template pairs a small role set with a default config; capability
// tags come from the static worker kind table.
func BuiltinTemplates() []Template {
	return []Template{
		{
			Name:        TemplateResearch,
			Description: "Investigates a topic and distills findings",
			Roles: []core.RoleDescriptor{
				core.MustRoleDescriptor("coordinator", core.RoleLead),
				core.MustRoleDescriptor("research_assistant", core.RoleResearcher, func(rd *core.RoleDescriptor) {
					rd.Required = true
				}),
				core.MustRoleDescriptor("data_analyst", core.RoleAnalyst),
				core.MustRoleDescriptor("content_creator", core.RoleWriter),
			},
			Config: core.NewTeamConfig(TemplateResearch, func(c *core.TeamConfig) {
				c.Description = "Research team"
			}),
		},
		{
			Name:        TemplateDailyOps,
			Description: "Compiles briefings and status summaries",
			Roles: []core.RoleDescriptor{
				core.MustRoleDescriptor("research_assistant", core.RoleResearcher),
				core.MustRoleDescriptor("daily_briefing", core.RoleWriter, func(rd *core.RoleDescriptor) {
					rd.Required = true
				}),
				core.MustRoleDescriptor("status_monitor", core.RoleMonitor),
			},
			Config: core.NewTeamConfig(TemplateDailyOps, func(c *core.TeamConfig) {
				c.Description = "Daily operations team"
			}),
		},
		{
			Name:        TemplateContent,
			Description: "Produces and reviews written content",
			Roles: []core.RoleDescriptor{
				core.MustRoleDescriptor("coordinator", core.RoleLead),
				core.MustRoleDescriptor("content_creator", core.RoleWriter, func(rd *core.RoleDescriptor) {
					rd.Required = true
				}),
				core.MustRoleDescriptor("quality_reviewer", core.RoleReviewer),
			},
			Config: core.NewTeamConfig(TemplateContent, func(c *core.TeamConfig) {
				c.Description = "Content production team"
			}),
		},
		{
			Name:        TemplateSecurity,
			Description: "Scans for threats and reviews findings",
			Roles: []core.RoleDescriptor{
				core.MustRoleDescriptor("security_scanner", core.RoleAnalyst, func(rd *core.RoleDescriptor) {
					rd.Required = true
				}),
				core.MustRoleDescriptor("task_executor", core.RoleExecutor),
				core.MustRoleDescriptor("quality_reviewer", core.RoleReviewer),
			},
			Config: core.NewTeamConfig(TemplateSecurity, func(c *core.TeamConfig) {
				c.Description = "Security assessment team"
			}),
		},
		{
			Name:        TemplateFullStack,
			Description: "Catch-all team covering every plan phase",
			Roles: []core.RoleDescriptor{
				core.MustRoleDescriptor("coordinator", core.RoleLead),
				core.MustRoleDescriptor("research_assistant", core.RoleResearcher),
				core.MustRoleDescriptor("data_analyst", core.RoleAnalyst),
				core.MustRoleDescriptor("content_creator", core.RoleWriter),
				core.MustRoleDescriptor("task_executor", core.RoleExecutor),
				core.MustRoleDescriptor("quality_reviewer", core.RoleReviewer),
			},
			Config: core.NewTeamConfig(TemplateFullStack, func(c *core.TeamConfig) {
				c.Description = "General purpose team"
			}),
		},
	}
}
