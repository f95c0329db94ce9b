package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `farvue-cms manages a media agency's site content: services, team, clients, projects, and site settings.

Core concepts:
- Service: a public offering (video editing, design, ...) with pricing tiers and visibility.
- Team member: public roster entry with bio, skills, and display order.
- Client: an agency customer with contact details, status, and revenue totals.
- Project: one client engagement tracked through a seven-state workflow
  (not-started, in-progress, in-review, revision, completed, on-hold, cancelled).
- Settings: the single site configuration document (branding, SEO, integrations).

Rules of engagement:
1) When auth is enabled (HTTP mode), call login first; read tools need Viewer,
   content edits need Editor, deletes and imports need Admin.
2) Browse with the list/search tools before mutating; updates are partial,
   omitted fields are left unchanged.
3) Move projects with project_set_status rather than a plain update: completing
   stamps the completion date and forces progress to 100.
4) Exports return JSON (round-trippable via the matching import tool) or CSV
   for spreadsheets. Imports replace the whole collection and reject malformed
   payloads without touching stored data.

Docs:
- farvue://docs/workflow (project status flow and progress rules)
- farvue://docs/data (storage keys and default data behavior)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "farvue://docs/workflow",
		Name:        "docs_workflow",
		Title:       "Project workflow",
		Description: "How project statuses, progress, and revisions interact.",
		Content: `# Project workflow

Statuses order as: not-started, in-progress, in-review, revision, completed, on-hold, cancelled.
Any status may move to any other; the ordering only matters for sorting.

Status changes adjust progress at the moment of transition:
- completed: progress becomes 100 and the completion date is stamped
- in-progress: progress of 0 becomes 25
- in-review: progress below 80 becomes 80

Progress stays freely editable afterwards; nothing re-applies these floors.

Revisions are append-only rounds of client feedback. A new revision is numbered
one past the highest existing version and starts in the pending state.
`,
	},
	{
		URI:         "farvue://docs/data",
		Name:        "docs_data",
		Title:       "Data and defaults",
		Description: "Storage layout, default data, and import/export semantics.",
		Content: `# Data and defaults

Each collection lives under its own storage key (farvue_cms_services,
farvue_cms_team, farvue_cms_team_settings, farvue_cms_clients,
farvue_cms_projects, farvue_cms_settings). A missing key yields the built-in
default data; the defaults are not written back until the first mutation.

Imports replace the whole collection atomically: a payload that fails to parse
or validate leaves stored data untouched. Exports are pretty-printed JSON that
the matching import accepts unchanged.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
		}, func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{
					{URI: doc.URI, MIMEType: "text/markdown", Text: doc.Content},
				},
			}, nil
		})
	}
}
