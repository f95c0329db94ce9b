package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/project"
)

type projectListInput struct {
	Search        string   `json:"search,omitempty" jsonschema:"match against title, description, client, team, and tags"`
	Statuses      []string `json:"statuses,omitempty" jsonschema:"filter by status membership"`
	ServiceTypes  []string `json:"service_types,omitempty" jsonschema:"filter by service type membership"`
	Priorities    []string `json:"priorities,omitempty" jsonschema:"filter by priority membership"`
	AssignedTeam  []string `json:"assigned_team,omitempty" jsonschema:"filter by assigned staff user IDs"`
	Clients       []string `json:"clients,omitempty" jsonschema:"filter by client IDs"`
	DueStart      string   `json:"due_start,omitempty" jsonschema:"inclusive due date lower bound (2006-01-02)"`
	DueEnd        string   `json:"due_end,omitempty" jsonschema:"inclusive due date upper bound (2006-01-02)"`
	SortBy        string   `json:"sort_by,omitempty" jsonschema:"dueDate, priority, status, progress, or budget"`
	SortDirection string   `json:"sort_direction,omitempty" jsonschema:"asc or desc"`
}

type projectListResult struct {
	Projects []project.Project `json:"projects"`
	Count    int               `json:"count"`
}

type projectGetInput struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

type projectAddInput struct {
	ID             string   `json:"id,omitempty" jsonschema:"optional identifier, generated when empty"`
	Title          string   `json:"title" jsonschema:"project title"`
	Description    string   `json:"description,omitempty"`
	ClientID       string   `json:"client_id" jsonschema:"existing client identifier"`
	AssignedTeam   []string `json:"assigned_team,omitempty" jsonschema:"staff user IDs"`
	ServiceType    string   `json:"service_type,omitempty" jsonschema:"video-editing, short-form, design, web-development, or ai-automation"`
	Status         string   `json:"status,omitempty" jsonschema:"defaults to not-started"`
	Priority       string   `json:"priority,omitempty" jsonschema:"defaults to medium"`
	Budget         float64  `json:"budget,omitempty"`
	EstimatedHours float64  `json:"estimated_hours,omitempty"`
	StartDate      string   `json:"start_date,omitempty" jsonschema:"date in 2006-01-02 form"`
	DueDate        string   `json:"due_date,omitempty" jsonschema:"date in 2006-01-02 form"`
	Tags           []string `json:"tags,omitempty"`
	ClientNotes    string   `json:"client_notes,omitempty"`
	InternalNotes  string   `json:"internal_notes,omitempty"`
	CreatedBy      string   `json:"created_by,omitempty" jsonschema:"staff user ID"`
}

type projectUpdateInput struct {
	ID             string   `json:"id" jsonschema:"project identifier"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	AssignedTeam   []string `json:"assigned_team,omitempty" jsonschema:"staff user IDs, replaces the whole assignment"`
	ServiceType    *string  `json:"service_type,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	ActualHours    *float64 `json:"actual_hours,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	Progress       *int     `json:"progress,omitempty" jsonschema:"0-100"`
	Tags           []string `json:"tags,omitempty"`
	ClientNotes    *string  `json:"client_notes,omitempty"`
	InternalNotes  *string  `json:"internal_notes,omitempty"`
}

type projectSetStatusInput struct {
	ID     string `json:"id" jsonschema:"project identifier"`
	Status string `json:"status" jsonschema:"not-started, in-progress, in-review, revision, completed, on-hold, or cancelled"`
}

type projectAddRevisionInput struct {
	ID          string `json:"id" jsonschema:"project identifier"`
	Description string `json:"description" jsonschema:"what changed in this round"`
	ClientNotes string `json:"client_notes,omitempty"`
	CreatedBy   string `json:"created_by,omitempty" jsonschema:"staff user ID"`
}

type projectAddDeliverableInput struct {
	ID           string `json:"id" jsonschema:"project identifier"`
	Name         string `json:"name" jsonschema:"deliverable file name"`
	Type         string `json:"type,omitempty" jsonschema:"video, image, thumbnail, or document"`
	URL          string `json:"url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	FileSize     int64  `json:"file_size,omitempty" jsonschema:"size in bytes"`
	UploadedBy   string `json:"uploaded_by,omitempty" jsonschema:"staff user ID"`
}

type staffListResult struct {
	Staff []project.StaffUser `json:"staff"`
	Count int                 `json:"count"`
}

func (in projectListInput) filter() project.Filter {
	f := project.Filter{
		AssignedTeam: in.AssignedTeam,
		Clients:      in.Clients,
	}
	for _, s := range in.Statuses {
		f.Statuses = append(f.Statuses, project.Status(s))
	}
	for _, s := range in.ServiceTypes {
		f.ServiceTypes = append(f.ServiceTypes, project.ServiceType(s))
	}
	for _, s := range in.Priorities {
		f.Priorities = append(f.Priorities, project.Priority(s))
	}
	if in.DueStart != "" || in.DueEnd != "" {
		f.DueBetween = &project.DateRange{Start: in.DueStart, End: in.DueEnd}
	}
	return f
}

// resolveStaff maps staff user IDs to the built-in staff roster.
func resolveStaff(ids []string) ([]project.StaffUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	roster := project.DefaultStaff()
	byID := make(map[string]project.StaffUser, len(roster))
	for _, u := range roster {
		byID[u.ID] = u
	}
	team := make([]project.StaffUser, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown staff user %s: %w", id, project.ErrInvalidInput)
		}
		team = append(team, u)
	}
	return team, nil
}

func registerProjectTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_list",
		Description: "List projects through the search, filter, and sort pipeline",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectListInput) (*sdkmcp.CallToolResult, projectListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, projectListResult{}, err
		}
		key := project.SortKey(input.SortBy)
		if input.SortBy == "" {
			key = project.SortByDueDate
		}
		dir := project.SortDirection(input.SortDirection)
		if input.SortDirection == "" {
			dir = project.SortAsc
		}
		projects, err := ts.managers.Projects.Filtered(ctx, input.Search, input.filter(), key, dir)
		if err != nil {
			return nil, projectListResult{}, err
		}
		return nil, projectListResult{Projects: projects, Count: len(projects)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_get",
		Description: "Get one project by ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectGetInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.Get(ctx, input.ID)
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_add",
		Description: "Create a project for an existing client",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectAddInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, project.Project{}, err
		}
		c, err := ts.managers.Clients.Get(ctx, input.ClientID)
		if err != nil {
			return nil, project.Project{}, fmt.Errorf("resolving client %s: %w", input.ClientID, err)
		}
		team, err := resolveStaff(input.AssignedTeam)
		if err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.Add(ctx, project.AddRequest{
			ID:             input.ID,
			Title:          input.Title,
			Description:    input.Description,
			Client:         *c,
			AssignedTeam:   team,
			ServiceType:    project.ServiceType(input.ServiceType),
			Status:         project.Status(input.Status),
			Priority:       project.Priority(input.Priority),
			Budget:         input.Budget,
			EstimatedHours: input.EstimatedHours,
			StartDate:      input.StartDate,
			DueDate:        input.DueDate,
			Tags:           input.Tags,
			ClientNotes:    input.ClientNotes,
			InternalNotes:  input.InternalNotes,
			CreatedBy:      input.CreatedBy,
		})
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_update",
		Description: "Update a project; omitted fields are left unchanged. Use project_set_status for status moves",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectUpdateInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, project.Project{}, err
		}
		team, err := resolveStaff(input.AssignedTeam)
		if err != nil {
			return nil, project.Project{}, err
		}
		upd := project.UpdateRequest{
			Title:          input.Title,
			Description:    input.Description,
			AssignedTeam:   team,
			Budget:         input.Budget,
			EstimatedHours: input.EstimatedHours,
			ActualHours:    input.ActualHours,
			StartDate:      input.StartDate,
			DueDate:        input.DueDate,
			Progress:       input.Progress,
			Tags:           input.Tags,
			ClientNotes:    input.ClientNotes,
			InternalNotes:  input.InternalNotes,
		}
		if input.ServiceType != nil {
			st := project.ServiceType(*input.ServiceType)
			upd.ServiceType = &st
		}
		if input.Priority != nil {
			pr := project.Priority(*input.Priority)
			upd.Priority = &pr
		}
		p, err := ts.managers.Projects.Update(ctx, input.ID, upd)
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_delete",
		Description: "Remove a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectGetInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.Delete(ctx, input.ID)
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_set_status",
		Description: "Move a project to a new status; completing stamps the completion date and forces progress to 100",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectSetStatusInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.SetStatus(ctx, input.ID, project.Status(input.Status))
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_add_revision",
		Description: "Append a revision round to a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectAddRevisionInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.AddRevision(ctx, input.ID, project.RevisionRequest{
			Description: input.Description,
			ClientNotes: input.ClientNotes,
			CreatedBy:   input.CreatedBy,
		})
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_add_deliverable",
		Description: "Attach an uploaded asset to a project",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectAddDeliverableInput) (*sdkmcp.CallToolResult, project.Project, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, project.Project{}, err
		}
		p, err := ts.managers.Projects.AddDeliverable(ctx, input.ID, project.Deliverable{
			Name:         input.Name,
			Type:         project.DeliverableType(input.Type),
			URL:          input.URL,
			ThumbnailURL: input.ThumbnailURL,
			FileSize:     input.FileSize,
			UploadedBy:   input.UploadedBy,
		})
		if err != nil {
			return nil, project.Project{}, err
		}
		return nil, *p, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_overdue",
		Description: "List projects past their due date that are neither completed nor cancelled",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, projectListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, projectListResult{}, err
		}
		projects, err := ts.managers.Projects.Overdue(ctx)
		if err != nil {
			return nil, projectListResult{}, err
		}
		return nil, projectListResult{Projects: projects, Count: len(projects)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_stats",
		Description: "Aggregate the project list for the dashboard",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, project.Stats, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, project.Stats{}, err
		}
		stats, err := ts.managers.Projects.Stats(ctx)
		if err != nil {
			return nil, project.Stats{}, err
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_staff_list",
		Description: "List the internal staff assignable to projects",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, staffListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, staffListResult{}, err
		}
		staff := project.DefaultStaff()
		return nil, staffListResult{Staff: staff, Count: len(staff)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_export",
		Description: "Export all projects as JSON",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		data, err := ts.managers.Projects.Export(ctx)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_import",
		Description: "Replace all projects with a previously exported JSON array",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input importInput) (*sdkmcp.CallToolResult, okResult, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, okResult{}, err
		}
		if err := ts.managers.Projects.Import(ctx, input.Data); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_export_csv",
		Description: "Export projects as CSV, optionally through the search and filter pipeline first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input projectListInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		key := project.SortKey(input.SortBy)
		if input.SortBy == "" {
			key = project.SortByDueDate
		}
		dir := project.SortDirection(input.SortDirection)
		if input.SortDirection == "" {
			dir = project.SortAsc
		}
		projects, err := ts.managers.Projects.Filtered(ctx, input.Search, input.filter(), key, dir)
		if err != nil {
			return nil, exportResult{}, err
		}
		data, err := project.ExportCSV(projects)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})
}
