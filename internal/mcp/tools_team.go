package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/team"
)

type teamListInput struct {
	Search      string `json:"search,omitempty" jsonschema:"match against name, role, bio, and skills"`
	VisibleOnly bool   `json:"visible_only,omitempty" jsonschema:"only members shown on the public site"`
}

type teamListResult struct {
	Members []team.Member `json:"members"`
	Count   int           `json:"count"`
}

type teamGetInput struct {
	ID string `json:"id" jsonschema:"member identifier"`
}

type teamAddInput struct {
	ID        string           `json:"id,omitempty" jsonschema:"optional identifier, generated when empty"`
	Name      string           `json:"name" jsonschema:"member name"`
	Role      string           `json:"role,omitempty" jsonschema:"public role title"`
	Image     string           `json:"image,omitempty"`
	Bio       string           `json:"bio,omitempty"`
	Skills    []string         `json:"skills,omitempty"`
	Social    team.SocialLinks `json:"social,omitempty"`
	Order     int              `json:"order,omitempty" jsonschema:"display position"`
	IsVisible bool             `json:"is_visible,omitempty" jsonschema:"show on the public site"`
}

type teamUpdateInput struct {
	ID        string            `json:"id" jsonschema:"member identifier"`
	Name      *string           `json:"name,omitempty"`
	Role      *string           `json:"role,omitempty"`
	Image     *string           `json:"image,omitempty"`
	Bio       *string           `json:"bio,omitempty"`
	Skills    []string          `json:"skills,omitempty"`
	Social    *team.SocialLinks `json:"social,omitempty"`
	Order     *int              `json:"order,omitempty"`
	IsVisible *bool             `json:"is_visible,omitempty"`
}

type teamReorderInput struct {
	ID    string `json:"id" jsonschema:"member identifier"`
	Order int    `json:"order" jsonschema:"new display position"`
}

type teamSettingsInput struct {
	SectionLabel *string `json:"section_label,omitempty"`
	Heading      *string `json:"heading,omitempty"`
	Description  *string `json:"description,omitempty"`
	ButtonText   *string `json:"button_text,omitempty"`
	ButtonURL    *string `json:"button_url,omitempty"`
	ShowStats    *bool   `json:"show_stats,omitempty"`
	IsVisible    *bool   `json:"is_visible,omitempty"`
}

func registerTeamTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_list",
		Description: "List team members in display order, optionally searched or narrowed to visible",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamListInput) (*sdkmcp.CallToolResult, teamListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, teamListResult{}, err
		}
		var (
			members []team.Member
			err     error
		)
		switch {
		case input.Search != "":
			members, err = ts.managers.Team.Search(ctx, input.Search)
		case input.VisibleOnly:
			members, err = ts.managers.Team.Visible(ctx)
		default:
			members, err = ts.managers.Team.List(ctx)
		}
		if err != nil {
			return nil, teamListResult{}, err
		}
		return nil, teamListResult{Members: members, Count: len(members)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_get",
		Description: "Get one team member by ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamGetInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.Get(ctx, input.ID)
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_add",
		Description: "Add a member to the public roster",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamAddInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.Add(ctx, team.AddRequest{
			ID:        input.ID,
			Name:      input.Name,
			Role:      input.Role,
			Image:     input.Image,
			Bio:       input.Bio,
			Skills:    input.Skills,
			Social:    input.Social,
			Order:     input.Order,
			IsVisible: input.IsVisible,
		})
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_update",
		Description: "Update a team member; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamUpdateInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.Update(ctx, input.ID, team.UpdateRequest{
			Name:      input.Name,
			Role:      input.Role,
			Image:     input.Image,
			Bio:       input.Bio,
			Skills:    input.Skills,
			Social:    input.Social,
			Order:     input.Order,
			IsVisible: input.IsVisible,
		})
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_delete",
		Description: "Remove a member from the roster",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamGetInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.Delete(ctx, input.ID)
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_toggle_visibility",
		Description: "Flip whether a member appears on the public site",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamGetInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.ToggleVisibility(ctx, input.ID)
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_reorder",
		Description: "Set a member's display position; use team_renumber to clear collisions",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamReorderInput) (*sdkmcp.CallToolResult, team.Member, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, team.Member{}, err
		}
		member, err := ts.managers.Team.Reorder(ctx, input.ID, input.Order)
		if err != nil {
			return nil, team.Member{}, err
		}
		return nil, *member, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_renumber",
		Description: "Re-index all members to contiguous display positions",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, teamListResult, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, teamListResult{}, err
		}
		members, err := ts.managers.Team.Renumber(ctx)
		if err != nil {
			return nil, teamListResult{}, err
		}
		return nil, teamListResult{Members: members, Count: len(members)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_settings_get",
		Description: "Get the team section settings",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, team.Settings, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, team.Settings{}, err
		}
		settings, err := ts.managers.Team.Settings(ctx)
		if err != nil {
			return nil, team.Settings{}, err
		}
		return nil, settings, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_settings_update",
		Description: "Update the team section settings; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input teamSettingsInput) (*sdkmcp.CallToolResult, team.Settings, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, team.Settings{}, err
		}
		settings, err := ts.managers.Team.UpdateSettings(ctx, team.SettingsUpdate{
			SectionLabel: input.SectionLabel,
			Heading:      input.Heading,
			Description:  input.Description,
			ButtonText:   input.ButtonText,
			ButtonURL:    input.ButtonURL,
			ShowStats:    input.ShowStats,
			IsVisible:    input.IsVisible,
		})
		if err != nil {
			return nil, team.Settings{}, err
		}
		return nil, settings, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_stats",
		Description: "Count the roster for the dashboard",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, team.Stats, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, team.Stats{}, err
		}
		stats, err := ts.managers.Team.Stats(ctx)
		if err != nil {
			return nil, team.Stats{}, err
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_export",
		Description: "Export the roster and section settings as one JSON bundle",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		data, err := ts.managers.Team.Export(ctx)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_import",
		Description: "Replace the roster (and optionally settings) with a previously exported bundle",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input importInput) (*sdkmcp.CallToolResult, okResult, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, okResult{}, err
		}
		if err := ts.managers.Team.Import(ctx, input.Data); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})
}
