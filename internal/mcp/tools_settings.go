package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/settings"
)

type settingsUpdateInput struct {
	Branding        *settings.Branding      `json:"branding,omitempty" jsonschema:"replaces the whole branding section"`
	SEO             *settings.SEO           `json:"seo,omitempty" jsonschema:"replaces the whole SEO section"`
	Integrations    *settings.Integrations  `json:"integrations,omitempty" jsonschema:"replaces the whole integrations section"`
	Notifications   *settings.Notifications `json:"notifications,omitempty" jsonschema:"replaces the whole notifications section"`
	MaintenanceMode *bool                   `json:"maintenance_mode,omitempty"`
}

func registerSettingsTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "settings_get",
		Description: "Get the site settings document",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, settings.Settings, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, settings.Settings{}, err
		}
		s, err := ts.managers.Settings.Get(ctx)
		if err != nil {
			return nil, settings.Settings{}, err
		}
		return nil, s, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "settings_update",
		Description: "Update site settings; omitted sections are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input settingsUpdateInput) (*sdkmcp.CallToolResult, settings.Settings, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, settings.Settings{}, err
		}
		s, err := ts.managers.Settings.Update(ctx, settings.UpdateRequest{
			Branding:        input.Branding,
			SEO:             input.SEO,
			Integrations:    input.Integrations,
			Notifications:   input.Notifications,
			MaintenanceMode: input.MaintenanceMode,
		})
		if err != nil {
			return nil, settings.Settings{}, err
		}
		return nil, s, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "settings_reset",
		Description: "Restore the default site settings",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, settings.Settings, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, settings.Settings{}, err
		}
		s, err := ts.managers.Settings.Reset(ctx)
		if err != nil {
			return nil, settings.Settings{}, err
		}
		return nil, s, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "settings_export",
		Description: "Export the site settings as JSON",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		data, err := ts.managers.Settings.Export(ctx)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "settings_import",
		Description: "Replace the site settings with a previously exported document",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input importInput) (*sdkmcp.CallToolResult, okResult, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, okResult{}, err
		}
		if err := ts.managers.Settings.Import(ctx, input.Data); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})
}
