package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/service"
)

type serviceListInput struct {
	Category    string `json:"category,omitempty" jsonschema:"filter by category (editing, design, development, automation)"`
	VisibleOnly bool   `json:"visible_only,omitempty" jsonschema:"only services shown on the public site"`
}

type serviceListResult struct {
	Services []service.Service `json:"services"`
	Count    int               `json:"count"`
}

type serviceGetInput struct {
	ID string `json:"id" jsonschema:"service identifier"`
}

type serviceAddInput struct {
	ID             string          `json:"id,omitempty" jsonschema:"optional identifier, generated when empty"`
	Name           string          `json:"name" jsonschema:"service name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category" jsonschema:"editing, design, development, or automation"`
	Pricing        service.Pricing `json:"pricing,omitempty" jsonschema:"tier prices in whole dollars"`
	Features       []string        `json:"features,omitempty"`
	IsVisible      bool            `json:"is_visible,omitempty" jsonschema:"show on the public site"`
	Demand         int             `json:"demand,omitempty" jsonschema:"demand score 0-100"`
	CompletionRate int             `json:"completion_rate,omitempty"`
	AverageRating  float64         `json:"average_rating,omitempty"`
	IconURL        string          `json:"icon_url,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	SubServices    []string        `json:"sub_services,omitempty"`
}

type serviceUpdateInput struct {
	ID             string           `json:"id" jsonschema:"service identifier"`
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Pricing        *service.Pricing `json:"pricing,omitempty"`
	Features       []string         `json:"features,omitempty"`
	IsVisible      *bool            `json:"is_visible,omitempty"`
	Demand         *int             `json:"demand,omitempty"`
	CompletionRate *int             `json:"completion_rate,omitempty"`
	AverageRating  *float64         `json:"average_rating,omitempty"`
	IconURL        *string          `json:"icon_url,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
	SubServices    []string         `json:"sub_services,omitempty"`
}

type servicePricingInput struct {
	ID      string          `json:"id" jsonschema:"service identifier"`
	Pricing service.Pricing `json:"pricing" jsonschema:"replacement tier prices in whole dollars"`
}

type serviceSetImageInput struct {
	ID   string `json:"id" jsonschema:"service identifier"`
	Slot string `json:"slot" jsonschema:"icon or image"`
	URL  string `json:"url" jsonschema:"new image URL, empty clears the slot"`
}

type exportResult struct {
	Data string `json:"data" jsonschema:"exported payload"`
}

type importInput struct {
	Data string `json:"data" jsonschema:"previously exported payload"`
}

func registerServiceTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_list",
		Description: "List the service catalog, optionally narrowed by category or visibility",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceListInput) (*sdkmcp.CallToolResult, serviceListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, serviceListResult{}, err
		}
		var (
			services []service.Service
			err      error
		)
		switch {
		case input.Category != "":
			services, err = ts.managers.Services.ByCategory(ctx, service.Category(input.Category))
		case input.VisibleOnly:
			services, err = ts.managers.Services.Visible(ctx)
		default:
			services, err = ts.managers.Services.List(ctx)
		}
		if err != nil {
			return nil, serviceListResult{}, err
		}
		return nil, serviceListResult{Services: services, Count: len(services)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_get",
		Description: "Get one service by ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceGetInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.Get(ctx, input.ID)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_add",
		Description: "Add a new service to the catalog",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceAddInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.Add(ctx, service.AddRequest{
			ID:             input.ID,
			Name:           input.Name,
			Description:    input.Description,
			Category:       service.Category(input.Category),
			Pricing:        input.Pricing,
			Features:       input.Features,
			IsVisible:      input.IsVisible,
			Demand:         input.Demand,
			CompletionRate: input.CompletionRate,
			AverageRating:  input.AverageRating,
			IconURL:        input.IconURL,
			ImageURL:       input.ImageURL,
			SubServices:    input.SubServices,
		})
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_update",
		Description: "Update a service; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceUpdateInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, service.Service{}, err
		}
		upd := service.UpdateRequest{
			Name:           input.Name,
			Description:    input.Description,
			Pricing:        input.Pricing,
			Features:       input.Features,
			IsVisible:      input.IsVisible,
			Demand:         input.Demand,
			CompletionRate: input.CompletionRate,
			AverageRating:  input.AverageRating,
			IconURL:        input.IconURL,
			ImageURL:       input.ImageURL,
			SubServices:    input.SubServices,
		}
		if input.Category != nil {
			cat := service.Category(*input.Category)
			upd.Category = &cat
		}
		svc, err := ts.managers.Services.Update(ctx, input.ID, upd)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_delete",
		Description: "Remove a service from the catalog",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceGetInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.Delete(ctx, input.ID)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_toggle_visibility",
		Description: "Flip whether a service appears on the public site",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceGetInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.ToggleVisibility(ctx, input.ID)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_update_pricing",
		Description: "Replace a service's pricing tiers",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input servicePricingInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.UpdatePricing(ctx, input.ID, input.Pricing)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_set_image",
		Description: "Update a service's icon or image URL",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input serviceSetImageInput) (*sdkmcp.CallToolResult, service.Service, error) {
		if err := ts.require(ctx, auth.RoleDesigner); err != nil {
			return nil, service.Service{}, err
		}
		svc, err := ts.managers.Services.SetImage(ctx, input.ID, service.ImageSlot(input.Slot), input.URL)
		if err != nil {
			return nil, service.Service{}, err
		}
		return nil, *svc, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_stats",
		Description: "Aggregate the catalog for the dashboard",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, service.Stats, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, service.Stats{}, err
		}
		stats, err := ts.managers.Services.Stats(ctx)
		if err != nil {
			return nil, service.Stats{}, err
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_export",
		Description: "Export the service catalog as JSON",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		data, err := ts.managers.Services.Export(ctx)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "service_import",
		Description: "Replace the service catalog with a previously exported JSON array",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input importInput) (*sdkmcp.CallToolResult, okResult, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, okResult{}, err
		}
		if err := ts.managers.Services.Import(ctx, input.Data); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})
}
