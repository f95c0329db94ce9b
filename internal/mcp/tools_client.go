package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/client"
)

type clientListInput struct {
	Search string `json:"search,omitempty" jsonschema:"match against name, email, and company"`
	Status string `json:"status,omitempty" jsonschema:"filter by status (active, inactive, pending)"`
}

type clientListResult struct {
	Clients []client.Client `json:"clients"`
	Count   int             `json:"count"`
}

type clientGetInput struct {
	ID string `json:"id" jsonschema:"client identifier"`
}

type clientAddInput struct {
	ID            string               `json:"id,omitempty" jsonschema:"optional identifier, generated when empty"`
	Name          string               `json:"name" jsonschema:"client name"`
	Email         string               `json:"email,omitempty"`
	Company       string               `json:"company,omitempty"`
	Avatar        string               `json:"avatar,omitempty"`
	Phone         string               `json:"phone,omitempty"`
	SocialHandles client.SocialHandles `json:"social_handles,omitempty"`
	Preferences   client.Preferences   `json:"preferences,omitempty"`
	Status        string               `json:"status,omitempty" jsonschema:"active, inactive, or pending; defaults to pending"`
	JoinedDate    string               `json:"joined_date,omitempty" jsonschema:"date in 2006-01-02 form"`
}

type clientUpdateInput struct {
	ID            string                `json:"id" jsonschema:"client identifier"`
	Name          *string               `json:"name,omitempty"`
	Email         *string               `json:"email,omitempty"`
	Company       *string               `json:"company,omitempty"`
	Avatar        *string               `json:"avatar,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	SocialHandles *client.SocialHandles `json:"social_handles,omitempty"`
	Preferences   *client.Preferences   `json:"preferences,omitempty"`
	TotalProjects *int                  `json:"total_projects,omitempty"`
	TotalRevenue  *float64              `json:"total_revenue,omitempty"`
	Status        *string               `json:"status,omitempty"`
	JoinedDate    *string               `json:"joined_date,omitempty"`
}

func registerClientTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_list",
		Description: "List clients, optionally searched by name, email, or company and narrowed by status",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientListInput) (*sdkmcp.CallToolResult, clientListResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, clientListResult{}, err
		}
		clients, err := ts.managers.Clients.Search(ctx, input.Search, client.Status(input.Status))
		if err != nil {
			return nil, clientListResult{}, err
		}
		return nil, clientListResult{Clients: clients, Count: len(clients)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_get",
		Description: "Get one client by ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientGetInput) (*sdkmcp.CallToolResult, client.Client, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, client.Client{}, err
		}
		c, err := ts.managers.Clients.Get(ctx, input.ID)
		if err != nil {
			return nil, client.Client{}, err
		}
		return nil, *c, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_add",
		Description: "Add a new client",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientAddInput) (*sdkmcp.CallToolResult, client.Client, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, client.Client{}, err
		}
		c, err := ts.managers.Clients.Add(ctx, client.AddRequest{
			ID:            input.ID,
			Name:          input.Name,
			Email:         input.Email,
			Company:       input.Company,
			Avatar:        input.Avatar,
			Phone:         input.Phone,
			SocialHandles: input.SocialHandles,
			Preferences:   input.Preferences,
			Status:        client.Status(input.Status),
			JoinedDate:    input.JoinedDate,
		})
		if err != nil {
			return nil, client.Client{}, err
		}
		return nil, *c, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_update",
		Description: "Update a client; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientUpdateInput) (*sdkmcp.CallToolResult, client.Client, error) {
		if err := ts.require(ctx, auth.RoleEditor); err != nil {
			return nil, client.Client{}, err
		}
		upd := client.UpdateRequest{
			Name:          input.Name,
			Email:         input.Email,
			Company:       input.Company,
			Avatar:        input.Avatar,
			Phone:         input.Phone,
			SocialHandles: input.SocialHandles,
			Preferences:   input.Preferences,
			TotalProjects: input.TotalProjects,
			TotalRevenue:  input.TotalRevenue,
			JoinedDate:    input.JoinedDate,
		}
		if input.Status != nil {
			status := client.Status(*input.Status)
			upd.Status = &status
		}
		c, err := ts.managers.Clients.Update(ctx, input.ID, upd)
		if err != nil {
			return nil, client.Client{}, err
		}
		return nil, *c, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_delete",
		Description: "Remove a client",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientGetInput) (*sdkmcp.CallToolResult, client.Client, error) {
		if err := ts.require(ctx, auth.RoleAdmin); err != nil {
			return nil, client.Client{}, err
		}
		c, err := ts.managers.Clients.Delete(ctx, input.ID)
		if err != nil {
			return nil, client.Client{}, err
		}
		return nil, *c, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_stats",
		Description: "Aggregate the client list for the dashboard",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, client.Stats, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, client.Stats{}, err
		}
		stats, err := ts.managers.Clients.Stats(ctx)
		if err != nil {
			return nil, client.Stats{}, err
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "client_export_csv",
		Description: "Export clients as CSV, optionally searched and narrowed by status first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input clientListInput) (*sdkmcp.CallToolResult, exportResult, error) {
		if err := ts.require(ctx, auth.RoleViewer); err != nil {
			return nil, exportResult{}, err
		}
		clients, err := ts.managers.Clients.Search(ctx, input.Search, client.Status(input.Status))
		if err != nil {
			return nil, exportResult{}, err
		}
		data, err := client.ExportCSV(clients)
		if err != nil {
			return nil, exportResult{}, err
		}
		return nil, exportResult{Data: data}, nil
	})
}
