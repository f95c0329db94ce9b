package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
)

type loginInput struct {
	Username string `json:"username" jsonschema:"admin username"`
	Password string `json:"password" jsonschema:"admin password"`
}

type sessionResult struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	LoggedIn string `json:"loggedIn"`
}

type emptyInput struct{}

type okResult struct {
	OK bool `json:"ok"`
}

func sessionToResult(s *auth.Session) sessionResult {
	return sessionResult{
		Username: s.User.Username,
		Name:     s.User.Name,
		Role:     string(s.User.Role),
		LoggedIn: s.LoggedIn.Format(time.RFC3339),
	}
}

func registerAuthTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "login",
		Description: "Sign in with admin credentials and start a session",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input loginInput) (*sdkmcp.CallToolResult, sessionResult, error) {
		session, err := ts.auth.Login(ctx, input.Username, input.Password)
		if err != nil {
			return nil, sessionResult{}, err
		}
		return nil, sessionToResult(session), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "logout",
		Description: "End the active admin session",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, okResult, error) {
		if err := ts.auth.Logout(ctx); err != nil {
			return nil, okResult{}, err
		}
		return nil, okResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "whoami",
		Description: "Show the active admin session",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input emptyInput) (*sdkmcp.CallToolResult, sessionResult, error) {
		session, err := ts.auth.Current(ctx)
		if err != nil {
			return nil, sessionResult{}, err
		}
		return nil, sessionToResult(session), nil
	})
}
