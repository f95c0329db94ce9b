package functional_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/client"
	"github.com/farvue/cms/internal/domain/project"
	"github.com/farvue/cms/internal/domain/service"
	"github.com/farvue/cms/internal/domain/settings"
	"github.com/farvue/cms/internal/domain/team"
	"github.com/farvue/cms/internal/mcp"
	"github.com/farvue/cms/internal/store"
)

// startServer runs the MCP server behind the streamable HTTP handler, the
// same wiring cmd/server uses in http mode.
func startServer(t *testing.T, authEnabled bool) *httptest.Server {
	t.Helper()

	st := store.NewMemory()
	mcpServer := mcp.NewServer(mcp.Config{
		Managers: mcp.Managers{
			Services: service.NewManager(st, nil),
			Team:     team.NewManager(st, nil),
			Clients:  client.NewManager(st, nil),
			Projects: project.NewManager(st, nil),
			Settings: settings.NewManager(st, nil),
		},
		Auth:          auth.NewAuthenticator(st, nil),
		AuthEnabled:   authEnabled,
		TransportMode: "http",
	})

	handler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{},
	)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func connect(t *testing.T, server *httptest.Server) *sdkmcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	transport := &sdkmcp.StreamableClientTransport{Endpoint: server.URL}
	mcpClient := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "functional-test", Version: "0.0.1"}, nil)
	session, err := mcpClient.Connect(ctx, transport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return result
}

func decode(t *testing.T, result *sdkmcp.CallToolResult, out any) {
	t.Helper()
	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	server := startServer(t, false)
	session := connect(t, server)

	// Add a client, then a project for it.
	result := call(t, session, "client_add", map[string]any{
		"name":    "Orbit Labs",
		"email":   "ops@orbitlabs.dev",
		"company": "Orbit Labs",
		"status":  "active",
	})
	require.False(t, result.IsError)
	var c client.Client
	decode(t, result, &c)

	result = call(t, session, "project_add", map[string]any{
		"title":         "Launch Teaser",
		"client_id":     c.ID,
		"service_type":  "video-editing",
		"priority":      "high",
		"assigned_team": []string{"1", "3"},
		"due_date":      "2026-10-01",
		"budget":        1800,
	})
	require.False(t, result.IsError)
	var p project.Project
	decode(t, result, &p)
	require.Equal(t, project.StatusNotStarted, p.Status)
	require.Equal(t, "Orbit Labs", p.Client.Name)

	result = call(t, session, "project_set_status", map[string]any{
		"id":     p.ID,
		"status": "in-progress",
	})
	require.False(t, result.IsError)
	decode(t, result, &p)
	require.Equal(t, 25, p.Progress)

	result = call(t, session, "project_set_status", map[string]any{
		"id":     p.ID,
		"status": "completed",
	})
	require.False(t, result.IsError)
	decode(t, result, &p)
	require.Equal(t, 100, p.Progress)
	require.NotEmpty(t, p.CompletedDate)
}

func TestAuthGatesToolsOverHTTP(t *testing.T) {
	server := startServer(t, true)
	session := connect(t, server)

	result := call(t, session, "team_list", map[string]any{})
	require.True(t, result.IsError)

	result = call(t, session, "login", map[string]any{
		"username": "editor",
		"password": "editor123",
	})
	require.False(t, result.IsError)

	result = call(t, session, "team_list", map[string]any{})
	require.False(t, result.IsError)

	// Editors cannot delete.
	result = call(t, session, "team_delete", map[string]any{"id": "1"})
	require.True(t, result.IsError)
}
