package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/farvue/cms/internal/auth"
	"github.com/farvue/cms/internal/domain/client"
	"github.com/farvue/cms/internal/domain/project"
	"github.com/farvue/cms/internal/domain/service"
	"github.com/farvue/cms/internal/domain/settings"
	"github.com/farvue/cms/internal/domain/team"
)

// Managers bundles the domain facades the tools operate on.
type Managers struct {
	Services *service.Manager
	Team     *team.Manager
	Clients  *client.Manager
	Projects *project.Manager
	Settings *settings.Manager
}

// Config contains server configuration.
type Config struct {
	Managers      Managers
	Auth          *auth.Authenticator
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// toolset carries the shared state every tool handler closes over.
type toolset struct {
	managers    Managers
	auth        *auth.Authenticator
	authEnabled bool
}

// require checks the active session's role before a tool runs. Stdio mode
// and disabled auth skip the check entirely.
func (t *toolset) require(ctx context.Context, min auth.Role) error {
	if !t.authEnabled {
		return nil
	}
	_, err := t.auth.Require(ctx, min)
	return err
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "farvue-cms",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	ts := &toolset{
		managers: cfg.Managers,
		auth:     cfg.Auth,
		// Stdio runs locally for a single admin; sessions only gate the
		// HTTP surface.
		authEnabled: cfg.AuthEnabled && cfg.TransportMode != "stdio",
	}

	registerAuthTools(server, ts)
	registerServiceTools(server, ts)
	registerTeamTools(server, ts)
	registerClientTools(server, ts)
	registerProjectTools(server, ts)
	registerSettingsTools(server, ts)

	return server
}
