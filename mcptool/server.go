package mcptool

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/humanurl/humanize"
	"github.com/jongio/humanurl/logutil"
	"github.com/jongio/humanurl/permissive"
)

// Tool names.
const (
	ToolHumanize   = "humanize_url"
	ToolRewrite    = "rewrite_url"
	ToolComponents = "url_components"
)

var log = logutil.NewLogger("mcptool")

// Options configures the tool server.
type Options struct {
	Name      string
	Version   string
	RateLimit float64 // calls per second
	Burst     int
}

// Server holds the MCP server and the limiter shared by its tools.
type Server struct {
	mcp     *server.MCPServer
	limiter *rate.Limiter
}

// HumanizeResult is returned by humanize_url.
type HumanizeResult struct {
	Input     string `json:"input"`
	Humanized string `json:"humanized"`
}

// RewriteResult is returned by rewrite_url.
type RewriteResult struct {
	Input     string `json:"input"`
	Rewritten string `json:"rewritten"`
}

// NewServer creates a server with all tools registered.
func NewServer(opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "humanurl"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}

	s := &Server{
		mcp:     server.NewMCPServer(opts.Name, opts.Version, server.WithToolCapabilities(false)),
		limiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
	}

	s.mcp.AddTool(mcp.NewTool(ToolHumanize,
		mcp.WithDescription("Shorten a URL for display: drops scheme, credentials, query, fragment, default port and a root path."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Absolute URL to humanize")),
	), s.limited(ToolHumanize, s.handleHumanize))

	s.mcp.AddTool(mcp.NewTool(ToolRewrite,
		mcp.WithDescription("Rewrite URL components without validation, e.g. replace the scheme with an unregistered one."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Absolute URL to start from")),
		mcp.WithString("scheme", mcp.Description("New scheme, written verbatim")),
		mcp.WithString("username", mcp.Description("New username")),
		mcp.WithString("password", mcp.Description("New password")),
		mcp.WithString("host", mcp.Description("New host")),
		mcp.WithString("port", mcp.Description("New port, written verbatim")),
		mcp.WithString("path", mcp.Description("New path")),
		mcp.WithString("query", mcp.Description("New query without '?'")),
		mcp.WithString("fragment", mcp.Description("New fragment without '#'")),
		mcp.WithString("clear", mcp.Description("Comma-separated components to remove: scheme, userinfo, port, query, fragment")),
	), s.limited(ToolRewrite, s.handleRewrite))

	s.mcp.AddTool(mcp.NewTool(ToolComponents,
		mcp.WithDescription("Decompose a URL into scheme, userinfo, host, port, path, query and fragment."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Absolute URL to decompose")),
	), s.limited(ToolComponents, s.handleComponents))

	return s
}

// ServeStdio serves the tools over the given streams until ctx is done or
// in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info("serving MCP tools over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) limited(tool string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !s.limiter.Allow() {
			log.Warn("rate limit exceeded", "tool", tool)
			return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", tool)), nil
		}
		return h(ctx, request)
	}
}

func (s *Server) handleHumanize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := GetStringParam(GetArgsMap(request), "url")
	if !ok {
		return mcp.NewToolResultError("missing required string parameter: url"), nil
	}

	out, err := humanize.Humanize(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return MarshalToolResult(HumanizeResult{Input: raw, Humanized: out})
}

func (s *Server) handleRewrite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)
	raw, ok := GetStringParam(args, "url")
	if !ok {
		return mcp.NewToolResultError("missing required string parameter: url"), nil
	}

	u, err := permissive.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	edits := permissive.Edits{
		Scheme:   OptionalStringParam(args, "scheme"),
		Username: OptionalStringParam(args, "username"),
		Password: OptionalStringParam(args, "password"),
		Host:     OptionalStringParam(args, "host"),
		Path:     OptionalStringParam(args, "path"),
		Query:    OptionalStringParam(args, "query"),
		Port:     OptionalStringParam(args, "port"),
		Fragment: OptionalStringParam(args, "fragment"),
	}
	if names, ok := GetStringParam(args, "clear"); ok {
		cleared, err := permissive.ParseComponents(names)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		edits.Clear = cleared
	}
	edits.Apply(u)

	log.Debug("rewrote url", "input", raw, "output", u.String())
	return MarshalToolResult(RewriteResult{Input: raw, Rewritten: u.String()})
}

func (s *Server) handleComponents(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := GetStringParam(GetArgsMap(request), "url")
	if !ok {
		return mcp.NewToolResultError("missing required string parameter: url"), nil
	}

	u, err := permissive.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return MarshalToolResult(u.Redacted())
}
