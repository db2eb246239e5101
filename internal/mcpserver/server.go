// Package mcpserver exposes color conversion as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"huectl/internal/cli"
	"huectl/internal/notation"
	"huectl/pkg/logging"
)

// ConfigFunc returns the notation settings for one tool call. It is
// invoked on every call so configuration edits apply without a restart.
type ConfigFunc func() (notation.Config, error)

// Server wraps an MCP server carrying the color tools.
type Server struct {
	mcp    *server.MCPServer
	config ConfigFunc
}

// New creates the server and registers its tools.
func New(version string, config ConfigFunc) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"huectl",
			version,
			server.WithToolCapabilities(true),
		),
		config: config,
	}
	s.mcp.AddTools(s.Tools()...)
	return s
}

// Tools returns the color tools with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: convertTool(), Handler: s.handleConvert},
		{Tool: parseTool(), Handler: s.handleParse},
		{Tool: listTool(), Handler: s.handleNotationList},
	}
}

// Serve handles MCP messages from in and writes replies to out until ctx
// is done or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCP", "Serving %d tools over stdio", len(s.Tools()))
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func notationLabels() []string {
	labels := make([]string, 0, len(notation.All()))
	for _, n := range notation.All() {
		labels = append(labels, n.String())
	}
	return labels
}

func convertTool() mcp.Tool {
	return mcp.NewTool("color_convert",
		mcp.WithDescription("Convert a color to other notations"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Color text, e.g. '#6495ED', 'hsl(219, 79%, 66%)' or 'cornflowerblue'"),
		),
		mcp.WithString("from",
			mcp.Description("Notation the color is written in; 'auto' detects it"),
			mcp.Enum(append([]string{"auto"}, notationLabels()...)...),
		),
		mcp.WithString("to",
			mcp.Description("Comma-separated target notations, or 'all'"),
		),
	)
}

func parseTool() mcp.Tool {
	return mcp.NewTool("color_parse",
		mcp.WithDescription("Parse a color and return its sRGB components"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Color text in any supported notation"),
		),
		mcp.WithString("from",
			mcp.Description("Notation the color is written in; 'auto' detects it"),
			mcp.Enum(append([]string{"auto"}, notationLabels()...)...),
		),
	)
}

func listTool() mcp.Tool {
	return mcp.NewTool("notation_list",
		mcp.WithDescription("List supported color notations with an example of each"),
	)
}

// optionalString reads a string argument that may be absent.
func optionalString(request mcp.CallToolRequest, name string) (string, error) {
	raw, ok := request.GetArguments()[name]
	if !ok || raw == nil {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return v, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color parameter is required"), nil
	}
	from, err := optionalString(request, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := optionalString(request, "to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := s.config()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err)), nil
	}
	src, err := cli.ParseSource(from)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var labels []string
	if to != "" {
		labels = strings.Split(to, ",")
	}
	targets, err := cli.ParseTargets(labels)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := cli.Convert(text, cli.ConvertOptions{From: src, To: targets}, cfg)
	if err != nil {
		logging.Debug("MCP", "color_convert rejected %q: %v", text, err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res)
}

// parsed is the color_parse reply.
type parsed struct {
	Notation string  `json:"notation"`
	Hex      string  `json:"hex"`
	R        float64 `json:"r"`
	G        float64 `json:"g"`
	B        float64 `json:"b"`
	A        float64 `json:"a"`
	RGBA8    [4]int  `json:"rgba8"`
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError("color parameter is required"), nil
	}
	from, err := optionalString(request, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg, err := s.config()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err)), nil
	}
	src, err := cli.ParseSource(from)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := cli.Convert(text, cli.ConvertOptions{From: src, To: []notation.Notation{notation.Hex}}, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c := res.Color()
	r, g, b, a := c.RGBA8()
	return jsonResult(parsed{
		Notation: res.Source,
		Hex:      res.Hex,
		R:        c.R(),
		G:        c.G(),
		B:        c.B(),
		A:        c.A(),
		RGBA8:    [4]int{int(r), int(g), int(b), int(a)},
	})
}

func (s *Server) handleNotationList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := s.config()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Configuration error: %v", err)), nil
	}
	return jsonResult(cli.Notations(cfg))
}
