// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the line search as a tool over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/minigrep/internal/apperr"
	"github.com/starford/minigrep/internal/search"
	"github.com/starford/minigrep/internal/storage"
)

const contractURI = "minigrep://search-contract"

// Server wraps the MCP server with the minigrep tools.
type Server struct {
	mcp    *server.MCPServer
	store  storage.Provider
	logger *slog.Logger
}

// New creates a new MCP server with all tools registered.
func New(store storage.Provider, version string, logger *slog.Logger) *Server {
	s := &Server{store: store, logger: logger}

	s.mcp = server.NewMCPServer(
		"minigrep",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_file",
		mcp.WithDescription("Return every line of a text file that contains the query. "+
			"Plain substring matching, no regular expressions. Read the contract via the "+
			contractURI+" resource for the exact rules."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Substring to look for; empty matches every line")),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path relative to the server root")),
		mcp.WithBoolean("case_insensitive", mcp.Description("Ignore case when matching (default false)")),
	), s.searchFile)

	s.mcp.AddResource(
		mcp.NewResource(contractURI, "Search Contract",
			mcp.WithResourceDescription("Matching rules of the search_file tool."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContractResource,
	)

	return s
}

// Serve runs the MCP protocol on in/out until ctx is cancelled or in is
// exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if path == "" {
		return mcp.NewToolResultError("path must not be empty"), nil
	}

	content, err := s.store.ReadText(path)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	case err != nil:
		s.logger.Warn("mcp: read failed", slog.String("path", path), slog.String("error", err.Error()))
		return mcp.NewToolResultError(err.Error()), nil
	}

	caseSensitive := !req.GetBool("case_insensitive", false)
	matches := search.Search(query, content, caseSensitive)

	s.logger.Debug("mcp: search_file",
		slog.String("path", path),
		slog.Bool("case_sensitive", caseSensitive),
		slog.Int("matches", len(matches)))

	if len(matches) == 0 {
		return mcp.NewToolResultText("no matches"), nil
	}
	return mcp.NewToolResultText(strings.Join(matches, "\n")), nil
}

func (s *Server) readContractResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      contractURI,
			MIMEType: "text/markdown",
			Text:     SearchContract,
		},
	}, nil
}
