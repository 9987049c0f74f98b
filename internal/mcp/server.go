// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/filters"
)

const (
	serverName    = "nocodb-mcp"
	serverVersion = nocodb.Version
)

// Client is the subset of the NocoDB client that the tools use.  It is
// satisfied by *nocodb.Client.
//
//go:generate mockgen -destination=mock_client/mock_client.go -package=mock_client . Client
type Client interface {
	ListBases(ctx context.Context) ([]nocodb.Base, error)
	ListTables(ctx context.Context, baseID string) ([]nocodb.Table, error)
	GetTable(ctx context.Context, baseID, tableID string) (*nocodb.Table, error)
	ListRecords(ctx context.Context, baseID, tableID string, opts *nocodb.ListOptions) (*nocodb.RecordsPage, error)
	GetRecord(ctx context.Context, baseID, tableID string, recordID nocodb.RecordID) (*nocodb.Record, error)
	CreateRecords(ctx context.Context, baseID, tableID string, fields ...nocodb.Fields) ([]nocodb.Record, error)
	UpdateRecords(ctx context.Context, baseID, tableID string, records ...nocodb.Record) ([]nocodb.Record, error)
	DeleteRecords(ctx context.Context, baseID, tableID string, ids ...nocodb.RecordID) ([]nocodb.RecordID, error)
	CountRecords(ctx context.Context, baseID, tableID string, where filters.Condition) (int, error)
	ListLinks(ctx context.Context, baseID, tableID, linkFieldID string, recordID nocodb.RecordID, opts *nocodb.ListOptions) (*nocodb.LinksPage, error)
}

var _ Client = (*nocodb.Client)(nil)

// Server wraps an MCP server and the NocoDB client it operates on.
type Server struct {
	mcp    *mcpsrv.MCPServer
	client Client
	baseID string // default base for tools that omit base_id
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithClient sets the NocoDB client the tools call.
func WithClient(cl Client) Option {
	return func(s *Server) {
		s.client = cl
	}
}

// WithBaseID sets the default base for tools that do not specify one.
func WithBaseID(baseID string) Option {
	return func(s *Server) {
		s.baseID = baseID
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New creates a new MCP server.  The server is populated with all available
// tools but does not start listening until one of the Serve* methods is
// called.
func New(opts ...Option) *Server {
	s := &Server{
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(s.baseID)),
	)
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}
	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the NocoDB
// instance to the connecting agent.
func instructions(baseID string) string {
	base := "No default base is configured; pass base_id to every tool."
	if baseID != "" {
		base = fmt.Sprintf("The default base is %q; tools use it unless base_id is given.", baseID)
	}
	return fmt.Sprintf(`You are connected to a NocoDB MCP server.

%s

Available tools let you list bases and tables, inspect table schemas, query
records with NocoDB filter expressions, count, create, update and delete
records, and follow record links.

Filter syntax (the "where" argument): leaf conditions look like
(Field,op,value) with operators eq, neq, gt, gte, lt, lte, like, nlike, is,
in, btw; combine with ~and, ~or and ~not, e.g.
(Status,eq,Active)~and(Age,gt,18).  The build_filter tool constructs these
strings from structured input.

Deleting records requires confirm=true.`, base)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as
// "127.0.0.1:8484".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolListBases(),
		s.toolListTables(),
		s.toolGetTableSchema(),
		s.toolListRecords(),
		s.toolGetRecord(),
		s.toolCreateRecords(),
		s.toolUpdateRecords(),
		s.toolDeleteRecords(),
		s.toolCountRecords(),
		s.toolListLinks(),
		s.toolBuildFilter(),
	}
}

// AddTool adds an additional tool to the MCP server.  It can be called
// after New but before serving starts; the CLI layer uses it for tools that
// need access to cmd-internal packages.
func (s *Server) AddTool(tool mcpsrv.ServerTool) {
	s.mcp.AddTool(tool.Tool, tool.Handler)
}

// base resolves the effective base ID for a tool call.
func (s *Server) base(req mcplib.CallToolRequest) string {
	if baseID, ok := stringArg(req, "base_id"); ok && baseID != "" {
		return baseID
	}
	return s.baseID
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with
// IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a
// CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}
