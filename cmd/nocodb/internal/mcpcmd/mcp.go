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

// Package mcpcmd implements the "nocodb mcp" command.
package mcpcmd

import (
	"context"
	"fmt"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
	"github.com/nocogo/nocodb/internal/mcp"
)

var CmdMCP = &base.Command{
	UsageLine:   "nocodb mcp [flags]",
	Short:       "start the Model Context Protocol server",
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runMCP,
	Long: `
# MCP Command

Starts a Model Context Protocol (MCP) server that gives AI assistants
access to the NocoDB instance: listing bases and tables, reading table
schemas, querying, creating, updating and deleting records, and building
filter expressions.

By default the server communicates over standard input/output, which is
what most MCP clients expect.  With "-transport http" it serves the MCP
streamable HTTP protocol on the address given with -addr instead.

Example configuration for an MCP client:

	{
	  "mcpServers": {
	    "nocodb": {
	      "command": "nocodb",
	      "args": ["mcp", "-base", "YOUR_BASE_ID"]
	    }
	  }
	}
`,
}

var (
	transport string
	addr      string
)

func init() {
	CmdMCP.Flag.StringVar(&transport, "transport", "stdio", "transport to serve on: \"stdio\" or \"http\"")
	CmdMCP.Flag.StringVar(&addr, "addr", "127.0.0.1:8483", "`address` to listen on with -transport http")
}

func runMCP(ctx context.Context, cmd *base.Command, args []string) error {
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	srv := mcp.New(
		mcp.WithClient(client),
		mcp.WithBaseID(cfg.Base),
		mcp.WithLogger(cfg.Log),
	)
	switch transport {
	case "stdio":
		err = srv.ServeStdio(ctx)
	case "http":
		err = srv.ServeHTTP(ctx, addr)
	default:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unknown transport %q, want \"stdio\" or \"http\"", transport)
	}
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}
