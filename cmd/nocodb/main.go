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

// Command nocodb is a command line client for NocoDB.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/authcmd"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/bases"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/exportcmd"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/help"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/listen"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/mcpcmd"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/records"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/tables"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/ver"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.Nocodb.Commands = []*base.Command{
		authcmd.CmdAuth,
		bases.CmdBases,
		tables.CmdTables,
		records.CmdRecords,
		exportcmd.CmdExport,
		listen.CmdListen,
		listen.CmdWebhooks,
		mcpcmd.CmdMCP,
		ver.CmdVersion,
	}
}

func main() {
	loadSecrets(secrets)

	flag.Usage = func() { help.PrintUsage(os.Stderr, base.Nocodb) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}

	base.CmdName = args[0]
	if base.CmdName == "help" {
		help.Help(os.Stdout, args[1:])
		base.Exit()
	}

	mainCmd := base.Nocodb
BigCmdLoop:
	for bigCmd := mainCmd; ; {
		for _, cmd := range bigCmd.Commands {
			if cmd.Name() != args[0] {
				continue
			}
			if len(cmd.Commands) > 0 {
				bigCmd = cmd
				args = args[1:]
				if len(args) == 0 {
					help.PrintUsage(os.Stderr, bigCmd)
					base.SetExitStatus(base.SInvalidParameters)
					base.Exit()
				}
				if args[0] == "help" {
					help.Help(os.Stdout, append(strings.Split(base.CmdName, " "), args[1:]...))
					base.Exit()
				}
				base.CmdName += " " + args[0]
				continue BigCmdLoop
			}
			if !cmd.Runnable() {
				continue
			}
			invoke(cmd, args)
			base.Exit()
			return
		}
		helpArg := ""
		if i := strings.LastIndex(base.CmdName, " "); i >= 0 {
			helpArg = " " + base.CmdName[:i]
		}
		fmt.Fprintf(os.Stderr, "nocodb %s: unknown command\nRun 'nocodb help%s' for usage.\n", base.CmdName, helpArg)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
}

func invoke(cmd *base.Command, args []string) {
	if cmd.CustomFlags {
		args = args[1:]
	} else {
		base.SetExitStatus(base.SNoError)
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() { cmd.Usage() }
		if err := cmd.Flag.Parse(args[1:]); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			base.Exit()
		}
		args = cmd.Flag.Args()
	}

	lg, err := initLog(cfg.LogFile, cfg.JsonLog, cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		base.SetExitStatus(base.SInitializationError)
		base.Exit()
	}
	cfg.Log = lg

	stopTrace := initTrace(cfg.TraceFile)
	base.AtExit(stopTrace)

	if cmd.FlagMask&base.OmitAuthFlags == 0 {
		prof, err := cfg.LoadProfile()
		if err != nil {
			lg.Error("profile", "error", err)
			base.SetExitStatus(base.SInitializationError)
			base.Exit()
		}
		cfg.ApplyProfile(prof)
	}
	if cmd.RequireAuth {
		if cfg.BaseURL == "" || cfg.Token == "" {
			fmt.Fprintln(os.Stderr, "authentication is not initialised, run 'nocodb auth' or see 'nocodb help auth'")
			base.SetExitStatus(base.SAuthError)
			base.Exit()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Run(ctx, cmd, args); err != nil {
		lg.Error("command failed", "command", base.CmdName, "error", err)
		if base.ExitStatus() == base.SNoError {
			base.SetExitStatus(base.SApplicationError)
		}
		base.Exit()
	}
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
