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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var (
	TraceFile string
	LogFile   string
	JsonLog   bool
	Verbose   bool

	BaseURL     string
	Token       string
	Base        string // default base ID
	Output      string // output filename, "-" for stdout
	ProfileFile string

	Limit float64 // requests per second
	Burst int     // burst size
)

// Log is the package-wide logger.  It is replaced by main once logging is
// initialised.
var Log *slog.Logger = slog.Default()

const (
	envURL   = "NOCODB_URL"
	envToken = "NOCODB_TOKEN"
	envBase  = "NOCODB_BASE"
)

const (
	defLimit = 5.0
	defBurst = 2
)

// SetBaseFlags sets the common flags on the given flagset, except those
// masked out.
func SetBaseFlags(fs *flag.FlagSet, mask base.FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JsonLog, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&base.OmitAuthFlags == 0 {
		fs.StringVar(&BaseURL, "url", osenv.Value(envURL, ""), "NocoDB instance `URL`, i.e. https://app.nocodb.com\n(environment: "+envURL+")")
		fs.StringVar(&Token, "token", osenv.Secret(envToken, ""), "NocoDB API `token`\n(environment: "+envToken+")")
		fs.StringVar(&ProfileFile, "profile", "", "profile `file` to load the connection settings from\n(default: "+defProfileLocation+")")
		fs.Float64Var(&Limit, "limit", defLimit, "rate limit, in requests per `second`")
		fs.IntVar(&Burst, "burst", defBurst, "allow up to `N` burst requests")
	}
	if mask&base.OmitBaseFlag == 0 {
		fs.StringVar(&Base, "base", osenv.Value(envBase, ""), "`ID` of the base to operate on\n(environment: "+envBase+")")
	}
	if mask&base.OmitOutputFlag == 0 {
		fs.StringVar(&Output, "o", "-", "output `filename`, use \"-\" for standard output")
	}
}

// SetDebugLevel switches the default logger to debug level.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
