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

// Package authcmd implements the "nocodb auth" command and its subcommands.
package authcmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/cfg"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
	"github.com/nocogo/nocodb/internal/network"
)

var CmdAuth = &base.Command{
	UsageLine: "nocodb auth",
	Short:     "manage the connection profile",
	Long: `
# Auth Command

Auth manages the saved connection profile.  The profile holds the NocoDB
instance URL, the API token and an optional default base ID, and is used
when the corresponding flags and environment variables are not set.

The profile file contains the API token and is created with permissions
that make it readable only by you.
`,
	Commands: []*base.Command{
		cmdAuthLogin,
		cmdAuthTest,
		cmdAuthRm,
	},
}

var cmdAuthLogin = &base.Command{
	UsageLine:  "nocodb auth login",
	Short:      "interactively create the connection profile",
	FlagMask:   base.OmitBaseFlag | base.OmitOutputFlag,
	PrintFlags: true,
	Run:        runAuthLogin,
	Long: `
# Auth Login Command

Asks for the NocoDB instance URL, the API token and an optional default
base ID, verifies the credentials against the instance, and saves them to
the profile file.
`,
}

func runAuthLogin(ctx context.Context, cmd *base.Command, args []string) error {
	p, err := cfg.LoadProfile()
	if err != nil {
		p = &cfg.Profile{}
	}
	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("NocoDB instance URL").
				Placeholder("https://nocodb.example.com").
				Description("The URL you open NocoDB at, without any path.").
				Value(&p.BaseURL).
				Validate(valURL),
			huh.NewInput().
				Title("API token").
				Description("Create one in NocoDB under Account Settings > Tokens.").
				Value(&p.Token).
				Validate(valRequired).
				Password(true),
			huh.NewInput().
				Title("Default base ID (optional)").
				Placeholder("p1234567890abcd").
				Description("Used when -base and NOCODB_BASE are not set.  Leave empty to skip.").
				Value(&p.Base),
		),
	)
	if err := f.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return base.ErrOpCancelled
		}
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	p.BaseURL = strings.TrimRight(p.BaseURL, "/")

	if err := testProfile(ctx, p); err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("credentials check failed: %w", err)
	}
	if err := cfg.SaveProfile(p); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	path, _ := cfg.ProfilePath()
	fmt.Printf("profile saved to %s\n", path)
	return nil
}

var cmdAuthTest = &base.Command{
	UsageLine:   "nocodb auth test",
	Short:       "verify the saved or provided credentials",
	FlagMask:    base.OmitBaseFlag | base.OmitOutputFlag,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runAuthTest,
	Long: `
# Auth Test Command

Connects to the NocoDB instance with the current credentials and reports
whether they work.
`,
}

func runAuthTest(ctx context.Context, cmd *base.Command, args []string) error {
	p := &cfg.Profile{BaseURL: cfg.BaseURL, Token: cfg.Token}
	if err := testProfile(ctx, p); err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	fmt.Println("OK")
	return nil
}

var cmdAuthRm = &base.Command{
	UsageLine:  "nocodb auth rm",
	Short:      "delete the connection profile",
	FlagMask:   base.OmitBaseFlag | base.OmitOutputFlag,
	PrintFlags: true,
	Long: `
# Auth Rm Command

Deletes the profile file.  Asks for confirmation unless -y is given.
`,
}

var rmYes = cmdAuthRm.Flag.Bool("y", false, "answer yes to all questions")

func init() {
	// break the initialisation cycle cmdAuthRm -> runAuthRm -> rmYes
	cmdAuthRm.Run = runAuthRm
}

func runAuthRm(ctx context.Context, cmd *base.Command, args []string) error {
	path, err := cfg.ProfilePath()
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	if _, err := os.Stat(path); err != nil {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("no profile at %s", path)
	}
	if !*rmYes && !base.YesNo(fmt.Sprintf("delete profile %s", path)) {
		return base.ErrOpCancelled
	}
	if err := os.Remove(path); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("deleted %s\n", path)
	return nil
}

// testProfile verifies the credentials by listing the bases visible to the
// token.
func testProfile(ctx context.Context, p *cfg.Profile) error {
	client, err := nocodb.New(p.BaseURL, nocodb.APIToken(p.Token),
		nocodb.WithLimiter(network.NewLimiter(network.DefRate, network.DefBurst)),
		nocodb.WithLogger(cfg.Log),
	)
	if err != nil {
		return err
	}
	_, err = client.ListBases(ctx)
	return err
}

func valRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("this field is required")
	}
	return nil
}

func valURL(s string) error {
	if err := valRequired(s); err != nil {
		return err
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be a valid http(s) URL")
	}
	return nil
}
