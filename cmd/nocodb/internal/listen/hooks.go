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

package listen

// In this file: webhook management subcommands.  NocoDB community edition
// exposes webhook listing and deletion through the v2 meta API; webhooks
// are created in the NocoDB UI.

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nocogo/nocodb/cmd/nocodb/internal/bootstrap"
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var CmdWebhooks = &base.Command{
	UsageLine: "nocodb webhooks",
	Short:     "manage table webhooks",
	Long: `
# Webhooks Command

Webhooks lists and deletes table webhooks.  Webhooks are created in the
NocoDB user interface; use "nocodb listen" to receive their calls locally.
`,
	Commands: []*base.Command{
		cmdWebhooksList,
		cmdWebhooksRm,
	},
}

var cmdWebhooksList = &base.Command{
	UsageLine:   "nocodb webhooks list [flags] <table_id>",
	Short:       "list the webhooks of a table",
	FlagMask:    base.OmitBaseFlag,
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Webhooks List Command

Lists the webhooks configured for the table.
`,
}

var listJSON = cmdWebhooksList.Flag.Bool("json", false, "output in JSON format")

func init() {
	// break the initialisation cycle cmdWebhooksList -> runWebhooksList -> listJSON
	cmdWebhooksList.Run = runWebhooksList
}

func runWebhooksList(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one table ID, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	out, err := bootstrap.Output()
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	defer out.Close()

	hooks, err := client.ListWebhooks(ctx, args[0])
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	if *listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(hooks)
	}
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tEVENT\tOPERATION\tACTIVE")
	for _, h := range hooks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", h.ID, h.Title, h.Event, h.Operation, h.Active)
	}
	return tw.Flush()
}

var cmdWebhooksRm = &base.Command{
	UsageLine:   "nocodb webhooks rm [flags] <hook_id>",
	Short:       "delete a webhook",
	FlagMask:    base.OmitBaseFlag | base.OmitOutputFlag,
	PrintFlags:  true,
	RequireAuth: true,
	Long: `
# Webhooks Rm Command

Deletes the webhook with the given ID.  Asks for confirmation unless -y is
given.
`,
}

var rmYes = cmdWebhooksRm.Flag.Bool("y", false, "answer yes to all questions")

func init() {
	// break the initialisation cycle cmdWebhooksRm -> runWebhooksRm -> rmYes
	cmdWebhooksRm.Run = runWebhooksRm
}

func runWebhooksRm(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("expected exactly one webhook ID, got %d arguments", len(args))
	}
	client, err := bootstrap.Client()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	if !*rmYes && !base.YesNo(fmt.Sprintf("delete webhook %s", args[0])) {
		return base.ErrOpCancelled
	}
	if err := client.DeleteWebhook(ctx, args[0]); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("deleted webhook %s\n", args[0])
	return nil
}
