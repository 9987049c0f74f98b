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

// Package records implements the "nocodb records" command.
package records

import (
	"github.com/nocogo/nocodb/cmd/nocodb/internal/golang/base"
)

var CmdRecords = &base.Command{
	UsageLine: "nocodb records",
	Short:     "query and modify table records",
	Long: `
Records queries, creates, updates and deletes records of a NocoDB table.
All subcommands take the table ID as the first argument and operate on the
base given with -base (or the NOCODB_BASE environment variable, or the
saved profile).

Query subcommands accept filter conditions:

    -where "(Status,eq,Active)~and(Age,gt,18)"
        raw NocoDB filter expression, passed to the API as is;

    -f "Status,eq,Active" -f "Age,gt,18"
        individual conditions, joined with ~and.  May be given multiple
        times, and combined with -where.

The operators are: eq, neq, gt, gte, lt, lte, like, nlike, is, in, btw.
`,
	Commands: []*base.Command{
		cmdRecordsList,
		cmdRecordsGet,
		cmdRecordsCreate,
		cmdRecordsUpdate,
		cmdRecordsRm,
		cmdRecordsCount,
	},
}
