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

package nocodb

// In this file: API endpoint URL construction.
//
// The v3 API addresses everything by baseID and tableID:
//
//	/api/v3/data/{baseID}/{tableID}/records
//	/api/v3/meta/bases/{baseID}/tables
//
// A few features of self-hosted community-edition instances are only
// reachable through the v2 meta API (bases list, webhooks); the builder
// covers those too.

import "strings"

const (
	v2MetaPrefix = "api/v2/meta"
	v3DataPrefix = "api/v3/data"
	v3MetaPrefix = "api/v3/meta"
)

// api builds endpoint URLs for a NocoDB instance.
type api struct {
	base string // instance URL without trailing slash
}

func newAPI(baseURL string) api {
	return api{base: strings.TrimRight(baseURL, "/")}
}

func (a api) join(elem ...string) string {
	return a.base + "/" + strings.Join(elem, "/")
}

// ─── v3 data ──────────────────────────────────────────────────────────────────

func (a api) records(baseID, tableID string) string {
	return a.join(v3DataPrefix, baseID, tableID, "records")
}

func (a api) record(baseID, tableID string, recordID RecordID) string {
	return a.join(v3DataPrefix, baseID, tableID, "records", string(recordID))
}

func (a api) count(baseID, tableID string) string {
	return a.join(v3DataPrefix, baseID, tableID, "count")
}

func (a api) links(baseID, tableID, linkFieldID string, recordID RecordID) string {
	return a.join(v3DataPrefix, baseID, tableID, "links", linkFieldID, string(recordID))
}

// ─── v3 meta ──────────────────────────────────────────────────────────────────

func (a api) base3(baseID string) string {
	return a.join(v3MetaPrefix, "bases", baseID)
}

func (a api) tables(baseID string) string {
	return a.join(v3MetaPrefix, "bases", baseID, "tables")
}

func (a api) table(baseID, tableID string) string {
	return a.join(v3MetaPrefix, "bases", baseID, "tables", tableID)
}

func (a api) tokens() string {
	return a.join(v3MetaPrefix, "tokens")
}

func (a api) token(tokenID string) string {
	return a.join(v3MetaPrefix, "tokens", tokenID)
}

// ─── v2 meta (self-hosted only) ───────────────────────────────────────────────

// basesV2 lists bases.  The v3 bases list is Enterprise-only; self-hosted
// community edition must use v2.
func (a api) basesV2() string {
	return a.join(v2MetaPrefix, "bases")
}

func (a api) hooks(tableID string) string {
	return a.join(v2MetaPrefix, "tables", tableID, "hooks")
}

func (a api) hook(hookID string) string {
	return a.join(v2MetaPrefix, "hooks", hookID)
}
