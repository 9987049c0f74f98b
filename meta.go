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

// In this file: meta API operations - bases, tables, API tokens and
// webhooks.

import (
	"context"
	"fmt"
)

// Base is a NocoDB base (a container of tables; "project" in the v1 API).
type Base struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Field is a table field (column) definition.
type Field struct {
	ID      string         `json:"id,omitempty"`
	Title   string         `json:"title"`
	Type    string         `json:"type,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// Table is a table's metadata.
type Table struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

// APITokenInfo describes an API token.
type APITokenInfo struct {
	ID          string `json:"id"`
	Token       string `json:"token,omitempty"`
	Description string `json:"description,omitempty"`
}

// Webhook describes a table webhook.
type Webhook struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Event     string `json:"event,omitempty"`
	Operation string `json:"operation,omitempty"`
	Active    bool   `json:"active,omitempty"`
}

// ListBases lists all bases visible to the authenticated user.  This uses
// the v2 meta API: the v3 bases list is an Enterprise feature, so
// self-hosted community-edition instances only expose v2.
func (c *Client) ListBases(ctx context.Context) ([]Base, error) {
	var out struct {
		List []Base `json:"list"`
	}
	if err := c.get(ctx, c.api.basesV2(), nil, &out); err != nil {
		return nil, fmt.Errorf("list bases: %w", err)
	}
	return out.List, nil
}

// GetBase fetches a single base's metadata.
func (c *Client) GetBase(ctx context.Context, baseID string) (*Base, error) {
	var base Base
	if err := c.get(ctx, c.api.base3(baseID), nil, &base); err != nil {
		return nil, fmt.Errorf("get base %s: %w", baseID, err)
	}
	return &base, nil
}

// ListTables lists the tables in a base.
func (c *Client) ListTables(ctx context.Context, baseID string) ([]Table, error) {
	var out struct {
		Tables []Table `json:"tables"`
	}
	if err := c.get(ctx, c.api.tables(baseID), nil, &out); err != nil {
		return nil, fmt.Errorf("list tables %s: %w", baseID, err)
	}
	return out.Tables, nil
}

// GetTable fetches a table's metadata, including its field definitions.
func (c *Client) GetTable(ctx context.Context, baseID, tableID string) (*Table, error) {
	var table Table
	if err := c.get(ctx, c.api.table(baseID, tableID), nil, &table); err != nil {
		return nil, fmt.Errorf("get table %s/%s: %w", baseID, tableID, err)
	}
	return &table, nil
}

// CreateTable creates a table.  tbl.Title is required; tbl.Fields may
// define the initial columns.
func (c *Client) CreateTable(ctx context.Context, baseID string, tbl Table) (*Table, error) {
	if tbl.Title == "" {
		return nil, fmt.Errorf("create table %s: title is required", baseID)
	}
	var created Table
	if err := c.post(ctx, c.api.tables(baseID), tbl, &created); err != nil {
		return nil, fmt.Errorf("create table %s: %w", baseID, err)
	}
	return &created, nil
}

// UpdateTable applies a partial update (e.g. a rename) to a table.
func (c *Client) UpdateTable(ctx context.Context, baseID, tableID string, tbl Table) (*Table, error) {
	var updated Table
	if err := c.patch(ctx, c.api.table(baseID, tableID), tbl, &updated); err != nil {
		return nil, fmt.Errorf("update table %s/%s: %w", baseID, tableID, err)
	}
	return &updated, nil
}

// DeleteTable removes a table and all of its records.
func (c *Client) DeleteTable(ctx context.Context, baseID, tableID string) error {
	if err := c.delete(ctx, c.api.table(baseID, tableID), nil, nil); err != nil {
		return fmt.Errorf("delete table %s/%s: %w", baseID, tableID, err)
	}
	return nil
}

// ListTokens lists the API tokens of the authenticated user.  Token values
// are included by the server.
func (c *Client) ListTokens(ctx context.Context) ([]APITokenInfo, error) {
	var out struct {
		Tokens []APITokenInfo `json:"tokens"`
	}
	if err := c.get(ctx, c.api.tokens(), nil, &out); err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	return out.Tokens, nil
}

// CreateToken creates an API token with the given description.
func (c *Client) CreateToken(ctx context.Context, description string) (*APITokenInfo, error) {
	body := map[string]string{"description": description}
	var created APITokenInfo
	if err := c.post(ctx, c.api.tokens(), body, &created); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return &created, nil
}

// DeleteToken removes an API token.
func (c *Client) DeleteToken(ctx context.Context, tokenID string) error {
	if err := c.delete(ctx, c.api.token(tokenID), nil, nil); err != nil {
		return fmt.Errorf("delete token %s: %w", tokenID, err)
	}
	return nil
}

// ListWebhooks lists the webhooks of a table (v2 meta API; self-hosted
// instances only support list and delete).
func (c *Client) ListWebhooks(ctx context.Context, tableID string) ([]Webhook, error) {
	var out struct {
		List []Webhook `json:"list"`
	}
	if err := c.get(ctx, c.api.hooks(tableID), nil, &out); err != nil {
		return nil, fmt.Errorf("list webhooks %s: %w", tableID, err)
	}
	return out.List, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, hookID string) error {
	if err := c.delete(ctx, c.api.hook(hookID), nil, nil); err != nil {
		return fmt.Errorf("delete webhook %s: %w", hookID, err)
	}
	return nil
}
