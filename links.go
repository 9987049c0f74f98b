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

// In this file: v3 data API linked-record operations.

import (
	"context"
	"fmt"
)

// LinksPage is one page of linked records for a link field.
type LinksPage struct {
	List []Record `json:"list"`
	Next string   `json:"next,omitempty"`
}

// ListLinks lists the records linked to recordID through the given link
// field.  opts may be nil; its Where, Fields, Sort and paging apply to the
// linked listing.
func (c *Client) ListLinks(ctx context.Context, baseID, tableID, linkFieldID string, recordID RecordID, opts *ListOptions) (*LinksPage, error) {
	var page LinksPage
	u := c.api.links(baseID, tableID, linkFieldID, recordID)
	if err := c.get(ctx, u, opts.values(), &page); err != nil {
		return nil, fmt.Errorf("list links %s/%s/%s: %w", tableID, linkFieldID, recordID, err)
	}
	return &page, nil
}

// Link links the given target records to recordID through the link field.
func (c *Client) Link(ctx context.Context, baseID, tableID, linkFieldID string, recordID RecordID, targets ...RecordID) error {
	if len(targets) == 0 {
		return fmt.Errorf("link %s/%s/%s: no target records given", tableID, linkFieldID, recordID)
	}
	u := c.api.links(baseID, tableID, linkFieldID, recordID)
	if err := c.post(ctx, u, idRefs(targets), nil); err != nil {
		return fmt.Errorf("link %s/%s/%s: %w", tableID, linkFieldID, recordID, err)
	}
	return nil
}

// Unlink removes the link between recordID and the given target records.
func (c *Client) Unlink(ctx context.Context, baseID, tableID, linkFieldID string, recordID RecordID, targets ...RecordID) error {
	if len(targets) == 0 {
		return fmt.Errorf("unlink %s/%s/%s: no target records given", tableID, linkFieldID, recordID)
	}
	u := c.api.links(baseID, tableID, linkFieldID, recordID)
	if err := c.delete(ctx, u, idRefs(targets), nil); err != nil {
		return fmt.Errorf("unlink %s/%s/%s: %w", tableID, linkFieldID, recordID, err)
	}
	return nil
}
