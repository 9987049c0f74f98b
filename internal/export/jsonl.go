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

package export

import (
	"encoding/json"
	"io"

	"github.com/rusq/fsadapter"

	"github.com/nocogo/nocodb"
)

// jsonlWriter writes one record per line as a JSON object.
type jsonlWriter struct {
	f    io.WriteCloser
	enc  *json.Encoder
	name string
}

func newJSONLWriter(fs fsadapter.FS, tbl nocodb.Table) (*jsonlWriter, error) {
	name := filename(tbl.Title, ".jsonl")
	f, err := fs.Create(name)
	if err != nil {
		return nil, err
	}
	return &jsonlWriter{f: f, enc: json.NewEncoder(f), name: name}, nil
}

func (w *jsonlWriter) WriteRecord(rec nocodb.Record) error {
	return w.enc.Encode(rec)
}

func (w *jsonlWriter) Filename() string { return w.name }

func (w *jsonlWriter) Close() error { return w.f.Close() }
