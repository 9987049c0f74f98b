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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rusq/fsadapter"

	"github.com/nocogo/nocodb"
)

// csvWriter writes records as CSV rows.  The column set is fixed from the
// table schema: the record ID first, then one column per schema field.
type csvWriter struct {
	f       io.WriteCloser
	w       *csv.Writer
	columns []string
	name    string
}

func newCSVWriter(fs fsadapter.FS, tbl nocodb.Table) (*csvWriter, error) {
	name := filename(tbl.Title, ".csv")
	f, err := fs.Create(name)
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(tbl.Fields))
	for _, fld := range tbl.Fields {
		columns = append(columns, fld.Title)
	}
	cw := &csvWriter{f: f, w: csv.NewWriter(f), columns: columns, name: name}
	if err := cw.w.Write(append([]string{"id"}, columns...)); err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

func (w *csvWriter) WriteRecord(rec nocodb.Record) error {
	row := make([]string, 0, len(w.columns)+1)
	row = append(row, string(rec.ID))
	for _, col := range w.columns {
		row = append(row, cell(rec.Fields[col]))
	}
	return w.w.Write(row)
}

func (w *csvWriter) Filename() string { return w.name }

func (w *csvWriter) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// cell renders a field value for a CSV cell.  Scalar values are printed
// as-is; composite values (linked records, attachments) are JSON-encoded.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64, int, int64, bool:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
