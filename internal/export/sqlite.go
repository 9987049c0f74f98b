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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rusq/fsadapter"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/nocogo/nocodb"
)

const sqliteDriver = "sqlite"

// sqliteWriter writes records into a SQLite database.  The database is
// built in a temporary directory because fsadapter targets (such as ZIP
// files) are not seekable; on Close the finished file is copied into the
// adapter.
type sqliteWriter struct {
	conn    *sqlx.DB
	fs      fsadapter.FS
	tmpdir  string
	columns []string
	insert  string
	name    string
}

func newSQLiteWriter(fs fsadapter.FS, tbl nocodb.Table) (*sqliteWriter, error) {
	tmpdir, err := os.MkdirTemp("", "nocodb-export-*")
	if err != nil {
		return nil, err
	}
	name := filename(tbl.Title, ".sqlite")
	conn, err := sqlx.Open(sqliteDriver, filepath.Join(tmpdir, name))
	if err != nil {
		os.RemoveAll(tmpdir)
		return nil, err
	}

	columns := make([]string, 0, len(tbl.Fields))
	for _, fld := range tbl.Fields {
		columns = append(columns, fld.Title)
	}
	w := &sqliteWriter{
		conn:    conn,
		fs:      fs,
		tmpdir:  tmpdir,
		columns: columns,
		insert:  insertStmt(tbl.Title, columns),
		name:    name,
	}
	if _, err := conn.Exec(createStmt(tbl.Title, columns)); err != nil {
		w.cleanup()
		return nil, fmt.Errorf("create table: %w", err)
	}
	return w, nil
}

func (w *sqliteWriter) WriteRecord(rec nocodb.Record) error {
	args := make([]any, 0, len(w.columns)+1)
	args = append(args, string(rec.ID))
	for _, col := range w.columns {
		v, ok := rec.Fields[col]
		if !ok || v == nil {
			args = append(args, nil)
			continue
		}
		switch v := v.(type) {
		case string, float64, int, int64, bool:
			args = append(args, v)
		default:
			args = append(args, cell(v))
		}
	}
	_, err := w.conn.Exec(w.insert, args...)
	return err
}

func (w *sqliteWriter) Filename() string { return w.name }

// Close finalises the database and copies it into the target filesystem.
func (w *sqliteWriter) Close() error {
	defer os.RemoveAll(w.tmpdir)
	if err := w.conn.Close(); err != nil {
		return err
	}
	src, err := os.Open(filepath.Join(w.tmpdir, w.name))
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := w.fs.Create(w.name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func (w *sqliteWriter) cleanup() {
	w.conn.Close()
	os.RemoveAll(w.tmpdir)
}

// quoteIdent quotes a SQLite identifier.  Table and field titles in NocoDB
// are user-controlled and frequently contain spaces.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func createStmt(table string, columns []string) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(quoteIdent(table))
	sb.WriteString(" (id TEXT PRIMARY KEY")
	for _, col := range columns {
		sb.WriteString(", ")
		sb.WriteString(quoteIdent(col))
	}
	sb.WriteString(")")
	return sb.String()
}

func insertStmt(table string, columns []string) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(quoteIdent(table))
	sb.WriteString(" VALUES (?")
	sb.WriteString(strings.Repeat(",?", len(columns)))
	sb.WriteString(")")
	return sb.String()
}
