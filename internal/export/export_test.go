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
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rusq/fsadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nocogo/nocodb"
)

// fakeSource is a static Source for tests.
type fakeSource struct {
	tables  []nocodb.Table
	records map[string][]nocodb.Record // keyed by table ID
	err     error
}

func (f *fakeSource) ListTables(ctx context.Context, baseID string) ([]nocodb.Table, error) {
	return f.tables, f.err
}

func (f *fakeSource) GetTable(ctx context.Context, baseID, tableID string) (*nocodb.Table, error) {
	for _, t := range f.tables {
		if t.ID == tableID {
			return &t, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) Records(ctx context.Context, baseID, tableID string, opts *nocodb.ListOptions) iter.Seq2[nocodb.Record, error] {
	return func(yield func(nocodb.Record, error) bool) {
		for _, rec := range f.records[tableID] {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func testSource() *fakeSource {
	return &fakeSource{
		tables: []nocodb.Table{
			{ID: "t1", Title: "Contacts", Fields: []nocodb.Field{
				{ID: "f1", Title: "Name", Type: "SingleLineText"},
				{ID: "f2", Title: "Age", Type: "Number"},
			}},
			{ID: "t2", Title: "Deals", Fields: []nocodb.Field{
				{ID: "f3", Title: "Amount", Type: "Currency"},
			}},
		},
		records: map[string][]nocodb.Record{
			"t1": {
				{ID: "1", Fields: nocodb.Fields{"Name": "John", "Age": float64(30)}},
				{ID: "2", Fields: nocodb.Fields{"Name": "Jane", "Age": float64(25)}},
			},
			"t2": {
				{ID: "10", Fields: nocodb.Fields{"Amount": float64(99.5)}},
			},
		},
	}
}

func TestExporterRun(t *testing.T) {
	dir := t.TempDir()
	fs := fsadapter.NewDirectory(dir)

	e := New(testSource(), fs, "b1", Options{Format: FJSONL})
	m, err := e.Run(t.Context())
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "b1", m.BaseID)
	assert.Equal(t, "jsonl", m.Format)
	require.Len(t, m.Tables, 2)
	assert.Equal(t, 2, m.Tables[0].Records)
	assert.Equal(t, 1, m.Tables[1].Records)

	// manifest on disk round-trips
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	require.NoError(t, err)
	var onDisk Manifest
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, m.ID, onDisk.ID)

	// jsonl contents
	f, err := os.Open(filepath.Join(dir, "Contacts.jsonl"))
	require.NoError(t, err)
	defer f.Close()
	var lines int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec nocodb.Record
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		lines++
	}
	assert.Equal(t, 2, lines)
}

func TestExporterTableFilter(t *testing.T) {
	t.Run("selects by title", func(t *testing.T) {
		dir := t.TempDir()
		e := New(testSource(), fsadapter.NewDirectory(dir), "b1", Options{
			Tables: []string{"deals"},
		})
		m, err := e.Run(t.Context())
		require.NoError(t, err)
		require.Len(t, m.Tables, 1)
		assert.Equal(t, "t2", m.Tables[0].ID)
	})
	t.Run("unknown table", func(t *testing.T) {
		e := New(testSource(), fsadapter.NewDirectory(t.TempDir()), "b1", Options{
			Tables: []string{"nope"},
		})
		_, err := e.Run(t.Context())
		assert.Error(t, err)
	})
}

func TestExporterProgress(t *testing.T) {
	var calls int
	e := New(testSource(), fsadapter.NewDirectory(t.TempDir()), "b1", Options{
		Progress: func(table string, n int) { calls++ },
	})
	_, err := e.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExporterSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("api down")}
	e := New(src, fsadapter.NewDirectory(t.TempDir()), "b1", Options{})
	_, err := e.Run(t.Context())
	assert.Error(t, err)
}

func TestCSVWriter(t *testing.T) {
	dir := t.TempDir()
	e := New(testSource(), fsadapter.NewDirectory(dir), "b1", Options{
		Format: FCSV,
		Tables: []string{"Contacts"},
	})
	_, err := e.Run(t.Context())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "Contacts.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "Name", "Age"}, rows[0])
	assert.Equal(t, []string{"1", "John", "30"}, rows[1])
}

func TestSQLiteWriter(t *testing.T) {
	dir := t.TempDir()
	e := New(testSource(), fsadapter.NewDirectory(dir), "b1", Options{
		Format: FSQLite,
		Tables: []string{"Contacts"},
	})
	_, err := e.Run(t.Context())
	require.NoError(t, err)

	conn, err := sqlx.Open(sqliteDriver, filepath.Join(dir, "Contacts.sqlite"))
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.Get(&n, `SELECT count(*) FROM "Contacts"`))
	assert.Equal(t, 2, n)

	var name string
	require.NoError(t, conn.Get(&name, `SELECT "Name" FROM "Contacts" WHERE id = '1'`))
	assert.Equal(t, "John", name)
}

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"number", float64(3.5), "3.5"},
		{"bool", true, "true"},
		{"composite", map[string]any{"id": 1}, `{"id":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cell(tt.in))
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "My Table.csv", filename("My Table", ".csv"))
	assert.Equal(t, "a_b_c.jsonl", filename(`a/b\c`, ".jsonl"))
	assert.Equal(t, "table.csv", filename("", ".csv"))
}

func TestFormatSet(t *testing.T) {
	var f Format
	require.NoError(t, f.Set("CSV"))
	assert.Equal(t, FCSV, f)
	require.NoError(t, f.Set("sqlite"))
	assert.Equal(t, FSQLite, f)
	assert.Error(t, f.Set("xml"))
}
