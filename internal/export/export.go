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

// Package export writes the contents of a NocoDB base to a local filesystem
// or ZIP file in JSONL, CSV or SQLite format.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rusq/fsadapter"
	"golang.org/x/sync/errgroup"

	"github.com/nocogo/nocodb"
	"github.com/nocogo/nocodb/filters"
)

const manifestFile = "manifest.json"

// concurrency limits the number of tables exported in parallel.  NocoDB
// instances are frequently self-hosted on small machines, so keep it low.
const concurrency = 2

// Source is the subset of the NocoDB client that the exporter reads from.
// It is satisfied by *nocodb.Client.
type Source interface {
	ListTables(ctx context.Context, baseID string) ([]nocodb.Table, error)
	GetTable(ctx context.Context, baseID, tableID string) (*nocodb.Table, error)
	Records(ctx context.Context, baseID, tableID string, opts *nocodb.ListOptions) iter.Seq2[nocodb.Record, error]
}

// ProgressFunc is called after every exported record with the table title
// and the number of records written to it so far.
type ProgressFunc func(table string, n int)

// Options control the export.
type Options struct {
	// Format is the output format (JSONL by default).
	Format Format
	// Tables limits the export to the named tables (by ID or title).  All
	// tables are exported when empty.
	Tables []string
	// Where filters the exported records of every table.
	Where filters.Condition
	// PageSize overrides the API page size used when fetching records.
	PageSize int
	// Progress, if set, is called as records are written.
	Progress ProgressFunc
	// Logger is the logger to use.  slog.Default if nil.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Exporter exports a NocoDB base to a filesystem adapter.
type Exporter struct {
	cl     Source
	fs     fsadapter.FS
	baseID string
	opts   Options
}

// New creates a new Exporter that writes the base to fs.
func New(cl Source, fs fsadapter.FS, baseID string, opts Options) *Exporter {
	return &Exporter{cl: cl, fs: fs, baseID: baseID, opts: opts}
}

// Manifest describes a completed export.  It is written as manifest.json
// next to the exported tables.
type Manifest struct {
	ID         string          `json:"id"`
	BaseID     string          `json:"base_id"`
	Format     string          `json:"format"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Tables     []TableManifest `json:"tables"`
}

// TableManifest is the per-table entry of the Manifest.
type TableManifest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	File    string `json:"file"`
	Records int    `json:"records"`
}

// Run exports the base and returns the manifest of what was written.
func (e *Exporter) Run(ctx context.Context) (*Manifest, error) {
	ctx, task := trace.NewTask(ctx, "export.Run")
	defer task.End()

	lg := e.opts.logger()
	start := time.Now()

	tables, err := e.tables(ctx)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, errors.New("no tables to export")
	}

	entries := make([]TableManifest, len(tables))
	var eg errgroup.Group
	eg.SetLimit(concurrency)
	for i, tbl := range tables {
		eg.Go(func() error {
			tm, err := e.exportTable(ctx, tbl)
			if err != nil {
				return fmt.Errorf("table %q: %w", tbl.Title, err)
			}
			entries[i] = tm
			lg.InfoContext(ctx, "table exported", "table", tbl.Title, "records", tm.Records)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	m := &Manifest{
		ID:         uuid.NewString(),
		BaseID:     e.baseID,
		Format:     e.opts.Format.String(),
		StartedAt:  start,
		FinishedAt: time.Now(),
		Tables:     entries,
	}
	if err := serializeToFS(e.fs, manifestFile, m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return m, nil
}

// tables resolves the list of tables to export, applying the Tables filter
// from options.
func (e *Exporter) tables(ctx context.Context) ([]nocodb.Table, error) {
	all, err := e.cl.ListTables(ctx, e.baseID)
	if err != nil {
		return nil, err
	}
	if len(e.opts.Tables) == 0 {
		return all, nil
	}
	var out []nocodb.Table
	for _, want := range e.opts.Tables {
		i := slices.IndexFunc(all, func(t nocodb.Table) bool {
			return t.ID == want || strings.EqualFold(t.Title, want)
		})
		if i == -1 {
			return nil, fmt.Errorf("table %q not found in base %s", want, e.baseID)
		}
		out = append(out, all[i])
	}
	return out, nil
}

func (e *Exporter) exportTable(ctx context.Context, tbl nocodb.Table) (TableManifest, error) {
	ctx, task := trace.NewTask(ctx, "export.table")
	defer task.End()

	// the tables listing may omit field definitions, so fetch the full
	// schema before creating the writer.
	schema, err := e.cl.GetTable(ctx, e.baseID, tbl.ID)
	if err != nil {
		return TableManifest{}, err
	}

	w, err := newWriter(e.opts.Format, e.fs, *schema)
	if err != nil {
		return TableManifest{}, err
	}

	opts := &nocodb.ListOptions{
		Where:    e.opts.Where,
		PageSize: e.opts.PageSize,
	}
	var n int
	for rec, err := range e.cl.Records(ctx, e.baseID, tbl.ID, opts) {
		if err != nil {
			w.Close()
			return TableManifest{}, err
		}
		if err := w.WriteRecord(rec); err != nil {
			w.Close()
			return TableManifest{}, err
		}
		n++
		if e.opts.Progress != nil {
			e.opts.Progress(tbl.Title, n)
		}
	}
	if err := w.Close(); err != nil {
		return TableManifest{}, err
	}
	return TableManifest{ID: tbl.ID, Title: tbl.Title, File: w.Filename(), Records: n}, nil
}

// serializeToFS writes data in indented JSON format to the filesystem
// adapter.
func serializeToFS(fs fsadapter.FS, filename string, data any) error {
	f, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// filename returns a safe filename for a table title.  Path separators and
// other shell-hostile characters are replaced with underscores.
func filename(title, ext string) string {
	mapper := func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}
	name := strings.Map(mapper, title)
	if name == "" {
		name = "table"
	}
	return name + ext
}
