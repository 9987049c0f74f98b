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
	"strings"

	"github.com/rusq/fsadapter"

	"github.com/nocogo/nocodb"
)

// Format is the export output format.  It implements flag.Value so it can
// be used directly as a command line flag.
type Format uint8

const (
	FJSONL Format = iota
	FCSV
	FSQLite
)

func (f Format) String() string {
	switch f {
	case FJSONL:
		return "jsonl"
	case FCSV:
		return "csv"
	case FSQLite:
		return "sqlite"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// Set implements flag.Value.
func (f *Format) Set(v string) error {
	switch strings.ToLower(v) {
	case "jsonl":
		*f = FJSONL
	case "csv":
		*f = FCSV
	case "sqlite":
		*f = FSQLite
	default:
		return fmt.Errorf("unknown format: %s (want jsonl, csv or sqlite)", v)
	}
	return nil
}

// tableWriter writes records of a single table to the output.
type tableWriter interface {
	WriteRecord(rec nocodb.Record) error
	// Filename returns the name of the file the writer produces.
	Filename() string
	// Close flushes and finalises the output.  It must be called even
	// when the export fails midway.
	Close() error
}

// newWriter creates a tableWriter for the given format.
func newWriter(f Format, fs fsadapter.FS, tbl nocodb.Table) (tableWriter, error) {
	switch f {
	case FJSONL:
		return newJSONLWriter(fs, tbl)
	case FCSV:
		return newCSVWriter(fs, tbl)
	case FSQLite:
		return newSQLiteWriter(fs, tbl)
	}
	return nil, fmt.Errorf("unsupported format: %s", f)
}
