// Package files reads CSV plan catalogs into tables.
package files

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/agentstation/pricemap/pkg/errors"
	"github.com/agentstation/pricemap/pkg/sources"
)

const bom = "\uFEFF"

// Read parses CSV from r. Rows may have any number of fields; short rows
// read as empty cells.
func Read(r io.Reader, name string) (*sources.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", name, err)
	}
	if len(records) == 0 {
		return nil, errors.WrapParse("csv", name, errors.ErrEmptyCatalog)
	}
	records[0][0] = strings.TrimPrefix(records[0][0], bom)

	return sources.NewTable(records)
}

// Load reads a catalog file from disk.
func Load(path string) (*sources.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck

	return Read(f, path)
}

// LoadFS reads a catalog from a filesystem such as the embedded samples.
func LoadFS(fsys fs.FS, name string) (*sources.Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer f.Close() //nolint:errcheck

	return Read(f, name)
}
