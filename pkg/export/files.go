package export

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/constants"
	"github.com/agentstation/pricemap/pkg/errors"
)

// Options is the configuration for writing output files.
type Options struct {
	dir        string
	pricesCSV  string
	pricesJSON string
	plansCSV   string
	plansJSON  string
}

// Dir returns the output directory.
func (o *Options) Dir() string {
	return o.dir
}

// Defaults returns the default file options.
func Defaults() *Options {
	return &Options{
		dir:        ".",
		pricesCSV:  constants.PricesCSVFile,
		pricesJSON: constants.PricesJSONFile,
		plansCSV:   constants.PlansCSVFile,
		plansJSON:  constants.PlansJSONFile,
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(o)
	}
	return *o
}

// Option is a function that configures file output.
type Option func(*Options)

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.dir = dir
		}
	}
}

// WithPricesFiles renames the price row files. Empty names skip the file.
func WithPricesFiles(csvName, jsonName string) Option {
	return func(o *Options) {
		o.pricesCSV, o.pricesJSON = csvName, jsonName
	}
}

// WithPlansFiles renames the plan files. Empty names skip the file.
func WithPlansFiles(csvName, jsonName string) Option {
	return func(o *Options) {
		o.plansCSV, o.plansJSON = csvName, jsonName
	}
}

// WriteFiles writes price rows and plans for the active records and returns
// the paths written.
func WriteFiles(records []*catalogs.Record, opts ...Option) ([]string, error) {
	o := Defaults().Apply(opts...)

	if err := os.MkdirAll(o.dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", o.dir, err)
	}

	rows := Prices(records)
	plans := Plans(rows)

	outputs := []struct {
		name  string
		write func(*bytes.Buffer) error
	}{
		{o.pricesCSV, func(b *bytes.Buffer) error { return WritePrices(b, rows, FormatCSV) }},
		{o.pricesJSON, func(b *bytes.Buffer) error { return WritePrices(b, rows, FormatJSON) }},
		{o.plansCSV, func(b *bytes.Buffer) error { return WritePlans(b, plans, FormatCSV) }},
		{o.plansJSON, func(b *bytes.Buffer) error { return WritePlans(b, plans, FormatJSON) }},
	}

	var written []string
	for _, out := range outputs {
		if out.name == "" {
			continue
		}
		var buf bytes.Buffer
		if err := out.write(&buf); err != nil {
			return written, err
		}
		path := filepath.Join(o.dir, out.name)
		if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
			return written, errors.WrapIO("write", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
