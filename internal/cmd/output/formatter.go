// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/pricemap/internal/cmd/table"
)

// Format is an output format name accepted by --format.
type Format string

const (
	FormatTable Format = "table"
	FormatWide  Format = "wide" // table with competitor, basis and swap columns
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value. Empty is allowed and means the
// format is picked by DetectFormat.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml", s)
}

// DetectFormat returns explicit when set, a table on a terminal and JSON
// when stdout is piped.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return FormatTable
	}
	return FormatJSON
}

// Formatter writes a value in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for f. Unknown formats render tables.
func NewFormatter(f Format) Formatter {
	switch f {
	case FormatJSON:
		return jsonFormatter{}
	case FormatYAML:
		return yamlFormatter{}
	}
	return tableFormatter{}
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// tableFormatter renders table.Data directly and reflects over structs and
// struct slices. Anything else is written as JSON.
type tableFormatter struct{}

func (tableFormatter) Format(w io.Writer, data any) error {
	if d, ok := data.(table.Data); ok {
		return render(w, d)
	}
	if d, ok := reflectTable(data); ok {
		return render(w, d)
	}
	return jsonFormatter{}.Format(w, data)
}

var twAlign = map[table.Align]tw.Align{
	table.AlignLeft:   tw.AlignLeft,
	table.AlignCenter: tw.AlignCenter,
	table.AlignRight:  tw.AlignRight,
}

func render(w io.Writer, d table.Data) error {
	var cfg tablewriter.Config
	if len(d.ColumnAlignment) > 0 {
		cols := make([]tw.Align, len(d.ColumnAlignment))
		for i, a := range d.ColumnAlignment {
			al, ok := twAlign[a]
			if !ok {
				al = tw.Skip
			}
			cols[i] = al
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: cols}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: cols}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	if len(d.Headers) > 0 {
		t.Header(toAny(d.Headers)...)
	}
	for _, row := range d.Rows {
		if err := t.Append(toAny(row)...); err != nil {
			return err
		}
	}
	return t.Render()
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// reflectTable lays out a struct slice one row per element, and a single
// struct as Property/Value pairs.
func reflectTable(data any) (table.Data, bool) {
	v := reflect.Indirect(reflect.ValueOf(data))
	switch {
	case v.Kind() == reflect.Struct:
		var d table.Data
		d.Headers = []string{"Property", "Value"}
		for _, i := range exported(v.Type()) {
			d.Rows = append(d.Rows, []string{headerName(v.Type().Field(i)), cellString(v.Field(i))})
		}
		return d, true

	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		fields := exported(v.Index(0).Type())
		var d table.Data
		for _, i := range fields {
			d.Headers = append(d.Headers, headerName(v.Index(0).Type().Field(i)))
		}
		for n := range v.Len() {
			row := make([]string, len(fields))
			for j, i := range fields {
				row[j] = cellString(v.Index(n).Field(i))
			}
			d.Rows = append(d.Rows, row)
		}
		return d, true
	}
	return table.Data{}, false
}

func exported(t reflect.Type) []int {
	var idx []int
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			idx = append(idx, i)
		}
	}
	return idx
}

var title = cases.Title(language.English)

// headerName turns a json tag like "cost_price" into "Cost Price".
func headerName(field reflect.StructField) string {
	tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if tag == "" || tag == "-" {
		return field.Name
	}
	return title.String(strings.ReplaceAll(tag, "_", " "))
}

// cellString renders nil pointers as a dash.
func cellString(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface())
}
