package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"torc/internal/config"
)

// renderResolved writes the resolved configuration in the requested format.
// "auto" picks a table on a terminal and tab-separated plain output
// otherwise, so pipelines get machine-readable text without asking.
func renderResolved(cmd *cobra.Command, resolved config.Values, schema *config.Schema, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "auto":
		if isTerminal(out) {
			format = "table"
		} else {
			format = "plain"
		}
	case "table", "plain", "json", "toml", "yaml":
	default:
		return fmt.Errorf("unknown format %q (expected auto, table, plain, json, toml, or yaml)", format)
	}

	switch format {
	case "table":
		rows := make([][]string, 0, schema.Len())
		for _, name := range schema.Names() {
			rows = append(rows, []string{name, resolved[name].String()})
		}
		fmt.Fprintln(out, renderTable([]string{"Option", "Value"}, rows))
		return nil
	case "plain":
		for _, name := range schema.Names() {
			fmt.Fprintf(out, "%s\t%s\n", name, resolved[name].String())
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(exportValues(resolved))
	case "toml":
		data, err := toml.Marshal(exportValues(resolved))
		if err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "yaml":
		data, err := yaml.Marshal(exportValues(resolved))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	}
	return nil
}

// exportValues converts resolved values into plain Go types for the
// structured encoders: flags become booleans, lists become string slices.
func exportValues(values config.Values) map[string]any {
	out := make(map[string]any, len(values))
	for name, value := range values {
		switch value.Kind() {
		case config.KindFlag:
			out[name] = value.Bool()
		case config.KindString:
			out[name] = value.Str()
		case config.KindList:
			list := value.List()
			if list == nil {
				list = []string{}
			}
			out[name] = list
		}
	}
	return out
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
