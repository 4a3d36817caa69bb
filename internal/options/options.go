package options

import (
	"fmt"

	"github.com/spf13/pflag"

	"torc/internal/config"
)

// Schema returns the catalog of recognized options. The shape of each
// default decides what the option accepts: a flag takes no value, a string
// takes exactly one, and a list accumulates repeated assignments.
func Schema() *config.Schema {
	s := config.NewSchema()
	s.AddString("name", "")
	s.AddString("out", "")
	s.AddString("comment", "")
	s.AddString("date", "")
	s.AddString("source", "")
	s.AddString("piece-size", "")
	s.AddList("tracker")
	s.AddList("webseed")
	s.AddList("exclude")
	s.AddList("profile")
	s.AddFlag("private", false)
	s.AddFlag("nomagnet", false)
	s.AddFlag("notorrent", false)
	s.AddFlag("nocreator", false)
	s.AddFlag("nodate", false)
	s.AddFlag("yes", false)
	s.AddFlag("human", false)
	s.AddFlag("nohuman", false)
	return s
}

var usage = map[string]string{
	"name":       "Torrent name (defaults to the content name)",
	"out":        "Output path for the torrent file",
	"comment":    "Comment stored in the torrent",
	"date":       "Creation date as YYYY-MM-DD or 'now'",
	"source":     "Source string stored in the torrent",
	"piece-size": "Piece size (e.g. 1m, 512k, or 'auto')",
	"tracker":    "Announce URL; may be given multiple times",
	"webseed":    "Webseed URL; may be given multiple times",
	"exclude":    "File exclusion pattern; may be given multiple times",
	"profile":    "Configuration profile to apply; may be given multiple times",
	"private":    "Mark torrent as private",
	"nomagnet":   "Do not print a magnet link",
	"notorrent":  "Do not write a torrent file",
	"nocreator":  "Omit the created-by field",
	"nodate":     "Omit the creation date",
	"yes":        "Answer yes to every prompt",
	"human":      "Force human-readable output",
	"nohuman":    "Force machine-readable output",
}

// Bind registers one command-line flag per schema option.
func Bind(fs *pflag.FlagSet, schema *config.Schema) {
	for _, name := range schema.Names() {
		opt, _ := schema.Option(name)
		switch opt.Kind() {
		case config.KindFlag:
			fs.Bool(name, opt.Default().Bool(), usage[name])
		case config.KindString:
			fs.String(name, opt.Default().Str(), usage[name])
		case config.KindList:
			fs.StringArray(name, opt.Default().List(), usage[name])
		}
	}
}

// Collect builds the explicit command-line value set from a parsed flag set.
// Only flags the user actually changed are included; defaulted flags stay
// absent so file values and profiles can take effect.
func Collect(fs *pflag.FlagSet, schema *config.Schema) (config.Values, error) {
	values := make(config.Values)
	for _, name := range schema.Names() {
		if !fs.Changed(name) {
			continue
		}
		opt, _ := schema.Option(name)
		switch opt.Kind() {
		case config.KindFlag:
			v, err := fs.GetBool(name)
			if err != nil {
				return nil, fmt.Errorf("read flag --%s: %w", name, err)
			}
			values[name] = config.FlagValue(v)
		case config.KindString:
			v, err := fs.GetString(name)
			if err != nil {
				return nil, fmt.Errorf("read flag --%s: %w", name, err)
			}
			values[name] = config.StringValue(v)
		case config.KindList:
			v, err := fs.GetStringArray(name)
			if err != nil {
				return nil, fmt.Errorf("read flag --%s: %w", name, err)
			}
			values[name] = config.ListValue(v...)
		}
	}
	return values, nil
}
