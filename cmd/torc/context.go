package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"torc/internal/cfgpath"
	"torc/internal/config"
	"torc/internal/logging"
	"torc/internal/options"
)

type commandContext struct {
	configFlag   *string
	noConfigFlag *bool
	logLevel     *string
	logFormat    *string

	schema *config.Schema

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, noConfigFlag *bool, logLevel, logFormat *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		noConfigFlag: noConfigFlag,
		logLevel:     logLevel,
		logFormat:    logFormat,
		schema:       options.Schema(),
	}
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  *c.logLevel,
			Format: *c.logFormat,
		})
	})
	return c.logger, c.loggerErr
}

// loadFile parses and validates the configuration file. A missing file at
// the default location is treated as an empty configuration; a missing file
// named with --config is an error.
func (c *commandContext) loadFile() (*config.File, string, bool, error) {
	empty := &config.File{Options: config.Values{}, Profiles: map[string]config.Values{}}

	if *c.noConfigFlag {
		return empty, "", false, nil
	}

	path, exists, err := cfgpath.Resolve(*c.configFlag)
	if err != nil {
		return nil, "", false, err
	}
	if !exists {
		if strings.TrimSpace(*c.configFlag) != "" {
			return nil, "", false, fmt.Errorf("config file %s not found", path)
		}
		return empty, path, false, nil
	}

	file, err := config.ParseFile(path)
	if err != nil {
		return nil, "", false, err
	}
	validated, err := config.Validate(file, c.schema)
	if err != nil {
		return nil, "", false, err
	}
	return validated, path, true, nil
}

// resolve runs the full pipeline against the given flag set and returns the
// final configuration, one entry per schema option.
func (c *commandContext) resolve(fs *pflag.FlagSet) (config.Values, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	file, path, exists, err := c.loadFile()
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded configuration file",
		"path", path,
		"exists", exists,
		"options", len(file.Options),
		"profiles", len(file.Profiles))

	cli, err := options.Collect(fs, c.schema)
	if err != nil {
		return nil, err
	}
	logger.Debug("collected command-line values", "count", len(cli))

	resolved, err := config.Combine(cli, file, c.schema)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved configuration", "entries", len(resolved))
	return resolved, nil
}
