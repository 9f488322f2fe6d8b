package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maksimkurb/warninglists/src/internal/config"
	"github.com/maksimkurb/warninglists/src/internal/errors"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/source"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// loadAndValidateConfigOrFail loads the configuration, falling back to the
// defaults when the file does not exist, and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx.ConfigPath)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, errors.NewValidationError("configuration validation failed", err)
	}

	if cfg.General.Verbose || ctx.Verbose {
		log.SetVerbose(true)
	}
	return cfg, nil
}

// loadCollection reads the dataset and compiles it. Skipped files are logged
// and do not fail the load when skip_invalid is set.
func loadCollection(cfg *config.Config) (*warninglist.Collection, []warninglist.Definition, error) {
	defs, err := source.LoadDir(cfg.GetAbsDataDir(), source.LoadOptions{SkipInvalid: cfg.General.SkipInvalid})
	if err != nil {
		if defs == nil {
			return nil, nil, err
		}
		log.Warnf("%v", err)
	}

	c, err := warninglist.Load(defs)
	if err != nil {
		return nil, nil, err
	}
	logSkippedEntries(c)
	return c, defs, nil
}

func logSkippedEntries(c *warninglist.Collection) {
	for _, name := range c.ListNames() {
		if stats, err := c.Stats(name); err == nil && stats.Skipped > 0 {
			log.Debugf("List \"%s\": %d entries skipped", name, stats.Skipped)
		}
	}
}

// splitLists parses a comma separated list of names.
func splitLists(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Warnf("Failed to write output: %v", err)
	}
}
