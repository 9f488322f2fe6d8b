package commands

import (
	"context"
	"flag"
	"time"

	"github.com/maksimkurb/warninglists/src/internal/config"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/source"
)

func CreateUpdateCommand() Runner {
	return &UpdateCommand{}
}

// UpdateCommand downloads the dataset archive and checks that the new lists load.
type UpdateCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	force bool
	url   string
}

func (c *UpdateCommand) Name() string {
	return "update"
}

func (c *UpdateCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("update", flag.ContinueOnError)
	c.fs.BoolVar(&c.force, "force", false, "Extract the archive even if it did not change")
	c.fs.StringVar(&c.url, "url", "", "Dataset archive URL (overrides general.source_url)")
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.url == "" {
		c.url = cfg.General.SourceURL
	}
	return nil
}

func (c *UpdateCommand) Run() error {
	result, err := source.Fetch(context.Background(), source.FetchOptions{
		URL:     c.url,
		DataDir: c.cfg.GetAbsDataDir(),
		Timeout: time.Duration(c.cfg.General.FetchTimeoutSeconds) * time.Second,
		Force:   c.force,
	})
	if err != nil {
		return err
	}

	collection, defs, err := loadCollection(c.cfg)
	if err != nil {
		return err
	}

	status := "unchanged"
	if result.Changed {
		status = "updated"
	}
	printf(c.ctx.stdout(), "Warning lists %s: %d lists, fingerprint %s\n", status, collection.Len(), source.Fingerprint(defs))
	log.Debugf("Archive checksum: %s", result.Checksum)
	return nil
}
