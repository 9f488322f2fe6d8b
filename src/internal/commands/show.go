package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/warninglists/src/internal/config"
)

func CreateShowCommand() Runner {
	return &ShowCommand{}
}

// ShowCommand prints the metadata of one list and optionally its entries.
type ShowCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	entries bool
	name    string
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("show", flag.ContinueOnError)
	c.fs.BoolVar(&c.entries, "entries", false, "Print list entries")
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if c.fs.NArg() != 1 {
		return fmt.Errorf("usage: show [-entries] <list name>")
	}
	c.name = c.fs.Arg(0)

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *ShowCommand) Run() error {
	collection, _, err := loadCollection(c.cfg)
	if err != nil {
		return err
	}

	def, err := collection.Get(c.name)
	if err != nil {
		return err
	}
	stats, err := collection.Stats(c.name)
	if err != nil {
		return err
	}

	out := c.ctx.stdout()
	printf(out, "Name:                %s\n", def.Name)
	printf(out, "Description:         %s\n", def.Description)
	printf(out, "Type:                %s\n", def.Type)
	printf(out, "Version:             %d\n", def.Version)
	printf(out, "Matching attributes: %s\n", strings.Join(def.MatchingAttributes, ", "))
	printf(out, "Matcher:             %s\n", stats.Kind)
	printf(out, "Entries:             %d compiled, %d skipped\n", stats.Compiled, stats.Skipped)

	if c.entries {
		printf(out, "\n")
		for _, entry := range def.List {
			printf(out, "%s\n", entry)
		}
	}
	return nil
}
