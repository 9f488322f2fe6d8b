package commands

import (
	"flag"
	"text/tabwriter"

	"github.com/maksimkurb/warninglists/src/internal/config"
)

func CreateListsCommand() Runner {
	return &ListsCommand{}
}

// ListsCommand prints every loaded list.
type ListsCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (c *ListsCommand) Name() string {
	return "lists"
}

func (c *ListsCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("lists", flag.ContinueOnError)
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *ListsCommand) Run() error {
	collection, _, err := loadCollection(c.cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.ctx.stdout(), 0, 0, 2, ' ', 0)
	printf(tw, "NAME\tTYPE\tMATCHER\tENTRIES\tSKIPPED\tVERSION\n")
	for _, name := range collection.ListNames() {
		def, err := collection.Describe(name)
		if err != nil {
			return err
		}
		stats, err := collection.Stats(name)
		if err != nil {
			return err
		}
		printf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", def.Name, def.Type, stats.Kind, stats.Compiled, stats.Skipped, def.Version)
	}
	return tw.Flush()
}
