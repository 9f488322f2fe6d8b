package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/warninglists/src/internal/config"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

// listNames collects list names from repeated -list flags.
type listNames []string

func (l *listNames) String() string {
	return strings.Join(*l, ",")
}

func (l *listNames) Set(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("list name must not be empty")
	}
	*l = append(*l, strings.TrimSpace(v))
	return nil
}

func CreateLookupCommand() Runner {
	return &LookupCommand{}
}

// LookupCommand prints the lists containing each value. Values come from the
// arguments or, when there are none, from stdin (one per line).
type LookupCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	lists       string
	list        listNames
	format      string
	showMissing bool

	values   []string
	template *fasttemplate.Template
}

func (c *LookupCommand) Name() string {
	return "lookup"
}

func (c *LookupCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("lookup", flag.ContinueOnError)
	c.fs.StringVar(&c.lists, "lists", "", "Comma separated list names to restrict the lookup to")
	c.fs.Var(&c.list, "list", "List name to restrict the lookup to (repeatable, for names containing commas)")
	c.fs.StringVar(&c.format, "format", "", "Output template. Variables: {{value}}, {{name}}, {{type}}, {{version}}, {{description}}")
	c.fs.BoolVar(&c.showMissing, "missing", false, "Print values that matched no list")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.format == "" {
		c.format = cfg.Lookup.OutputFormat
	}
	tpl, err := fasttemplate.NewTemplate(c.format, "{{", "}}")
	if err != nil {
		return fmt.Errorf("invalid output format: %v", err)
	}
	c.template = tpl

	c.values = c.fs.Args()
	if len(c.values) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				c.values = append(c.values, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read values from stdin: %v", err)
		}
	}
	if len(c.values) == 0 {
		return fmt.Errorf("no values to look up")
	}

	return nil
}

// restrictTo returns the lists given on the command line, or the configured
// default lists.
func (c *LookupCommand) restrictTo() []string {
	names := append(splitLists(c.lists), c.list...)
	if len(names) == 0 {
		names = c.cfg.Lookup.DefaultLists
	}
	return names
}

func (c *LookupCommand) Run() error {
	collection, _, err := loadCollection(c.cfg)
	if err != nil {
		return err
	}

	out := c.ctx.stdout()
	restrictTo := c.restrictTo()
	matched := 0

	for _, value := range c.values {
		defs, err := collection.Search(value, restrictTo...)
		if err != nil {
			return err
		}
		if len(defs) == 0 {
			log.Debugf("%s: no match", value)
			if c.showMissing {
				printf(out, "%s\n", c.render(value, warninglist.Definition{}))
			}
			continue
		}
		matched++
		for _, def := range defs {
			printf(out, "%s\n", c.render(value, def))
		}
	}

	log.Debugf("%d of %d values matched", matched, len(c.values))
	return nil
}

func (c *LookupCommand) render(value string, def warninglist.Definition) string {
	return c.template.ExecuteString(map[string]interface{}{
		"value":       value,
		"name":        def.Name,
		"type":        string(def.Type),
		"version":     strconv.Itoa(def.Version),
		"description": def.Description,
	})
}
