package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/warninglists/src/internal/api"
	"github.com/maksimkurb/warninglists/src/internal/config"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/metrics"
	"github.com/maksimkurb/warninglists/src/internal/source"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

const stopTimeout = 10 * time.Second

func CreateServeCommand(version string) Runner {
	return &ServeCommand{version: version}
}

// ServeCommand runs the HTTP API. Lists are reloaded when files in the data
// directory change and on SIGHUP.
type ServeCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	cfg     *config.Config
	version string

	listenAddr string
	noWatch    bool
}

func (c *ServeCommand) Name() string {
	return "serve"
}

func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("serve", flag.ContinueOnError)
	c.fs.StringVar(&c.listenAddr, "listen", "", "Address to bind the HTTP server (overrides api.listen_addr)")
	c.fs.BoolVar(&c.noWatch, "no-watch", false, "Do not reload lists when files change")
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.listenAddr == "" {
		c.listenAddr = cfg.API.ListenAddr
	}
	if c.listenAddr == "" {
		return fmt.Errorf("no listen address configured")
	}
	return nil
}

func (c *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	return c.serve(ctx, hup)
}

func (c *ServeCommand) serve(ctx context.Context, hup <-chan os.Signal) error {
	var m *metrics.Metrics
	if c.cfg.API.EnableMetrics {
		m = metrics.New()
	}

	dataDir := c.cfg.GetAbsDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	store := warninglist.NewStore(nil)
	reloader := newDatasetReloader(c.cfg, store, m)
	if err := reloader.Reload(); err != nil {
		return err
	}

	router := api.NewRouter(store, api.Options{Metrics: m, Status: reloader, Version: c.version})
	apiRunner := NewRestartableRunner(RunnerConfig{Name: "API server", MaxRestarts: 5}, func(ctx context.Context) error {
		server := api.NewServer(c.listenAddr, router)
		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case err := <-errCh:
			if err == nil {
				err = fmt.Errorf("server stopped unexpectedly")
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()
			return server.Stop(shutdownCtx)
		}
	})
	if err := apiRunner.Start(ctx); err != nil {
		return err
	}
	runners := []*RestartableRunner{apiRunner}

	if c.cfg.Watch.Enabled && !c.noWatch {
		debounce := time.Duration(c.cfg.Watch.DebounceMs) * time.Millisecond
		watcher := source.NewWatcher(dataDir, debounce, func() {
			_ = reloader.Reload()
		})
		watchRunner := NewRestartableRunner(RunnerConfig{Name: "Lists watcher"}, watcher.Run)
		if err := watchRunner.Start(ctx); err != nil {
			_ = apiRunner.Stop(stopTimeout)
			return err
		}
		runners = append(runners, watchRunner)
	}

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			log.Infof("Shutting down...")
			break loop
		case <-apiRunner.Done():
			runErr = apiRunner.LastError()
			break loop
		case <-hup:
			log.Infof("SIGHUP received, reloading warning lists")
			_ = reloader.Reload()
		}
	}

	for _, r := range runners {
		if err := r.Stop(stopTimeout); err != nil {
			log.Warnf("%v", err)
		}
	}
	return runErr
}
