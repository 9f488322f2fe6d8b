package commands

import (
	"sync"
	"time"

	"github.com/maksimkurb/warninglists/src/internal/config"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/metrics"
	"github.com/maksimkurb/warninglists/src/internal/source"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

// datasetReloader rebuilds the collection from disk and installs it in the
// store. A failed reload keeps the previous collection.
type datasetReloader struct {
	cfg     *config.Config
	store   *warninglist.Store
	metrics *metrics.Metrics

	mu          sync.Mutex
	fingerprint string
	loadedAt    time.Time
	lastErr     error
}

func newDatasetReloader(cfg *config.Config, store *warninglist.Store, m *metrics.Metrics) *datasetReloader {
	return &datasetReloader{cfg: cfg, store: store, metrics: m}
}

// Reload serializes concurrent callers so the watcher and SIGHUP cannot
// install collections out of order.
func (r *datasetReloader) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	collection, defs, err := loadCollection(r.cfg)
	r.metrics.ObserveReload(err)
	if err != nil {
		r.lastErr = err
		log.Errorf("Failed to reload warning lists, keeping %d loaded lists: %v", r.store.Current().Len(), err)
		return err
	}

	r.store.Swap(collection)
	r.metrics.ObserveCollection(collection)
	r.fingerprint = source.Fingerprint(defs)
	r.loadedAt = time.Now()
	r.lastErr = nil

	log.Infof("Loaded %d warning lists (fingerprint %s)", collection.Len(), r.fingerprint)
	return nil
}

func (r *datasetReloader) Fingerprint() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fingerprint
}

func (r *datasetReloader) LoadedAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadedAt
}

func (r *datasetReloader) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
