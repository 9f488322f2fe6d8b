package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/maksimkurb/warninglists/src/internal/errors"
	"github.com/maksimkurb/warninglists/src/internal/hashing"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/utils"
)

const (
	archiveFileName = "dataset.zip"
	listsDirName    = "lists"
)

type FetchOptions struct {
	// URL of the dataset zip archive.
	URL string
	// DataDir receives the archive, its checksum and the extracted lists directory.
	DataDir string
	// Timeout limits the whole download. Zero means no limit.
	Timeout time.Duration
	// Force extracts the archive even if its checksum did not change.
	Force bool
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

type FetchResult struct {
	Changed  bool   `json:"changed"`
	Checksum string `json:"checksum"`
	Bytes    int64  `json:"bytes"`
	Files    int    `json:"files"`
}

// Fetch downloads the dataset archive and, when it differs from the previous
// download, replaces <DataDir>/lists with the archive's lists directory.
func Fetch(ctx context.Context, opts FetchOptions) (FetchResult, error) {
	var result FetchResult

	if opts.URL == "" {
		return result, errors.NewSourceError("no dataset URL configured", nil)
	}
	if err := os.MkdirAll(opts.DataDir, 0755); err != nil {
		return result, errors.NewSourceError("failed to create data directory", err)
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	log.Infof("Downloading warning lists from URL: %s", opts.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return result, errors.NewSourceError("invalid dataset URL", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return result, errors.NewSourceError("failed to download dataset", err)
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return result, errors.NewSourceError(fmt.Sprintf("failed to download dataset: %s", resp.Status), nil)
	}

	tmp, err := os.CreateTemp(opts.DataDir, ".download-*.zip")
	if err != nil {
		return result, errors.NewSourceError("failed to create temporary file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	bodyProxy := hashing.NewMD5ReaderProxy(resp.Body)
	if _, err := io.Copy(tmp, bodyProxy); err != nil {
		utils.CloseOrWarn(tmp)
		return result, errors.NewSourceError("failed to read dataset", err)
	}
	if err := tmp.Close(); err != nil {
		return result, errors.NewSourceError("failed to write dataset", err)
	}

	result.Bytes = bodyProxy.BytesRead()
	result.Checksum, _ = bodyProxy.GetChecksum()

	archivePath := filepath.Join(opts.DataDir, archiveFileName)
	listsDir := filepath.Join(opts.DataDir, listsDirName)

	changed, err := IsFileChanged(bodyProxy, archivePath)
	if err != nil {
		log.Errorf("Failed to calculate dataset checksum: %v", err)
		changed = true
	}
	if _, err := os.Stat(listsDir); stderrors.Is(err, os.ErrNotExist) {
		changed = true
	}
	if !changed && !opts.Force {
		log.Infof("Warning lists are not changed, skipping extraction")
		return result, nil
	}

	if err := os.Rename(tmpPath, archivePath); err != nil {
		return result, errors.NewSourceError("failed to store dataset archive", err)
	}

	files, err := extractLists(archivePath, opts.DataDir)
	if err != nil {
		return result, err
	}
	if err := WriteChecksum(bodyProxy, archivePath); err != nil {
		return result, errors.NewSourceError("failed to write dataset checksum", err)
	}

	result.Changed = true
	result.Files = files
	log.Infof("Warning lists updated: %d files extracted (%d bytes downloaded)", files, result.Bytes)
	return result, nil
}

// extractLists unpacks the lists directory of the archive into a staging
// directory and swaps it with <dataDir>/lists.
func extractLists(archivePath, dataDir string) (int, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, errors.NewSourceError("failed to open dataset archive", err)
	}
	defer utils.CloseOrWarn(zr)

	staging, err := os.MkdirTemp(dataDir, ".lists-")
	if err != nil {
		return 0, errors.NewSourceError("failed to create staging directory", err)
	}
	defer os.RemoveAll(staging)

	files := 0
	for _, f := range zr.File {
		rel, ok := listsEntryPath(f.Name)
		if !ok || f.FileInfo().IsDir() {
			continue
		}
		if err := extractFile(f, filepath.Join(staging, rel)); err != nil {
			return 0, errors.NewSourceError(fmt.Sprintf("failed to extract %s", f.Name), err)
		}
		files++
	}
	if files == 0 {
		return 0, errors.NewSourceError("dataset archive has no lists directory", nil)
	}

	listsDir := filepath.Join(dataDir, listsDirName)
	backup := listsDir + ".old"
	if err := os.RemoveAll(backup); err != nil {
		return 0, errors.NewSourceError("failed to remove stale backup", err)
	}
	if err := os.Rename(listsDir, backup); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return 0, errors.NewSourceError("failed to move previous lists", err)
	}
	if err := os.Rename(staging, listsDir); err != nil {
		if rerr := os.Rename(backup, listsDir); rerr != nil {
			log.Errorf("Failed to restore previous lists: %v", rerr)
		}
		return 0, errors.NewSourceError("failed to install new lists", err)
	}
	if err := os.RemoveAll(backup); err != nil {
		log.Warnf("Failed to remove previous lists: %v", err)
	}
	return files, nil
}

// listsEntryPath maps an archive entry to its path relative to the lists
// directory. Archives may wrap everything in a single top-level directory.
func listsEntryPath(name string) (string, bool) {
	parts := strings.Split(strings.TrimPrefix(path.Clean("/"+name), "/"), "/")
	for i := 0; i < len(parts) && i < 2; i++ {
		if parts[i] != listsDirName {
			continue
		}
		rel := path.Join(parts[i+1:]...)
		if rel == "" || !filepath.IsLocal(rel) {
			return "", false
		}
		return filepath.FromSlash(rel), true
	}
	return "", false
}

func extractFile(f *zip.File, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(src)

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		utils.CloseOrWarn(out)
		return err
	}
	return out.Close()
}
