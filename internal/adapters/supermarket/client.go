// Package supermarket implements the CookbookIndex port for Supermarket-style universe endpoints.
package supermarket

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	universePath      = "/universe"
	httpClientTimeout = 60 * time.Second
)

// Client implements ports.CookbookIndex with an on-disk universe cache.
type Client struct {
	cacheDir   string
	ttl        time.Duration
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

// NewClient creates a Client caching universes in the default cache directory.
func NewClient(logger ports.Logger) (*Client, error) {
	return newClient(domain.DefaultUniverseCachePath(), &http.Client{Timeout: httpClientTimeout}, logger)
}

func newClient(path string, client *http.Client, logger ports.Logger) (*Client, error) {
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrIndexCacheCreateFailed, err), "path", cleanPath)
	}

	return &Client{
		cacheDir:   cleanPath,
		ttl:        domain.DefaultUniverseTTL,
		httpClient: client,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Universe returns every cookbook published by source.
// A cached copy younger than the TTL is served without contacting the source.
func (c *Client) Universe(ctx context.Context, source string) ([]domain.RemoteCookbook, error) {
	source = strings.TrimRight(source, "/")
	cachePath := c.getCachePath(source)

	universe, err := c.loadFromCache(cachePath)
	if err != nil {
		universe, err = c.fetchUniverse(ctx, source)
		if err != nil {
			return nil, err
		}
		if err := c.saveToCache(cachePath, source, universe); err != nil {
			c.logger.Warn(fmt.Sprintf("could not cache universe of %s: %v", source, err))
		}
	}

	return c.toCookbooks(source, universe), nil
}

// Download opens the archive stream of cookbook.
func (c *Client) Download(ctx context.Context, cookbook domain.RemoteCookbook) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cookbook.DownloadURL, http.NoBody)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDownloadFailed, err), "cookbook", cookbook.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrDownloadFailed, err), "cookbook", cookbook.String())
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		downloadErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status"), "status_code", resp.StatusCode)
		downloadErr = zerr.With(downloadErr, "url", cookbook.DownloadURL)
		return nil, zerr.With(downloadErr, "cookbook", cookbook.String())
	}

	return resp.Body, nil
}

// getHash derives a stable cache file name from a source URL.
func getHash(source string) string {
	hash := sha256.Sum256([]byte(source))
	return hex.EncodeToString(hash[:])
}

func (c *Client) getCachePath(source string) string {
	return filepath.Join(c.cacheDir, getHash(source)+domain.MetadataExt)
}

func (c *Client) loadFromCache(path string) (universeResponse, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrIndexCacheReadFailed
		}
		return nil, errors.Join(domain.ErrIndexCacheReadFailed, err)
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Join(domain.ErrIndexCacheReadFailed, err)
	}

	if c.now().Sub(entry.Timestamp) > c.ttl {
		return nil, zerr.Wrap(domain.ErrIndexCacheReadFailed, "cache entry expired")
	}

	return entry.Universe, nil
}

func (c *Client) saveToCache(path, source string, universe universeResponse) error {
	entry := cacheEntry{
		Source:    source,
		Universe:  universe,
		Timestamp: c.now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Join(domain.ErrIndexCacheWriteFailed, err)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return errors.Join(domain.ErrIndexCacheWriteFailed, err)
	}

	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "universe-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func (c *Client) fetchUniverse(ctx context.Context, source string) (universeResponse, error) {
	url := source + universePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrIndexRequestFailed, err), "source", source)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrIndexRequestFailed, err), "source", source)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(zerr.Wrap(domain.ErrIndexNotFound, url), "source", source)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(zerr.Wrap(domain.ErrIndexRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "source", source)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrIndexRequestFailed, err), "source", source)
	}

	var universe universeResponse
	if err := json.Unmarshal(body, &universe); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrIndexParseFailed, err), "source", source)
	}

	return universe, nil
}

// toCookbooks flattens a universe into descriptors sorted by name, then ascending version.
func (c *Client) toCookbooks(source string, universe universeResponse) []domain.RemoteCookbook {
	cookbooks := make([]domain.RemoteCookbook, 0, len(universe))
	for name, versions := range universe {
		for version, entry := range versions {
			cookbook, err := domain.NewCookbook(name, version, sortedDependencies(entry.Dependencies))
			if err != nil {
				c.logger.Warn(fmt.Sprintf("skipping universe entry %s %s from %s: %v", name, version, source, err))
				continue
			}
			cookbooks = append(cookbooks, domain.RemoteCookbook{
				Cookbook:     cookbook,
				Source:       source,
				LocationType: entry.LocationType,
				DownloadURL:  entry.DownloadURL,
			})
		}
	}

	sort.Slice(cookbooks, func(i, j int) bool {
		if cookbooks[i].Name() != cookbooks[j].Name() {
			return cookbooks[i].Name() < cookbooks[j].Name()
		}
		return cookbooks[i].Version().Compare(cookbooks[j].Version()) < 0
	})

	return cookbooks
}

func sortedDependencies(deps map[string]string) []domain.Dependency {
	if len(deps) == 0 {
		return nil
	}

	out := make([]domain.Dependency, 0, len(deps))
	for name, constraint := range deps {
		out = append(out, domain.Dependency{Name: name, Constraint: constraint})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
