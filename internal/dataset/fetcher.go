package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// Fetcher downloads a remote URL to a local file. Implementations must write
// the complete body or return an error; partial files are the caller's
// problem to clean up.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// HTTPFetcher downloads over the standard library HTTP client. This is the
// binary-safe default on Windows.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher with a generous timeout suited to a
// one-shot archive download.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{Timeout: 10 * time.Minute},
	}
}

// Fetch downloads url to dest.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("failed to sync %s: %w", dest, err)
	}
	return out.Close()
}

// CurlFetcher shells out to the curl binary, the default transport on
// non-Windows hosts.
type CurlFetcher struct{}

// Fetch downloads url to dest via `curl -fsSL`.
func (CurlFetcher) Fetch(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, "curl", "-fsSL", "-o", dest, url)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("curl download failed: %w: %s", err, string(out))
	}
	return nil
}

// FetcherFor selects the download transport for the given GOOS. Windows gets
// the in-process HTTP client; everything else uses curl, falling back to HTTP
// when curl is not installed.
func FetcherFor(goos string) Fetcher {
	if goos == "windows" {
		return NewHTTPFetcher()
	}
	if _, err := exec.LookPath("curl"); err != nil {
		return NewHTTPFetcher()
	}
	return CurlFetcher{}
}

// FetcherByName resolves an explicit transport name from configuration.
// Unknown or empty names fall back to the platform default.
func FetcherByName(name, goos string) Fetcher {
	switch name {
	case "http":
		return NewHTTPFetcher()
	case "curl":
		return CurlFetcher{}
	default:
		return FetcherFor(goos)
	}
}
