// file: internal/audible/cover.go
// version: 1.1.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package audible

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// Size markers Amazon embeds in cover URLs, smallest first.
var coverSizeMarkers = []string{
	"_SL175_", "_SL300_", "_SL500_", "_SS500_", "_SX500_", "_SL600_",
	"_SL800_", "_SL1000_", "_SL1200_", "_SL1500_", "_SL2000_",
	"_SL2400_", "_SL3000_", "_SL4000_", "_SL5000_",
}

// Resolutions tried when downloading, highest first. Not every title has
// the 5000px render, so the chain falls back until a real image comes back.
var coverResolutions = []string{
	"_SL5000_", "_SL4000_", "_SL3000_", "_SL2400_", "_SL2000_",
	"_SL1500_", "_SL1200_", "_SL1000_", "_SL800_", "_SS500_",
	"_SL500_", "_SL300_",
}

// Responses smaller than this are Amazon placeholder images, not covers.
const minCoverBytes = 1000

// upgradeCoverURL rewrites a cover URL to request the largest render.
func upgradeCoverURL(coverURL string) string {
	if coverURL == "" {
		return ""
	}
	for _, marker := range coverSizeMarkers {
		if strings.Contains(coverURL, marker) {
			return strings.Replace(coverURL, marker, "_SL5000_", 1)
		}
	}
	if !strings.Contains(coverURL, "._") {
		if idx := strings.LastIndex(coverURL, "."); idx >= 0 {
			return coverURL[:idx] + "._SL5000_" + coverURL[idx:]
		}
	}
	return coverURL
}

// DownloadCover fetches the cover image to destPath, stepping down through
// lower resolutions until a non-placeholder image is returned.
func (c *Client) DownloadCover(ctx context.Context, coverURL, destPath string) error {
	if coverURL == "" {
		return fmt.Errorf("no cover URL")
	}

	var lastErr error
	for _, res := range coverResolutions {
		candidate := coverURL
		for _, marker := range coverSizeMarkers {
			if strings.Contains(candidate, marker) {
				candidate = strings.Replace(candidate, marker, res, 1)
				break
			}
		}

		data, err := c.fetchBytes(ctx, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		if len(data) < minCoverBytes {
			lastErr = fmt.Errorf("placeholder image at %s (%d bytes)", res, len(data))
			continue
		}

		if c.Debug {
			log.Printf("downloaded cover at %s (%d bytes)", res, len(data))
		}
		if err := os.WriteFile(destPath, data, 0o644); err != nil {
			return fmt.Errorf("error writing cover to %s: %w", destPath, err)
		}
		return nil
	}
	return fmt.Errorf("error downloading cover: %w", lastErr)
}

func (c *Client) fetchBytes(ctx context.Context, pageURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("error waiting for rate limiter: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}
	return io.ReadAll(resp.Body)
}
