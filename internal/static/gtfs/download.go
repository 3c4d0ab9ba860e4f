package gtfs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	resty "gopkg.in/resty.v1"
)

// Download fetches a GTFS zip to destPath. The body is written to a
// temporary file first so a failed download never replaces a good archive.
func Download(url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpPath := destPath + ".part"
	client := resty.New().SetTimeout(2 * time.Minute)

	resp, err := client.R().SetOutput(tmpPath).Get(url)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	if resp.IsError() {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to download %s: %s", url, resp.Status())
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}
