package downloader

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/shirou/gopsutil/v3/disk"
)

// freeSpace returns the bytes available on the volume that will hold path.
func freeSpace(path string) (uint64, error) {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", path, err)
	}

	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, fmt.Errorf("disk usage of %s: %w", dir, err)
	}

	return usage.Free, nil
}

// checkFreeSpace only warns: a full disk still fails the download on write.
func (d *Downloader) checkFreeSpace(logger *slog.Logger) {
	free, err := freeSpace(d.path)
	if err != nil {
		logger.Debug("free space unknown", "error", err)
		return
	}

	if d.size > 0 && uint64(d.size) > free {
		logger.Warn("declared length exceeds free disk space",
			"size", bytesize.New(float64(d.size)).String(),
			"free", bytesize.New(float64(free)).String(),
		)
	}
}
