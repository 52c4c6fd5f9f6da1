// Package downloader streams a single remote file to disk, reporting
// progress after every chunk it receives.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/inhies/go-bytesize"
	"golang.org/x/time/rate"
)

// Client issues the GET request of a download. Only transport failures are
// errors; any status code is a valid response.
type Client interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Downloader streams one remote file to disk.
type Downloader struct {
	url            string
	path           string
	copyBufferSize int
	client         Client
	progress       Progress
	Hook           Hook
	logger         *slog.Logger

	// declared size in bytes
	size int64
	// bytes reported to the display, never above size
	downloaded int64
	// url of the final response after redirects
	originUrl string
	status    int

	createFile func(name string) (io.WriteCloser, error)
}

// NewDownloader creates a Downloader for config.Url and config.Path that
// sends its request through client.
func NewDownloader(client Client, config *Config) (*Downloader, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.CopyBufferSize == 0 {
		config.CopyBufferSize = defaultCopyBufferSize
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Downloader{
		url:            config.Url,
		path:           config.Path,
		copyBufferSize: config.CopyBufferSize,
		client:         client,
		progress:       NopProgress{},
		logger:         slog.New(slog.DiscardHandler),
		createFile:     createFile,
	}, nil
}

// Download fetches url into path with default settings and no display.
func Download(ctx context.Context, client Client, url, path string) error {
	d, err := NewDownloader(client, DefaultConfig(url, path))
	if err != nil {
		return err
	}
	return d.Download(ctx)
}

// Download runs the transfer once. Any failure aborts it; bytes already
// written stay on disk.
func (d *Downloader) Download(ctx context.Context) error {
	logger := d.logger.With("download_id", uuid.NewString(), "url", d.url)

	resp, err := d.client.Get(ctx, d.url)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return requestError(d.url, err)
	}
	defer resp.Body.Close()

	d.status = resp.StatusCode
	d.originUrl = d.url
	if resp.Request != nil && resp.Request.URL != nil {
		d.originUrl = resp.Request.URL.String()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("unexpected status code", "status", resp.StatusCode, "origin", d.originUrl)
	}

	if resp.ContentLength < 0 {
		return missingLengthError(d.url)
	}
	d.size = resp.ContentLength
	d.downloaded = 0

	d.progress.Start(d.size, fmt.Sprintf("Downloading %s", d.url))
	d.checkFreeSpace(logger)

	f, err := d.createFile(d.path)
	if err != nil {
		return fileCreateError(d.path, err)
	}
	closed := false
	defer func() {
		if closed {
			return
		}
		if err := f.Close(); err != nil {
			logger.Error("closing destination file", "path", d.path, "error", err)
		}
	}()

	logger.Debug("download started", "path", d.path, "size", bytesize.New(float64(d.size)).String())

	started := time.Now()
	if err := d.stream(resp, f, logger, started); err != nil {
		logger.Debug("download aborted", "path", d.path, "downloaded", d.downloaded, "error", err)
		return err
	}

	closed = true
	if err := f.Close(); err != nil {
		return fileWriteError(err)
	}

	d.progress.Finish(fmt.Sprintf("Downloaded %s to %s", d.url, d.path))
	logger.Info("download complete",
		"path", d.path,
		"size", bytesize.New(float64(d.size)).String(),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	return nil
}

// stream consumes the body one read at a time: write, clamp, report.
func (d *Downloader) stream(resp *http.Response, w io.Writer, logger *slog.Logger, started time.Time) error {
	buffer := make([]byte, d.copyBufferSize)
	sometimes := rate.Sometimes{Interval: time.Second}

	for {
		n, readErr := resp.Body.Read(buffer)
		if n > 0 {
			if _, err := w.Write(buffer[:n]); err != nil {
				return fileWriteError(err)
			}

			d.downloaded = min(d.downloaded+int64(n), d.size)
			d.progress.SetPosition(d.downloaded)
			sometimes.Do(func() { d.logProgress(logger, started) })

			if d.Hook != nil {
				if err := d.Hook(resp, d.downloaded, d.size); err != nil {
					return err
				}
			}
		}

		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return streamReadError(readErr)
		}
	}
}

func (d *Downloader) logProgress(logger *slog.Logger, started time.Time) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	percent := 100.0
	if d.size > 0 {
		percent = float64(d.downloaded) / float64(d.size) * 100
	}

	elapsed := time.Since(started)
	var throughput float64
	if secs := elapsed.Seconds(); secs > 0 {
		throughput = float64(d.downloaded) / secs
	}

	logger.Debug("downloading",
		"progress", fmt.Sprintf("%.1f%%", percent),
		"transferred", bytesize.New(float64(d.downloaded)).String(),
		"total", bytesize.New(float64(d.size)).String(),
		"rate", bytesize.New(throughput).String()+"/s",
		"elapsed", elapsed.Round(time.Millisecond),
	)
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func (d *Downloader) SetProgress(progress Progress) {
	if progress == nil {
		progress = NopProgress{}
	}
	d.progress = progress
}

func (d *Downloader) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d.logger = logger
}

func (d *Downloader) SetHook(hook Hook) {
	d.Hook = hook
}

func (d *Downloader) GetUrl() string {
	return d.url
}

func (d *Downloader) GetPath() string {
	return d.path
}

// GetFileSize returns the declared length of the last response.
func (d *Downloader) GetFileSize() int64 {
	return d.size
}

func (d *Downloader) GetDownloaded() int64 {
	return d.downloaded
}

func (d *Downloader) GetOriginUrl() string {
	return d.originUrl
}

func (d *Downloader) GetStatus() int {
	return d.status
}
