package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/mdsohelmia/gdl/pkg/downloader"
	"github.com/mdsohelmia/gdl/pkg/progress"
	"github.com/mdsohelmia/gdl/pkg/transport"
)

type summary struct {
	Url        string
	OriginUrl  string
	Path       string
	Status     int
	Size       int64
	Downloaded int64
}

// run downloads url to path once. Ambient settings come from the
// environment and an optional .env file in the working directory.
func run(ctx context.Context, url, path string, stderr *os.File) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	config := downloader.DefaultConfig(url, path)
	if err := config.LoadEnv(); err != nil {
		return err
	}

	logger := newLogger(stderr, config.Debug)

	opts := transport.DefaultOptions()
	opts.Logger = logger
	client := transport.NewClient(opts)

	d, err := downloader.NewDownloader(client, config)
	if err != nil {
		return err
	}
	d.SetLogger(logger)
	d.SetProgress(progress.NewForTerminal(stderr, config.ShowProgress))

	err = d.Download(ctx)

	if config.Debug {
		pp.Fprintln(stderr, summary{
			Url:        d.GetUrl(),
			OriginUrl:  d.GetOriginUrl(),
			Path:       d.GetPath(),
			Status:     d.GetStatus(),
			Size:       d.GetFileSize(),
			Downloaded: d.GetDownloaded(),
		})
	}

	return err
}
