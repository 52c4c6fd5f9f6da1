package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mdsohelmia/gdl/pkg/downloader"
	"github.com/mdsohelmia/gdl/pkg/progress"
)

const (
	sourceURL = "https://download.sublimetext.com/sublime_text_build_4196_x64.zip"
	destPath  = "sublime_text_build_4196_x64.zip"
)

var _ downloader.Progress = (*progress.Bar)(nil)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, sourceURL, destPath, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "gdl: could not download file: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
