// Package progress renders download progress on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Bar is a byte progress bar: message, spinner, elapsed time, filled bar,
// byte counts, throughput and ETA. A hidden Bar tracks the position but
// renders nothing.
type Bar struct {
	w        io.Writer
	out      io.Writer
	visible  bool
	bar      *progressbar.ProgressBar
	position int64
	total    int64
}

// New returns a Bar drawing to w when visible is true.
func New(w io.Writer, visible bool) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{w: w, visible: visible}
}

// NewForTerminal returns a Bar on f that is visible only when show is set
// and f is attached to a terminal.
func NewForTerminal(f *os.File, show bool) *Bar {
	return New(f, show && IsTerminal(f))
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (b *Bar) Start(total int64, label string) {
	out := b.w
	if !b.visible {
		out = io.Discard
	}

	b.out = out
	b.total = total
	b.position = 0
	b.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerHead:    ">",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
	)
}

func (b *Bar) SetPosition(n int64) {
	if b.bar == nil {
		return
	}
	b.position = n
	_ = b.bar.Set64(n)
}

// Finish draws the final frame and writes message on its own line below it.
func (b *Bar) Finish(message string) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	fmt.Fprintln(b.out, message)
}

// Position returns the last position pushed to the bar.
func (b *Bar) Position() int64 {
	return b.position
}

func (b *Bar) Total() int64 {
	return b.total
}
