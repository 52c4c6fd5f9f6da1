package downloader

import (
	"net/http"
)

// Progress is the display a Downloader reports to. Start is called once the
// declared length is known, SetPosition after every chunk and Finish only on
// success.
type Progress interface {
	Start(total int64, label string)
	SetPosition(n int64)
	Finish(message string)
}

// NopProgress discards every update.
type NopProgress struct{}

func (NopProgress) Start(int64, string) {}
func (NopProgress) SetPosition(int64)   {}
func (NopProgress) Finish(string)       {}

// Hook is called after every chunk has been written and the position pushed
// to the display. A non-nil error aborts the download and is returned as-is.
type Hook func(resp *http.Response, downloaded, total int64) error
