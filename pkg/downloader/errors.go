package downloader

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Download wraps exactly one of these.
var (
	ErrRequest       = errors.New("request failed")
	ErrMissingLength = errors.New("missing content length")
	ErrFileCreate    = errors.New("file create failed")
	ErrStreamRead    = errors.New("download failed mid-stream")
	ErrFileWrite     = errors.New("write failed")
)

// Error carries the kind of a download failure, a human readable detail
// and the underlying cause, if any.
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	return fmt.Sprintf("%s: %v", e.Detail, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func requestError(url string, err error) error {
	return &Error{Kind: ErrRequest, Detail: fmt.Sprintf("failed to GET from '%s'", url), Err: err}
}

func missingLengthError(url string) error {
	return &Error{Kind: ErrMissingLength, Detail: fmt.Sprintf("failed to get content length from '%s'", url)}
}

func fileCreateError(path string, err error) error {
	return &Error{Kind: ErrFileCreate, Detail: fmt.Sprintf("failed to create file '%s'", path), Err: err}
}

func streamReadError(err error) error {
	return &Error{Kind: ErrStreamRead, Detail: "error while downloading file", Err: err}
}

func fileWriteError(err error) error {
	return &Error{Kind: ErrFileWrite, Detail: "error while writing to file", Err: err}
}
