package downloader

import (
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		kind error
		want string
	}{
		{name: "request", err: requestError("http://x", cause), kind: ErrRequest, want: "failed to GET from 'http://x': boom"},
		{name: "missing length", err: missingLengthError("http://x"), kind: ErrMissingLength, want: "failed to get content length from 'http://x'"},
		{name: "file create", err: fileCreateError("out", cause), kind: ErrFileCreate, want: "failed to create file 'out': boom"},
		{name: "stream read", err: streamReadError(cause), kind: ErrStreamRead, want: "error while downloading file: boom"},
		{name: "file write", err: fileWriteError(cause), kind: ErrFileWrite, want: "error while writing to file: boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.kind) {
				t.Errorf("expected errors.Is(%v, %v)", tc.err, tc.kind)
			}
			if tc.kind != ErrMissingLength && !errors.Is(tc.err, cause) {
				t.Errorf("expected cause to be reachable from %v", tc.err)
			}
			if tc.err.Error() != tc.want {
				t.Errorf("expected message %q, got %q", tc.want, tc.err.Error())
			}
		})
	}
}
