package downloader

import (
	"path/filepath"
	"testing"
)

func TestFreeSpace(t *testing.T) {
	free, err := freeSpace(filepath.Join(t.TempDir(), "out.bin"))
	if err != nil {
		t.Fatalf("freeSpace: %v", err)
	}
	if free == 0 {
		t.Error("expected some free space in the temp dir")
	}
}
