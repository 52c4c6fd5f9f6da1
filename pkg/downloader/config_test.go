package downloader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"Debug":          "GDL_DEBUG",
		"ShowProgress":   "GDL_SHOW_PROGRESS",
		"CopyBufferSize": "GDL_COPY_BUFFER_SIZE",
	}

	for field, want := range tests {
		if got := envKey(field); got != want {
			t.Errorf("envKey(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GDL_DEBUG", "true")
	t.Setenv("GDL_SHOW_PROGRESS", "0")
	t.Setenv("GDL_COPY_BUFFER_SIZE", "4096")

	config := DefaultConfig(testURL, "out.bin")
	if err := config.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	want := &Config{
		Url:            testURL,
		Path:           "out.bin",
		ShowProgress:   false,
		CopyBufferSize: 4096,
		Debug:          true,
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvKeepsDefaults(t *testing.T) {
	config := DefaultConfig(testURL, "out.bin")
	if err := config.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(testURL, "out.bin"), config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"GDL_DEBUG":            "maybe",
		"GDL_SHOW_PROGRESS":    "sometimes",
		"GDL_COPY_BUFFER_SIZE": "big",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			if err := DefaultConfig(testURL, "out.bin").LoadEnv(); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig(testURL, "out.bin").Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
	if err := (&Config{Url: testURL, Path: "out.bin"}).Validate(); err == nil {
		t.Error("expected zero buffer size to be rejected")
	}
}
