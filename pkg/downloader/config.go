package downloader

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/stoewer/go-strcase"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "GDL_"

const defaultCopyBufferSize = 32 * 1024

type Config struct {
	Url            string `validate:"required,url"`
	Path           string `validate:"required"`
	ShowProgress   bool
	CopyBufferSize int `validate:"gt=0"` // read buffer, upper bound of a single chunk
	Debug          bool
}

// DefaultConfig returns a config for url and path with every knob at its default.
func DefaultConfig(url, path string) *Config {
	return &Config{
		Url:            url,
		Path:           path,
		ShowProgress:   true,
		CopyBufferSize: defaultCopyBufferSize,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first set of invalid fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadEnv overrides the ambient knobs of c from the environment. The source
// url and destination path are never read from the environment.
//
//	GDL_DEBUG, GDL_SHOW_PROGRESS, GDL_COPY_BUFFER_SIZE
func (c *Config) LoadEnv() error {
	if v, ok := lookupEnv("Debug"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("parsing %sDEBUG: %w", EnvPrefix, err)
		}
		c.Debug = b
	}

	if v, ok := lookupEnv("ShowProgress"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("parsing %sSHOW_PROGRESS: %w", EnvPrefix, err)
		}
		c.ShowProgress = b
	}

	if v, ok := lookupEnv("CopyBufferSize"); ok {
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("parsing %sCOPY_BUFFER_SIZE: %w", EnvPrefix, err)
		}
		c.CopyBufferSize = n
	}

	return nil
}

func envKey(field string) string {
	return EnvPrefix + strcase.UpperSnakeCase(field)
}

func lookupEnv(field string) (string, bool) {
	return os.LookupEnv(envKey(field))
}
