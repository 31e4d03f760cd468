// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wiggin77/merror"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid")

// MaxIndent is the widest accepted output indentation.
const MaxIndent = 8

// Validate checks configuration correctness.
// It performs declarative validation only and reports every problem at once.
// Zero values are accepted: Normalize replaces them with defaults.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}

	merr := merror.New()

	// ------------------------------------------------------------
	// OUTPUT FILES
	// ------------------------------------------------------------

	out := cfg.Output
	for _, f := range []struct {
		key  string
		name string
	}{
		{"output.assets_file", out.AssetsFile},
		{"output.sensors_file", out.SensorsFile},
	} {
		name := strings.TrimSpace(f.name)
		if name == "" {
			continue
		}
		if name != filepath.Base(name) || name == "." || name == ".." {
			merr.Append(fmt.Errorf("%s: %q must be a bare file name", f.key, f.name))
		}
	}

	assets := strings.TrimSpace(out.AssetsFile)
	if assets == "" {
		assets = DefaultAssetsFile
	}
	sensors := strings.TrimSpace(out.SensorsFile)
	if sensors == "" {
		sensors = DefaultSensorsFile
	}
	if assets == sensors {
		merr.Append(fmt.Errorf("output.assets_file and output.sensors_file are both %q", assets))
	}

	if out.Indent < 0 || out.Indent > MaxIndent {
		merr.Append(fmt.Errorf("output.indent: %d out of range 1..%d", out.Indent, MaxIndent))
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if lvl := strings.TrimSpace(cfg.Log.Level); lvl != "" {
		if _, err := logrus.ParseLevel(lvl); err != nil {
			merr.Append(fmt.Errorf("log.level: %w", err))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
