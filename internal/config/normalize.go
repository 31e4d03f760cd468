// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	out := &cfg.Output

	out.Dir = strings.TrimSpace(out.Dir)
	if out.Dir == "" {
		out.Dir = DefaultOutputDir
	}

	out.AssetsFile = strings.TrimSpace(out.AssetsFile)
	if out.AssetsFile == "" {
		out.AssetsFile = DefaultAssetsFile
	}

	out.SensorsFile = strings.TrimSpace(out.SensorsFile)
	if out.SensorsFile == "" {
		out.SensorsFile = DefaultSensorsFile
	}

	if out.Indent == 0 {
		out.Indent = DefaultIndent
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
