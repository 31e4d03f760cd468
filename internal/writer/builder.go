// internal/writer/builder.go
package writer

import (
	"errors"
	"path/filepath"

	"github.com/tamzrod/catalog-check/internal/catalog"
	cfg "github.com/tamzrod/catalog-check/internal/config"
)

// BuildPlan converts the output config and normalized catalogs into a Plan.
// Assumes config has already passed Validate and Normalize.
// Assets are written before sensors.
func BuildPlan(out cfg.OutputConfig, assets []catalog.Asset, sensors []catalog.Sensor) (Plan, error) {
	if out.AssetsFile == "" || out.SensorsFile == "" {
		return Plan{}, errors.New("writer: output file names required")
	}
	if out.Indent <= 0 {
		return Plan{}, errors.New("writer: indent must be > 0")
	}

	return Plan{
		Indent: out.Indent,
		Targets: []Target{
			{Path: filepath.Join(out.Dir, out.AssetsFile), Payload: assets},
			{Path: filepath.Join(out.Dir, out.SensorsFile), Payload: sensors},
		},
	}, nil
}
