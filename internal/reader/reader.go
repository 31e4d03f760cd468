// internal/reader/reader.go
package reader

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/wiggin77/merror"
	"github.com/xeipuuv/gojsonschema"

	"github.com/tamzrod/catalog-check/internal/catalog"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// ErrMalformed is returned when an input is not JSON or does not have the catalog shape.
var ErrMalformed = errors.New("reader: malformed input")

// Source abstracts where input bytes come from.
// The reader depends on bytes only.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// OSSource reads from the local filesystem.
type OSSource struct{}

func (OSSource) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Reader loads raw catalogs. One attempt per call, no retries.
type Reader struct {
	src     Source
	sensors *gojsonschema.Schema
	assets  *gojsonschema.Schema
}

// New creates a reader with the embedded catalog schemas compiled.
func New(src Source) (*Reader, error) {
	if src == nil {
		return nil, errors.New("reader: source required")
	}

	sensors, err := compile("schema/sensors.schema.json")
	if err != nil {
		return nil, err
	}
	assets, err := compile("schema/assets.schema.json")
	if err != nil {
		return nil, err
	}

	return &Reader{src: src, sensors: sensors, assets: assets}, nil
}

func compile(name string) (*gojsonschema.Schema, error) {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reader: load %s: %w", name, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return nil, fmt.Errorf("reader: compile %s: %w", name, err)
	}
	return s, nil
}

// ReadSensors reads, shape-checks and decodes a sensor catalog.
func (r *Reader) ReadSensors(path string) ([]catalog.Sensor, error) {
	var sensors []catalog.Sensor
	if err := r.read(path, r.sensors, &sensors); err != nil {
		return nil, err
	}
	return sensors, nil
}

// ReadAssets reads, shape-checks and decodes an asset catalog.
func (r *Reader) ReadAssets(path string) ([]catalog.Asset, error) {
	var assets []catalog.Asset
	if err := r.read(path, r.assets, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// read is all-or-nothing: any failure aborts and nothing is returned.
func (r *Reader) read(path string, schema *gojsonschema.Schema, dst any) error {
	b, err := r.src.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reader: read %s: %w", path, err)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if !res.Valid() {
		merr := merror.New()
		for _, re := range res.Errors() {
			merr.Append(errors.New(re.String()))
		}
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, merr)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}
