// internal/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/catalog-check/internal/catalog"
	"github.com/tamzrod/catalog-check/internal/config"
	"github.com/tamzrod/catalog-check/internal/normalize"
	"github.com/tamzrod/catalog-check/internal/reader"
	"github.com/tamzrod/catalog-check/internal/refdata"
	"github.com/tamzrod/catalog-check/internal/report"
	"github.com/tamzrod/catalog-check/internal/validate"
	"github.com/tamzrod/catalog-check/internal/writer"
)

// Stage is one step of a run. Runs move forward only.
type Stage int

const (
	StageStart Stage = iota
	StageReadInputs
	StageNormalize
	StageValidateSensors
	StageValidateAssets
	StageWriteOutputs
	StageDone
)

var stageNames = [...]string{
	StageStart:           "Start",
	StageReadInputs:      "ReadInputs",
	StageNormalize:       "Normalize",
	StageValidateSensors: "ValidateSensors",
	StageValidateAssets:  "ValidateAssets",
	StageWriteOutputs:    "WriteOutputs",
	StageDone:            "Done",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Inputs names the two catalog files of one run.
type Inputs struct {
	AssetsPath  string
	SensorsPath string
}

// Result is what a run produced. Stage is the last stage reached.
// Findings never come with an error; an error never comes with outputs.
type Result struct {
	Stage          Stage
	Sensors        []catalog.Sensor
	Assets         []catalog.Asset
	SensorFindings []validate.Finding
	AssetFindings  []validate.Finding
	Written        []string
}

// Findings returns sensor findings followed by asset findings.
func (r Result) Findings() []validate.Finding {
	out := make([]validate.Finding, 0, len(r.SensorFindings)+len(r.AssetFindings))
	out = append(out, r.SensorFindings...)
	out = append(out, r.AssetFindings...)
	return out
}

// Summary condenses the result for reporting.
func (r Result) Summary() report.Summary {
	return report.Summary{
		Stage:          r.Stage.String(),
		Sensors:        len(r.Sensors),
		Assets:         len(r.Assets),
		SensorFindings: len(r.SensorFindings),
		AssetFindings:  len(r.AssetFindings),
		Written:        r.Written,
	}
}

// Config is the immutable runtime config a pipeline needs.
type Config struct {
	Output     config.OutputConfig
	Units      refdata.UnitSet
	AssetTypes refdata.AssetTypeSet
}

// Pipeline runs one validation pass. It holds no state between runs.
type Pipeline struct {
	cfg    Config
	reader *reader.Reader
	writer *writer.Writer
	log    logrus.FieldLogger
}

// New creates a pipeline. Reference data is injected, never looked up.
func New(cfg Config, r *reader.Reader, w *writer.Writer, log logrus.FieldLogger) (*Pipeline, error) {
	if cfg.Units == nil {
		return nil, errors.New("pipeline: unit catalog required")
	}
	if cfg.AssetTypes == nil {
		return nil, errors.New("pipeline: asset type catalog required")
	}
	if r == nil || w == nil {
		return nil, errors.New("pipeline: reader and writer required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{cfg: cfg, reader: r, writer: w, log: log}, nil
}

// Run performs exactly one pass:
// ReadInputs -> Normalize -> ValidateSensors -> ValidateAssets -> WriteOutputs.
// Findings stop the run before WriteOutputs and are returned in Result.
// Errors are fatal: IO or malformed input.
func (p *Pipeline) Run(in Inputs) (Result, error) {
	var res Result

	// ---- read ----
	res.Stage = StageReadInputs
	rawAssets, err := p.reader.ReadAssets(in.AssetsPath)
	if err != nil {
		return res, fmt.Errorf("pipeline: %s: %w", res.Stage, err)
	}
	rawSensors, err := p.reader.ReadSensors(in.SensorsPath)
	if err != nil {
		return res, fmt.Errorf("pipeline: %s: %w", res.Stage, err)
	}
	p.log.WithFields(logrus.Fields{
		"stage":   res.Stage,
		"assets":  len(rawAssets),
		"sensors": len(rawSensors),
	}).Debug("inputs read")

	// ---- normalize ----
	res.Stage = StageNormalize
	res.Sensors = normalize.Sensors(rawSensors)
	res.Assets = normalize.Assets(rawAssets)

	// ---- sensors ----
	res.Stage = StageValidateSensors
	res.SensorFindings = validate.Sensors(res.Sensors, p.cfg.Units)
	p.log.WithFields(logrus.Fields{"stage": res.Stage, "count": len(res.SensorFindings)}).Debug("sensors validated")
	if len(res.SensorFindings) > 0 {
		return res, nil
	}

	// ---- assets ----
	res.Stage = StageValidateAssets
	res.AssetFindings = validate.Assets(res.Assets, catalog.IndexSensors(res.Sensors), p.cfg.AssetTypes)
	p.log.WithFields(logrus.Fields{"stage": res.Stage, "count": len(res.AssetFindings)}).Debug("assets validated")
	if len(res.AssetFindings) > 0 {
		return res, nil
	}

	// ---- write ----
	res.Stage = StageWriteOutputs
	plan, err := writer.BuildPlan(p.cfg.Output, res.Assets, res.Sensors)
	if err != nil {
		return res, fmt.Errorf("pipeline: %s: %w", res.Stage, err)
	}
	written, err := p.writer.Write(plan)
	if err != nil {
		return res, fmt.Errorf("pipeline: %s: %w", res.Stage, err)
	}
	res.Written = written
	for _, path := range written {
		p.log.WithFields(logrus.Fields{"stage": res.Stage, "path": path}).Debug("output written")
	}

	res.Stage = StageDone
	return res, nil
}
