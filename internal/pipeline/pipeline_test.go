package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/catalog-check/internal/config"
	"github.com/tamzrod/catalog-check/internal/reader"
	"github.com/tamzrod/catalog-check/internal/refdata"
	"github.com/tamzrod/catalog-check/internal/validate"
	"github.com/tamzrod/catalog-check/internal/writer"
)

const goodSensors = `[
	{"id": "s2", "displayName": "Fan run", "markerTags": ["run", "fan"], "type": "Bool"},
	{"id": " s1 ", "displayName": " Supply temp ", "markerTags": ["temp", " air"], "type": "Numeric", "unit": "°C"}
]`

const goodAssets = `[
	{
		"id": "ahu-1",
		"isPlant": false,
		"displayName": "AHU 1",
		"markerTags": ["equip", "ahu"],
		"mandatorySensors": [
			{"sensorId": "s2", "extraMarkerTags": []},
			{"sensorId": "s1", "extraMarkerTags": ["supply"]}
		],
		"optionalSensors": [],
		"assetTypeId": 12
	}
]`

type fixture struct {
	dir     string
	outDir  string
	in      Inputs
	p       *Pipeline
	logHook *logtest.Hook
}

func newFixture(t *testing.T, assets, sensors string) *fixture {
	t.Helper()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	in := Inputs{
		AssetsPath:  filepath.Join(dir, "assets.json"),
		SensorsPath: filepath.Join(dir, "sensors.json"),
	}
	require.NoError(t, os.WriteFile(in.AssetsPath, []byte(assets), 0o644))
	require.NoError(t, os.WriteFile(in.SensorsPath, []byte(sensors), 0o644))

	cfg := config.Default()
	cfg.Output.Dir = outDir

	r, err := reader.New(reader.OSSource{})
	require.NoError(t, err)
	w, err := writer.New(writer.OSSink{})
	require.NoError(t, err)

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	p, err := New(Config{
		Output:     cfg.Output,
		Units:      refdata.NewUnitSet("°C", "kW"),
		AssetTypes: refdata.NewAssetTypeSet(12),
	}, r, w, log)
	require.NoError(t, err)

	return &fixture{dir: dir, outDir: outDir, in: in, p: p, logHook: hook}
}

func (f *fixture) outputs(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.outDir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// ---- tests ----

func TestNew_RequiresDependencies(t *testing.T) {
	r, err := reader.New(reader.OSSource{})
	require.NoError(t, err)
	w, err := writer.New(writer.OSSink{})
	require.NoError(t, err)

	_, err = New(Config{AssetTypes: refdata.NewAssetTypeSet()}, r, w, nil)
	assert.Error(t, err)
	_, err = New(Config{Units: refdata.NewUnitSet()}, r, w, nil)
	assert.Error(t, err)
	_, err = New(Config{Units: refdata.NewUnitSet(), AssetTypes: refdata.NewAssetTypeSet()}, nil, w, nil)
	assert.Error(t, err)
}

func TestRun_CleanWritesOutputs(t *testing.T) {
	f := newFixture(t, goodAssets, goodSensors)

	res, err := f.p.Run(f.in)
	require.NoError(t, err)

	assert.Equal(t, StageDone, res.Stage)
	assert.Empty(t, res.Findings())
	assert.Equal(t, 0, res.Summary().ExitCode())
	assert.ElementsMatch(t, []string{"new_assets.json", "new_sensors.json"}, f.outputs(t))
	assert.Len(t, res.Written, 2)

	sensors, err := os.ReadFile(filepath.Join(f.outDir, "new_sensors.json"))
	require.NoError(t, err)
	assert.Equal(t, `[
    {
        "id": "s1",
        "displayName": "Supply temp",
        "markerTags": [
            "air",
            "temp"
        ],
        "type": "Numeric",
        "unit": "°C"
    },
    {
        "id": "s2",
        "displayName": "Fan run",
        "markerTags": [
            "fan",
            "run"
        ],
        "type": "Bool"
    }
]
`, string(sensors))

	assets, err := os.ReadFile(filepath.Join(f.outDir, "new_assets.json"))
	require.NoError(t, err)
	assert.Contains(t, string(assets), `"isPlant": false`)
	assert.Contains(t, string(assets), `"assetTypeId": 12`)
	assert.Less(t, strings.Index(string(assets), `"sensorId": "s1"`), strings.Index(string(assets), `"sensorId": "s2"`))

	assert.NotEmpty(t, f.logHook.AllEntries())
}

func TestRun_OutputIsStable(t *testing.T) {
	f := newFixture(t, goodAssets, goodSensors)
	_, err := f.p.Run(f.in)
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(f.outDir, "new_sensors.json"))
	require.NoError(t, err)

	// Feed the canonical output back in.
	require.NoError(t, os.WriteFile(f.in.SensorsPath, first, 0o644))
	_, err = f.p.Run(f.in)
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(f.outDir, "new_sensors.json"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRun_SensorFindingsSkipAssets(t *testing.T) {
	badSensors := `[{"id": "s1", "displayName": "", "markerTags": [], "type": "Bool", "unit": "kW"}]`
	// The assets would fail too, but are never checked.
	f := newFixture(t, `[{"id":"","displayName":"","markerTags":[],"mandatorySensors":[],"optionalSensors":[]}]`, badSensors)

	res, err := f.p.Run(f.in)
	require.NoError(t, err)

	assert.Equal(t, StageValidateSensors, res.Stage)
	assert.Equal(t, []string{
		"Sensor s1: Empty display name",
		"Sensor s1: No SkySpark marker tags",
		"Sensor s1: Has a unit but is not numeric",
	}, lines(res.Findings()))
	assert.Empty(t, res.AssetFindings)
	assert.Equal(t, 1, res.Summary().ExitCode())
	assert.Empty(t, f.outputs(t))
}

func TestRun_AssetFindingsBlockOutput(t *testing.T) {
	assets := `[{
		"id": "a1", "displayName": "AHU", "markerTags": ["ahu"],
		"mandatorySensors": [{"sensorId": "missing", "extraMarkerTags": []}],
		"optionalSensors": []
	}]`
	f := newFixture(t, assets, goodSensors)

	res, err := f.p.Run(f.in)
	require.NoError(t, err)

	assert.Equal(t, StageValidateAssets, res.Stage)
	assert.Equal(t, []string{"Asset a1: No matching sensor with id 'missing'"}, lines(res.Findings()))
	assert.Equal(t, 1, res.Summary().ExitCode())
	assert.Empty(t, f.outputs(t))
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	f := newFixture(t, goodAssets, goodSensors)
	f.in.SensorsPath = filepath.Join(f.dir, "nope.json")

	res, err := f.p.Run(f.in)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "ReadInputs")
	assert.Equal(t, StageReadInputs, res.Stage)
	assert.Empty(t, f.outputs(t))
}

func TestRun_MalformedInputIsFatal(t *testing.T) {
	f := newFixture(t, `[{"id": "a1"`, goodSensors)

	_, err := f.p.Run(f.in)
	assert.ErrorIs(t, err, reader.ErrMalformed)
	assert.Empty(t, f.outputs(t))
}

func TestRun_UnwritableOutputIsFatal(t *testing.T) {
	f := newFixture(t, goodAssets, goodSensors)
	f.p.cfg.Output.Dir = filepath.Join(f.dir, "does", "not", "exist")

	res, err := f.p.Run(f.in)
	require.Error(t, err)
	assert.Equal(t, StageWriteOutputs, res.Stage)
	assert.Empty(t, res.Written)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "ValidateAssets", StageValidateAssets.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}

func lines(fs []validate.Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.String())
	}
	return out
}
