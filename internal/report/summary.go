// internal/report/summary.go
package report

// Summary is what one run reports about itself.
// It contains no logic and no IO.
type Summary struct {
	Stage          string
	Sensors        int
	Assets         int
	SensorFindings int
	AssetFindings  int
	Written        []string
}

// Findings returns the total number of findings.
func (s Summary) Findings() int {
	return s.SensorFindings + s.AssetFindings
}

// ExitCode maps the summary to a process exit code.
func (s Summary) ExitCode() int {
	if s.Findings() > 0 || len(s.Written) == 0 {
		return ExitFailure
	}
	return ExitOK
}
