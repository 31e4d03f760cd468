// internal/report/print.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tamzrod/catalog-check/internal/validate"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

// PrintFindings writes one line per finding, in order.
// Output is plain text: scripts depend on the exact format.
func PrintFindings(w io.Writer, findings []validate.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintSummary writes a one-line human summary.
// Colors are dropped automatically when w is not a terminal.
func PrintSummary(w io.Writer, s Summary) error {
	if s.ExitCode() == ExitOK {
		_, err := okColor.Fprintf(w, "OK: %d sensors, %d assets, wrote %s\n",
			s.Sensors, s.Assets, strings.Join(s.Written, ", "))
		return err
	}

	_, err := failColor.Fprintf(w, "FAILED at %s: %d sensors, %d assets, %d sensor findings, %d asset findings\n",
		s.Stage, s.Sensors, s.Assets, s.SensorFindings, s.AssetFindings)
	return err
}
