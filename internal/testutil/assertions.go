package testutil

import (
	"testing"

	"github.com/specialistvlad/lightgrid/internal/report"
	"github.com/stretchr/testify/require"
)

// RequireOutcome finds the outcome for run in the harness report and checks
// its magnitude. It abstracts the report layout so tests only state the run
// name and the expected value.
func RequireOutcome(t *testing.T, result *HarnessResult, run string, magnitude int) report.Outcome {
	t.Helper()

	require.NotNil(t, result.Report, "harness produced no report: %v", result.Err)
	for _, o := range result.Report.Outcomes {
		if o.Run == run {
			require.Equal(t, magnitude, o.Magnitude, "unexpected magnitude for run %q", run)
			return o
		}
	}
	require.Failf(t, "run not found", "no outcome for run %q in report", run)
	return report.Outcome{}
}
