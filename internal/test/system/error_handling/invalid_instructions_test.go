package system

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lightgrid/internal/app"
	"github.com/specialistvlad/lightgrid/internal/instruction"
	"github.com/specialistvlad/lightgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: an inverted range in a text file fails the whole run
func TestErrorHandling_InvertedTextRangeFailsRun(t *testing.T) {
	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{
		"input.txt": "turn on 0,0 through 2,2\n# comment\ntoggle 5,5 through 3,9\n",
	})

	// --- Act ---
	result := testutil.RunApp(t, app.Config{InputPath: filepath.Join(root, "input.txt")})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, instruction.ErrInvertedRange)
	assert.Contains(t, result.Err.Error(), "line 3")
	assert.Nil(t, result.Report, "no partial report is written")
	assert.Empty(t, result.Output)
}

// Test for: malformed lines report their line number
func TestErrorHandling_SyntaxErrorFailsRun(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"input.txt": "turn on 0,0 through 2,2\n\nturn on 0,0 to 2,2\n",
	})

	result := testutil.RunApp(t, app.Config{InputPath: filepath.Join(root, "input.txt")})

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, instruction.ErrSyntax)
	assert.Contains(t, result.Err.Error(), "line 3")
}

// Test for: an inverted range in a plan is a diagnostic
func TestErrorHandling_InvertedPlanRangeFailsRun(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"main.hcl": `
run "r" {
  backend = "binary"
}

instruction "off" {
  from = [4, 4]
  to   = [4, 1]
}
`,
	})

	result := testutil.RunApp(t, app.Config{PlanPath: root})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "Inverted instruction range")
	assert.Contains(t, result.Err.Error(), "main.hcl")
}

// Test for: a missing input file referenced by a run
func TestErrorHandling_MissingRunInput(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"main.hcl": `
run "r" {
  backend = "binary"
  input   = "nowhere.txt"
}
`,
	})

	result := testutil.RunApp(t, app.Config{PlanPath: root})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `run "r"`)
	assert.Contains(t, result.Err.Error(), "nowhere.txt")
}
