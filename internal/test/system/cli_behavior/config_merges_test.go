package system

import (
	"testing"

	"github.com/specialistvlad/lightgrid/internal/app"
	"github.com/specialistvlad/lightgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: config merges
func TestCLI_MergesPlans_FromDirectoryPath(t *testing.T) {
	// --- Arrange ---
	// Runs and instructions from every file in the directory form one plan.
	root := testutil.WriteFiles(t, map[string]string{
		"a.hcl": `
run "from_a" {
  backend = "binary"
  expect  = 12
}
`,
		"b.hcl": `
instruction "on" {
  from = [0, 0]
  to   = [1, 3]
}

instruction "on" {
  from = [5, 5]
  to   = [5, 8]
}
`,
	})

	// --- Act ---
	result := testutil.RunApp(t, app.Config{PlanPath: root})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.RequireOutcome(t, result, "from_a", 12)
}

// Test for: run-level shards override the command line
func TestCLI_RunShardsOverrideConfig(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"main.hcl": `
run "pinned" {
  backend = "brightness"
  shards  = 2
}

run "inherited" {
  backend = "brightness"
}

instruction "toggle" {
  from = [0, 0]
  to   = [9, 9]
}
`,
	})

	result := testutil.RunApp(t, app.Config{PlanPath: root, Shards: 5})

	require.NoError(t, result.Err)
	pinned := testutil.RequireOutcome(t, result, "pinned", 200)
	inherited := testutil.RequireOutcome(t, result, "inherited", 200)
	assert.Equal(t, 2, pinned.Shards)
	assert.Equal(t, 5, inherited.Shards)
}

// Test for: duplicate run names across files
func TestCLI_DuplicateRunAcrossFiles(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a.hcl": `run "same" { backend = "binary" }`,
		"b.hcl": `run "same" { backend = "brightness" }`,
	})

	result := testutil.RunApp(t, app.Config{PlanPath: root})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `duplicate run "same"`)
}
