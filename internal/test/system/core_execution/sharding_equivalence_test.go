package system

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/lightgrid/internal/app"
	"github.com/specialistvlad/lightgrid/internal/instruction"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/specialistvlad/lightgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

func randomInput(t *testing.T, seed int64, n int) string {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	actions := []lightgrid.Action{lightgrid.On, lightgrid.Off, lightgrid.Toggle}
	seq := make([]lightgrid.Instruction, 0, n)
	for i := 0; i < n; i++ {
		r1, c1 := rng.Intn(60), rng.Intn(60)
		from := lightgrid.C(r1, c1)
		to := lightgrid.C(r1+rng.Intn(40), c1+rng.Intn(40))
		seq = append(seq, lightgrid.NewInstruction(actions[rng.Intn(len(actions))], from, to))
	}

	return instruction.Format(seq)
}

// magnitudes reduces a report to run name -> magnitude.
func magnitudes(t *testing.T, result *testutil.HarnessResult) map[string]int {
	t.Helper()
	require.NoError(t, result.Err)

	out := make(map[string]int, len(result.Report.Outcomes))
	for _, o := range result.Report.Outcomes {
		out[o.Run] = o.Magnitude
	}
	return out
}

// Test for: sharded runs agree with a single band
func TestCoreExecution_ShardedRunsMatchSingleBand(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		root := testutil.WriteFiles(t, map[string]string{"input.txt": randomInput(t, seed, 200)})
		input := filepath.Join(root, "input.txt")

		baseline := magnitudes(t, testutil.RunApp(t, app.Config{InputPath: input}))

		for _, shards := range []int{2, 3, 16, 150} {
			got := magnitudes(t, testutil.RunApp(t, app.Config{InputPath: input, Shards: shards, Workers: 3}))
			if diff := cmp.Diff(baseline, got); diff != "" {
				t.Errorf("seed %d, %d shards: magnitude mismatch (-single +sharded):\n%s", seed, shards, diff)
			}
		}
	}
}
