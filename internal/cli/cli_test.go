package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/lightgrid/internal/app"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/specialistvlad/lightgrid/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Commands(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected app.Config
	}{
		{
			name: "run with defaults",
			args: []string{"run", "plans/"},
			expected: app.Config{
				PlanPath:  "plans/",
				Shards:    1,
				LogFormat: "text",
				LogLevel:  "info",
				Output:    report.FormatText,
			},
		},
		{
			name: "apply defaults to every backend",
			args: []string{"apply", "input.txt"},
			expected: app.Config{
				InputPath: "input.txt",
				Backends:  []lightgrid.Kind{lightgrid.KindBinary, lightgrid.KindBrightness},
				Shards:    1,
				LogFormat: "text",
				LogLevel:  "info",
				Output:    report.FormatText,
			},
		},
		{
			name: "apply with all flags",
			args: []string{
				"--log-level", "DEBUG", "--log-format", "json", "-o", "yaml",
				"apply", "--backend", "brightness", "--shards", "4", "--workers", "2", "input.txt",
			},
			expected: app.Config{
				InputPath: "input.txt",
				Backends:  []lightgrid.Kind{lightgrid.KindBrightness},
				Shards:    4,
				Workers:   2,
				LogFormat: "json",
				LogLevel:  "debug",
				Output:    report.FormatYAML,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			require.NoError(t, err)
			require.False(t, shouldExit)
			require.NotNil(t, cfg)
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func TestParse_ShouldExit(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "help flag", args: []string{"-h"}},
		{name: "subcommand help", args: []string{"apply", "--help"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "unknown flag", args: []string{"run", "--nope", "plan.hcl"}, errContains: "unknown flag"},
		{name: "missing path", args: []string{"run"}, errContains: "accepts 1 arg(s)"},
		{name: "unknown command", args: []string{"explode"}, errContains: "unknown command"},
		{name: "bad backend", args: []string{"apply", "--backend", "dense", "in.txt"}, errContains: "unknown backend kind"},
		{name: "bad output", args: []string{"-o", "csv", "run", "plan.hcl"}, errContains: "unknown report format"},
		{name: "bad log format", args: []string{"--log-format", "xml", "run", "plan.hcl"}, errContains: "log-format"},
		{name: "bad log level", args: []string{"--log-level", "loud", "run", "plan.hcl"}, errContains: "log-level"},
		{name: "negative shards", args: []string{"--shards", "-3", "run", "plan.hcl"}, errContains: "shards"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
