package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/lightgrid/internal/ctxlog"
	"github.com/specialistvlad/lightgrid/internal/instruction"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/specialistvlad/lightgrid/internal/plan"
	"github.com/specialistvlad/lightgrid/internal/report"
	"github.com/specialistvlad/lightgrid/internal/shard"
)

// ErrExpectationFailed is returned when a run's magnitude differs from the
// value its plan expects.
var ErrExpectationFailed = errors.New("magnitude expectation failed")

// job is one fully resolved run, ready to execute.
type job struct {
	name   string
	kind   lightgrid.Kind
	shards int
	expect *int
	seq    []lightgrid.Instruction
}

// Run executes every configured run and writes the report. The report is
// returned even when an expectation fails, alongside ErrExpectationFailed.
func (a *App) Run(ctx context.Context) (*report.Report, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.")

	jobs, source, err := a.jobs(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		a.logger.Warn("No runs found, nothing to execute.", "source", source)
	}

	rep := &report.Report{RunID: a.runID, Source: source}
	for _, j := range jobs {
		outcome, err := a.execute(ctx, j)
		if err != nil {
			return nil, err
		}
		rep.Outcomes = append(rep.Outcomes, outcome)
	}

	if err := rep.Write(a.outW, a.config.Output); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	if failed := rep.Failed(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, o := range failed {
			names = append(names, o.Run)
		}
		return rep, fmt.Errorf("%w: %s", ErrExpectationFailed, strings.Join(names, ", "))
	}

	a.logger.Debug("App.Run method finished.")
	return rep, nil
}

// jobs resolves the configured input into runnable jobs.
func (a *App) jobs(ctx context.Context) ([]job, string, error) {
	if a.config.InputPath != "" {
		seq, err := instruction.ParseFile(a.config.InputPath)
		if err != nil {
			return nil, "", err
		}
		a.logger.Info("Instructions loaded.", "path", a.config.InputPath, "count", len(seq))

		jobs := make([]job, 0, len(a.config.Backends))
		for _, kind := range a.config.Backends {
			jobs = append(jobs, job{name: string(kind), kind: kind, shards: a.config.Shards, seq: seq})
		}
		return jobs, a.config.InputPath, nil
	}

	p, err := plan.Load(ctx, a.config.PlanPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load plan: %w", err)
	}
	a.logger.Info("Plan loaded.", "path", a.config.PlanPath, "runs", len(p.Runs), "inline_instructions", len(p.Instructions))

	jobs := make([]job, 0, len(p.Runs))
	for _, r := range p.Runs {
		seq, err := p.Sequence(r)
		if err != nil {
			return nil, "", err
		}
		shards := r.Shards
		if shards == 0 {
			shards = a.config.Shards
		}
		jobs = append(jobs, job{name: r.Name, kind: r.Backend, shards: shards, expect: r.Expect, seq: seq})
	}
	return jobs, a.config.PlanPath, nil
}

// execute runs a single job and converts its result into a report outcome.
func (a *App) execute(ctx context.Context, j job) (report.Outcome, error) {
	ctx, logger := ctxlog.With(ctx, "run", j.name, "backend", j.kind)
	logger.Debug("Run starting.", "instructions", len(j.seq), "shards", j.shards)

	res, err := shard.Run(ctx, j.kind, j.seq, shard.Options{Shards: j.shards, Workers: a.config.Workers})
	if err != nil {
		return report.Outcome{}, fmt.Errorf("run %q failed: %w", j.name, err)
	}

	outcome := report.Outcome{
		Run:          j.name,
		Backend:      string(j.kind),
		Instructions: len(j.seq),
		Shards:       max(1, len(res.Bands)),
		Magnitude:    res.Magnitude,
		Expect:       j.expect,
		Passed:       j.expect == nil || *j.expect == res.Magnitude,
		Elapsed:      res.Duration.String(),
	}

	if outcome.Passed {
		logger.Info("Run finished.", "magnitude", res.Magnitude, "elapsed", res.Duration)
	} else {
		logger.Error("Run magnitude does not match expectation.", "magnitude", res.Magnitude, "expect", *j.expect)
	}
	return outcome, nil
}
