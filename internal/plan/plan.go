// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Plan and Run structures and the loader that
// aggregates every .hcl file under a plan path into a single Plan.
package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lightgrid/internal/ctxlog"
	"github.com/specialistvlad/lightgrid/internal/fsutil"
	"github.com/specialistvlad/lightgrid/internal/instruction"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
)

// Plan is the aggregated content of every plan file under a path.
type Plan struct {
	Runs         []*Run
	Instructions []lightgrid.Instruction
	Files        []string
}

// Run is a single configured execution.
type Run struct {
	Name    string
	Backend lightgrid.Kind
	// Input is the resolved path of a text instruction file, or "".
	Input string
	// Shards is the requested number of row bands; 0 defers to the caller.
	Shards int
	// Expect, when set, is the magnitude the run must produce.
	Expect *int
	// Source is the plan file that declared the run.
	Source string
}

// Sequence returns the instructions for r: those read from its input file
// followed by the plan's inline instructions.
func (p *Plan) Sequence(r *Run) ([]lightgrid.Instruction, error) {
	var seq []lightgrid.Instruction
	if r.Input != "" {
		fromFile, err := instruction.ParseFile(r.Input)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", r.Name, err)
		}
		seq = append(seq, fromFile...)
	}
	return append(seq, p.Instructions...), nil
}

// rootSchema lists the top-level blocks a plan file may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "locals"},
		{Type: "run", LabelNames: []string{"name"}},
		{Type: "instruction", LabelNames: []string{"action"}},
	},
}

// parsedFile holds the raw blocks of one file between the two load passes.
type parsedFile struct {
	path    string
	content *hcl.BodyContent
}

// Load finds and parses every .hcl file under path into a Plan.
//
// Loading happens in two passes: the first collects and resolves `locals`
// across all files, the second decodes `run` and `instruction` blocks with
// those locals in scope.
func Load(ctx context.Context, path string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading plan from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find plan files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found in %s", path)
	}

	parser := hclparse.NewParser()
	parsed := make([]parsedFile, 0, len(files))
	var localAttrs []*hcl.Attribute

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		localsBlock, diags := findUniqueBlock(content.Blocks, "locals")
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid plan file %s: %w", file, diags)
		}
		if localsBlock != nil {
			attrs, diags := localsBlock.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid locals in %s: %w", file, diags)
			}
			for _, attr := range attrs {
				localAttrs = append(localAttrs, attr)
			}
		}
		parsed = append(parsed, parsedFile{path: file, content: content})
	}

	evalCtx, diags := newEvalContext(localAttrs)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to resolve locals: %w", diags)
	}
	logger.Debug("Locals resolved.", "count", len(localAttrs))

	p := &Plan{Files: files}
	seen := make(map[string]*Run)
	for _, pf := range parsed {
		for _, block := range pf.content.Blocks {
			switch block.Type {
			case "run":
				r, diags := decodeRun(block, evalCtx, pf.path)
				if diags.HasErrors() {
					return nil, fmt.Errorf("invalid run in %s: %w", pf.path, diags)
				}
				if prev, ok := seen[r.Name]; ok {
					return nil, fmt.Errorf("%s: duplicate run %q, first declared in %s", block.DefRange, r.Name, prev.Source)
				}
				seen[r.Name] = r
				p.Runs = append(p.Runs, r)
			case "instruction":
				in, diags := decodeInstruction(block, evalCtx)
				if diags.HasErrors() {
					return nil, fmt.Errorf("invalid instruction in %s: %w", pf.path, diags)
				}
				p.Instructions = append(p.Instructions, in)
			}
		}
	}

	logger.Debug("Plan loaded.", "files", len(files), "runs", len(p.Runs), "instructions", len(p.Instructions))
	return p, nil
}

// resolveInput makes a run's input path relative to the plan file that
// declared it.
func resolveInput(input, source string) string {
	if input == "" || filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(filepath.Dir(source), input)
}
