// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes the individual plan blocks (`locals`, `run` and
// `instruction`) into their Go representations.
//
// Why report hcl.Diagnostics instead of plain errors?
//
// Diagnostics carry the exact source range of the offending attribute or
// label, so a mistake in a large plan points the user at the right line. The
// loader only flattens them into an error at the file boundary.
package plan

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions are callable from any plan expression.
var functions = map[string]function.Function{
	"min": stdlib.MinFunc,
	"max": stdlib.MaxFunc,
}

// findUniqueBlock returns the single block of the given type, or nil if there
// is none. More than one is reported as an error.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks.OfType(name) {
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + name + "\" block",
				Detail:   "Only one \"" + name + "\" block is allowed per file.",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}

	return found, diags
}

// newEvalContext resolves every local and returns an evaluation context that
// exposes them as `local.<name>`. Locals may reference each other in any
// order; a reference cycle or a reference to an undeclared local is reported.
func newEvalContext(attrs []*hcl.Attribute) (*hcl.EvalContext, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	pending := make(map[string]*hcl.Attribute, len(attrs))
	for _, attr := range attrs {
		if prev, exists := pending[attr.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate local value",
				Detail:   fmt.Sprintf("A local named %q was already declared at %s.", attr.Name, prev.NameRange),
				Subject:  &attr.NameRange,
			})
			continue
		}
		pending[attr.Name] = attr
	}

	values := make(map[string]cty.Value, len(pending))
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: functions,
	}

	for len(pending) > 0 {
		names := make([]string, 0, len(pending))
		for name := range pending {
			names = append(names, name)
		}
		sort.Strings(names)

		progressed := false
		for _, name := range names {
			attr := pending[name]
			if !localsReady(attr.Expr, values, pending) {
				continue
			}
			evalCtx.Variables["local"] = cty.ObjectVal(values)
			val, valDiags := attr.Expr.Value(evalCtx)
			diags = append(diags, valDiags...)
			values[name] = val
			delete(pending, name)
			progressed = true
		}

		if !progressed {
			for _, name := range names {
				attr := pending[name]
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unresolvable local value",
					Detail:   fmt.Sprintf("Local %q depends on itself or on another unresolvable local.", name),
					Subject:  attr.Expr.Range().Ptr(),
				})
			}
			break
		}
	}

	evalCtx.Variables["local"] = cty.ObjectVal(values)
	return evalCtx, diags
}

// localsReady reports whether every `local.x` referenced by expr is already
// resolved. References to undeclared locals count as ready so that
// evaluation produces HCL's own "unsupported attribute" diagnostic.
func localsReady(expr hcl.Expression, resolved map[string]cty.Value, pending map[string]*hcl.Attribute) bool {
	for _, traversal := range expr.Variables() {
		if traversal.RootName() != "local" || len(traversal) < 2 {
			continue
		}
		step, ok := traversal[1].(hcl.TraverseAttr)
		if !ok {
			continue
		}
		if _, done := resolved[step.Name]; done {
			continue
		}
		if _, declared := pending[step.Name]; declared {
			return false
		}
	}
	return true
}

// hclRun is the decoding target for the body of a `run` block.
type hclRun struct {
	Backend string  `hcl:"backend"`
	Input   *string `hcl:"input,optional"`
	Shards  *int    `hcl:"shards,optional"`
	Expect  *int    `hcl:"expect,optional"`
}

// decodeRun decodes and validates a `run "<name>"` block.
func decodeRun(block *hcl.Block, evalCtx *hcl.EvalContext, source string) (*Run, hcl.Diagnostics) {
	var raw hclRun
	diags := gohcl.DecodeBody(block.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, diags
	}

	r := &Run{Name: block.Labels[0], Source: source}

	kind, err := lightgrid.ParseKind(raw.Backend)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid backend",
			Detail:   fmt.Sprintf("Run %q: %s. Valid backends are %q and %q.", r.Name, err, lightgrid.KindBinary, lightgrid.KindBrightness),
			Subject:  &block.DefRange,
		})
	}
	r.Backend = kind

	if raw.Input != nil {
		r.Input = resolveInput(*raw.Input, source)
	}
	if raw.Shards != nil {
		if *raw.Shards < 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid shard count",
				Detail:   fmt.Sprintf("Run %q: shards must be at least 1, got %d.", r.Name, *raw.Shards),
				Subject:  &block.DefRange,
			})
		}
		r.Shards = *raw.Shards
	}
	if raw.Expect != nil {
		if *raw.Expect < 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid expectation",
				Detail:   fmt.Sprintf("Run %q: a magnitude is never negative, got %d.", r.Name, *raw.Expect),
				Subject:  &block.DefRange,
			})
		}
		r.Expect = raw.Expect
	}

	return r, diags
}

// instructionSchema is the HCL schema for the body of an `instruction` block.
var instructionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from", Required: true},
		{Name: "to", Required: true},
	},
}

// decodeInstruction decodes an `instruction "<action>"` block.
func decodeInstruction(block *hcl.Block, evalCtx *hcl.EvalContext) (lightgrid.Instruction, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	action, err := lightgrid.ParseAction(block.Labels[0])
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid instruction action",
			Detail:   fmt.Sprintf("%s. Valid actions are \"on\", \"off\" and \"toggle\".", err),
			Subject:  &block.LabelRanges[0],
		})
	}

	content, contentDiags := block.Body.Content(instructionSchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return lightgrid.Instruction{}, diags
	}

	from, fromDiags := decodeCoord(content.Attributes["from"], evalCtx)
	diags = append(diags, fromDiags...)
	to, toDiags := decodeCoord(content.Attributes["to"], evalCtx)
	diags = append(diags, toDiags...)
	if diags.HasErrors() {
		return lightgrid.Instruction{}, diags
	}

	in := lightgrid.NewInstruction(action, from, to)
	if in.Rect.Empty() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Inverted instruction range",
			Detail:   fmt.Sprintf("The range %s is inverted; \"from\" must not exceed \"to\" on either axis.", in.Rect),
			Subject:  &block.DefRange,
		})
	}
	return in, diags
}

// coordType is the cty type every coordinate expression is converted to.
var coordType = cty.List(cty.Number)

// decodeCoord evaluates a [row, col] attribute into a Coord.
func decodeCoord(attr *hcl.Attribute, evalCtx *hcl.EvalContext) (lightgrid.Coord, hcl.Diagnostics) {
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid coordinate",
			Detail:   fmt.Sprintf("Attribute %q %s.", attr.Name, detail),
			Subject:  &attr.Range,
		}}
	}

	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return lightgrid.Coord{}, diags
	}

	val, err := convert.Convert(val, coordType)
	if err != nil {
		return lightgrid.Coord{}, invalid("must be a [row, col] list of numbers")
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return lightgrid.Coord{}, invalid("must not be null")
	}
	if val.LengthInt() != 2 {
		return lightgrid.Coord{}, invalid(fmt.Sprintf("must have exactly 2 elements, got %d", val.LengthInt()))
	}

	var parts []int
	if err := gocty.FromCtyValue(val, &parts); err != nil {
		return lightgrid.Coord{}, invalid("must contain whole numbers")
	}
	if parts[0] < 0 || parts[1] < 0 {
		return lightgrid.Coord{}, invalid("must not be negative")
	}
	return lightgrid.C(parts[0], parts[1]), nil
}
