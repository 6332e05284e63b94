// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package plan loads light-grid plans written in HCL. A plan describes one or
// more runs and, optionally, an inline instruction sequence shared by every
// run.
//
// # Core Concepts
//
//   - Plan: the root container. It aggregates the runs and instructions of
//     every .hcl file found under the plan path, in lexical file order.
//
//   - Run: a single execution of the instruction sequence against one
//     backend kind, optionally sharded and optionally checked against an
//     expected magnitude.
//
//   - Instruction: an `instruction "<action>"` block with inclusive `from`
//     and `to` corners, each a two-element [row, col] list.
//
//   - Locals: values declared in `locals` blocks are visible to every
//     expression as `local.<name>` and may reference each other.
//
// # Example
//
//	locals {
//	  size = 999
//	}
//
//	run "part_two" {
//	  backend = "brightness"
//	  input   = "input.txt"
//	  shards  = 8
//	}
//
//	instruction "toggle" {
//	  from = [0, 0]
//	  to   = [local.size, local.size]
//	}
package plan
