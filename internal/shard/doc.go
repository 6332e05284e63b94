// Package shard runs an instruction sequence in parallel by splitting the
// grid into disjoint row bands.
//
// # Why sharding is safe
//
// A cell's final state depends only on the ordered subsequence of
// instructions whose rectangle covers it. Each shard therefore replays the
// whole sequence, in order, with every rectangle clipped to the shard's band.
// Shards never share a backend and never communicate; the total magnitude is
// the sum of the per-shard magnitudes for both backend kinds.
//
// # How It Works
//
//  1. Bounds computes the smallest rectangle covering every instruction.
//  2. Bands splits that rectangle's rows into contiguous, disjoint bands.
//  3. Run feeds band indices to a fixed pool of workers managed by an
//     errgroup. Each worker owns a fresh backend per band.
//  4. The first failing worker (or a cancelled context) stops the others at
//     their next instruction boundary.
package shard
