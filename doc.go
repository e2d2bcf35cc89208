// Package hyperrewrite is a Wolfram-Physics-style hypergraph rewriting
// engine: run a rule script against a seeded hypergraph and walk the
// resulting multiway evolution DAG.
//
// What is hyperrewrite?
//
//	A dependency-injected, context-aware engine that brings together:
//
//	  - Core primitives: an arena-backed token/event DAG with causal
//	    separation queries (dagstore)
//	  - A rule/command script language: rewrite rules, negative
//	    patterns, branch selectors, seed generators (rulelang, seed)
//	  - A macro-step scheduler with configurable branch tracking,
//	    deduplication, and path-count/branchial-coordinate bookkeeping
//	    (schedule, post)
//	  - Spatial and causal queries, including Ollivier-Ricci curvature
//	    over the evolving hypergraph (query)
//
// Under the hood, everything is organized under focused subpackages:
//
//	dagstore/    — token/event arena, causal separation, past-cones
//	rulelang/    — lexer, parser, and compiler for the rule script
//	seed/        — points/line/grid/sphere/complete/random generators
//	stateindex/  — exact and wildcard leaf indices
//	match/       — pattern matcher over the leaf index
//	schedule/    — macro-step rewrite scheduler
//	post/        — dedup, merge, neg re-check, path counts, branchial bc
//	query/       — spatial/causal queries and Ollivier-Ricci curvature
//	engine/      — the Run entry point that wires all of the above
//
// Start with engine.Run: it parses a script, assembles its seed
// hypergraph, and drives the scheduler to completion, returning a
// Handle into the resulting multiway DAG.
package hyperrewrite
