// Package seed constructs the deterministic (up to the injected RNG)
// initial hypergraphs named in spec.md §4.4: Points, Line, Grid, Sphere,
// Complete, and Random. Each constructor returns a flat edge list,
// []Edge (ordered vertex-id tuples), plus the next free vertex id so
// callers can chain generators or append rule-driven initial edges on
// top of a seed.
//
// The package mirrors builder's functional-options config style
// (Config/Option, sentinel errors, a range-validated entry point per
// constructor) but targets this engine's []Edge representation instead
// of mutating a core.Graph, and draws randomness from rng.Source rather
// than a raw *rand.Rand so every generator shares the engine's single
// injectable RNG (spec.md §9).
package seed
