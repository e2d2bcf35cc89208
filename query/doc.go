// Package query answers spatial and causal questions over a finished
// (or in-progress) run's dagstore.Store: spatial neighborhoods and
// geodesics over the leaf-edge multigraph, causal hypersurfaces and
// light cones over the event DAG, and Ollivier-Ricci curvature via
// optimal transport.
//
// Spatial is grounded on bfs.BFSResult's Order/Depth/Parent shape
// (bfs/types.go) and dfs's visited-set idiom for the underlying
// adjacency walk, generalized from core.Graph's string vertex ids to
// the engine's dense integer vertex ids. Causal is grounded on
// dagstore's own bitset-backed past-cone representation.
package query
