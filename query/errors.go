package query

import "errors"

// Sentinel errors for query operations.
var (
	// ErrVertexNotFound indicates a requested vertex never appears in
	// any live leaf edge.
	ErrVertexNotFound = errors.New("query: vertex not found")

	// ErrNoSphere indicates NSphere's requested radius has no members.
	ErrNoSphere = errors.New("query: no vertices at that radius")

	// ErrDisconnected indicates Geodesic/MinDistance found no path
	// between the requested vertices.
	ErrDisconnected = errors.New("query: vertices are disconnected")
)
