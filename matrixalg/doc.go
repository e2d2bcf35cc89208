// Package matrixalg provides the dense matrix type and the
// Sinkhorn-Knopp optimal-transport solver query.OllivierRicci needs,
// grounded on the teacher's matrix.Dense row-major layout and
// fail-fast validation style (matrix/dense.go, matrix/errors.go). The
// teacher's LU/QR/eigen/inverse kernels are intentionally not ported:
// transport-plan computation only ever needs matrix-vector products and
// elementwise scaling, so carrying decomposition code here would be
// dead weight (see DESIGN.md's retirement note for matrix/ops).
package matrixalg
