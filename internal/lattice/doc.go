// Package lattice implements the geometric core: basis transformations,
// supercell replication, domain stacking, junction pruning and lattice
// mismatch. All functions take and return explicit structure values; there
// is no shared state.
//
// Conventions
//
//   - Lattice cells are 3x3 matrices whose rows are the a, b, c vectors.
//   - Atomic positions are fractional and kept in [0, 1).
//   - A transformation matrix M produces the new cell M*L; Cartesian
//     positions are invariant under the change of basis.
package lattice
