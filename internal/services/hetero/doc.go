// Package hetero joins two different bulk phases at a shared interface:
// each phase is cut along user-supplied lattice directions, the slabs are
// stacked along a chosen axis, the junction is pruned and the lattice and
// angular mismatch between the phases is reported.
package hetero
