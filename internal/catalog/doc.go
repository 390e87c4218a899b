// Package catalog holds the static table of orientation relationships:
// for each (crystal family, wall type) pair, the two per-domain cut
// matrices and the stacking axis. Wall thickness is not baked into the
// matrices; replication along the stacking axis applies it.
package catalog
