// Package wall runs the domain-wall pipeline: catalog lookup, per-domain
// basis transformation, mismatch calculation, replication, stacking and
// junction pruning. An "ALL" request runs every wall type the family
// defines; each run is independent and failures never abort siblings.
package wall
