// Package vasp reads and writes VASP POSCAR structure files. Only the
// vasp5 flavor (species names on line 6) is supported; the writer groups
// atoms by species and emits fractional coordinates.
package vasp
