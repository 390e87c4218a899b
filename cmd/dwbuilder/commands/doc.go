// Package commands defines the dwbuilder CLI: wall (domain walls from a
// unit cell), interface (bi-material heterostructures), supercell and
// vacuum helpers.
package commands
