// Package layout pairs an open hypergraph with a grid of tiles. Each
// hyperedge sits in the column its caller placed it in; the editor
// operations refuse or drop generator-to-generator wires that would not
// flow strictly left to right, and every wire spanning more than one
// column carries pseudonode tiles on the columns it crosses. It exposes
// the editor-facing mutations: placing and
// moving generators, connecting and disconnecting ports, inserting and
// tidying columns, and looking up which port(s) a grid cell represents.
package layout
