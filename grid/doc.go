// Package grid provides a 2-D placement structure for variable-height
// tiles: a mapping from tile identity to position V2(x, y), a per-tile
// height h >= 1, and the bookkeeping layering needs to render a DAG without
// overlapping tiles.
//
// A tile occupies the cells (x, y) .. (x, y + h - 1): height extends
// downward within a single column, never sideways. Placing a tile that
// would overlap another shifts the overlapping tile (and anything below it
// in the same column) downward by the minimum amount needed to open space,
// per spec §3 ("Grid"); a tile that starts above the new position and
// extends over it stays put, and the new tile lands just below it.
//
// Grid is generic over the tile identity type T so that both hypergraph
// edges and pseudonodes (layout's two tile kinds) can share one
// implementation without an interface-boxing tax.
package grid
