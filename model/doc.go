// Package model provides the types a decoded coordinate table is turned into.
//
// A decode runs in two passes. The first pass turns table rows into [Point]
// values with [PointFromCells], silently dropping any row that does not
// describe a point. The second pass computes the [Bounds] of the accepted
// points and materializes a dense [Grid]:
//
//	var points []model.Point
//	for _, cells := range rows {
//	    if p, ok := model.PointFromCells(cells); ok {
//	        points = append(points, p)
//	    }
//	}
//	g := model.NewGrid(points, model.DefaultFill)
//	for _, line := range g.Lines() {
//	    fmt.Println(line)
//	}
//
// # Coordinates
//
// Coordinates are arbitrary integers, negative values included. The grid
// normalizes them so that the cell at row 0, column 0 corresponds to
// (MinX, MinY) of the bounds. Rows grow with Y, so the smallest Y is printed
// first.
//
// # Labels
//
// A label is written into its cell verbatim. Labels longer than one
// character are not truncated, so a row containing them renders wider than
// the grid width; [Grid.DisplayWidth] reports the rendered width.
package model
