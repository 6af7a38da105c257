// Package areatracker is an interactive map of hand-authored polygon regions
// on which the user records links between regions by clicking them.
//
// The package is built around three cached rasters:
//
//   - a hit-test raster in which every region's pixels carry its id as a
//     color, so finding the region under the cursor is a single pixel read;
//   - the composed map, with each region filled from the [Palette] and
//     labeled with the name of the region it links to;
//   - the highlight, painted over the map as a delta when the region under
//     the cursor changes.
//
// A [LayerCache] tracks which rasters are stale and rebuilds them lazily in
// [Session.Present]. Edges shared by neighboring regions are erased from the
// hit-test raster so a click exactly on a border selects nothing.
//
// # Quick start
//
// Load a data directory and open a window with [Run]:
//
//	res, err := areatracker.LoadDir("MapData")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := areatracker.NewSession(res.Config, res.Regions, res.Palette)
//	areatracker.Run(s, areatracker.RunConfig{Title: "Area Tracker"})
//
// To drive a session without a window, call [Session.Move],
// [Session.Click], and [Session.Leave] with canvas-local coordinates and
// read the composed raster from [Session.Present].
//
// # Links
//
// Clicking an area and then another area links the two in both directions;
// clicking the same area twice removes its link along with the partner's
// link back. Clicking a boss region cycles its label through the Boss
// entries of the palette, ending with no label. Link changes are reported to
// an [EventSink]; the ECS adapter in areatracker/ecs publishes
// them into a [Donburi] world.
//
// # Data directory
//
// A data directory holds All.conf and one "<Group> <Name>.txt" file per
// region listing its "x,y" vertices. See [ParseConfig] and [ParseRegion].
// Bad records are skipped and reported in [LoadResult]; missing palette
// entries, font sizes, and colors are collected into a warning batch.
//
// [Donburi]: https://github.com/yohamta/donburi
package areatracker
