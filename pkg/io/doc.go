// Package io reads and writes indexed patch meshes.
//
// # Patch Format
//
// The .patch text format lists the patches first, then the distinct
// control points they index:
//
//	2
//	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15
//	3, 16, 17, 18, 7, 19, 20, 21, 11, 22, 23, 24, 15, 25, 26, 27
//	28
//	0.0, 0.0, 0.0
//	1.0, 0.0, 0.0
//	...
//
// The first line is the patch count, followed by one line of 16
// comma-separated indices per patch. The next line is the point count,
// followed by one "x, y, z" line per point in index order. Coordinates are
// written at full precision in their shortest round-trip decimal form; see
// [FormatCoord].
//
// Use [WritePatch] or [ExportPatch] to encode a mesh and [ReadPatch] or
// [ImportPatch] to decode one. [ExportPatch] never leaves a partially
// written file behind: the data goes to a temporary file in the target
// directory that is renamed into place once complete.
//
// # JSON Format
//
// [WriteJSON] and [ReadJSON] handle an equivalent JSON document:
//
//	{
//	  "patches": [[0, 1, 2, ...]],
//	  "points": [[0, 0, 0], [1, 0, 0], ...]
//	}
//
// # Concurrency
//
// All functions are safe to call concurrently as long as the mesh being
// written is not modified at the same time.
package io
