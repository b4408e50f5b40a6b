// Package pkg provides the libraries behind ribpatch.
//
// # Overview
//
// ribpatch flattens a RIB scene into a bicubic patch mesh. The pkg directory
// is organized by stage:
//
//  1. [rib] - Scene interpreter (transform stack, patch directives)
//  2. [geom] - Points, 4x4 transforms, the transform stack, patches
//  3. [mesh] - Control point deduplication into an indexed mesh
//  4. [io] - .patch and JSON encoders, .patch decoder
//  5. [pipeline] - Orchestration (interpret → index → encode)
//
// # Architecture
//
//	scene.rib
//	    ↓
//	[rib] interpret directives, transform patches to the root frame
//	    ↓
//	[mesh] merge control points equal to 6 decimals
//	    ↓
//	[io] write scene.patch
//
// # Quick Start
//
//	patches, err := rib.ParseFile("teapot.rib")
//	if err != nil {
//	    return err
//	}
//	m := mesh.Build(patches)
//	return io.ExportPatch(m, "teapot.patch")
//
// # Supporting Packages
//
//   - [errors] - coded errors with input line numbers
//   - [observability] - stage hooks for logging and metrics
//   - [buildinfo] - version information set at link time
//
// [rib]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/rib
// [geom]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/geom
// [mesh]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/mesh
// [io]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ribpatch/pkg/buildinfo
package pkg
