// Package tombolos implements the HTTP static gateway behind the Tombolos
// web map: a single-page application exploring tombolos and their
// vulnerability to sea level rise.
//
// The gateway translates a fixed route table into reads from a read-only
// static asset tree. There is no persistence and no request state; every
// request is an independent file read or a fixed JSON response.
//
// # Key Components
//
//   - Gateway: resolves request paths to assets, applying the index and
//     favicon fallbacks
//   - AssetStore: interface over the physical asset tree (see the filesystem
//     package for the os.Root-backed implementation)
//   - NamedRoutes: the table of explicit per-file routes with their declared
//     media types
//
// See the http package for the router and handlers, and cmd/tombolos for the
// server binary.
package tombolos
