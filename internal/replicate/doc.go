// Package replicate implements the idempotent folder-tree replication engine.
//
// The engine copies a source folder tree into a destination folder and can be
// re-run safely: items that already exist in the destination by name are
// skipped, and top-level destination folders are recognized across renames
// through a small identity tag persisted inside each of them.
//
// The package is organized around four pieces:
//   - Storage: the narrow interface the engine needs from a storage backend
//     (implemented for Google Drive by the drive package)
//   - the identity tag store: reads and writes the _system/.meta.json sidecar
//     that binds a destination folder to the source it was copied from
//   - Replicator: reconciles one destination folder and recursively copies
//     the missing parts of the source tree into it
//   - Planner: resolves the configured source and destination folders, applies
//     the batch naming policy, and drives one replication per requested folder
//
// All traversal is strictly sequential and depth-first. The engine never
// deletes anything; failed runs leave already-copied items in place and a
// later run picks up the remainder.
package replicate
