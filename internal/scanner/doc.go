// Package scanner enumerates filesystem objects under a root directory.
//
// It walks the tree using fastwalk for parallel traversal and collects one
// flat record per reachable file and directory. The scan is best-effort:
// per-entry errors are counted and skipped, never propagated.
package scanner
