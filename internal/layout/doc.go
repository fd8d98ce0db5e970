// Package layout describes the ordered set of relative output directories that
// the scaffolder materializes under a single root.
//
// Paths are slash-separated and relative to the working directory. Every path is
// either the root itself or lies beneath it, and parents are expected to appear
// before their children. Duplicates are tolerated because materializing a
// directory twice is a no-op.
package layout
