// Package scaffold materializes an output layout on the filesystem.
//
// Each declared path is created one segment at a time so the first failing
// path can be reported precisely. Existing directories count as success, which
// makes repeated runs idempotent. Processing is sequential and stops at the
// first failure; nothing is retried.
package scaffold
