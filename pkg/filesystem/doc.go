// Package filesystem provides filesystem utility methods either not provided
// by the Go standard library or requiring platform-specific implementations,
// such as directory identity computation for cycle detection and atomic file
// writes.
package filesystem
