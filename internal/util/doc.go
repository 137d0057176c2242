// Package util contains small internal helpers shared across AgentCrew
// packages: identifier generation and text rendering of opaque worker
// results.
package util
