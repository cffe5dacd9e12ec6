// Package cli implements the command-line interface for yield-notify.
//
// The cli package provides the Cobra-based CLI that resolves
// configuration, locates the build artifact, formats the caption, and
// hands delivery to a notifier. The run is a strict linear chain of
// pre-checks, build, send, report, terminating at the first failure.
package cli
