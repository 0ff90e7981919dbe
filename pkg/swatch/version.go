// Package swatch holds module-level metadata shared by the CLI and tooling.
package swatch

// Version is the current swatch release.
var Version = "0.1.0"
