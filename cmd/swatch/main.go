// Package main provides the swatch CLI, a prototype-based color palette
// tool. A registry of named color prototypes is seeded on startup; commands
// fetch prototypes and clone them instead of constructing colors directly.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/swatch/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes user errors (bad key, bad backend name) from
// system errors (backend failed to open).
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrKeyNotFound),
		errors.Is(err, types.ErrDuplicateKey),
		errors.Is(err, types.ErrInvalidKey),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrBackendEmpty):
		return exitUserError
	default:
		return exitSysError
	}
}
