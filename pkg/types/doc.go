// Package types defines the Color prototype record, the Registry interface,
// the backend Config, and the standard error types for the swatch palette
// system. Backends under internal/ implement Registry; callers obtain a
// prototype with Get and clone it with ShallowCopy or DeepCopy.
package types
