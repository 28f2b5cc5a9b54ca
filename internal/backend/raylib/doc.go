// Package raylib registers the "raylib" backend when built with the raylib
// tag. Without the tag the package is empty and importing it is a no-op.
package raylib
