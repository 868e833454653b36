// Package config holds the engine's tunables and their documented
// defaults.
//
// Configuration is resolved per invocation: built-in defaults, then an
// optional project config file (.pilot.toml or .pilot.yaml at the
// project root), then command-line flags. Nothing is persisted between
// runs.
package config
