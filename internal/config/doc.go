// Package config resolves the editor's small settings surface — buffer
// and timeline block sizes, and an optional trace file path — by layering
// defaults, an optional TOML file, and environment variables, each
// overriding the last. Command-line flags are not handled here; cmd/ched
// applies its --trace flag on top of the result.
package config
