// Package config handles permly's own settings.
//
// Settings are layered with koanf, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the first existing user file among paths.ConfigFiles()
//     (config.toml, config.yaml, config.yml)
//  3. PERMLY_* environment variables, e.g. PERMLY_LOGGING_LEVEL=debug
//
// The merged result is validated with go-playground/validator. Settings only
// shape logging and output; the files permly appends to are fixed.
package config
