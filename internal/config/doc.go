// Package config loads shelf's startup configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	seed_path = "~/.config/shelf/seed.yaml"
//	log_path = "~/.local/state/shelf/shelf.log"
//	start_app = "films"   # or "people"
//
// All fields are optional. Tilde expansion is performed on paths.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and unknown start_app values. A missing
// file is not an error.
package config
