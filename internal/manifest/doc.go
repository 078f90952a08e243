// Package manifest decodes the configuration files of a Clarinet project:
// the Clarinet.toml project manifest, the per-network settings files and
// the editor settings under .vscode. TOML files are decoded into typed
// structs; JSON files are checked against embedded JSON Schemas.
package manifest
