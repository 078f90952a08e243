// Package config manages user-level settings stored at ~/.clarinet/config.yaml.
// Settings seed the defaults of "clarinet new": whether telemetry is enabled
// in generated manifests and which optional directories are created.
package config
