// Package config loads the decode service's YAML configuration.
//
// The file is optional: every field has a default suitable for running
// the service locally, and `inode-decode serve` without --config uses
// those defaults outright. Flag overrides are applied by the CLI after
// loading.
package config
