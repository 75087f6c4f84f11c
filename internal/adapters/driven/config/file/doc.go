// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.senteng/config.toml
//
// The store reads and writes whole settings documents. Secret
// redaction and environment overrides are the settings service's
// concern, not the store's.
package file
