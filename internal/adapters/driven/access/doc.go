// Package access provides the TOML-file-backed access directory.
//
// Roles and member assignments live in a file the back office
// maintains (by default ~/.senteng/access.toml). The directory
// resolves account emails to roles and page lists, defaulting unknown
// identities to guest. Watch streams change notifications driven by a
// filesystem watcher, so directory edits apply without a restart.
package access
