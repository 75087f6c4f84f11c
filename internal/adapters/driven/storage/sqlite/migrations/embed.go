// Package migrations embeds the console database schema.
//
// Files are named NNN_description.up.sql and applied in order by the
// sqlite store at open time.
package migrations

import "embed"

// FS holds every migration compiled into the binary.
//
//go:embed *.sql
var FS embed.FS
