// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the senteng console. It lets AI assistants like Claude read the
// studio's project list and plan work on its calendar.
package mcp

import "errors"

// ErrMissingProjectService is returned when the project service is not provided.
var ErrMissingProjectService = errors.New("mcp: project service is required")
