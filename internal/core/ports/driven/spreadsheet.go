package driven

import "context"

// SpreadsheetClient reads and replaces whole sheet ranges.
// The console treats one spreadsheet as its project database; the
// mapping between grids and records lives in the domain package.
type SpreadsheetClient interface {
	// ReadGrid fetches the named sheet's used range as rows of cells.
	// Cells arrive as their display strings; a missing sheet returns
	// domain.ErrNotFound.
	ReadGrid(ctx context.Context, sheet string) ([][]string, error)

	// WriteGrid clears the named sheet and writes the grid in its
	// place. A nil or empty grid clears the sheet and writes nothing.
	//
	// This is a whole-sheet replace with no concurrency check: the
	// console assumes at most one writer at a time, and concurrent
	// writers can silently clobber each other.
	WriteGrid(ctx context.Context, sheet string, grid [][]string) error
}
