package memory

import (
	"context"
	"sync"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Ensure Spreadsheet implements the interface.
var _ driven.SpreadsheetClient = (*Spreadsheet)(nil)

// Spreadsheet is an in-memory implementation of driven.SpreadsheetClient.
// It backs the offline/demo mode and service tests.
type Spreadsheet struct {
	mu    sync.RWMutex
	grids map[string][][]string
}

// NewSpreadsheet creates a new in-memory spreadsheet with no sheets.
func NewSpreadsheet() *Spreadsheet {
	return &Spreadsheet{
		grids: make(map[string][][]string),
	}
}

// Seed creates or replaces a sheet with the given grid.
func (s *Spreadsheet) Seed(sheet string, grid [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grids[sheet] = copyGrid(grid)
}

// ReadGrid fetches the named sheet's cells.
func (s *Spreadsheet) ReadGrid(_ context.Context, sheet string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grid, ok := s.grids[sheet]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyGrid(grid), nil
}

// WriteGrid replaces the named sheet's cells, creating the sheet when
// it does not exist yet. A nil grid leaves the sheet cleared.
func (s *Spreadsheet) WriteGrid(_ context.Context, sheet string, grid [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(grid) == 0 {
		s.grids[sheet] = [][]string{}
		return nil
	}
	s.grids[sheet] = copyGrid(grid)
	return nil
}

func copyGrid(grid [][]string) [][]string {
	if grid == nil {
		return nil
	}
	copied := make([][]string, len(grid))
	for i, row := range grid {
		copied[i] = append([]string(nil), row...)
	}
	return copied
}
