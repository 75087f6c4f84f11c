package google

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// SheetsAdapter implements the SpreadsheetClient port against the
// Google Sheets v4 API. A sheet is read and written as a whole grid:
// writes clear the sheet first and then upload every row, so the last
// writer wins at sheet granularity.
type SheetsAdapter struct {
	boot          *Bootstrap
	spreadsheetID string
	limiter       *RateLimiter
}

var _ driven.SpreadsheetClient = (*SheetsAdapter)(nil)

// NewSheetsAdapter creates a Sheets adapter for one spreadsheet.
func NewSheetsAdapter(boot *Bootstrap, spreadsheetID string) *SheetsAdapter {
	return &SheetsAdapter{
		boot:          boot,
		spreadsheetID: spreadsheetID,
		limiter:       NewRateLimiter(ServiceSheets),
	}
}

// ReadGrid fetches every populated cell of the named sheet.
func (a *SheetsAdapter) ReadGrid(ctx context.Context, sheet string) ([][]string, error) {
	if a.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: sheets.spreadsheet_id", domain.ErrConfigMissing)
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := clients.Sheets.Spreadsheets.Values.Get(a.spreadsheetID, quoteSheet(sheet)).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	logger.Debug("sheets: read %d rows from %s", len(resp.Values), sheet)
	return gridFromValues(resp.Values), nil
}

// WriteGrid replaces the named sheet's contents with the given grid.
// An empty grid clears the sheet and writes nothing.
func (a *SheetsAdapter) WriteGrid(ctx context.Context, sheet string, grid [][]string) error {
	if a.spreadsheetID == "" {
		return fmt.Errorf("%w: sheets.spreadsheet_id", domain.ErrConfigMissing)
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return err
	}

	clear := sheets.BatchClearValuesRequest{
		Ranges: []string{quoteSheet(sheet)},
	}
	if _, err := clients.Sheets.Spreadsheets.Values.BatchClear(a.spreadsheetID, &clear).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}

	if len(grid) == 0 {
		logger.Debug("sheets: cleared %s", sheet)
		return nil
	}

	vr := sheets.ValueRange{
		Values: valuesFromGrid(grid),
	}
	_, err = clients.Sheets.Spreadsheets.Values.
		Update(a.spreadsheetID, quoteSheet(sheet)+"!A1", &vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return wrapError(err)
	}

	logger.Debug("sheets: wrote %d rows to %s", len(grid), sheet)
	return nil
}

// quoteSheet wraps a sheet name in single quotes for A1 notation.
// Embedded quotes are doubled per the Sheets grammar.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// gridFromValues converts the API's loosely-typed cells to strings.
func gridFromValues(values [][]interface{}) [][]string {
	if len(values) == 0 {
		return nil
	}

	grid := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				continue
			}
			if s, ok := cell.(string); ok {
				cells[j] = s
			} else {
				cells[j] = fmt.Sprint(cell)
			}
		}
		grid[i] = cells
	}
	return grid
}

// valuesFromGrid converts a string grid to the API's cell type.
func valuesFromGrid(grid [][]string) [][]interface{} {
	values := make([][]interface{}, len(grid))
	for i, row := range grid {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}
