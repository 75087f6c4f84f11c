package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// DefaultProjectsSheet is the sheet (tab) holding the project rows.
const DefaultProjectsSheet = "Projects"

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService is the facade over the sheet-backed project database.
//
// Writes replace the whole sheet. There is no optimistic-concurrency
// check: the console assumes at most one writer at a time, and a
// create racing a reload is last-write-wins.
type ProjectService struct {
	sheets driven.SpreadsheetClient
	sheet  string
}

// NewProjectService creates a new project service reading and writing
// the named sheet. An empty sheet name falls back to
// DefaultProjectsSheet.
func NewProjectService(sheets driven.SpreadsheetClient, sheet string) *ProjectService {
	if sheet == "" {
		sheet = DefaultProjectsSheet
	}
	return &ProjectService{
		sheets: sheets,
		sheet:  sheet,
	}
}

// List reloads every record from the projects sheet.
// Records missing an identifier receive a freshly generated UUID; the
// identifier becomes durable on the next write.
func (s *ProjectService) List(ctx context.Context) ([]domain.Record, error) {
	if s.sheets == nil {
		return nil, domain.ErrNotImplemented
	}
	grid, err := s.sheets.ReadGrid(ctx, s.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}
	records := domain.RecordsFromGrid(grid)
	for i := range records {
		if records[i].ID() == "" {
			records[i].SetID(uuid.New().String())
		}
	}
	return records, nil
}

// ListProjects reloads the typed project views.
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, domain.ProjectFromRecord(rec))
	}
	return projects, nil
}

// SaveAll replaces the sheet contents with the given records.
// An empty collection clears the sheet entirely.
func (s *ProjectService) SaveAll(ctx context.Context, records []domain.Record) error {
	if s.sheets == nil {
		return domain.ErrNotImplemented
	}
	grid := domain.GridFromRecords(records)
	if err := s.sheets.WriteGrid(ctx, s.sheet, grid); err != nil {
		return fmt.Errorf("write sheet %q: %w", s.sheet, err)
	}
	return nil
}

// Create validates the project, assigns an identifier when absent and
// appends it to the sheet.
func (s *ProjectService) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	if s.sheets == nil {
		return domain.Project{}, domain.ErrNotImplemented
	}
	if err := project.Validate(); err != nil {
		return domain.Project{}, err
	}
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	records, err := s.List(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	records = append(records, project.ToRecord())
	if err := s.SaveAll(ctx, records); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// SetStatus updates one project's status by identifier.
func (s *ProjectService) SetStatus(ctx context.Context, id, status string) error {
	return s.updateField(ctx, id, domain.ColProjectStatus, status)
}

// AttachFolder records a Drive folder link on one project.
func (s *ProjectService) AttachFolder(ctx context.Context, id, folderURL string) error {
	return s.updateField(ctx, id, domain.ColProjectFolder, folderURL)
}

func (s *ProjectService) updateField(ctx context.Context, id, key, value string) error {
	if s.sheets == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}

	records, err := s.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range records {
		if records[i].ID() == id {
			records[i].Set(key, value)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return s.SaveAll(ctx, records)
}
