package driving

import (
	"context"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// ProjectService is the facade over the sheet-backed project database.
// Reads reload the whole sheet; writes replace it. Local copies are a
// best-effort cache, never incrementally reconciled.
type ProjectService interface {
	// List reloads every record from the projects sheet. Records
	// missing an identifier receive a fresh stable one, unique within
	// the read.
	List(ctx context.Context) ([]domain.Record, error)

	// ListProjects reloads the typed project views.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// SaveAll replaces the sheet contents with the given records.
	// An empty collection clears the sheet entirely.
	SaveAll(ctx context.Context, records []domain.Record) error

	// Create validates the project, assigns an identifier when absent
	// and appends it to the sheet.
	Create(ctx context.Context, project domain.Project) (domain.Project, error)

	// SetStatus updates one project's status by identifier and writes
	// the collection back.
	SetStatus(ctx context.Context, id, status string) error

	// AttachFolder records a Drive folder link on one project.
	AttachFolder(ctx context.Context, id, folderURL string) error
}
