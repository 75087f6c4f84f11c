package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Project sheet columns as they appear in the header row.
// RecordIDKey carries the identifier.
const (
	ColProjectName   = "name"
	ColProjectClient = "client"
	ColProjectType   = "type"
	ColProjectBudget = "budget"
	ColProjectDue    = "dueDate"
	ColProjectStatus = "status"
	ColProjectFolder = "folderUrl"
)

// Project is a typed view over a project Record.
// The sheet remains the source of truth; Project exists so surfaces
// can render and validate fields without string lookups.
type Project struct {
	// ID is the stable identifier (UUID), stored as a normal column.
	ID string `json:"id"`

	// Name is the project name.
	Name string `json:"name"`

	// Client is the client's name.
	Client string `json:"client,omitempty"`

	// Type labels the engagement, e.g. "住宅" or "商業空間".
	Type string `json:"type,omitempty"`

	// Budget is the project budget. Coerced from the sheet's string
	// cell; unparseable input reads as zero.
	Budget float64 `json:"budget,omitempty"`

	// DueDate is the delivery date in YYYY-MM-DD form.
	DueDate string `json:"due_date,omitempty"`

	// Status is free text, e.g. "進行中" or "已完工".
	Status string `json:"status,omitempty"`

	// FolderURL links the project's Drive folder.
	FolderURL string `json:"folder_url,omitempty"`
}

// ProjectFromRecord builds the typed view of a record.
func ProjectFromRecord(rec Record) Project {
	budget, _ := strconv.ParseFloat(strings.TrimSpace(rec.Get(ColProjectBudget)), 64)
	return Project{
		ID:        rec.ID(),
		Name:      rec.Get(ColProjectName),
		Client:    rec.Get(ColProjectClient),
		Type:      rec.Get(ColProjectType),
		Budget:    budget,
		DueDate:   rec.Get(ColProjectDue),
		Status:    rec.Get(ColProjectStatus),
		FolderURL: rec.Get(ColProjectFolder),
	}
}

// ToRecord renders the project back into a record with the canonical
// column order.
func (p Project) ToRecord() Record {
	rec := NewRecord()
	rec.SetID(p.ID)
	rec.Set(ColProjectName, p.Name)
	rec.Set(ColProjectClient, p.Client)
	rec.Set(ColProjectType, p.Type)
	rec.Set(ColProjectBudget, strconv.FormatFloat(p.Budget, 'f', -1, 64))
	rec.Set(ColProjectDue, p.DueDate)
	rec.Set(ColProjectStatus, p.Status)
	rec.Set(ColProjectFolder, p.FolderURL)
	return rec
}

// Validate checks the fields required before a project is stored.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	return nil
}
