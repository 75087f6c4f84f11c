package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProjectFromRecord_BudgetCoercion tests numeric coercion of the budget cell
func TestProjectFromRecord_BudgetCoercion(t *testing.T) {
	rec := NewRecord()
	rec.SetID("p-1")
	rec.Set(ColProjectName, "木質宅")
	rec.Set(ColProjectBudget, "1200000")

	project := ProjectFromRecord(rec)

	assert.Equal(t, "p-1", project.ID)
	assert.Equal(t, float64(1200000), project.Budget)
}

// TestProjectFromRecord_BadBudget tests that unparseable budgets read as zero
func TestProjectFromRecord_BadBudget(t *testing.T) {
	rec := NewRecord()
	rec.Set(ColProjectName, "木質宅")
	rec.Set(ColProjectBudget, "約一百萬")

	assert.Equal(t, float64(0), ProjectFromRecord(rec).Budget)
}

// TestProjectFromRecord_EmptyBudget tests that an empty budget reads as zero
func TestProjectFromRecord_EmptyBudget(t *testing.T) {
	rec := NewRecord()
	rec.Set(ColProjectName, "木質宅")

	assert.Equal(t, float64(0), ProjectFromRecord(rec).Budget)
}

// TestProject_ToRecord_ColumnOrder tests the canonical column layout
func TestProject_ToRecord_ColumnOrder(t *testing.T) {
	project := Project{
		ID:      "p-1",
		Name:    "木質宅",
		Client:  "林先生",
		Type:    "住宅",
		Budget:  1200000,
		DueDate: "2025-09-30",
		Status:  "進行中",
	}

	rec := project.ToRecord()

	assert.Equal(t, []string{
		RecordIDKey,
		ColProjectName,
		ColProjectClient,
		ColProjectType,
		ColProjectBudget,
		ColProjectDue,
		ColProjectStatus,
		ColProjectFolder,
	}, rec.Keys())
	assert.Equal(t, "1200000", rec.Get(ColProjectBudget))
}

// TestProject_RecordRoundTrip tests project→record→project fidelity
func TestProject_RecordRoundTrip(t *testing.T) {
	project := Project{
		ID:        "p-1",
		Name:      "木質宅",
		Client:    "林先生",
		Type:      "住宅",
		Budget:    1250000.5,
		DueDate:   "2025-09-30",
		Status:    "進行中",
		FolderURL: "https://drive.google.com/drive/folders/abc",
	}

	assert.Equal(t, project, ProjectFromRecord(project.ToRecord()))
}

// TestProject_Validate_RequiresName tests name validation
func TestProject_Validate_RequiresName(t *testing.T) {
	assert.NoError(t, Project{Name: "木質宅"}.Validate())

	err := Project{Name: "   "}.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
