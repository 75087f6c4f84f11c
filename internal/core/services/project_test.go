package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/storage/memory"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

func seedProjectsSheet(t *testing.T) *memory.Spreadsheet {
	t.Helper()
	sheet := memory.NewSpreadsheet()
	sheet.Seed(DefaultProjectsSheet, [][]string{
		{"id", "projectName", "client", "status"},
		{"", "木質宅", "陳先生", "進行中"},
		{"p-2", "信義辦公室", "台安科技", "丈量"},
		{"", "老屋翻新", "林小姐", "報價中"},
	})
	return sheet
}

func TestNewProjectService_DefaultSheet(t *testing.T) {
	service := NewProjectService(memory.NewSpreadsheet(), "")
	assert.Equal(t, DefaultProjectsSheet, service.sheet)
}

func TestProjectService_List_AssignsMissingIdentifiers(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")

	records, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	seen := make(map[string]bool)
	for _, record := range records {
		id := record.ID()
		assert.NotEmpty(t, id, "every row gains an identifier")
		assert.False(t, seen[id], "identifiers are unique")
		seen[id] = true
	}

	// A pre-existing identifier survives untouched.
	assert.Equal(t, "p-2", records[1].ID())
}

func TestProjectService_List_HeaderOnly(t *testing.T) {
	sheet := memory.NewSpreadsheet()
	sheet.Seed(DefaultProjectsSheet, [][]string{{"id", "projectName"}})
	service := NewProjectService(sheet, "")

	records, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProjectService_List_NoClient(t *testing.T) {
	service := NewProjectService(nil, "")

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestProjectService_SaveAll_RoundTrip(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	records, err := service.List(ctx)
	require.NoError(t, err)

	require.NoError(t, service.SaveAll(ctx, records))

	reread, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, reread, len(records))
	for i, record := range records {
		assert.Equal(t, record.ID(), reread[i].ID())
		name := record.Get(domain.ColProjectName)
		rereadName := reread[i].Get(domain.ColProjectName)
		assert.Equal(t, name, rereadName)
	}
}

func TestProjectService_SaveAll_EmptyClearsSheet(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	require.NoError(t, service.SaveAll(ctx, nil))

	records, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "saving an empty set clears every row")
}

func TestProjectService_Create_AppendsRow(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	created, err := service.Create(ctx, domain.Project{
		Name:   "南港住宅",
		Client: "吳太太",
		Type:   "住宅",
		Budget: 1800000,
		Status: "洽談中",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)

	last := records[len(records)-1]
	assert.Equal(t, created.ID, last.ID())
	name := last.Get(domain.ColProjectName)
	assert.Equal(t, "南港住宅", name)
	budget := last.Get(domain.ColProjectBudget)
	assert.Equal(t, "1800000", budget)
}

func TestProjectService_Create_RequiresName(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	_, err := service.Create(ctx, domain.Project{Client: "陳先生"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	records, listErr := service.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, records, 3, "invalid input must not touch the sheet")
}

func TestProjectService_SetStatus(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	require.NoError(t, service.SetStatus(ctx, "p-2", "施工中"))

	projects, err := service.ListProjects(ctx)
	require.NoError(t, err)
	for _, project := range projects {
		if project.ID == "p-2" {
			assert.Equal(t, "施工中", project.Status)
			return
		}
	}
	t.Fatal("project p-2 not found after update")
}

func TestProjectService_SetStatus_NotFound(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")

	err := service.SetStatus(context.Background(), "missing", "完工")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_SetStatus_EmptyID(t *testing.T) {
	service := NewProjectService(seedProjectsSheet(t), "")

	err := service.SetStatus(context.Background(), "", "完工")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectService_AttachFolder(t *testing.T) {
	sheet := seedProjectsSheet(t)
	service := NewProjectService(sheet, "")
	ctx := context.Background()

	url := "https://drive.google.com/drive/folders/abc123"
	require.NoError(t, service.AttachFolder(ctx, "p-2", url))

	projects, err := service.ListProjects(ctx)
	require.NoError(t, err)
	for _, project := range projects {
		if project.ID == "p-2" {
			assert.Equal(t, url, project.FolderURL)
			return
		}
	}
	t.Fatal("project p-2 not found after update")
}

func TestProjectService_ListProjects_CoercesBudget(t *testing.T) {
	sheet := memory.NewSpreadsheet()
	sheet.Seed(DefaultProjectsSheet, [][]string{
		{"id", "projectName", "budget"},
		{"p-1", "木質宅", "2500000"},
		{"p-2", "老屋翻新", "約一百萬"},
	})
	service := NewProjectService(sheet, "")

	projects, err := service.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, float64(2500000), projects[0].Budget)
	assert.Zero(t, projects[1].Budget, "unparseable budget coerces to zero")
}
