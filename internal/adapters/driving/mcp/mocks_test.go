package mcp

import (
	"context"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// mockProjectService is a mock implementation of driving.ProjectService.
type mockProjectService struct {
	records  []domain.Record
	projects []domain.Project
	created  domain.Project
	err      error
}

func (m *mockProjectService) List(_ context.Context) ([]domain.Record, error) {
	return m.records, m.err
}

func (m *mockProjectService) ListProjects(_ context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectService) SaveAll(_ context.Context, _ []domain.Record) error {
	return m.err
}

func (m *mockProjectService) Create(_ context.Context, project domain.Project) (domain.Project, error) {
	if m.err != nil {
		return domain.Project{}, m.err
	}
	if m.created.ID != "" {
		return m.created, nil
	}
	project.ID = "generated-id"
	return project, nil
}

func (m *mockProjectService) SetStatus(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockProjectService) AttachFolder(_ context.Context, _, _ string) error {
	return m.err
}

// mockScheduleService is a mock implementation of driving.ScheduleService.
type mockScheduleService struct {
	planned domain.ScheduleEvent
	events  []domain.ScheduleEvent
	lastRef time.Time
	err     error
}

func (m *mockScheduleService) Plan(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	if m.err != nil {
		return domain.ScheduleEvent{}, m.err
	}
	if m.planned.ID != "" {
		return m.planned, nil
	}
	event.ID = "generated-event-id"
	return event, nil
}

func (m *mockScheduleService) Month(_ context.Context, ref time.Time) ([]domain.ScheduleEvent, error) {
	m.lastRef = ref
	return m.events, m.err
}

// mockStorageService is a mock implementation of driving.StorageService.
type mockStorageService struct {
	folder domain.FolderRef
	upload domain.UploadResult
	err    error
}

func (m *mockStorageService) CreateFolder(_ context.Context, name string) (domain.FolderRef, error) {
	if m.err != nil {
		return domain.FolderRef{}, m.err
	}
	if m.folder.ID != "" {
		return m.folder, nil
	}
	return domain.FolderRef{ID: "folder-id", Name: name}, nil
}

func (m *mockStorageService) Upload(_ context.Context, _, _ string, _ []byte, _ string) (domain.UploadResult, error) {
	return m.upload, m.err
}

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	session *domain.Session
	access  domain.AccessProfile
	err     error
}

func (m *mockSessionService) Initialize(_ context.Context) bool {
	return m.session != nil
}

func (m *mockSessionService) SignIn(_ context.Context) (*domain.Session, error) {
	return m.session, m.err
}

func (m *mockSessionService) SignOut(_ context.Context) error {
	return m.err
}

func (m *mockSessionService) Current() (*domain.Session, error) {
	if m.session == nil {
		return nil, domain.ErrAuthRequired
	}
	return m.session, nil
}

func (m *mockSessionService) Access(_ context.Context) (domain.AccessProfile, error) {
	return m.access, m.err
}
