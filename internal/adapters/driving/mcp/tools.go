package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// ListProjectsInput is the input schema for the list_projects tool.
type ListProjectsInput struct {
	Status string `json:"status,omitempty" jsonschema:"only return projects with this status"`
}

// ListProjectsOutput is the output schema for the list_projects tool.
type ListProjectsOutput struct {
	Projects []ProjectOutput `json:"projects"`
	Count    int             `json:"count"`
}

// ProjectOutput represents a single project row.
type ProjectOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Client    string  `json:"client,omitempty"`
	Type      string  `json:"type,omitempty"`
	Budget    float64 `json:"budget,omitempty"`
	DueDate   string  `json:"due_date,omitempty"`
	Status    string  `json:"status,omitempty"`
	FolderURL string  `json:"folder_url,omitempty"`
}

// CreateProjectInput is the input schema for the create_project tool.
type CreateProjectInput struct {
	Name    string  `json:"name" jsonschema:"the project name"`
	Client  string  `json:"client,omitempty" jsonschema:"the client name"`
	Type    string  `json:"type,omitempty" jsonschema:"the engagement type"`
	Budget  float64 `json:"budget,omitempty" jsonschema:"the project budget"`
	DueDate string  `json:"due_date,omitempty" jsonschema:"delivery date in YYYY-MM-DD form"`
	Status  string  `json:"status,omitempty" jsonschema:"initial status"`
}

// PlanEventInput is the input schema for the plan_event tool.
type PlanEventInput struct {
	Title       string `json:"title" jsonschema:"the appointment title"`
	Date        string `json:"date" jsonschema:"appointment date in YYYY-MM-DD form"`
	Time        string `json:"time,omitempty" jsonschema:"start time in HH:MM form, studio default when omitted"`
	Location    string `json:"location,omitempty" jsonschema:"the appointment location"`
	Description string `json:"description,omitempty" jsonschema:"free-text notes"`
}

// EventOutput represents a single calendar appointment.
type EventOutput struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

// MonthScheduleInput is the input schema for the month_schedule tool.
type MonthScheduleInput struct {
	Month string `json:"month,omitempty" jsonschema:"calendar month in YYYY-MM form, current month when omitted"`
}

// MonthScheduleOutput is the output schema for the month_schedule tool.
type MonthScheduleOutput struct {
	Month  string        `json:"month"`
	Events []EventOutput `json:"events"`
	Count  int           `json:"count"`
}

// CreateFolderInput is the input schema for the create_folder tool.
type CreateFolderInput struct {
	Name string `json:"name" jsonschema:"the project name the folder is for"`
}

// CreateFolderOutput is the output schema for the create_folder tool.
type CreateFolderOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List the studio's projects from the project sheet",
	}, s.handleListProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Add a project to the studio's project sheet",
	}, s.handleCreateProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "plan_event",
		Description: "Plan a one-hour appointment on the studio calendar",
	}, s.handlePlanEvent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "month_schedule",
		Description: "List one month's appointments from the studio calendar",
	}, s.handleMonthSchedule)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_folder",
		Description: "Create a project folder on the studio Drive",
	}, s.handleCreateFolder)
}

// handleListProjects handles the list_projects tool invocation.
func (s *Server) handleListProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListProjectsInput,
) (*mcp.CallToolResult, ListProjectsOutput, error) {
	projects, err := s.ports.Project.ListProjects(ctx)
	if err != nil {
		return nil, ListProjectsOutput{}, err
	}

	output := ListProjectsOutput{Projects: []ProjectOutput{}}
	for i := range projects {
		if input.Status != "" && projects[i].Status != input.Status {
			continue
		}
		output.Projects = append(output.Projects, projectOutput(projects[i]))
	}
	output.Count = len(output.Projects)

	return nil, output, nil
}

// handleCreateProject handles the create_project tool invocation.
func (s *Server) handleCreateProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateProjectInput,
) (*mcp.CallToolResult, ProjectOutput, error) {
	project := domain.Project{
		Name:    input.Name,
		Client:  input.Client,
		Type:    input.Type,
		Budget:  input.Budget,
		DueDate: input.DueDate,
		Status:  input.Status,
	}

	created, err := s.ports.Project.Create(ctx, project)
	if err != nil {
		return nil, ProjectOutput{}, err
	}

	return nil, projectOutput(created), nil
}

// handlePlanEvent handles the plan_event tool invocation.
func (s *Server) handlePlanEvent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlanEventInput,
) (*mcp.CallToolResult, EventOutput, error) {
	if s.ports.Schedule == nil {
		return nil, EventOutput{}, errors.New("schedule service not available")
	}

	event := domain.ScheduleEvent{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Description: input.Description,
	}

	created, err := s.ports.Schedule.Plan(ctx, event)
	if err != nil {
		return nil, EventOutput{}, err
	}

	return nil, eventOutput(created), nil
}

// handleMonthSchedule handles the month_schedule tool invocation.
func (s *Server) handleMonthSchedule(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MonthScheduleInput,
) (*mcp.CallToolResult, MonthScheduleOutput, error) {
	if s.ports.Schedule == nil {
		return nil, MonthScheduleOutput{}, errors.New("schedule service not available")
	}

	ref := time.Now()
	if input.Month != "" {
		parsed, err := time.Parse("2006-01", input.Month)
		if err != nil {
			return nil, MonthScheduleOutput{}, fmt.Errorf("invalid month %q, expected YYYY-MM", input.Month)
		}
		ref = parsed
	}

	events, err := s.ports.Schedule.Month(ctx, ref)
	if err != nil {
		return nil, MonthScheduleOutput{}, err
	}

	output := MonthScheduleOutput{
		Month:  ref.Format("2006-01"),
		Events: make([]EventOutput, len(events)),
		Count:  len(events),
	}
	for i := range events {
		output.Events[i] = eventOutput(events[i])
	}

	return nil, output, nil
}

// handleCreateFolder handles the create_folder tool invocation.
func (s *Server) handleCreateFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateFolderInput,
) (*mcp.CallToolResult, CreateFolderOutput, error) {
	if s.ports.Storage == nil {
		return nil, CreateFolderOutput{}, errors.New("storage service not available")
	}

	folder, err := s.ports.Storage.CreateFolder(ctx, input.Name)
	if err != nil {
		return nil, CreateFolderOutput{}, err
	}

	return nil, CreateFolderOutput{
		ID:   folder.ID,
		Name: folder.Name,
		URL:  folder.URL,
	}, nil
}

func projectOutput(p domain.Project) ProjectOutput {
	return ProjectOutput{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.Client,
		Type:      p.Type,
		Budget:    p.Budget,
		DueDate:   p.DueDate,
		Status:    p.Status,
		FolderURL: p.FolderURL,
	}
}

func eventOutput(ev domain.ScheduleEvent) EventOutput {
	out := EventOutput{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		Time:        ev.Time,
		Location:    ev.Location,
		Description: ev.Description,
	}
	if !ev.Start.IsZero() {
		out.Start = ev.Start.Format(time.RFC3339)
	}
	if !ev.End.IsZero() {
		out.End = ev.End.Format(time.RFC3339)
	}
	return out
}
