package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for console resources.
	uriScheme = "senteng://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the project list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "The studio's project list",
		MIMEType:    "application/json",
	}, s.handleProjectsResource)

	// Template for one month's appointments.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "schedule/{month}",
		Name:        "month-schedule",
		Description: "Appointments in a calendar month (YYYY-MM)",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	// Static resource for the signed-in identity.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profile",
		Name:        "profile",
		Description: "The signed-in identity and its access role",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// handleProjectsResource returns the project list.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	projects, err := s.ports.Project.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	infos := make([]ProjectOutput, len(projects))
	for i := range projects {
		infos[i] = projectOutput(projects[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling projects: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleScheduleResource returns the appointments of one month.
func (s *Server) handleScheduleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Schedule == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract month from URI: senteng://schedule/{month}
	month := extractMonth(req.Params.URI)
	if month == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ref, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	events, err := s.ports.Schedule.Month(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	infos := make([]EventOutput, len(events))
	for i := range events {
		infos[i] = eventOutput(events[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling appointments: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleProfileResource returns the signed-in identity and role.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Session == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type profileInfo struct {
		Name     string   `json:"name,omitempty"`
		Email    string   `json:"email,omitempty"`
		Role     string   `json:"role,omitempty"`
		Pages    []string `json:"pages,omitempty"`
		SignedIn bool     `json:"signed_in"`
	}

	info := profileInfo{}
	if session, err := s.ports.Session.Current(); err == nil {
		info.SignedIn = true
		info.Name = session.Profile.Name
		info.Email = session.Profile.Email

		if access, err := s.ports.Session.Access(ctx); err == nil {
			info.Role = access.Role.String()
			info.Pages = access.Pages
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling profile: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMonth extracts the month from a URI like senteng://schedule/{month}.
func extractMonth(uri string) string {
	const prefix = uriScheme + "schedule/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
