package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRole_IsValid tests role recognition
func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleAdmin, true},
		{RoleDesigner, true},
		{RoleGuest, true},
		{Role("owner"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
		})
	}
}

// TestAccessProfile_AllowsPage tests page gating
func TestAccessProfile_AllowsPage(t *testing.T) {
	profile := AccessProfile{
		Email: "mei@senteng.design",
		Role:  RoleDesigner,
		Pages: []string{"projects", "schedule"},
	}

	assert.True(t, profile.AllowsPage("projects"))
	assert.True(t, profile.AllowsPage("schedule"))
	assert.False(t, profile.AllowsPage("settings"))
}

// TestAccessProfile_AllowsPage_Guest tests that guests see no pages
func TestAccessProfile_AllowsPage_Guest(t *testing.T) {
	profile := AccessProfile{Email: "stranger@example.com", Role: RoleGuest}

	assert.False(t, profile.AllowsPage("projects"))
}
