package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingProjectService,
		ErrMissingScheduleService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingProjectService(t *testing.T) {
	assert.Contains(t, ErrMissingProjectService.Error(), "project service")
}

func TestErrMissingScheduleService(t *testing.T) {
	assert.Contains(t, ErrMissingScheduleService.Error(), "schedule service")
}

func TestErrInvalidPorts(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
