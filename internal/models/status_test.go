package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusSkipped))
	assert.False(t, ValidStatus("done"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusSkipped, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusSkipped, true},
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusSkipped, false},
		{StatusSkipped, StatusPending, false},
		{StatusSkipped, StatusCompleted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusCompleted, StatusSkipped} {
		assert.True(t, CanTransition(s, s), "repeating %s should be allowed", s)
	}
	assert.False(t, CanTransition("done", "done"))
}
