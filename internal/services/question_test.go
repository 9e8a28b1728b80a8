package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuestionIndexForRotation(t *testing.T) {
	// Day-of-month modulo catalog size wraps around an 8-question catalog.
	tests := []struct {
		date string
		want int
	}{
		{"2026-03-01", 1},
		{"2026-03-07", 7},
		{"2026-03-08", 0},
		{"2026-03-16", 0},
		{"2026-03-31", 7},
	}
	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, questionIndexFor(day, 8), "date %s", tt.date)
	}
}

func TestQuestionIndexForSameDaySameIndex(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, questionIndexFor(morning, 8), questionIndexFor(evening, 8))
}

func TestQuestionIndexForEmptyCatalog(t *testing.T) {
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, questionIndexFor(day, 0))
}
