package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateThemeColors(t *testing.T) {
	tests := []struct {
		mood    string
		primary string
	}{
		{"Anxious", "#6B73FF"},
		{"Unfocused", "#10B981"},
		{"Sad", "#F59E0B"},
		{"Stressed", "#EF4444"},
		{"Calm", "#06B6D4"},
		{"Ecstatic", "#06B6D4"},
		{"anxious", "#06B6D4"},
	}

	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			colors := GenerateThemeColors(tt.mood, "Student")
			assert.Equal(t, tt.primary, colors["primary"])
			assert.Len(t, colors, 6)
			assert.Equal(t, "#E2E8F0", colors["text"])
		})
	}
}

func TestGenerateThemeColorsReturnsCopy(t *testing.T) {
	colors := GenerateThemeColors("Sad", "")
	colors["primary"] = "#000000"

	assert.Equal(t, "#F59E0B", GenerateThemeColors("Sad", "")["primary"])
}
