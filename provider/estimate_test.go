package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 0},
		{"ab", 1},
		{"abcd", 1},
		{"abcdefgh", 2},
		{"日本語の文章", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTokens(tt.text), "%q", tt.text)
	}
}

func TestEstimateUsage(t *testing.T) {
	u := EstimateUsage("abcdefgh", "abcd")
	assert.Equal(t, TokenUsage{InputTokens: 2, OutputTokens: 1, TotalTokens: 3}, u)
}
