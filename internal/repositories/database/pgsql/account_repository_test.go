package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaperNeutralizesWildcards(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"vehicles", "vehicles"},
		{"100%", `100\%`},
		{"fixed_assets", `fixed\_assets`},
		{`a\b`, `a\\b`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, likeEscaper.Replace(tt.input), "input %q", tt.input)
	}
}
