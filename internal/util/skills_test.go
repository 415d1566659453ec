package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trailing separator", "React, Node.js, ", []string{"React", "Node.js"}},
		{"keeps order", "Go,Postgres,Docker", []string{"Go", "Postgres", "Docker"}},
		{"only separators", " , ,, ", []string{}},
		{"empty", "", []string{}},
		{"inner spaces kept", "  Machine Learning ,SQL", []string{"Machine Learning", "SQL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSkills(tt.in))
		})
	}
}
