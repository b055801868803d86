package appointmentRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, 100},
		{"negative falls back to default", -5, 100},
		{"lower bound kept", 1, 1},
		{"in range kept", 250, 250},
		{"upper bound kept", 1000, 1000},
		{"above cap clamped", 5000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit))
		})
	}
}
