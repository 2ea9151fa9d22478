package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"offset with sub-seconds", "2023-10-27T10:30:00.123+00:00", "27/10/2023 10:30:00"},
		{"offset without sub-seconds", "2023-10-27T10:30:00+00:00", "27/10/2023 10:30:00"},
		{"local unqualified", "2023-10-27T10:30:00", "27/10/2023 10:30:00"},
		{"unrecognized falls back to raw", "27-10-2023 10:30", "27-10-2023 10:30"},
		{"absent", "", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayTimestamp(tt.raw))
		})
	}
}
