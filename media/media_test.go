package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileIDFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "typical media url",
			url:      "https://ik.imagekit.io/demo/Blogger/cover_abc123",
			expected: "cover_abc123",
		},
		{
			name:     "trailing slash",
			url:      "https://ik.imagekit.io/demo/Blogger/cover_abc123/",
			expected: "cover_abc123",
		},
		{
			name:     "no path",
			url:      "cover_abc123",
			expected: "",
		},
		{
			name:     "empty",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileIDFromURL(tt.url))
		})
	}
}
