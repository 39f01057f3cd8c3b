package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"main.go", []string{"go", "text"}},
		{"pkg/config/loader.go", []string{"go", "text"}},
		{"scripts/setup.sh", []string{"shell", "text"}},
		{".hookline.yaml", []string{"yaml", "text"}},
		{"docs/intro.md", []string{"markdown", "text"}},
		{"Dockerfile", []string{"dockerfile", "text"}},
		{"go.mod", []string{"go-mod", "text"}},
		{"logo.png", []string{"image", "binary"}},
		{"model.tflite", []string{"binary"}},
		{"unknown.xyz", []string{"text"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Tags(tt.path))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		requested []string
		want      bool
	}{
		{"empty request matches", "main.go", nil, true},
		{"single tag", "main.go", []string{"go"}, true},
		{"all tags required", "main.go", []string{"go", "text"}, true},
		{"missing tag", "main.go", []string{"python"}, false},
		{"partial match fails", "logo.png", []string{"image", "text"}, false},
		{"binary tag", "logo.png", []string{"binary"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.path, tt.requested))
		})
	}
}
