package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hookline/hookline/config"
)

func TestMatcherGlobalExclude(t *testing.T) {
	cfg := &config.Config{Exclude: `^vendor/|\.pb\.go$`}
	m, err := newMatcher(cfg, t.TempDir())
	require.NoError(t, err)

	got := m.candidates([]string{
		"vendor/lib/dep.go",
		"api/service.pb.go",
		"cmd/main.go",
	})
	assert.Equal(t, []string{"cmd/main.go"}, got)
}

func TestMatcherBadGlobalExclude(t *testing.T) {
	cfg := &config.Config{Exclude: `([unclosed`}
	_, err := newMatcher(cfg, t.TempDir())
	assert.Error(t, err)
}

func TestFilesForPatterns(t *testing.T) {
	m, err := newMatcher(&config.Config{}, t.TempDir())
	require.NoError(t, err)

	candidates := []string{"a.go", "a_test.go", "b.py", "docs/c.md"}

	tests := []struct {
		name string
		hook config.Hook
		want []string
	}{
		{
			name: "files pattern",
			hook: config.Hook{ID: "go-only", Files: `\.go$`},
			want: []string{"a.go", "a_test.go"},
		},
		{
			name: "files plus exclude",
			hook: config.Hook{ID: "no-tests", Files: `\.go$`, Exclude: `_test\.go$`},
			want: []string{"a.go"},
		},
		{
			name: "types filter",
			hook: config.Hook{ID: "python", Types: []string{"python"}},
			want: []string{"b.py"},
		},
		{
			name: "types and files combine",
			hook: config.Hook{ID: "md-docs", Files: `^docs/`, Types: []string{"markdown"}},
			want: []string{"docs/c.md"},
		},
		{
			name: "no filters matches all",
			hook: config.Hook{ID: "everything"},
			want: candidates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.filesFor(&tt.hook, candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilesForBadPattern(t *testing.T) {
	m, err := newMatcher(&config.Config{}, t.TempDir())
	require.NoError(t, err)

	_, err = m.filesFor(&config.Hook{ID: "bad", Files: `([`}, []string{"a.go"})
	assert.Error(t, err)
}
