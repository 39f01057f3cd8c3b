package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHookDisplayName(t *testing.T) {
	hook := Hook{ID: "lint"}
	assert.Equal(t, "lint", hook.DisplayName())

	hook.Name = "Run the linter"
	assert.Equal(t, "Run the linter", hook.DisplayName())
}

func TestShouldPassFilenames(t *testing.T) {
	var hook Hook
	assert.True(t, hook.ShouldPassFilenames(), "filenames are forwarded by default")

	no := false
	hook.PassFilenames = &no
	assert.False(t, hook.ShouldPassFilenames())

	yes := true
	hook.PassFilenames = &yes
	assert.True(t, hook.ShouldPassFilenames())
}

func TestEffectiveStages(t *testing.T) {
	testCases := []struct {
		name     string
		stages   []string
		defaults []string
		want     []string
	}{
		{"hook stages win", []string{StagePush}, []string{StageCommit}, []string{StagePush}},
		{"defaults apply when silent", nil, []string{StagePush}, []string{StagePush}},
		{"commit is the final fallback", nil, nil, []string{StageCommit}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hook := Hook{ID: "h", Stages: tc.stages}
			assert.Equal(t, tc.want, hook.EffectiveStages(tc.defaults))
		})
	}
}

