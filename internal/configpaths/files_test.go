package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG lookup is unix only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "tachibk"), dir)

	path, err := DefaultNamedConfigPath("convert", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "tachibk", "convert.yaml"), path)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "json", Extension("json"))
	assert.Equal(t, "yaml", Extension("yml"))
	assert.Equal(t, "toml", Extension("toml"))
	assert.Equal(t, "json", Extension("ini"))
}

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		user string
		pick func(j, y, t []string) []string
	}{
		{"my.yaml", func(_, y, _ []string) []string { return y }},
		{"my.toml", func(_, _, t []string) []string { return t }},
		{"my.jsonc", func(j, _, _ []string) []string { return j }},
		{"my.conf", func(j, _, _ []string) []string { return j }},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tt.user)
			got := tt.pick(j, y, tm)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.user, got[0])
		})
	}
}

func TestConfigCandidatePathsCoverJSONC(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	jsonPaths, _, _ := ConfigCandidatePaths("")
	var found bool
	for _, p := range jsonPaths {
		if filepath.Base(p) == "tachibk.jsonc" {
			found = true
			break
		}
	}
	assert.True(t, found)
}
