package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveDBPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"db file used as-is", "/data/site.db", "/data/site.db"},
		{"data directory", "/home/me/.poststates", "/home/me/.poststates/poststates.db"},
		{"project directory", "/home/me/project", "/home/me/project/.poststates/poststates.db"},
		{"trailing slash", "/home/me/project/", "/home/me/project/.poststates/poststates.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveDBPath(tt.in))
		})
	}
}

func TestResolveDBPathExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.sqlite")
	require.NoError(t, os.WriteFile(file, []byte{}, 0600))

	require.Equal(t, file, ResolveDBPath(file))
}

func TestConfigSearchPaths(t *testing.T) {
	paths := ConfigSearchPaths()
	require.NotEmpty(t, paths)
	require.Equal(t, filepath.Join(".poststates", "config.yaml"), paths[0])
}
