package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func loadStates(t *testing.T, path string) []StateConfig {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg.States
}

func TestSaveStatesCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	states := []StateConfig{{Key: "page_for_landing", Label: "Landing Page"}}
	require.NoError(t, SaveStates(path, states))

	require.Equal(t, states, loadStates(t, path))
}

func TestSaveStatesReplacesSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := `db_path: .poststates/poststates.db
states:
  - key: page_for_landing
    label: Landing Page
auto_refresh: true
`
	require.NoError(t, os.WriteFile(path, []byte(initial), 0600))

	updated := []StateConfig{
		{Key: "page_for_news", Label: "News Page"},
		{Key: "page_for_about", Label: "About Page"},
	}
	require.NoError(t, SaveStates(path, updated))

	require.Equal(t, updated, loadStates(t, path))

	// Other sections survive the rewrite.
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, ".poststates/poststates.db", v.GetString("db_path"))
	require.True(t, v.GetBool("auto_refresh"))
}

func TestSaveStatesAppendsWhenSectionMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_refresh: false\n"), 0600))

	states := []StateConfig{{Key: "page_for_landing", Label: "Landing Page"}}
	require.NoError(t, SaveStates(path, states))

	require.Equal(t, states, loadStates(t, path))
}

func TestSaveStatesPreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my config
db_path: .poststates/poststates.db

states:
  - key: page_for_landing
    label: Landing Page
`
	require.NoError(t, os.WriteFile(path, []byte(initial), 0600))

	require.NoError(t, SaveStates(path, []StateConfig{
		{Key: "page_for_news", Label: "News Page"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# my config")
}
