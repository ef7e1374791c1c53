package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_QuitBindings(t *testing.T) {
	k := DefaultKeyMap()
	require.Equal(t, []string{"q", "ctrl+c"}, k.Quit.Keys())
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()
	help := k.Refresh.Help()
	require.Equal(t, "r", help.Key)
	require.Equal(t, "refresh posts", help.Desc)
}

func TestKeyMap_ShortHelp(t *testing.T) {
	k := DefaultKeyMap()
	require.Len(t, k.ShortHelp(), 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	k := DefaultKeyMap()
	rows := k.FullHelp()
	require.Len(t, rows, 3)
	for _, row := range rows {
		require.NotEmpty(t, row)
	}
}
