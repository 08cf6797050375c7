package oddsboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/fightcard/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reconcile.OddsLookup = (*Board)(nil)

func TestBoardLookupIsOrderInsensitive(t *testing.T) {
	t.Parallel()

	board := Default()
	require.Positive(t, board.Len())

	ml1, ml2, ok := board.Lookup("Steve Garcia", "David Onama")
	require.True(t, ok)
	assert.Equal(t, -155.0, ml1)
	assert.Equal(t, 130.0, ml2)

	ml1, ml2, ok = board.Lookup("david onama", "STEVE GARCIA")
	require.True(t, ok)
	assert.Equal(t, 130.0, ml1)
	assert.Equal(t, -155.0, ml2)

	_, _, ok = board.Lookup("Steve Garcia", "Someone Else")
	assert.False(t, ok)
	_, _, ok = board.Lookup("", "David Onama")
	assert.False(t, ok)
}

func TestBoardFeedsWinProbability(t *testing.T) {
	t.Parallel()

	builder := reconcile.NewBuilder(reconcile.WithOddsLookup(Default()))
	f := builder.BuildFight(map[string]any{
		"Fighters": []any{
			map[string]any{"FighterId": "garcia", "Name": "Steve Garcia"},
			map[string]any{"FighterId": "onama", "Name": "David Onama"},
		},
	}, nil)
	require.NotNil(t, f)
	assert.Equal(t, "Steve Garcia", f.FavoriteName)

	split := reconcile.WinProbability(*f, builder.Odds())
	require.NotNil(t, split)
	assert.Equal(t, 100, split.Left+split.Right)
	assert.Greater(t, split.Left, split.Right)
}

func TestLoadAndParseErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fights:\n  - {fighter1: A One, fighter2: B Two, moneyline1: -110, moneyline2: -110}\n"), 0o600))

	board, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, board.Len())

	defaults, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), defaults.Len())

	_, err = Parse([]byte("fights:\n  - {fighter1: A One, fighter2: B Two, moneyline1: 0, moneyline2: 100}\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("fights:\n  - {fighter1: A One, moneyline1: 100, moneyline2: 100}\n"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	var nilBoard *Board
	_, _, ok := nilBoard.Lookup("A One", "B Two")
	assert.False(t, ok)
}
