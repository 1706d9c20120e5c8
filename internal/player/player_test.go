package player

import (
	"path/filepath"
	"testing"

	"blackjack/internal/database"
	"blackjack/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "blackjack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestPlayer_Add(t *testing.T) {
	p := &Player{}
	p.Add(game.Win)
	p.Add(game.Lose)
	p.Add(game.Tie)
	p.Add(game.Win)
	p.Add(game.OutcomeNone)

	assert.Equal(t, 2, p.Wins)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 1, p.Ties)
	assert.Equal(t, 4, p.Rounds)
	assert.InDelta(t, 50.0, p.WinRate(), 0.001)
	assert.Zero(t, (&Player{}).WinRate())
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo := newRepo(t)

	p, err := repo.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, &Player{ChatID: 42}, p)

	p.Wins = 3
	p.Rounds = 3
	require.NoError(t, repo.Save(p))

	again, err := repo.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Wins)
	assert.Equal(t, 3, again.Rounds)
}

func TestRepository_Record(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Record(1, game.Win)
	require.NoError(t, err)
	p, err := repo.Record(1, game.Tie)
	require.NoError(t, err)

	assert.Equal(t, 1, p.Wins)
	assert.Equal(t, 1, p.Ties)
	assert.Equal(t, 2, p.Rounds)
}

func TestRepository_GetTopByWins(t *testing.T) {
	repo := newRepo(t)

	for _, o := range []game.Outcome{game.Win, game.Win, game.Lose} {
		_, err := repo.Record(1, o)
		require.NoError(t, err)
	}
	for _, o := range []game.Outcome{game.Win, game.Win} {
		_, err := repo.Record(2, o)
		require.NoError(t, err)
	}
	_, err := repo.Record(3, game.Lose)
	require.NoError(t, err)
	_, err = repo.GetOrCreate(4)
	require.NoError(t, err)

	top, err := repo.GetTopByWins(10)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, int64(2), top[0].ChatID)
	assert.InDelta(t, 100.0, top[0].WinRate, 0.001)
	assert.Equal(t, int64(1), top[1].ChatID)
	assert.Equal(t, int64(3), top[2].ChatID)

	top, err = repo.GetTopByWins(1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}
