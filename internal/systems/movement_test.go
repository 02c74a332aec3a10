package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delve-server/internal/domain"
)

func TestCalculateMoveFreeCell(t *testing.T) {
	w := newOpenWorld()
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})

	res := CalculateMove(player, domain.DirRight, w, player)

	assert.True(t, res.HasMoved)
	assert.Equal(t, domain.Position{X: 6, Y: 5}, res.Dest)
	assert.Nil(t, res.BlockedBy)
	assert.False(t, res.IsWall)
}

func TestCalculateMoveIntoWall(t *testing.T) {
	w := newOpenWorld()
	require.NoError(t, w.SetCell(domain.Position{X: 6, Y: 5}, domain.CellWall))
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})

	res := CalculateMove(player, domain.DirRight, w, player)

	assert.False(t, res.HasMoved)
	assert.True(t, res.IsWall)
}

func TestCalculateMoveIntoEnemy(t *testing.T) {
	w := newOpenWorld()
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})
	rat := spawnEnemy(w, testRatDescriptor, domain.Position{X: 5, Y: 4}, 1)

	res := CalculateMove(player, domain.DirUp, w, player)

	assert.False(t, res.HasMoved)
	require.NotNil(t, res.BlockedBy)
	assert.Equal(t, rat.ID, res.BlockedBy.ID)
}

func TestCalculateMoveEnemyIntoPlayer(t *testing.T) {
	w := newOpenWorld()
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})
	rat := spawnEnemy(w, testRatDescriptor, domain.Position{X: 4, Y: 5}, 1)

	res := CalculateMove(rat, domain.DirRight, w, player)

	assert.False(t, res.HasMoved)
	require.NotNil(t, res.BlockedBy)
	assert.Equal(t, player.ID, res.BlockedBy.ID)
}

func TestCalculateMoveDeadBodiesArePassable(t *testing.T) {
	w := newOpenWorld()
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})
	rat := spawnEnemy(w, testRatDescriptor, domain.Position{X: 6, Y: 5}, 1)
	rat.Stats.IsDead = true

	res := CalculateMove(player, domain.DirRight, w, player)

	assert.True(t, res.HasMoved, "dead enemies must not block movement")
}

func TestApplyMoveTurnsEvenWhenBlocked(t *testing.T) {
	// Шаг в стену не перемещает, но разворачивает: игрок может
	// прицелиться взаимодействием, не сходя с места.
	w := newOpenWorld()
	require.NoError(t, w.SetCell(domain.Position{X: 5, Y: 4}, domain.CellWall))
	player := domain.NewPlayer(domain.Position{X: 5, Y: 5})
	player.Facing = domain.DirDown

	moved := ApplyMove(player, domain.DirUp, w, player)

	assert.False(t, moved)
	assert.Equal(t, domain.DirUp, player.Facing)
	assert.Equal(t, domain.Position{X: 5, Y: 5}, player.Pos)
}

func TestApplyMoveMigratesEnemyAcrossChunks(t *testing.T) {
	w := newOpenWorld()
	player := domain.NewPlayer(domain.Position{X: 50, Y: 50})
	edge := domain.Position{X: domain.ChunkSize - 1, Y: 3}
	rat := spawnEnemy(w, testRatDescriptor, edge, 1)

	moved := ApplyMove(rat, domain.DirRight, w, player)

	require.True(t, moved)
	assert.Equal(t, domain.Position{X: domain.ChunkSize, Y: 3}, rat.Pos)
	assert.Empty(t, w.Get(domain.ChunkID{X: 0, Y: 0}).Enemies, "enemy must leave the old chunk list")
	assert.Len(t, w.Get(domain.ChunkID{X: 1, Y: 0}).Enemies, 1, "enemy must join the new chunk list")
}
