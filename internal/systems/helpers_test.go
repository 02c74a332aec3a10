package systems

import (
	"delve-server/internal/domain"
)

// Тестовые миры строятся вручную, без pkg/dungeon: системам нужна
// точная расстановка стен, а не случайный лабиринт.

// openChunkBuilder строит полностью проходимый чанк.
func openChunkBuilder(id domain.ChunkID, _ int64) *domain.Chunk {
	cells := domain.NewGrid(domain.ChunkSize, domain.ChunkSize, func(domain.GridPosition) domain.Cell {
		return domain.CellEmpty
	})
	return domain.NewChunk(id, cells)
}

// newOpenWorld - бесконечный мир из пустых чанков.
func newOpenWorld() *domain.World {
	return domain.NewWorld(1, openChunkBuilder)
}

var testRatDescriptor = &domain.EnemyDescriptor{
	Name:   "Крыса",
	Symbol: "r",
	MaxHP:  2,
	Damage: 1,
	Brain:  domain.BrainWanderer,
}

var testGhoulDescriptor = &domain.EnemyDescriptor{
	Name:        "Упырь",
	Symbol:      "g",
	MaxHP:       4,
	Damage:      2,
	AggroRadius: 6,
	Brain:       domain.BrainStalker,
}

// spawnEnemy создает врага и регистрирует его в чанке-владельце.
func spawnEnemy(w *domain.World, desc *domain.EnemyDescriptor, pos domain.Position, seed int64) *domain.Entity {
	e := domain.NewEnemy(desc, pos, seed)
	w.ChunkAt(pos).AddEnemy(e)
	return e
}
