package dungeon

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"
	"github.com/sirupsen/logrus"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
)

// Справочники видов врагов.
// Крыса бродит бесцельно, вурдалак преследует игрока в агро-радиусе.
var (
	RatDescriptor = &domain.EnemyDescriptor{
		Name:        "Пещерная крыса",
		Symbol:      "r",
		MaxHP:       2,
		Damage:      1,
		AggroRadius: 0,
		Brain:       domain.BrainWanderer,
		Drops: []domain.DropEntry{
			{Kind: domain.ItemBandage, Chance: 0.25},
		},
	}

	GhoulDescriptor = &domain.EnemyDescriptor{
		Name:        "Вурдалак",
		Symbol:      "G",
		MaxHP:       4,
		Damage:      2,
		AggroRadius: 6,
		Brain:       domain.BrainStalker,
		Drops: []domain.DropEntry{
			{Kind: domain.ItemLanternOil, Chance: 0.3},
			{Kind: domain.ItemTornMap, Chance: 0.15},
		},
	}
)

// ChunkFactory строит чанки бесконечного мира.
// Держит поле шума плотности, посеянное от мирового сида:
// сосед к соседу плотность меняется плавно, поэтому в мире
// возникают и открытые "каверны", и плотные лабиринты.
type ChunkFactory struct {
	density opensimplex.Noise
}

// NewChunkFactory создает фабрику для мира с данным сидом.
func NewChunkFactory(worldSeed int64) *ChunkFactory {
	return &ChunkFactory{
		density: opensimplex.NewNormalized(worldSeed),
	}
}

// densityScale - шаг сэмплирования шума по координате чанка.
// Меньше - плавнее переходы между регионами.
const densityScale = 0.35

// Build строит чанк по его ID и пер-чанковому сиду.
// Чистая функция от аргументов (шум детерминирован мировым сидом):
// повторная сборка дает поклеточно идентичный чанк.
func (f *ChunkFactory) Build(id domain.ChunkID, seed int64) *domain.Chunk {
	rng := rand.New(rand.NewSource(seed))

	// 1. Квота стен из поля плотности
	density := f.density.Eval2(float64(id.X)*densityScale, float64(id.Y)*densityScale)
	wallCount := domain.ChunkWallsMin + int(density*float64(domain.ChunkWallsMax-domain.ChunkWallsMin))

	// 2. Лабиринт с гарантией связности между "воротами" чанка.
	// Ворота - середины западной и восточной граней: сквозной
	// коридор, к которому прирастает все проходимое пространство.
	start := domain.GridPosition{X: 0, Y: domain.ChunkSize / 2}
	end := domain.GridPosition{X: domain.ChunkSize - 1, Y: domain.ChunkSize / 2}

	level, err := Generate(domain.ChunkSize, domain.ChunkSize, start, end, wallCount, rng)
	if err != nil {
		// На сетке 10x10 с квотой <= ChunkWallsMax недостижимо,
		// но генерация обязана не молчать.
		logger.Log.WithFields(logrus.Fields{
			"chunk": id.String(),
			"walls": wallCount,
		}).WithError(err).Error("chunk maze generation failed, falling back to open chunk")
		level = &Level{
			Cells: domain.NewGrid(domain.ChunkSize, domain.ChunkSize, func(domain.GridPosition) domain.Cell {
				return domain.CellEmpty
			}),
			Start: start,
			End:   end,
		}
	}

	// 3. Замуровываем карманы, не достижимые от западных ворот
	SealUnreachable(level)

	chunk := domain.NewChunk(id, level.Cells)

	// 4. Спавн врагов и предметов.
	// Кандидаты предвычисляются один раз: проходимые клетки минус
	// ворота. Выбор - выборка без возвращения, ретраев нет вовсе.
	eligible := spawnCandidates(level)

	for i := 0; i < domain.EnemiesPerChunk && len(eligible) > 0; i++ {
		var p domain.GridPosition
		p, eligible = takeRandom(eligible, rng)

		desc := RatDescriptor
		if rng.Float64() < 0.3 {
			desc = GhoulDescriptor
		}
		chunk.AddEnemy(domain.NewEnemy(desc, chunk.ToGlobal(p), rng.Int63()))
	}

	if rng.Float64() < domain.ItemSpawnChance && len(eligible) > 0 {
		var p domain.GridPosition
		p, eligible = takeRandom(eligible, rng)

		kind := domain.AllItemKinds[rng.Intn(len(domain.AllItemKinds))]
		chunk.AddItem(domain.NewItem(kind, chunk.ToGlobal(p)))
	}

	logger.Log.WithFields(logrus.Fields{
		"chunk":   id.String(),
		"walls":   wallCount,
		"enemies": len(chunk.Enemies),
		"items":   len(chunk.Items),
	}).Debug("Chunk generated")

	return chunk
}

// spawnCandidates - проходимые клетки уровня, кроме зарезервированных ворот.
func spawnCandidates(level *Level) []domain.GridPosition {
	var out []domain.GridPosition
	for _, p := range passableCells(level.Cells) {
		if p == level.Start || p == level.End {
			continue
		}
		out = append(out, p)
	}
	return out
}

// takeRandom вынимает случайный элемент из слайса (без возвращения).
// Порядок оставшихся сохраняется ради детерминизма последующих выборов.
func takeRandom(cells []domain.GridPosition, rng *rand.Rand) (domain.GridPosition, []domain.GridPosition) {
	i := rng.Intn(len(cells))
	p := cells[i]
	return p, append(cells[:i], cells[i+1:]...)
}
