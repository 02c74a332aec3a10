package domain

// ChunkBuilder строит чанк с нуля по его ID и пер-чанковому сиду.
// Живет в pkg/dungeon; мир знает только контракт, чтобы не тащить
// генерацию в доменный пакет.
//
// Контракт: чистая функция от (id, seed) - два вызова с теми же
// аргументами дают поклеточно идентичный чанк.
type ChunkBuilder func(id ChunkID, seed int64) *Chunk

// World - бесконечный мир: ленивый кэш чанков по ChunkID.
// Единственная инстанция на игровую сессию, единственный владелец
// всех чанков. Никаких глобальных синглтонов - хэндл передается
// по цепочке вызовов явно.
type World struct {
	seed    int64
	chunks  map[ChunkID]*Chunk
	builder ChunkBuilder

	// litCells - все клетки, освещенные в текущий ход.
	// Нужен системе видимости, чтобы гасить свет за O(освещенных),
	// а не обходить все загруженные чанки.
	litCells []Position
}

// NewWorld создает пустой мир. Чанки появятся при первом обращении.
func NewWorld(seed int64, builder ChunkBuilder) *World {
	return &World{
		seed:    seed,
		chunks:  make(map[ChunkID]*Chunk),
		builder: builder,
	}
}

// Seed - мастер-сид мира.
func (w *World) Seed() int64 { return w.seed }

// Get возвращает чанк по ID, создавая его при первом обращении.
// Повторный вызов с тем же ID всегда возвращает ТОТ ЖЕ объект
// (иначе мутации врагов и предметов потерялись бы).
func (w *World) Get(id ChunkID) *Chunk {
	if c, ok := w.chunks[id]; ok {
		return c
	}
	c := w.builder(id, ChunkSeed(w.seed, id))
	w.chunks[id] = c
	return c
}

// ChunkAt возвращает чанк, владеющий мировой позицией.
func (w *World) ChunkAt(p Position) *Chunk {
	return w.Get(ChunkIDFromPosition(p))
}

// Loaded сообщает, создан ли уже чанк (без побочной генерации).
func (w *World) Loaded(id ChunkID) (*Chunk, bool) {
	c, ok := w.chunks[id]
	return c, ok
}

// --- Кросс-чанковые запросы движка ---
// Все они сперва резолвят чанк-владельца, потом делегируют ему.

func (w *World) GetCell(p Position) Cell {
	return w.ChunkAt(p).GetCell(p)
}

func (w *World) SetCell(p Position, cell Cell) error {
	return w.ChunkAt(p).SetCell(p, cell)
}

func (w *World) IsPassable(p Position) bool {
	return w.ChunkAt(p).IsPassable(p)
}

func (w *World) EnemyAt(p Position) *Entity {
	return w.ChunkAt(p).EnemyAt(p)
}

func (w *World) ItemAt(p Position) *Entity {
	return w.ChunkAt(p).ItemAt(p)
}

// MoveEnemy переносит врага в новую позицию, мигрируя его между
// списками чанков, если он пересек границу. Враг никогда не числится
// в двух чанках и никогда не теряется молча.
func (w *World) MoveEnemy(e *Entity, dest Position) {
	from := ChunkIDFromPosition(e.Pos)
	to := ChunkIDFromPosition(dest)
	e.Pos = dest
	if from == to {
		return
	}
	w.Get(from).RemoveEnemy(e)
	w.Get(to).AddEnemy(e)
}

// RemoveEnemy убирает врага из его чанка. Если передан дроп и клетка
// не занята другим предметом, кладет дроп на последнюю позицию врага.
func (w *World) RemoveEnemy(e *Entity, drop *Entity) {
	chunk := w.ChunkAt(e.Pos)
	chunk.RemoveEnemy(e)
	if drop != nil && chunk.ItemAt(e.Pos) == nil {
		drop.Pos = e.Pos
		chunk.AddItem(drop)
	}
}

// --- Учет освещения ---

// MarkLit освещает клетку (и помечает разведанной) через чанк-владельца.
func (w *World) MarkLit(p Position) {
	w.ChunkAt(p).MarkLit(p)
	w.litCells = append(w.litCells, p)
}

// MarkMapped помечает клетку разведанной без света.
func (w *World) MarkMapped(p Position) {
	w.ChunkAt(p).MarkMapped(p)
}

// ClearLit гасит ВСЕ освещенные клетки (начало пересчета видимости).
func (w *World) ClearLit() {
	for _, p := range w.litCells {
		w.ChunkAt(p).ClearLit(p)
	}
	w.litCells = w.litCells[:0]
}

// --- Сид чанка ---

// ChunkSeed выводит детерминированный сид чанка из мирового сида
// и координат. Перемешивание в стиле splitmix64: простой XOR
// координат дал бы коррелированную генерацию симметричных чанков.
func ChunkSeed(worldSeed int64, id ChunkID) int64 {
	h := uint64(worldSeed)
	h = mix64(h ^ uint64(int64(id.X)))
	h = mix64(h ^ uint64(int64(id.Y)))
	return int64(h)
}

// mix64 - финализатор splitmix64 (лавинный эффект на всех битах).
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
