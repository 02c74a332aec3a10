package domain

import "fmt"

// ChunkID - целочисленная координата чанка в бесконечном мире.
// Выводится из мировой позиции floor-делением на ChunkSize.
type ChunkID struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChunkIDFromPosition возвращает ID чанка, владеющего позицией.
// Деление с округлением к МИНУС бесконечности: отрицательные
// координаты должны попадать в чанк слева/сверху от нуля,
// обычное усечение Go здесь дало бы неверный чанк.
func ChunkIDFromPosition(p Position) ChunkID {
	return ChunkID{X: floorDiv(p.X, ChunkSize), Y: floorDiv(p.Y, ChunkSize)}
}

// Origin - мировая позиция левого верхнего угла чанка.
func (id ChunkID) Origin() Position {
	return Position{X: id.X * ChunkSize, Y: id.Y * ChunkSize}
}

func (id ChunkID) String() string {
	return fmt.Sprintf("chunk[%d,%d]", id.X, id.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Chunk - один квадрат бесконечного мира.
// Владеет сеткой клеток, туманом войны (mapped/lit) и списками
// врагов и предметов, находящихся в его границах.
//
// Создается миром ровно один раз на ChunkID и живет до конца сессии.
// Мутации после создания - только через его методы.
type Chunk struct {
	ID ChunkID

	cells  *Grid[Cell]
	mapped *Grid[bool]
	lit    *Grid[bool]

	// Enemies в порядке вставки - порядок ходов детерминирован.
	Enemies []*Entity
	Items   []*Entity
}

// NewChunk оборачивает готовую сетку клеток в чанк.
// Грязную работу (лабиринт, стены, спавн) делает pkg/dungeon.
func NewChunk(id ChunkID, cells *Grid[Cell]) *Chunk {
	return &Chunk{
		ID:     id,
		cells:  cells,
		mapped: NewGrid(ChunkSize, ChunkSize, func(GridPosition) bool { return false }),
		lit:    NewGrid(ChunkSize, ChunkSize, func(GridPosition) bool { return false }),
	}
}

// ToLocal переводит мировую позицию в локальную координату чанка.
// Результат может лежать ЗА границей сетки - это нормальный способ
// спросить "не твоя ли это клетка" (Get тогда вернет absent).
func (c *Chunk) ToLocal(p Position) GridPosition {
	origin := c.ID.Origin()
	return GridPosition{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// ToGlobal переводит локальную координату обратно в мировую.
func (c *Chunk) ToGlobal(p GridPosition) Position {
	origin := c.ID.Origin()
	return Position{X: origin.X + p.X, Y: origin.Y + p.Y}
}

// GetCell возвращает клетку по мировой позиции.
// За границей чанка - CellOutOfBounds, не паника.
func (c *Chunk) GetCell(p Position) Cell {
	cell, ok := c.cells.Get(c.ToLocal(p))
	if !ok {
		return CellOutOfBounds
	}
	return cell
}

// SetCell меняет клетку по мировой позиции.
func (c *Chunk) SetCell(p Position, cell Cell) error {
	return c.cells.Set(c.ToLocal(p), cell)
}

// IsPassable - можно ли стоять в клетке (с учетом границ).
func (c *Chunk) IsPassable(p Position) bool {
	return c.GetCell(p).Passable()
}

// EnemyAt - живой враг в клетке (линейный скан: население чанка мало).
func (c *Chunk) EnemyAt(p Position) *Entity {
	for _, e := range c.Enemies {
		if e.Pos == p && !e.Stats.IsDead {
			return e
		}
	}
	return nil
}

// ItemAt - предмет в клетке.
func (c *Chunk) ItemAt(p Position) *Entity {
	for _, it := range c.Items {
		if it.Pos == p {
			return it
		}
	}
	return nil
}

// AddEnemy добавляет врага в конец списка (порядок вставки = порядок ходов).
func (c *Chunk) AddEnemy(e *Entity) {
	c.Enemies = append(c.Enemies, e)
}

// RemoveEnemy убирает врага из списка, сохраняя порядок остальных.
// Порядок важен для детерминизма, поэтому НЕ swap-with-last.
func (c *Chunk) RemoveEnemy(e *Entity) bool {
	for i, other := range c.Enemies {
		if other.ID == e.ID {
			c.Enemies = append(c.Enemies[:i], c.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem кладет предмет в чанк.
func (c *Chunk) AddItem(item *Entity) {
	c.Items = append(c.Items, item)
}

// RemoveItem убирает предмет (например, после подбора).
func (c *Chunk) RemoveItem(item *Entity) bool {
	for i, other := range c.Items {
		if other.ID == item.ID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// IsMapped - видел ли игрок эту клетку когда-либо.
func (c *Chunk) IsMapped(p Position) bool {
	v, _ := c.mapped.Get(c.ToLocal(p))
	return v
}

// IsLit - освещена ли клетка в ТЕКУЩИЙ ход.
func (c *Chunk) IsLit(p Position) bool {
	v, _ := c.lit.Get(c.ToLocal(p))
	return v
}

// MarkLit освещает клетку и НАВСЕГДА помечает ее разведанной.
// mapped монотонен: однажды true - true до конца сессии.
func (c *Chunk) MarkLit(p Position) {
	local := c.ToLocal(p)
	if !c.lit.InBounds(local) {
		return
	}
	c.lit.MustSet(local, true)
	c.mapped.MustSet(local, true)
}

// MarkMapped помечает клетку разведанной, не освещая
// (обрывок карты открывает местность, но не светит).
func (c *Chunk) MarkMapped(p Position) {
	local := c.ToLocal(p)
	if c.mapped.InBounds(local) {
		c.mapped.MustSet(local, true)
	}
}

// ClearLit гасит клетку (зовется при полном пересчете света).
func (c *Chunk) ClearLit(p Position) {
	local := c.ToLocal(p)
	if c.lit.InBounds(local) {
		c.lit.MustSet(local, false)
	}
}
