package domain

// Cell - тип клетки мира.
type Cell uint8

const (
	// CellEmpty - проходимый пол.
	CellEmpty Cell = iota
	// CellWall - стена, непроходима.
	CellWall
	// CellOutOfBounds - сентинел для запросов за границей сетки.
	// Никогда не хранится в сетке, только возвращается.
	CellOutOfBounds
)

// Passable - можно ли стоять в этой клетке.
// Стены и "за границей" непроходимы всегда.
func (c Cell) Passable() bool {
	return c == CellEmpty
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	default:
		return "outOfBounds"
	}
}
