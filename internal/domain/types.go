package domain

import (
	"fmt"
	"math"
)

// Position - абсолютная мировая координата клетки.
// Value-type: сравнивается по значению, годится как ключ мапы.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridPosition - локальная координата ВНУТРИ чанка.
// Отдельный тип специально, чтобы компилятор не дал
// случайно смешать локальные и глобальные координаты.
type GridPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Delta - смещение между двумя позициями.
type Delta struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению)
func (p Position) Shift(d Delta) Position {
	return Position{X: p.X + d.Dx, Y: p.Y + d.Dy}
}

// DeltaTo возвращает смещение от p до other.
func (p Position) DeltaTo(other Position) Delta {
	return Delta{Dx: other.X - p.X, Dy: other.Y - p.Y}
}

// DistanceTo возвращает точное евклидово расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return p.DeltaTo(other).Magnitude()
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Magnitude - евклидова длина смещения.
func (d Delta) Magnitude() float64 {
	return math.Sqrt(float64(d.Dx*d.Dx + d.Dy*d.Dy))
}

// Manhattan - манхэттенское расстояние (сумма модулей осей).
func (d Delta) Manhattan() int {
	return absInt(d.Dx) + absInt(d.Dy)
}

// IsZero - true для нулевого смещения.
func (d Delta) IsZero() bool {
	return d.Dx == 0 && d.Dy == 0
}

// PrimaryDirection возвращает направление по доминирующей оси.
// При равенстве модулей приоритет у горизонтали (стабильный tie-break).
func (d Delta) PrimaryDirection() Direction {
	if absInt(d.Dx) >= absInt(d.Dy) {
		if d.Dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if d.Dy < 0 {
		return DirUp
	}
	return DirDown
}

// Direction - одно из четырех кардинальных направлений.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// AllDirections - порядок важен только для детерминизма AI
// (перебор кандидатов всегда идет в одном и том же порядке).
var AllDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta возвращает единичное смещение направления.
func (dir Direction) Delta() Delta {
	switch dir {
	case DirUp:
		return Delta{Dx: 0, Dy: -1}
	case DirDown:
		return Delta{Dx: 0, Dy: 1}
	case DirLeft:
		return Delta{Dx: -1, Dy: 0}
	default:
		return Delta{Dx: 1, Dy: 0}
	}
}

// Rotation - угол поворота спрайта в градусах (для клиента).
func (dir Direction) Rotation() int {
	switch dir {
	case DirUp:
		return 0
	case DirRight:
		return 90
	case DirDown:
		return 180
	default:
		return 270
	}
}

func (dir Direction) String() string {
	switch dir {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	default:
		return "RIGHT"
	}
}

// ParseDirection конвертирует строку из JSON в Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "UP":
		return DirUp, true
	case "DOWN":
		return DirDown, true
	case "LEFT":
		return DirLeft, true
	case "RIGHT":
		return DirRight, true
	}
	return DirUp, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
