package domain

import "fmt"

// Grid - прямоугольный плотный массив фиксированного размера,
// адресуемый локальными координатами чанка.
//
// Политика границ (важно!):
//   - Get за границей - это НЕ ошибка: возвращается (zero, false),
//     чтобы вызывающий мог трактовать клетку как "неизвестно/непроходимо".
//   - Set за границей - ошибка программиста (путаница локальных и
//     глобальных координат), падаем громко.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid создает сетку width x height, заполняя каждую клетку
// результатом функции-генератора.
func NewGrid[T any](width, height int, fill func(GridPosition) T) *Grid[T] {
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = fill(GridPosition{X: x, Y: y})
		}
	}
	return g
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// InBounds проверяет, лежит ли локальная координата внутри сетки.
func (g *Grid[T]) InBounds(p GridPosition) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get возвращает (значение, true) либо (zero, false) за границей.
func (g *Grid[T]) Get(p GridPosition) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.width+p.X], true
}

// Set записывает значение. Запись за границей - ошибка.
func (g *Grid[T]) Set(p GridPosition, v T) error {
	if !g.InBounds(p) {
		return fmt.Errorf("grid set out of bounds: %d,%d (size %dx%d)", p.X, p.Y, g.width, g.height)
	}
	g.cells[p.Y*g.width+p.X] = v
	return nil
}

// MustSet - Set, который паникует вместо возврата ошибки.
// Используется там, где координата получена из собственного перебора сетки.
func (g *Grid[T]) MustSet(p GridPosition, v T) {
	if err := g.Set(p, v); err != nil {
		panic(err)
	}
}
