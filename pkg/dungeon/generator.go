package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"delve-server/internal/domain"
)

// ErrSaturated возвращается, когда в сетке не осталось ни одной
// проходимой клетки-кандидата. Раньше такой случай крутился бы
// в бесконечном цикле - теперь падаем явно.
var ErrSaturated = errors.New("dungeon: grid saturated, no passable candidate cells")

// Level - результат генерации лабиринта для одной области.
type Level struct {
	Cells *domain.Grid[domain.Cell]
	Start domain.GridPosition
	End   domain.GridPosition
}

// Generate ставит wallCount случайных стен в области width x height,
// гарантируя, что Start и End остаются соединены проходимыми клетками.
//
// Алгоритм: сетка стартует полностью проходимой; на каждую установку
// перебираем проходимые клетки в случайном порядке, временно ставим
// стену и проверяем достижимость End из Start поиском в ширину.
// Стена, разрывающая путь, откатывается немедленно - сетка ни в один
// момент не остается в рассоединенном состоянии.
//
// Кандидаты предвычисляются на каждую установку (никаких слепых
// ретраев): если ни одна стена не может встать без разрыва пути,
// установка просто прекращается раньше квоты. Завершение гарантировано.
func Generate(width, height int, start, end domain.GridPosition, wallCount int, rng *rand.Rand) (*Level, error) {
	cells := domain.NewGrid(width, height, func(domain.GridPosition) domain.Cell {
		return domain.CellEmpty
	})

	if !cells.InBounds(start) || !cells.InBounds(end) {
		return nil, fmt.Errorf("dungeon: start %v or end %v outside %dx%d area", start, end, width, height)
	}

	for placed := 0; placed < wallCount; placed++ {
		candidates := passableCells(cells)
		if len(candidates) == 0 {
			return nil, ErrSaturated
		}

		ok := false
		for _, idx := range rng.Perm(len(candidates)) {
			p := candidates[idx]
			cells.MustSet(p, domain.CellWall)
			if HasPathBetween(cells, start, end) {
				ok = true
				break
			}
			// Откат: стена разорвала путь
			cells.MustSet(p, domain.CellEmpty)
		}
		if !ok {
			// Ни одна оставшаяся клетка не может стать стеной
			// без разрыва пути. Квота недостижима, выходим.
			break
		}
	}

	return &Level{Cells: cells, Start: start, End: end}, nil
}

// SealUnreachable замуровывает все проходимые клетки, НЕ достижимые
// из Start: после прохода "карманов" в уровне не остается.
func SealUnreachable(level *Level) {
	reached := floodFill(level.Cells, level.Start)
	for y := 0; y < level.Cells.Height(); y++ {
		for x := 0; x < level.Cells.Width(); x++ {
			p := domain.GridPosition{X: x, Y: y}
			if cell, _ := level.Cells.Get(p); cell.Passable() && !reached[p] {
				level.Cells.MustSet(p, domain.CellWall)
			}
		}
	}
}

// HasPathBetween - есть ли путь из from в to по проходимым клеткам
// (4-связность). Если from сам стена - сразу false: это документированное
// предусловие, а не ошибка. to - обычная проходимая клетка, никакой
// мульти-целевой магии.
func HasPathBetween(cells *domain.Grid[domain.Cell], from, to domain.GridPosition) bool {
	if cell, ok := cells.Get(from); !ok || !cell.Passable() {
		return false
	}
	return floodFill(cells, from)[to]
}

// floodFill возвращает множество клеток, достижимых из start
// по проходимым клеткам.
func floodFill(cells *domain.Grid[domain.Cell], start domain.GridPosition) map[domain.GridPosition]bool {
	reached := map[domain.GridPosition]bool{}
	if cell, ok := cells.Get(start); !ok || !cell.Passable() {
		return reached
	}
	reached[start] = true

	queue := []domain.GridPosition{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range domain.AllDirections {
			d := dir.Delta()
			next := domain.GridPosition{X: cur.X + d.Dx, Y: cur.Y + d.Dy}
			if reached[next] {
				continue
			}
			if cell, ok := cells.Get(next); !ok || !cell.Passable() {
				continue
			}
			reached[next] = true
			queue = append(queue, next)
		}
	}
	return reached
}

// passableCells собирает все проходимые клетки сетки.
func passableCells(cells *domain.Grid[domain.Cell]) []domain.GridPosition {
	var out []domain.GridPosition
	for y := 0; y < cells.Height(); y++ {
		for x := 0; x < cells.Width(); x++ {
			p := domain.GridPosition{X: x, Y: y}
			if cell, _ := cells.Get(p); cell.Passable() {
				out = append(out, p)
			}
		}
	}
	return out
}
